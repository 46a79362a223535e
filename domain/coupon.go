package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetCoupons   = "coupons retrieved successfully"
	MessageSuccessApplyCoupon  = "coupon applied successfully"
	MessageSuccessCreateCoupon = "coupon created successfully"
	MessageSuccessUpdateCoupon = "coupon updated successfully"
	MessageSuccessDeleteCoupon = "coupon deleted successfully"
	MessageCouponNotApplicable = "coupon not applicable"
	MessageFailedGetCoupons    = "failed to retrieve coupons"
	MessageFailedApplyCoupon   = "failed to apply coupon"
	MessageFailedCreateCoupon  = "failed to create coupon"
	MessageFailedUpdateCoupon  = "failed to update coupon"
	MessageFailedDeleteCoupon  = "failed to delete coupon"

	ErrCouponNotFound      = errors.New("coupon not found")
	ErrCouponAlreadyExists = errors.New("coupon code already exists")
	ErrInvalidDiscount     = errors.New("discount percent must be between 0 and 100")
	ErrInvalidExpiry       = errors.New("invalid expiry date")
)

type (
	ApplyCouponRequest struct {
		Code       string `json:"code" validate:"required"`
		CartPoints int    `json:"cart_points" validate:"required,min=1"`
	}

	// ApplyCouponResponse deliberately carries a single generic message when the
	// coupon does not apply, so callers cannot probe which gate rejected it.
	ApplyCouponResponse struct {
		Applicable       bool   `json:"applicable"`
		Code             string `json:"code,omitempty"`
		DiscountPercent  int    `json:"discount_percent,omitempty"`
		DiscountPoints   int    `json:"discount_points,omitempty"`
		FinalTotalPoints int    `json:"final_total_points,omitempty"`
		Message          string `json:"message"`
	}

	CreateCouponRequest struct {
		Code                  string                `json:"code" form:"code" validate:"required,alphanum,max=32"`
		DiscountPercent       int                   `json:"discount_percent" form:"discount_percent" validate:"required,min=1,max=100"`
		ExpiryDate            string                `json:"expiry_date" form:"expiry_date" validate:"required"`
		MinPurchasePoints     *int                  `json:"min_purchase_points,omitempty" form:"min_purchase_points" validate:"omitempty,min=1"`
		MaxDiscountPoints     *int                  `json:"max_discount_points,omitempty" form:"max_discount_points" validate:"omitempty,min=1"`
		RequiresPremium       bool                  `json:"requires_premium" form:"requires_premium"`
		MinUserLifetimePoints *int                  `json:"min_user_lifetime_points,omitempty" form:"min_user_lifetime_points" validate:"omitempty,min=1"`
		Banner                *multipart.FileHeader `json:"banner,omitempty" form:"banner"`
	}

	UpdateCouponRequest struct {
		DiscountPercent       *int                  `json:"discount_percent,omitempty" form:"discount_percent" validate:"omitempty,min=1,max=100"`
		ExpiryDate            *string               `json:"expiry_date,omitempty" form:"expiry_date"`
		MinPurchasePoints     *int                  `json:"min_purchase_points,omitempty" form:"min_purchase_points" validate:"omitempty,min=1"`
		MaxDiscountPoints     *int                  `json:"max_discount_points,omitempty" form:"max_discount_points" validate:"omitempty,min=1"`
		RequiresPremium       *bool                 `json:"requires_premium,omitempty" form:"requires_premium"`
		MinUserLifetimePoints *int                  `json:"min_user_lifetime_points,omitempty" form:"min_user_lifetime_points" validate:"omitempty,min=1"`
		IsActive              *bool                 `json:"is_active,omitempty" form:"is_active"`
		Banner                *multipart.FileHeader `json:"banner,omitempty" form:"banner"`
	}

	CouponResponse struct {
		ID                    string    `json:"id"`
		Code                  string    `json:"code"`
		DiscountPercent       int       `json:"discount_percent"`
		ExpiryDate            time.Time `json:"expiry_date"`
		MinPurchasePoints     *int      `json:"min_purchase_points,omitempty"`
		MaxDiscountPoints     *int      `json:"max_discount_points,omitempty"`
		RequiresPremium       bool      `json:"requires_premium"`
		MinUserLifetimePoints *int      `json:"min_user_lifetime_points,omitempty"`
		BannerURL             string    `json:"banner_url,omitempty"`
		IsActive              bool      `json:"is_active"`
	}
)
