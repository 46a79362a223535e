package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessQuote      = "checkout quote computed successfully"
	MessageSuccessPlaceOrder = "order placed successfully"
	MessageSuccessGetOrders  = "orders retrieved successfully"
	MessageFailedQuote       = "failed to compute checkout quote"
	MessageFailedPlaceOrder  = "failed to place order"
	MessageFailedGetOrders   = "failed to retrieve orders"

	ErrInsufficientPoints = errors.New("insufficient points balance")
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyCart          = errors.New("cart total must be positive")
)

const (
	OrderStatusPaid      = "Paid"
	OrderStatusPending   = "Pending"
	OrderStatusCancelled = "Cancelled"
)

type (
	QuoteRequest struct {
		CartPoints    int    `json:"cart_points" validate:"required,min=1"`
		CouponCode    string `json:"coupon_code,omitempty"`
		PaymentMethod string `json:"payment_method" validate:"required,oneof=points mtn_momo moov_money celtiis_cash"`
	}

	// QuoteResponse is the order-total breakdown: discount is applied to the
	// cart total first, the provider fee is added on the discounted total.
	QuoteResponse struct {
		CartPoints       int     `json:"cart_points"`
		CouponCode       string  `json:"coupon_code,omitempty"`
		CouponApplied    bool    `json:"coupon_applied"`
		DiscountPoints   int     `json:"discount_points"`
		FeePoints        int     `json:"fee_points"`
		FinalTotalPoints int     `json:"final_total_points"`
		FinalTotalFiat   float64 `json:"final_total_fiat"`
		CashbackPoints   int     `json:"cashback_points"`
	}

	PlaceOrderRequest struct {
		CartPoints    int    `json:"cart_points" validate:"required,min=1"`
		CouponCode    string `json:"coupon_code,omitempty"`
		PaymentMethod string `json:"payment_method" validate:"required,oneof=points mtn_momo moov_money celtiis_cash"`
	}

	OrderResponse struct {
		ID               string    `json:"id"`
		CartPoints       int       `json:"cart_points"`
		CouponCode       string    `json:"coupon_code,omitempty"`
		DiscountPoints   int       `json:"discount_points"`
		FeePoints        int       `json:"fee_points"`
		FinalTotalPoints int       `json:"final_total_points"`
		CashbackPoints   int       `json:"cashback_points"`
		PaymentMethod    string    `json:"payment_method"`
		Status           string    `json:"status"`
		CreatedAt        time.Time `json:"created_at"`
	}
)
