package domain

import (
	"errors"
	"time"
)

// Mobile Money providers accepted at checkout. PaymentMethodPoints means the
// order is settled entirely from the user's point balance and carries no fee.
const (
	PaymentMethodPoints = "points"
	ProviderMTNMomo     = "mtn_momo"
	ProviderMoovMoney   = "moov_money"
	ProviderCeltiisCash = "celtiis_cash"
)

var (
	ErrInvalidAmount   = errors.New("amount is negative or not a finite number")
	ErrUnknownProvider = errors.New("unknown payment provider")
	ErrFeeUnavailable  = errors.New("no fee configured for this amount")
)

type (
	// Coupon is the engine-side view of a catalog entry. Optional gates are
	// pointers: a nil gate is simply not checked.
	Coupon struct {
		Code                  string    `json:"code"`
		DiscountPercent       int       `json:"discount_percent"`
		ExpiryDate            time.Time `json:"expiry_date"`
		MinPurchasePoints     *int      `json:"min_purchase_points,omitempty"`
		MaxDiscountPoints     *int      `json:"max_discount_points,omitempty"`
		RequiresPremium       bool      `json:"requires_premium"`
		MinUserLifetimePoints *int      `json:"min_user_lifetime_points,omitempty"`
	}

	// ProviderFee is one row of the Mobile Money fee schedule: a flat FCFA fee
	// for order amounts inside [MinAmountFiat, MaxAmountFiat].
	ProviderFee struct {
		Provider      string  `json:"provider"`
		MinAmountFiat float64 `json:"min_amount_fiat"`
		MaxAmountFiat float64 `json:"max_amount_fiat"`
		FeeFiat       float64 `json:"fee_fiat"`
	}

	DiscountBreakdown struct {
		FinalTotalPoints int `json:"final_total_points"`
		DiscountPoints   int `json:"discount_points"`
	}
)
