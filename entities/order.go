package entities

import "github.com/google/uuid"

type Order struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	CartPoints       int       `json:"cart_points"`
	CouponCode       *string   `json:"coupon_code,omitempty"`
	DiscountPoints   int       `json:"discount_points"`
	FeePoints        int       `json:"fee_points"`
	FinalTotalPoints int       `json:"final_total_points"`
	CashbackPoints   int       `json:"cashback_points"`
	PaymentMethod    string    `json:"payment_method"`
	Status           string    `json:"status"` // Paid, Pending, Cancelled

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
