package entities

import (
	"time"

	"github.com/google/uuid"
)

type Coupon struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Code                  string    `gorm:"uniqueIndex" json:"code"`
	DiscountPercent       int       `json:"discount_percent"`
	ExpiryDate            time.Time `json:"expiry_date"`
	MinPurchasePoints     *int      `json:"min_purchase_points,omitempty"`
	MaxDiscountPoints     *int      `json:"max_discount_points,omitempty"`
	RequiresPremium       bool      `json:"requires_premium"`
	MinUserLifetimePoints *int      `json:"min_user_lifetime_points,omitempty"`
	BannerURL             string    `json:"banner_url,omitempty"`
	IsActive              bool      `json:"is_active"`

	Timestamp
}
