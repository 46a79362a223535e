package entities

import "github.com/google/uuid"

// ProviderFee is one row of the Mobile Money fee schedule: a flat FCFA fee
// charged when the order's fiat value falls inside [MinAmountFiat, MaxAmountFiat].
type ProviderFee struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Provider      string    `gorm:"index" json:"provider"`
	MinAmountFiat float64   `json:"min_amount_fiat"`
	MaxAmountFiat float64   `json:"max_amount_fiat"`
	FeeFiat       float64   `json:"fee_fiat"`
	IsActive      bool      `json:"is_active"`

	Timestamp
}
