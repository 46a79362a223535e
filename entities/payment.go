package entities

import "github.com/google/uuid"

// PaymentTransaction tracks a gateway invoice from creation to settlement.
// GatewayOrderID is the order_id sent to the gateway and echoed back by its
// webhook notifications.
type PaymentTransaction struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	GatewayOrderID string    `gorm:"uniqueIndex" json:"gateway_order_id"`
	Purpose        string    `json:"purpose"` // premium, topup
	AmountFiat     int64     `json:"amount_fiat"`
	PointsAmount   int       `json:"points_amount"`
	Status         string    `json:"status"` // Pending, Settled, Failed
	InvoiceURL     string    `json:"invoice_url"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
