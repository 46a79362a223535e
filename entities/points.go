package entities

import "github.com/google/uuid"

type PointsTransaction struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	Amount         int        `json:"amount"` // negative for debits
	Type           string     `json:"type"`   // TopUp, Spend, TransferIn, TransferOut, Cashback
	Description    string     `json:"description"`
	CounterpartyID *uuid.UUID `json:"counterparty_id,omitempty"`
	Balance        int        `json:"balance"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type PointsRequest struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RequesterID uuid.UUID `json:"requester_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	Amount      int       `json:"amount"`
	Note        string    `json:"note,omitempty"`
	Status      string    `json:"status"` // Pending, Accepted, Rejected

	Requester *User `gorm:"foreignKey:RequesterID"`
	Recipient *User `gorm:"foreignKey:RecipientID"`
	Timestamp
}
