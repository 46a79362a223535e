package entities

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string    `json:"name"`
	Gamertag string    `gorm:"uniqueIndex" json:"gamertag"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Phone    string    `json:"phone"`
	Password string    `json:"-"`
	Role     string    `json:"role"`

	// LifetimeSpentPoints is a running counter of every point the user has ever
	// spent (orders, transfers out). Updated in the same transaction as the
	// debit so coupon tier gates never read a stale value.
	LifetimeSpentPoints int        `json:"lifetime_spent_points"`
	IsPremium           bool       `json:"is_premium"`
	PremiumUntil        *time.Time `json:"premium_until,omitempty"`

	Timestamp
}
