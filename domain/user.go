package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessRegister  = "user registered successfully"
	MessageSuccessLogin     = "login successful"
	MessageSuccessGetMe     = "profile retrieved successfully"
	MessageSuccessSubscribe = "premium subscription initiated successfully"
	MessageFailedRegister   = "failed to register user"
	MessageFailedLogin      = "failed to login"
	MessageFailedGetMe      = "failed to retrieve profile"
	MessageFailedSubscribe  = "failed to initiate premium subscription"

	ErrEmailAlreadyExists    = errors.New("email already registered")
	ErrGamertagAlreadyExists = errors.New("gamertag already taken")
	ErrUserNotFound          = errors.New("user not found")
	ErrCredentialsInvalid    = errors.New("invalid email or password")
	ErrAlreadyPremium        = errors.New("user already has an active premium subscription")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required,max=64"`
		Gamertag string `json:"gamertag" validate:"required,alphanum,min=3,max=24"`
		Email    string `json:"email" validate:"required,email"`
		Phone    string `json:"phone" validate:"required,e164"`
		Password string `json:"password" validate:"required,min=8"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}

	SubscribePremiumRequest struct {
		Email string `json:"email" validate:"required,email"`
	}

	SubscribePremiumResponse struct {
		TransactionID string `json:"transaction_id"`
		InvoiceURL    string `json:"invoice_url"`
	}

	// ProfileSummary is what the pricing engine needs to know about a user:
	// premium status and the lifetime counter of points spent, next to the
	// balance the app shows.
	ProfileSummary struct {
		ID            string     `json:"id"`
		Name          string     `json:"name"`
		Gamertag      string     `json:"gamertag"`
		Email         string     `json:"email"`
		Phone         string     `json:"phone"`
		Balance       int        `json:"balance"`
		LifetimeSpent int        `json:"lifetime_spent"`
		IsPremium     bool       `json:"is_premium"`
		PremiumUntil  *time.Time `json:"premium_until,omitempty"`
	}
)
