package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetBalance     = "points balance retrieved successfully"
	MessageSuccessGetHistory     = "points history retrieved successfully"
	MessageSuccessSendPoints     = "points sent successfully"
	MessageSuccessRequestPoints  = "points request created successfully"
	MessageSuccessRespondRequest = "points request updated successfully"
	MessageSuccessTopUp          = "points top-up initiated successfully"
	MessageFailedGetBalance      = "failed to retrieve points balance"
	MessageFailedGetHistory      = "failed to retrieve points history"
	MessageFailedSendPoints      = "failed to send points"
	MessageFailedRequestPoints   = "failed to create points request"
	MessageFailedRespondRequest  = "failed to update points request"
	MessageFailedTopUp           = "failed to initiate points top-up"

	ErrRecipientNotFound     = errors.New("recipient not found")
	ErrSelfTransfer          = errors.New("cannot transfer points to yourself")
	ErrPointsRequestNotFound = errors.New("points request not found")
	ErrRequestAlreadyClosed  = errors.New("points request already closed")
)

const (
	TransactionTypeTopUp       = "TopUp"
	TransactionTypeSpend       = "Spend"
	TransactionTypeTransferIn  = "TransferIn"
	TransactionTypeTransferOut = "TransferOut"
	TransactionTypeCashback    = "Cashback"

	PointsRequestStatusPending  = "Pending"
	PointsRequestStatusAccepted = "Accepted"
	PointsRequestStatusRejected = "Rejected"
)

type (
	SendPointsRequest struct {
		RecipientGamertag string `json:"recipient_gamertag" validate:"required"`
		Amount            int    `json:"amount" validate:"required,min=1"`
		Note              string `json:"note,omitempty" validate:"max=140"`
	}

	RequestPointsRequest struct {
		RecipientGamertag string `json:"recipient_gamertag" validate:"required"`
		Amount            int    `json:"amount" validate:"required,min=1"`
		Note              string `json:"note,omitempty" validate:"max=140"`
	}

	RespondPointsRequest struct {
		RequestID string `json:"request_id" validate:"required,uuid"`
		Accept    bool   `json:"accept"`
	}

	TopUpPointsRequest struct {
		Points int    `json:"points" validate:"required,min=100"`
		Email  string `json:"email" validate:"required,email"`
	}

	TopUpPointsResponse struct {
		TransactionID string `json:"transaction_id"`
		InvoiceURL    string `json:"invoice_url"`
	}

	PointsBalanceResponse struct {
		Balance       int `json:"balance"`
		LifetimeSpent int `json:"lifetime_spent"`
		TotalReceived int `json:"total_received"`
		TotalCashback int `json:"total_cashback"`
	}

	PointsTransactionResponse struct {
		ID           string    `json:"id"`
		Amount       int       `json:"amount"`
		Type         string    `json:"type"`
		Description  string    `json:"description"`
		Counterparty string    `json:"counterparty,omitempty"`
		Balance      int       `json:"balance"`
		CreatedAt    time.Time `json:"created_at"`
	}

	PointsRequestResponse struct {
		ID                string    `json:"id"`
		RequesterGamertag string    `json:"requester_gamertag"`
		RecipientGamertag string    `json:"recipient_gamertag"`
		Amount            int       `json:"amount"`
		Note              string    `json:"note,omitempty"`
		Status            string    `json:"status"`
		CreatedAt         time.Time `json:"created_at"`
	}
)
