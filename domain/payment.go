package domain

import "errors"

var (
	MessageSuccessWebhook = "notification processed"
	MessageFailedWebhook  = "failed to process notification"

	ErrPaymentFailed         = errors.New("payment processing failed")
	ErrPaymentTxNotFound     = errors.New("payment transaction not found")
	ErrPaymentAlreadySettled = errors.New("payment transaction already settled")
	ErrInvalidPaymentPurpose = errors.New("invalid payment purpose")
)

const (
	PaymentPurposePremium = "premium"
	PaymentPurposeTopUp   = "topup"

	PaymentStatusPending = "Pending"
	PaymentStatusSettled = "Settled"
	PaymentStatusFailed  = "Failed"
)

type (
	GatewayPaymentRequest struct {
		AmountFiat int64
		Email      string
		Purpose    string
	}

	GatewayPaymentResponse struct {
		OrderID    string
		InvoiceURL string
	}

	PaymentNotification struct {
		OrderID           string `json:"order_id"`
		TransactionStatus string `json:"transaction_status"`
		FraudStatus       string `json:"fraud_status"`
	}
)
