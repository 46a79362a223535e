package payment

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"

	"kolomarket-backend/domain"
	"kolomarket-backend/entities"
	"kolomarket-backend/pkg/pricing"
	"kolomarket-backend/pkg/user"
)

// PremiumSubscriptionFiat is the price of 30 days of premium membership.
const PremiumSubscriptionFiat int64 = 2500

type (
	// PointsCreditor credits a settled top-up; implemented by the points
	// repository and injected at wiring time.
	PointsCreditor interface {
		CreditTopUp(ctx context.Context, userID string, amount int, description string) error
	}

	PaymentService interface {
		CreateTransaction(ctx context.Context, req domain.GatewayPaymentRequest, userID string) (*domain.GatewayPaymentResponse, error)
		HandleNotification(ctx context.Context, notif domain.PaymentNotification) error
	}

	paymentService struct {
		paymentRepository PaymentRepository
		userService       user.UserService
		pointsCreditor    PointsCreditor
		snapClient        snap.Client
	}
)

func NewPaymentService(paymentRepository PaymentRepository, userService user.UserService, pointsCreditor PointsCreditor) PaymentService {
	env := midtrans.Sandbox
	if os.Getenv("IS_PROD") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(os.Getenv("SERVER_KEY"), env)

	return &paymentService{
		paymentRepository: paymentRepository,
		userService:       userService,
		pointsCreditor:    pointsCreditor,
		snapClient:        client,
	}
}

func (s *paymentService) CreateTransaction(ctx context.Context, req domain.GatewayPaymentRequest, userID string) (*domain.GatewayPaymentResponse, error) {
	if req.Purpose != domain.PaymentPurposePremium && req.Purpose != domain.PaymentPurposeTopUp {
		return nil, domain.ErrInvalidPaymentPurpose
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	orderID := fmt.Sprintf("KOLO-%s", uuid.New().String())

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: req.AmountFiat,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			Email: req.Email,
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return nil, domain.ErrPaymentFailed
	}

	pointsAmount := 0
	if req.Purpose == domain.PaymentPurposeTopUp {
		pointsAmount, err = pricing.FiatToPoints(float64(req.AmountFiat))
		if err != nil {
			return nil, err
		}
	}

	tx := &entities.PaymentTransaction{
		ID:             uuid.New(),
		UserID:         userUUID,
		GatewayOrderID: orderID,
		Purpose:        req.Purpose,
		AmountFiat:     req.AmountFiat,
		PointsAmount:   pointsAmount,
		Status:         domain.PaymentStatusPending,
		InvoiceURL:     snapResp.RedirectURL,
	}
	if err := s.paymentRepository.CreatePaymentTransaction(ctx, tx); err != nil {
		return nil, err
	}

	return &domain.GatewayPaymentResponse{
		OrderID:    orderID,
		InvoiceURL: snapResp.RedirectURL,
	}, nil
}

func (s *paymentService) HandleNotification(ctx context.Context, notif domain.PaymentNotification) error {
	tx, err := s.paymentRepository.GetByGatewayOrderID(ctx, notif.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPaymentTxNotFound
		}
		return err
	}

	if tx.Status != domain.PaymentStatusPending {
		return domain.ErrPaymentAlreadySettled
	}

	switch notif.TransactionStatus {
	case "capture":
		if notif.FraudStatus != "accept" {
			return nil // wait for the follow-up notification
		}
		return s.settle(ctx, tx)
	case "settlement":
		return s.settle(ctx, tx)
	case "deny", "cancel", "expire":
		tx.Status = domain.PaymentStatusFailed
		return s.paymentRepository.UpdatePaymentTransaction(ctx, tx)
	default:
		return nil
	}
}

func (s *paymentService) settle(ctx context.Context, tx *entities.PaymentTransaction) error {
	switch tx.Purpose {
	case domain.PaymentPurposePremium:
		until := time.Now().AddDate(0, 0, 30)
		if err := s.userService.ActivatePremium(ctx, tx.UserID.String(), until); err != nil {
			return err
		}
	case domain.PaymentPurposeTopUp:
		description := fmt.Sprintf("Top-up of %d points (%d FCFA)", tx.PointsAmount, tx.AmountFiat)
		if err := s.pointsCreditor.CreditTopUp(ctx, tx.UserID.String(), tx.PointsAmount, description); err != nil {
			return err
		}
	default:
		return domain.ErrInvalidPaymentPurpose
	}

	tx.Status = domain.PaymentStatusSettled
	return s.paymentRepository.UpdatePaymentTransaction(ctx, tx)
}
