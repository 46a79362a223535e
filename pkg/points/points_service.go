package points

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kolomarket-backend/domain"
	"kolomarket-backend/entities"
	"kolomarket-backend/pkg/payment"
	"kolomarket-backend/pkg/pricing"
	"kolomarket-backend/pkg/user"
)

type (
	PointsService interface {
		GetBalance(ctx context.Context, userID string) (*domain.PointsBalanceResponse, error)
		GetHistory(ctx context.Context, userID string, page, limit int) ([]*domain.PointsTransactionResponse, int64, error)
		SendPoints(ctx context.Context, req domain.SendPointsRequest, userID string) error
		RequestPoints(ctx context.Context, req domain.RequestPointsRequest, userID string) (*domain.PointsRequestResponse, error)
		RespondToRequest(ctx context.Context, req domain.RespondPointsRequest, userID string) error
		TopUpPoints(ctx context.Context, req domain.TopUpPointsRequest, userID string) (*domain.TopUpPointsResponse, error)
	}

	pointsService struct {
		pointsRepository PointsRepository
		userRepository   user.UserRepository
		paymentService   payment.PaymentService
	}
)

func NewPointsService(pointsRepository PointsRepository, userRepository user.UserRepository, paymentService payment.PaymentService) PointsService {
	return &pointsService{
		pointsRepository: pointsRepository,
		userRepository:   userRepository,
		paymentService:   paymentService,
	}
}

func (s *pointsService) GetBalance(ctx context.Context, userID string) (*domain.PointsBalanceResponse, error) {
	stats, err := s.pointsRepository.GetUserPointsStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return &domain.PointsBalanceResponse{
		Balance:       stats["balance"],
		LifetimeSpent: u.LifetimeSpentPoints,
		TotalReceived: stats["total_received"],
		TotalCashback: stats["total_cashback"],
	}, nil
}

func (s *pointsService) GetHistory(ctx context.Context, userID string, page, limit int) ([]*domain.PointsTransactionResponse, int64, error) {
	transactions, count, err := s.pointsRepository.GetUserPointsTransactions(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.PointsTransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		resp := &domain.PointsTransactionResponse{
			ID:          tx.ID.String(),
			Amount:      tx.Amount,
			Type:        tx.Type,
			Description: tx.Description,
			Balance:     tx.Balance,
			CreatedAt:   tx.CreatedAt,
		}
		if tx.CounterpartyID != nil {
			if counterparty, err := s.userRepository.GetUserByID(ctx, tx.CounterpartyID.String()); err == nil {
				resp.Counterparty = counterparty.Gamertag
			}
		}
		result = append(result, resp)
	}

	return result, count, nil
}

func (s *pointsService) SendPoints(ctx context.Context, req domain.SendPointsRequest, userID string) error {
	senderID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	recipient, err := s.userRepository.GetUserByGamertag(ctx, req.RecipientGamertag)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipientNotFound
		}
		return err
	}
	if recipient.ID == senderID {
		return domain.ErrSelfTransfer
	}

	return s.pointsRepository.TransferPoints(ctx, senderID, recipient.ID, req.Amount, req.Note)
}

func (s *pointsService) RequestPoints(ctx context.Context, req domain.RequestPointsRequest, userID string) (*domain.PointsRequestResponse, error) {
	requesterID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	requester, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	recipient, err := s.userRepository.GetUserByGamertag(ctx, req.RecipientGamertag)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipientNotFound
		}
		return nil, err
	}
	if recipient.ID == requesterID {
		return nil, domain.ErrSelfTransfer
	}

	pointsRequest := &entities.PointsRequest{
		ID:          uuid.New(),
		RequesterID: requesterID,
		RecipientID: recipient.ID,
		Amount:      req.Amount,
		Note:        req.Note,
		Status:      domain.PointsRequestStatusPending,
	}
	if err := s.pointsRepository.CreatePointsRequest(ctx, pointsRequest); err != nil {
		return nil, err
	}

	return &domain.PointsRequestResponse{
		ID:                pointsRequest.ID.String(),
		RequesterGamertag: requester.Gamertag,
		RecipientGamertag: recipient.Gamertag,
		Amount:            pointsRequest.Amount,
		Note:              pointsRequest.Note,
		Status:            pointsRequest.Status,
		CreatedAt:         pointsRequest.CreatedAt,
	}, nil
}

// RespondToRequest lets the user a request was addressed to accept (which
// performs the transfer towards the requester) or reject it. Only pending
// requests can be answered, and only by their recipient.
func (s *pointsService) RespondToRequest(ctx context.Context, req domain.RespondPointsRequest, userID string) error {
	pointsRequest, err := s.pointsRepository.GetPointsRequestByID(ctx, req.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrPointsRequestNotFound
		}
		return err
	}

	if pointsRequest.RecipientID.String() != userID {
		return domain.ErrUserNotAllowed
	}
	if pointsRequest.Status != domain.PointsRequestStatusPending {
		return domain.ErrRequestAlreadyClosed
	}

	if !req.Accept {
		return s.pointsRepository.UpdatePointsRequestStatus(ctx, req.RequestID, domain.PointsRequestStatusRejected)
	}

	if err := s.pointsRepository.TransferPoints(ctx, pointsRequest.RecipientID, pointsRequest.RequesterID, pointsRequest.Amount, pointsRequest.Note); err != nil {
		return err
	}

	return s.pointsRepository.UpdatePointsRequestStatus(ctx, req.RequestID, domain.PointsRequestStatusAccepted)
}

func (s *pointsService) TopUpPoints(ctx context.Context, req domain.TopUpPointsRequest, userID string) (*domain.TopUpPointsResponse, error) {
	fiat, err := pricing.PointsToFiat(req.Points)
	if err != nil {
		return nil, err
	}

	resp, err := s.paymentService.CreateTransaction(ctx, domain.GatewayPaymentRequest{
		AmountFiat: int64(math.Round(fiat)),
		Email:      req.Email,
		Purpose:    domain.PaymentPurposeTopUp,
	}, userID)
	if err != nil {
		return nil, err
	}

	return &domain.TopUpPointsResponse{
		TransactionID: resp.OrderID,
		InvoiceURL:    resp.InvoiceURL,
	}, nil
}
