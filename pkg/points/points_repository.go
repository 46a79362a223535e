package points

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kolomarket-backend/domain"
	"kolomarket-backend/entities"
)

type (
	PointsRepository interface {
		// Balances
		GetUserBalance(ctx context.Context, userID string) (int, error)
		GetUserPointsStats(ctx context.Context, userID string) (map[string]int, error)

		// Transactions
		CreditPoints(ctx context.Context, userID uuid.UUID, amount int, txType, description string) error
		DebitPoints(ctx context.Context, userID uuid.UUID, amount int, txType, description string) error
		TransferPoints(ctx context.Context, senderID, recipientID uuid.UUID, amount int, note string) error
		GetUserPointsTransactions(ctx context.Context, userID string, page, limit int) ([]*entities.PointsTransaction, int64, error)

		// Peer requests
		CreatePointsRequest(ctx context.Context, req *entities.PointsRequest) error
		GetPointsRequestByID(ctx context.Context, id string) (*entities.PointsRequest, error)
		UpdatePointsRequestStatus(ctx context.Context, id string, status string) error

		// Top-ups settled by the payment gateway webhook
		CreditTopUp(ctx context.Context, userID string, amount int, description string) error
	}

	pointsRepository struct {
		db *gorm.DB
	}
)

func NewPointsRepository(db *gorm.DB) PointsRepository {
	return &pointsRepository{
		db: db,
	}
}

func (r *pointsRepository) GetUserBalance(ctx context.Context, userID string) (int, error) {
	return r.balanceTx(r.db.WithContext(ctx), userID)
}

// balanceTx reads the running balance off the latest transaction row, so a
// balance is always consistent with the history that produced it.
func (r *pointsRepository) balanceTx(tx *gorm.DB, userID string) (int, error) {
	var latest entities.PointsTransaction
	if err := tx.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&latest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil // no transactions yet
		}
		return 0, err
	}
	return latest.Balance, nil
}

func (r *pointsRepository) GetUserPointsStats(ctx context.Context, userID string) (map[string]int, error) {
	var totalReceived int
	receivedQuery := r.db.WithContext(ctx).
		Model(&entities.PointsTransaction{}).
		Where("user_id = ? AND amount > 0", userID).
		Select("COALESCE(SUM(amount), 0) as total")
	if err := receivedQuery.Row().Scan(&totalReceived); err != nil {
		return nil, err
	}

	var totalCashback int
	cashbackQuery := r.db.WithContext(ctx).
		Model(&entities.PointsTransaction{}).
		Where("user_id = ? AND type = ?", userID, domain.TransactionTypeCashback).
		Select("COALESCE(SUM(amount), 0) as total")
	if err := cashbackQuery.Row().Scan(&totalCashback); err != nil {
		return nil, err
	}

	balance, err := r.GetUserBalance(ctx, userID)
	if err != nil {
		return nil, err
	}

	return map[string]int{
		"balance":        balance,
		"total_received": totalReceived,
		"total_cashback": totalCashback,
	}, nil
}

func (r *pointsRepository) CreditPoints(ctx context.Context, userID uuid.UUID, amount int, txType, description string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.credit(tx, userID, amount, txType, description, nil)
	})
}

func (r *pointsRepository) DebitPoints(ctx context.Context, userID uuid.UUID, amount int, txType, description string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return r.debit(tx, userID, amount, txType, description, nil)
	})
}

// TransferPoints moves points between two users atomically: the sender's debit
// and the recipient's credit either both land or neither does.
func (r *pointsRepository) TransferPoints(ctx context.Context, senderID, recipientID uuid.UUID, amount int, note string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		description := "Kolofap transfer"
		if note != "" {
			description += ": " + note
		}
		if err := r.debit(tx, senderID, amount, domain.TransactionTypeTransferOut, description, &recipientID); err != nil {
			return err
		}
		return r.credit(tx, recipientID, amount, domain.TransactionTypeTransferIn, description, &senderID)
	})
}

func (r *pointsRepository) credit(tx *gorm.DB, userID uuid.UUID, amount int, txType, description string, counterparty *uuid.UUID) error {
	balance, err := r.balanceTx(tx, userID.String())
	if err != nil {
		return err
	}

	return tx.Create(&entities.PointsTransaction{
		ID:             uuid.New(),
		UserID:         userID,
		Amount:         amount,
		Type:           txType,
		Description:    description,
		CounterpartyID: counterparty,
		Balance:        balance + amount,
	}).Error
}

// debit records a negative transaction and bumps the user's lifetime spent
// counter in the same database transaction, so coupon tier gates never read a
// stale counter.
func (r *pointsRepository) debit(tx *gorm.DB, userID uuid.UUID, amount int, txType, description string, counterparty *uuid.UUID) error {
	balance, err := r.balanceTx(tx, userID.String())
	if err != nil {
		return err
	}
	if balance < amount {
		return domain.ErrInsufficientPoints
	}

	if err := tx.Create(&entities.PointsTransaction{
		ID:             uuid.New(),
		UserID:         userID,
		Amount:         -amount,
		Type:           txType,
		Description:    description,
		CounterpartyID: counterparty,
		Balance:        balance - amount,
	}).Error; err != nil {
		return err
	}

	return tx.Model(&entities.User{}).
		Where("id = ?", userID).
		Update("lifetime_spent_points", gorm.Expr("lifetime_spent_points + ?", amount)).Error
}

func (r *pointsRepository) GetUserPointsTransactions(ctx context.Context, userID string, page, limit int) ([]*entities.PointsTransaction, int64, error) {
	var transactions []*entities.PointsTransaction
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.PointsTransaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, count, nil
}

func (r *pointsRepository) CreatePointsRequest(ctx context.Context, req *entities.PointsRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *pointsRepository) GetPointsRequestByID(ctx context.Context, id string) (*entities.PointsRequest, error) {
	var req entities.PointsRequest
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *pointsRepository) UpdatePointsRequestStatus(ctx context.Context, id string, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.PointsRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *pointsRepository) CreditTopUp(ctx context.Context, userID string, amount int, description string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	return r.CreditPoints(ctx, userUUID, amount, domain.TransactionTypeTopUp, description)
}
