package payment

import (
	"context"

	"gorm.io/gorm"

	"kolomarket-backend/entities"
)

type (
	PaymentRepository interface {
		CreatePaymentTransaction(ctx context.Context, tx *entities.PaymentTransaction) error
		GetByGatewayOrderID(ctx context.Context, orderID string) (*entities.PaymentTransaction, error)
		UpdatePaymentTransaction(ctx context.Context, tx *entities.PaymentTransaction) error
	}

	paymentRepository struct {
		db *gorm.DB
	}
)

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{
		db: db,
	}
}

func (r *paymentRepository) CreatePaymentTransaction(ctx context.Context, tx *entities.PaymentTransaction) error {
	return r.db.WithContext(ctx).Create(tx).Error
}

func (r *paymentRepository) GetByGatewayOrderID(ctx context.Context, orderID string) (*entities.PaymentTransaction, error) {
	var tx entities.PaymentTransaction
	if err := r.db.WithContext(ctx).
		Where("gateway_order_id = ?", orderID).
		First(&tx).Error; err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *paymentRepository) UpdatePaymentTransaction(ctx context.Context, tx *entities.PaymentTransaction) error {
	return r.db.WithContext(ctx).Save(tx).Error
}
