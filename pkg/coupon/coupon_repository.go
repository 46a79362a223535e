package coupon

import (
	"context"

	"gorm.io/gorm"

	"kolomarket-backend/entities"
)

type (
	CouponRepository interface {
		CreateCoupon(ctx context.Context, coupon *entities.Coupon) error
		GetActiveCoupons(ctx context.Context) ([]*entities.Coupon, error)
		GetCouponByCode(ctx context.Context, code string) (*entities.Coupon, error)
		UpdateCoupon(ctx context.Context, coupon *entities.Coupon) error
		DeleteCoupon(ctx context.Context, code string) error
	}

	couponRepository struct {
		db *gorm.DB
	}
)

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepository{
		db: db,
	}
}

func (r *couponRepository) CreateCoupon(ctx context.Context, coupon *entities.Coupon) error {
	return r.db.WithContext(ctx).Create(coupon).Error
}

// GetActiveCoupons returns the catalog in creation order; the engine's
// first-match-wins rule for duplicate codes depends on this ordering being
// stable.
func (r *couponRepository) GetActiveCoupons(ctx context.Context) ([]*entities.Coupon, error) {
	var coupons []*entities.Coupon
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Find(&coupons).Error; err != nil {
		return nil, err
	}
	return coupons, nil
}

func (r *couponRepository) GetCouponByCode(ctx context.Context, code string) (*entities.Coupon, error) {
	var coupon entities.Coupon
	if err := r.db.WithContext(ctx).
		Where("LOWER(code) = LOWER(?)", code).
		First(&coupon).Error; err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *couponRepository) UpdateCoupon(ctx context.Context, coupon *entities.Coupon) error {
	return r.db.WithContext(ctx).Save(coupon).Error
}

func (r *couponRepository) DeleteCoupon(ctx context.Context, code string) error {
	return r.db.WithContext(ctx).
		Where("LOWER(code) = LOWER(?)", code).
		Delete(&entities.Coupon{}).Error
}
