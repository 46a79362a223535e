package checkout

import (
	"context"

	"gorm.io/gorm"

	"kolomarket-backend/domain"
	"kolomarket-backend/entities"
)

type (
	FeeRepository interface {
		GetFeeSchedule(ctx context.Context) ([]domain.ProviderFee, error)
	}

	feeRepository struct {
		db *gorm.DB
	}
)

func NewFeeRepository(db *gorm.DB) FeeRepository {
	return &feeRepository{
		db: db,
	}
}

// GetFeeSchedule loads the active Mobile Money fee rows as an engine-ready
// snapshot, ordered so each provider's amount bands are tried lowest first.
func (r *feeRepository) GetFeeSchedule(ctx context.Context) ([]domain.ProviderFee, error) {
	var rows []*entities.ProviderFee
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("provider ASC, min_amount_fiat ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	schedule := make([]domain.ProviderFee, 0, len(rows))
	for _, row := range rows {
		schedule = append(schedule, domain.ProviderFee{
			Provider:      row.Provider,
			MinAmountFiat: row.MinAmountFiat,
			MaxAmountFiat: row.MaxAmountFiat,
			FeeFiat:       row.FeeFiat,
		})
	}
	return schedule, nil
}
