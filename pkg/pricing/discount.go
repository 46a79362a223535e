package pricing

import (
	"math"

	"kolomarket-backend/domain"
)

// ApplyDiscount computes the payable total after an optional validated coupon.
// The discount never exceeds the base total nor the coupon's MaxDiscountPoints
// cap, so the final total cannot go negative.
func ApplyDiscount(baseTotalPoints int, coupon *domain.Coupon) domain.DiscountBreakdown {
	if coupon == nil {
		return domain.DiscountBreakdown{FinalTotalPoints: baseTotalPoints}
	}

	discount := int(math.Round(float64(baseTotalPoints) * float64(coupon.DiscountPercent) / 100))
	if coupon.MaxDiscountPoints != nil && discount > *coupon.MaxDiscountPoints {
		discount = *coupon.MaxDiscountPoints
	}
	if discount > baseTotalPoints {
		discount = baseTotalPoints
	}

	return domain.DiscountBreakdown{
		FinalTotalPoints: baseTotalPoints - discount,
		DiscountPoints:   discount,
	}
}

// AddPaymentFee adds the provider's flat transaction fee, in points, on top of
// the (already discounted) total. Fees are never discounted, which is why this
// runs after ApplyDiscount. Paying directly with points is free.
func (e *Engine) AddPaymentFee(totalPoints int, provider string) (int, error) {
	if totalPoints < 0 {
		return 0, domain.ErrInvalidAmount
	}
	if provider == domain.PaymentMethodPoints {
		return totalPoints, nil
	}

	amountFiat, err := PointsToFiat(totalPoints)
	if err != nil {
		return 0, err
	}

	known := false
	for _, fee := range e.fees {
		if fee.Provider != provider {
			continue
		}
		known = true
		if amountFiat < fee.MinAmountFiat || amountFiat > fee.MaxAmountFiat {
			continue
		}
		feePoints, err := FiatToPoints(fee.FeeFiat)
		if err != nil {
			return 0, err
		}
		return totalPoints + feePoints, nil
	}

	if !known {
		return 0, domain.ErrUnknownProvider
	}
	return 0, domain.ErrFeeUnavailable
}
