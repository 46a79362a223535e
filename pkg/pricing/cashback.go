package pricing

import (
	"math"

	"kolomarket-backend/domain"
)

// CalculateCashback computes the reward for a completed order: CashbackRate of
// the order's fiat value, floored at MinCashbackFiat, converted back to whole
// points. A small order therefore still earns the minimum cashback.
func CalculateCashback(orderPoints int) (int, error) {
	if orderPoints < 0 {
		return 0, domain.ErrInvalidAmount
	}

	fiat, err := PointsToFiat(orderPoints)
	if err != nil {
		return 0, err
	}

	cashbackFiat := roundFiat(fiat * CashbackRate)
	if cashbackFiat < MinCashbackFiat {
		cashbackFiat = MinCashbackFiat
	}

	return int(math.Round(cashbackFiat / PointRateFiat)), nil
}
