package pricing

import (
	"math"

	"kolomarket-backend/domain"
)

// PointsToFiat converts a point amount to FCFA, rounded to 2 decimal places.
// Rounding is half away from zero throughout the engine so tests can assert
// exact values.
func PointsToFiat(points int) (float64, error) {
	if points < 0 {
		return 0, domain.ErrInvalidAmount
	}
	return roundFiat(float64(points) * PointRateFiat), nil
}

// FiatToPoints converts an FCFA amount to whole points.
func FiatToPoints(fiat float64) (int, error) {
	if fiat < 0 || math.IsNaN(fiat) || math.IsInf(fiat, 0) {
		return 0, domain.ErrInvalidAmount
	}
	return int(math.Round(fiat / PointRateFiat)), nil
}

func roundFiat(v float64) float64 {
	return math.Round(v*100) / 100
}
