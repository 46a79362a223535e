package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"kolomarket-backend/domain"
)

func TestPointsToFiat(t *testing.T) {
	tests := []struct {
		name   string
		points int
		want   float64
	}{
		{name: "zero", points: 0, want: 0},
		{name: "one point", points: 1, want: 78.36},
		{name: "hundred points", points: 100, want: 7835.90},
		{name: "thousand points", points: 1000, want: 78359.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PointsToFiat(tt.points)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPointsToFiatNegative(t *testing.T) {
	_, err := PointsToFiat(-1)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestFiatToPoints(t *testing.T) {
	got, err := FiatToPoints(7835.90)
	require.NoError(t, err)
	require.Equal(t, 100, got)

	got, err = FiatToPoints(0)
	require.NoError(t, err)
	require.Equal(t, 0, got)

	// below half a point rounds down, above rounds up
	got, err = FiatToPoints(39.0)
	require.NoError(t, err)
	require.Equal(t, 0, got)

	got, err = FiatToPoints(40.0)
	require.NoError(t, err)
	require.Equal(t, 1, got)
}

func TestFiatToPointsInvalid(t *testing.T) {
	for _, fiat := range []float64{-0.01, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FiatToPoints(fiat)
		require.ErrorIs(t, err, domain.ErrInvalidAmount)
	}
}

func TestRoundTripBound(t *testing.T) {
	// fiatToPoints(pointsToFiat(p)) must stay within one point of p
	for p := 0; p <= 5000; p += 7 {
		fiat, err := PointsToFiat(p)
		require.NoError(t, err)

		back, err := FiatToPoints(fiat)
		require.NoError(t, err)
		require.LessOrEqual(t, int(math.Abs(float64(back-p))), 1, "points=%d", p)
	}
}

func TestConversionMonotonic(t *testing.T) {
	prevFiat := -1.0
	for p := 0; p <= 2000; p += 13 {
		fiat, err := PointsToFiat(p)
		require.NoError(t, err)
		require.Greater(t, fiat, prevFiat)
		prevFiat = fiat
	}

	prevPoints := -1
	for fiat := 0.0; fiat <= 100000; fiat += 517.39 {
		points, err := FiatToPoints(fiat)
		require.NoError(t, err)
		require.GreaterOrEqual(t, points, prevPoints)
		prevPoints = points
	}
}
