package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kolomarket-backend/domain"
)

func TestCalculateCashback(t *testing.T) {
	tests := []struct {
		name        string
		orderPoints int
		want        int
	}{
		// 100 points = 7835.90 FCFA, 1% = 78.36 FCFA = 1 point
		{name: "hundred point order", orderPoints: 100, want: 1},
		// 10000 points = 783590 FCFA, 1% = 7835.90 FCFA = 100 points
		{name: "large order", orderPoints: 10000, want: 100},
		// tiny order hits the 1 FCFA floor, which still rounds to 0 points
		{name: "one point order", orderPoints: 1, want: 0},
		{name: "zero order", orderPoints: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CalculateCashback(tt.orderPoints)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestCalculateCashbackNegative(t *testing.T) {
	_, err := CalculateCashback(-100)
	require.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestCalculateCashbackDeterministic(t *testing.T) {
	first, err := CalculateCashback(4321)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := CalculateCashback(4321)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}
