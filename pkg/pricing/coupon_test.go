package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"kolomarket-backend/domain"
)

func intPtr(v int) *int { return &v }

func testCatalog() []domain.Coupon {
	farFuture := time.Date(2030, 12, 31, 23, 59, 59, 0, time.UTC)
	return []domain.Coupon{
		{
			Code:            "BASIC5",
			DiscountPercent: 5,
			ExpiryDate:      farFuture,
		},
		{
			Code:              "PREMIUM20",
			DiscountPercent:   20,
			ExpiryDate:        farFuture,
			MinPurchasePoints: intPtr(100),
			MaxDiscountPoints: intPtr(500),
			RequiresPremium:   true,
		},
		{
			Code:                  "FIDELE10",
			DiscountPercent:       10,
			ExpiryDate:            farFuture,
			MinUserLifetimePoints: intPtr(5000),
		},
		{
			Code:            "FLASH15",
			DiscountPercent: 15,
			ExpiryDate:      time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC),
		},
	}
}

func testEngine() *Engine {
	return NewEngine(testCatalog(), nil)
}

func TestValidateCouponHappyPath(t *testing.T) {
	e := testEngine()
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	coupon := e.ValidateCoupon("BASIC5", 1000, 0, false, today)
	require.NotNil(t, coupon)
	require.Equal(t, "BASIC5", coupon.Code)
	require.Equal(t, 5, coupon.DiscountPercent)
}

func TestValidateCouponCaseInsensitive(t *testing.T) {
	e := testEngine()
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	require.NotNil(t, e.ValidateCoupon("basic5", 1000, 0, false, today))
	require.NotNil(t, e.ValidateCoupon("Basic5", 1000, 0, false, today))
}

func TestValidateCouponNotFound(t *testing.T) {
	e := testEngine()
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	require.Nil(t, e.ValidateCoupon("NOPE", 1000, 0, true, today))
}

func TestValidateCouponGates(t *testing.T) {
	e := testEngine()
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		code      string
		cart      int
		lifetime  int
		premium   bool
		wantMatch bool
	}{
		{name: "expired coupon rejected despite all other gates passing", code: "FLASH15", cart: 10000, lifetime: 100000, premium: true, wantMatch: false},
		{name: "below minimum purchase", code: "PREMIUM20", cart: 99, lifetime: 0, premium: true, wantMatch: false},
		{name: "at minimum purchase", code: "PREMIUM20", cart: 100, lifetime: 0, premium: true, wantMatch: true},
		{name: "premium gate rejects non-premium even with purchase minimum met", code: "PREMIUM20", cart: 500, lifetime: 0, premium: false, wantMatch: false},
		{name: "below lifetime tier", code: "FIDELE10", cart: 1000, lifetime: 4999, premium: true, wantMatch: false},
		{name: "at lifetime tier", code: "FIDELE10", cart: 1000, lifetime: 5000, premium: false, wantMatch: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.ValidateCoupon(tt.code, tt.cart, tt.lifetime, tt.premium, today)
			if tt.wantMatch {
				require.NotNil(t, got)
			} else {
				require.Nil(t, got)
			}
		})
	}
}

func TestValidateCouponExpiryBoundary(t *testing.T) {
	e := testEngine()
	expiry := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)

	// on the expiry instant the coupon is still valid, strictly after it is not
	require.NotNil(t, e.ValidateCoupon("FLASH15", 1000, 0, false, expiry))
	require.Nil(t, e.ValidateCoupon("FLASH15", 1000, 0, false, expiry.Add(time.Second)))
}

func TestValidateCouponIdempotent(t *testing.T) {
	e := testEngine()
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	first := e.ValidateCoupon("PREMIUM20", 500, 0, true, today)
	second := e.ValidateCoupon("PREMIUM20", 500, 0, true, today)
	require.Equal(t, first, second)
}

func TestValidateCouponReturnsCopy(t *testing.T) {
	e := testEngine()
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	got := e.ValidateCoupon("BASIC5", 1000, 0, false, today)
	require.NotNil(t, got)
	got.DiscountPercent = 99

	again := e.ValidateCoupon("BASIC5", 1000, 0, false, today)
	require.NotNil(t, again)
	require.Equal(t, 5, again.DiscountPercent)
}

func TestValidateCouponDuplicateCodeFirstWins(t *testing.T) {
	farFuture := time.Date(2030, 12, 31, 23, 59, 59, 0, time.UTC)
	catalog := []domain.Coupon{
		{Code: "DOUBLE", DiscountPercent: 5, ExpiryDate: farFuture},
		{Code: "double", DiscountPercent: 50, ExpiryDate: farFuture},
	}
	e := NewEngine(catalog, nil)

	got := e.ValidateCoupon("DOUBLE", 1000, 0, false, farFuture.Add(-time.Hour))
	require.NotNil(t, got)
	require.Equal(t, 5, got.DiscountPercent)
}

func TestEngineSnapshotIsolation(t *testing.T) {
	catalog := testCatalog()
	e := NewEngine(catalog, nil)
	today := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	// mutating the caller's slice after construction must not affect the engine
	catalog[0].DiscountPercent = 99

	got := e.ValidateCoupon("BASIC5", 1000, 0, false, today)
	require.NotNil(t, got)
	require.Equal(t, 5, got.DiscountPercent)
}
