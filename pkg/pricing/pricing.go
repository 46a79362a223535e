// Package pricing is the order pricing engine: point/FCFA conversion, cashback
// calculation, coupon gate evaluation and order-total composition with Mobile
// Money fees. Every operation is a pure function over the engine's immutable
// catalog and fee-schedule snapshots, so concurrent checkouts need no
// coordination. To pick up new catalog data, build a new engine.
package pricing

import "kolomarket-backend/domain"

const (
	// PointRateFiat is the fixed exchange rate: 1 Kolo point in FCFA.
	PointRateFiat = 78.359

	// CashbackRate is the share of an order's fiat value returned as points.
	CashbackRate = 0.01

	// MinCashbackFiat is the floor applied to the cashback before it is
	// converted back to points.
	MinCashbackFiat = 1.0
)

type Engine struct {
	catalog []domain.Coupon
	fees    []domain.ProviderFee
}

// NewEngine copies both snapshots so later mutation of the caller's slices
// cannot leak into an in-flight calculation.
func NewEngine(catalog []domain.Coupon, fees []domain.ProviderFee) *Engine {
	e := &Engine{
		catalog: make([]domain.Coupon, len(catalog)),
		fees:    make([]domain.ProviderFee, len(fees)),
	}
	copy(e.catalog, catalog)
	copy(e.fees, fees)
	return e
}
