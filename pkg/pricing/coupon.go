package pricing

import (
	"strings"
	"time"

	"kolomarket-backend/domain"
)

// ValidateCoupon decides whether a coupon code may be applied to an order.
// Every gate must pass; the first failing gate rejects the coupon outright,
// there is no partial application. Returns nil when no coupon applies, which
// is an expected outcome, not an error.
//
// Gates, in order: catalog lookup (case-insensitive, first match wins),
// expiry (valid through the end of ExpiryDate's calendar instant), minimum
// purchase, minimum lifetime points spent, premium membership.
func (e *Engine) ValidateCoupon(code string, cartPoints, userLifetimePoints int, isPremium bool, today time.Time) *domain.Coupon {
	var match *domain.Coupon
	for i := range e.catalog {
		if strings.EqualFold(e.catalog[i].Code, code) {
			match = &e.catalog[i]
			break
		}
	}
	if match == nil {
		return nil
	}

	if today.After(match.ExpiryDate) {
		return nil
	}
	if match.MinPurchasePoints != nil && cartPoints < *match.MinPurchasePoints {
		return nil
	}
	if match.MinUserLifetimePoints != nil && userLifetimePoints < *match.MinUserLifetimePoints {
		return nil
	}
	if match.RequiresPremium && !isPremium {
		return nil
	}

	// Copy so callers never hold a pointer into the snapshot.
	coupon := *match
	return &coupon
}
