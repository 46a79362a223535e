package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"kolomarket-backend/domain"
	"kolomarket-backend/entities"
)

type fakeProfiles struct {
	profile domain.ProfileSummary
}

func (f *fakeProfiles) Me(ctx context.Context, userID string) (*domain.ProfileSummary, error) {
	p := f.profile
	p.ID = userID
	return &p, nil
}

type fakeCatalogs struct {
	catalog []domain.Coupon
}

func (f *fakeCatalogs) GetCatalog(ctx context.Context) ([]domain.Coupon, error) {
	return f.catalog, nil
}

type fakeFees struct {
	schedule []domain.ProviderFee
}

func (f *fakeFees) GetFeeSchedule(ctx context.Context) ([]domain.ProviderFee, error) {
	return f.schedule, nil
}

type fakeOrders struct {
	orders []*entities.Order
}

func (f *fakeOrders) CreateOrder(ctx context.Context, order *entities.Order) error {
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrders) GetUserOrders(ctx context.Context, userID string, page, limit int) ([]*entities.Order, int64, error) {
	var result []*entities.Order
	for _, order := range f.orders {
		if order.UserID.String() == userID {
			result = append(result, order)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeOrders) GetOrderByID(ctx context.Context, id string) (*entities.Order, error) {
	for _, order := range f.orders {
		if order.ID.String() == id {
			return order, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}

type ledgerEntry struct {
	userID uuid.UUID
	amount int
	txType string
}

type fakeLedger struct {
	balance int
	debits  []ledgerEntry
	credits []ledgerEntry
}

func (f *fakeLedger) DebitPoints(ctx context.Context, userID uuid.UUID, amount int, txType, description string) error {
	if f.balance < amount {
		return domain.ErrInsufficientPoints
	}
	f.balance -= amount
	f.debits = append(f.debits, ledgerEntry{userID: userID, amount: amount, txType: txType})
	return nil
}

func (f *fakeLedger) CreditPoints(ctx context.Context, userID uuid.UUID, amount int, txType, description string) error {
	f.balance += amount
	f.credits = append(f.credits, ledgerEntry{userID: userID, amount: amount, txType: txType})
	return nil
}

func intPtr(v int) *int { return &v }

func testService(profile domain.ProfileSummary, balance int) (CheckoutService, *fakeOrders, *fakeLedger) {
	farFuture := time.Date(2030, 12, 31, 23, 59, 59, 0, time.UTC)
	catalogs := &fakeCatalogs{catalog: []domain.Coupon{
		{Code: "BASIC5", DiscountPercent: 5, ExpiryDate: farFuture},
		{Code: "PREMIUM20", DiscountPercent: 20, ExpiryDate: farFuture, MinPurchasePoints: intPtr(100), RequiresPremium: true},
	}}
	fees := &fakeFees{schedule: []domain.ProviderFee{
		{Provider: domain.ProviderMTNMomo, MinAmountFiat: 0, MaxAmountFiat: 500000, FeeFiat: 175},
	}}
	orders := &fakeOrders{}
	ledger := &fakeLedger{balance: balance}

	svc := NewCheckoutService(&fakeProfiles{profile: profile}, catalogs, fees, orders, ledger)
	return svc, orders, ledger
}

func TestQuoteNoCoupon(t *testing.T) {
	svc, _, _ := testService(domain.ProfileSummary{}, 0)

	quote, err := svc.Quote(context.Background(), domain.QuoteRequest{
		CartPoints:    1000,
		PaymentMethod: domain.PaymentMethodPoints,
	}, uuid.NewString())
	require.NoError(t, err)

	require.False(t, quote.CouponApplied)
	require.Equal(t, 0, quote.DiscountPoints)
	require.Equal(t, 0, quote.FeePoints)
	require.Equal(t, 1000, quote.FinalTotalPoints)
}

func TestQuoteCouponAndFee(t *testing.T) {
	svc, _, _ := testService(domain.ProfileSummary{}, 0)

	quote, err := svc.Quote(context.Background(), domain.QuoteRequest{
		CartPoints:    1000,
		CouponCode:    "BASIC5",
		PaymentMethod: domain.ProviderMTNMomo,
	}, uuid.NewString())
	require.NoError(t, err)

	require.True(t, quote.CouponApplied)
	require.Equal(t, "BASIC5", quote.CouponCode)
	require.Equal(t, 50, quote.DiscountPoints)
	require.Equal(t, 2, quote.FeePoints)
	require.Equal(t, 952, quote.FinalTotalPoints)
}

func TestQuoteRejectedCouponFallsBackToFullPrice(t *testing.T) {
	// non-premium user: the premium coupon is wholly rejected, no partial discount
	svc, _, _ := testService(domain.ProfileSummary{IsPremium: false}, 0)

	quote, err := svc.Quote(context.Background(), domain.QuoteRequest{
		CartPoints:    500,
		CouponCode:    "PREMIUM20",
		PaymentMethod: domain.PaymentMethodPoints,
	}, uuid.NewString())
	require.NoError(t, err)

	require.False(t, quote.CouponApplied)
	require.Equal(t, 0, quote.DiscountPoints)
	require.Equal(t, 500, quote.FinalTotalPoints)
}

func TestQuoteUnknownProvider(t *testing.T) {
	svc, _, _ := testService(domain.ProfileSummary{}, 0)

	_, err := svc.Quote(context.Background(), domain.QuoteRequest{
		CartPoints:    1000,
		PaymentMethod: "orange_money",
	}, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrUnknownProvider)
}

func TestQuoteEmptyCart(t *testing.T) {
	svc, _, _ := testService(domain.ProfileSummary{}, 0)

	_, err := svc.Quote(context.Background(), domain.QuoteRequest{
		CartPoints:    0,
		PaymentMethod: domain.PaymentMethodPoints,
	}, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestPlaceOrderWithPoints(t *testing.T) {
	svc, orders, ledger := testService(domain.ProfileSummary{}, 2000)
	userID := uuid.NewString()

	resp, err := svc.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		CartPoints:    1000,
		CouponCode:    "BASIC5",
		PaymentMethod: domain.PaymentMethodPoints,
	}, userID)
	require.NoError(t, err)

	require.Equal(t, domain.OrderStatusPaid, resp.Status)
	require.Equal(t, 950, resp.FinalTotalPoints)
	require.Equal(t, "BASIC5", resp.CouponCode)

	require.Len(t, orders.orders, 1)
	require.NotNil(t, orders.orders[0].CouponCode)

	require.Len(t, ledger.debits, 1)
	require.Equal(t, 950, ledger.debits[0].amount)
	require.Equal(t, domain.TransactionTypeSpend, ledger.debits[0].txType)

	// 950 points get 1% of their fiat value back as cashback
	require.Len(t, ledger.credits, 1)
	require.Equal(t, domain.TransactionTypeCashback, ledger.credits[0].txType)
	require.Equal(t, resp.CashbackPoints, ledger.credits[0].amount)
}

func TestPlaceOrderInsufficientPoints(t *testing.T) {
	svc, orders, _ := testService(domain.ProfileSummary{}, 100)

	_, err := svc.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		CartPoints:    1000,
		PaymentMethod: domain.PaymentMethodPoints,
	}, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrInsufficientPoints)
	require.Empty(t, orders.orders)
}

func TestGetOrderByIDOwnership(t *testing.T) {
	svc, _, _ := testService(domain.ProfileSummary{}, 2000)
	owner := uuid.NewString()

	resp, err := svc.PlaceOrder(context.Background(), domain.PlaceOrderRequest{
		CartPoints:    500,
		PaymentMethod: domain.PaymentMethodPoints,
	}, owner)
	require.NoError(t, err)

	got, err := svc.GetOrderByID(context.Background(), resp.ID, owner)
	require.NoError(t, err)
	require.Equal(t, resp.ID, got.ID)

	_, err = svc.GetOrderByID(context.Background(), resp.ID, uuid.NewString())
	require.ErrorIs(t, err, domain.ErrUserNotAllowed)
}
