package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kolomarket-backend/domain"
	"kolomarket-backend/entities"
	"kolomarket-backend/internal/utils/mailing"
	"kolomarket-backend/pkg/pricing"
)

type (
	// ProfileProvider supplies the user profile summary the coupon gates need;
	// satisfied by user.UserService.
	ProfileProvider interface {
		Me(ctx context.Context, userID string) (*domain.ProfileSummary, error)
	}

	// CatalogProvider supplies the active coupon catalog snapshot; satisfied
	// by coupon.CouponService.
	CatalogProvider interface {
		GetCatalog(ctx context.Context) ([]domain.Coupon, error)
	}

	// PointsLedger debits order payments and credits cashback; satisfied by
	// points.PointsRepository.
	PointsLedger interface {
		DebitPoints(ctx context.Context, userID uuid.UUID, amount int, txType, description string) error
		CreditPoints(ctx context.Context, userID uuid.UUID, amount int, txType, description string) error
	}

	CheckoutService interface {
		Quote(ctx context.Context, req domain.QuoteRequest, userID string) (*domain.QuoteResponse, error)
		PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (*domain.OrderResponse, error)
		GetOrders(ctx context.Context, userID string, page, limit int) ([]*domain.OrderResponse, int64, error)
		GetOrderByID(ctx context.Context, id string, userID string) (*domain.OrderResponse, error)
	}

	checkoutService struct {
		profiles        ProfileProvider
		catalogs        CatalogProvider
		feeRepository   FeeRepository
		orderRepository OrderRepository
		ledger          PointsLedger
	}
)

func NewCheckoutService(profiles ProfileProvider, catalogs CatalogProvider, feeRepository FeeRepository, orderRepository OrderRepository, ledger PointsLedger) CheckoutService {
	return &checkoutService{
		profiles:        profiles,
		catalogs:        catalogs,
		feeRepository:   feeRepository,
		orderRepository: orderRepository,
		ledger:          ledger,
	}
}

// Quote composes the order total without charging anything: coupon discount on
// the cart total first, then the provider fee on the discounted total, plus
// the projected cashback. PlaceOrder runs the exact same composition.
func (s *checkoutService) Quote(ctx context.Context, req domain.QuoteRequest, userID string) (*domain.QuoteResponse, error) {
	if req.CartPoints <= 0 {
		return nil, domain.ErrEmptyCart
	}

	profile, err := s.profiles.Me(ctx, userID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalogs.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	fees, err := s.feeRepository.GetFeeSchedule(ctx)
	if err != nil {
		return nil, err
	}

	engine := pricing.NewEngine(catalog, fees)

	var coupon *domain.Coupon
	if req.CouponCode != "" {
		coupon = engine.ValidateCoupon(req.CouponCode, req.CartPoints, profile.LifetimeSpent, profile.IsPremium, time.Now())
	}

	breakdown := pricing.ApplyDiscount(req.CartPoints, coupon)

	totalWithFee, err := engine.AddPaymentFee(breakdown.FinalTotalPoints, req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	// cashback rewards the order value, not the transaction surcharge
	cashback, err := pricing.CalculateCashback(breakdown.FinalTotalPoints)
	if err != nil {
		return nil, err
	}

	finalFiat, err := pricing.PointsToFiat(totalWithFee)
	if err != nil {
		return nil, err
	}

	resp := &domain.QuoteResponse{
		CartPoints:       req.CartPoints,
		CouponApplied:    coupon != nil,
		DiscountPoints:   breakdown.DiscountPoints,
		FeePoints:        totalWithFee - breakdown.FinalTotalPoints,
		FinalTotalPoints: totalWithFee,
		FinalTotalFiat:   finalFiat,
		CashbackPoints:   cashback,
	}
	if coupon != nil {
		resp.CouponCode = coupon.Code
	}
	return resp, nil
}

func (s *checkoutService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest, userID string) (*domain.OrderResponse, error) {
	quote, err := s.Quote(ctx, domain.QuoteRequest(req), userID)
	if err != nil {
		return nil, err
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	orderID := uuid.New()

	if req.PaymentMethod == domain.PaymentMethodPoints {
		description := fmt.Sprintf("Order %s", orderID.String())
		if err := s.ledger.DebitPoints(ctx, userUUID, quote.FinalTotalPoints, domain.TransactionTypeSpend, description); err != nil {
			return nil, err
		}
	}

	order := &entities.Order{
		ID:               orderID,
		UserID:           userUUID,
		CartPoints:       quote.CartPoints,
		DiscountPoints:   quote.DiscountPoints,
		FeePoints:        quote.FeePoints,
		FinalTotalPoints: quote.FinalTotalPoints,
		CashbackPoints:   quote.CashbackPoints,
		PaymentMethod:    req.PaymentMethod,
		Status:           domain.OrderStatusPaid,
	}
	if quote.CouponApplied {
		order.CouponCode = &quote.CouponCode
	}

	if err := s.orderRepository.CreateOrder(ctx, order); err != nil {
		return nil, err
	}

	if quote.CashbackPoints > 0 {
		description := fmt.Sprintf("Cashback for order %s", orderID.String())
		if err := s.ledger.CreditPoints(ctx, userUUID, quote.CashbackPoints, domain.TransactionTypeCashback, description); err != nil {
			log.Printf("[checkout] WARN: failed to credit cashback order=%s: %v", orderID.String(), err)
		}
	}

	s.sendReceipt(ctx, order, userID)

	return toOrderResponse(order), nil
}

func (s *checkoutService) GetOrders(ctx context.Context, userID string, page, limit int) ([]*domain.OrderResponse, int64, error) {
	orders, count, err := s.orderRepository.GetUserOrders(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, toOrderResponse(order))
	}
	return result, count, nil
}

func (s *checkoutService) GetOrderByID(ctx context.Context, id string, userID string) (*domain.OrderResponse, error) {
	order, err := s.orderRepository.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}

	if order.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}

	return toOrderResponse(order), nil
}

func (s *checkoutService) sendReceipt(ctx context.Context, order *entities.Order, userID string) {
	profile, err := s.profiles.Me(ctx, userID)
	if err != nil {
		log.Printf("[checkout] WARN: failed to load profile for receipt order=%s: %v", order.ID.String(), err)
		return
	}

	finalFiat, err := pricing.PointsToFiat(order.FinalTotalPoints)
	if err != nil {
		return
	}

	body := mailing.OrderReceiptBody(
		profile.Name,
		order.ID.String(),
		order.CartPoints,
		order.DiscountPoints,
		order.FeePoints,
		order.FinalTotalPoints,
		order.CashbackPoints,
		finalFiat,
	)

	go func() {
		if err := mailing.SendMail(profile.Email, "Your KoloMarket receipt", body); err != nil {
			log.Printf("[checkout] WARN: failed to send receipt order=%s: %v", order.ID.String(), err)
		}
	}()
}

func toOrderResponse(order *entities.Order) *domain.OrderResponse {
	resp := &domain.OrderResponse{
		ID:               order.ID.String(),
		CartPoints:       order.CartPoints,
		DiscountPoints:   order.DiscountPoints,
		FeePoints:        order.FeePoints,
		FinalTotalPoints: order.FinalTotalPoints,
		CashbackPoints:   order.CashbackPoints,
		PaymentMethod:    order.PaymentMethod,
		Status:           order.Status,
		CreatedAt:        order.CreatedAt,
	}
	if order.CouponCode != nil {
		resp.CouponCode = *order.CouponCode
	}
	return resp
}
