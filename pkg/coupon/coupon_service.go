package coupon

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kolomarket-backend/domain"
	"kolomarket-backend/entities"
	"kolomarket-backend/internal/utils/storage"
	"kolomarket-backend/pkg/pricing"
	"kolomarket-backend/pkg/user"
)

type (
	CouponService interface {
		GetCatalog(ctx context.Context) ([]domain.Coupon, error)
		ListCoupons(ctx context.Context) ([]*domain.CouponResponse, error)
		ApplyCoupon(ctx context.Context, req domain.ApplyCouponRequest, userID string) (*domain.ApplyCouponResponse, error)
		CreateCoupon(ctx context.Context, req domain.CreateCouponRequest) (*domain.CouponResponse, error)
		UpdateCoupon(ctx context.Context, code string, req domain.UpdateCouponRequest) (*domain.CouponResponse, error)
		DeleteCoupon(ctx context.Context, code string) error
	}

	couponService struct {
		couponRepository CouponRepository
		userService      user.UserService
		s3               storage.AwsS3
	}
)

func NewCouponService(couponRepository CouponRepository, userService user.UserService, s3 storage.AwsS3) CouponService {
	return &couponService{
		couponRepository: couponRepository,
		userService:      userService,
		s3:               s3,
	}
}

// GetCatalog loads the active coupons as an engine-ready snapshot. Callers
// hand the slice to pricing.NewEngine, which copies it, so each calculation
// runs against a consistent catalog no matter what the admin endpoints do
// concurrently.
func (s *couponService) GetCatalog(ctx context.Context) ([]domain.Coupon, error) {
	coupons, err := s.couponRepository.GetActiveCoupons(ctx)
	if err != nil {
		return nil, err
	}

	catalog := make([]domain.Coupon, 0, len(coupons))
	for _, c := range coupons {
		catalog = append(catalog, toDomainCoupon(c))
	}
	return catalog, nil
}

func (s *couponService) ListCoupons(ctx context.Context) ([]*domain.CouponResponse, error) {
	coupons, err := s.couponRepository.GetActiveCoupons(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.CouponResponse, 0, len(coupons))
	for _, c := range coupons {
		result = append(result, toCouponResponse(c))
	}
	return result, nil
}

// ApplyCoupon previews a coupon against the user's cart. A rejected coupon
// always gets the same generic message: which gate failed is business data we
// do not leak.
func (s *couponService) ApplyCoupon(ctx context.Context, req domain.ApplyCouponRequest, userID string) (*domain.ApplyCouponResponse, error) {
	profile, err := s.userService.Me(ctx, userID)
	if err != nil {
		return nil, err
	}

	catalog, err := s.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	engine := pricing.NewEngine(catalog, nil)
	matched := engine.ValidateCoupon(req.Code, req.CartPoints, profile.LifetimeSpent, profile.IsPremium, time.Now())
	if matched == nil {
		return &domain.ApplyCouponResponse{
			Applicable: false,
			Message:    domain.MessageCouponNotApplicable,
		}, nil
	}

	breakdown := pricing.ApplyDiscount(req.CartPoints, matched)

	return &domain.ApplyCouponResponse{
		Applicable:       true,
		Code:             matched.Code,
		DiscountPercent:  matched.DiscountPercent,
		DiscountPoints:   breakdown.DiscountPoints,
		FinalTotalPoints: breakdown.FinalTotalPoints,
		Message:          domain.MessageSuccessApplyCoupon,
	}, nil
}

func (s *couponService) CreateCoupon(ctx context.Context, req domain.CreateCouponRequest) (*domain.CouponResponse, error) {
	expiry, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return nil, domain.ErrInvalidExpiry
	}
	// valid through the whole expiry day
	expiry = expiry.Add(24*time.Hour - time.Second)

	if _, err := s.couponRepository.GetCouponByCode(ctx, req.Code); err == nil {
		return nil, domain.ErrCouponAlreadyExists
	}

	couponID := uuid.New()

	var bannerURL string
	if req.Banner != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("coupon-%s", couponID.String()),
			req.Banner,
			"coupons",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		bannerURL = s.s3.GetPublicLinkKey(objectKey)
	}

	coupon := &entities.Coupon{
		ID:                    couponID,
		Code:                  req.Code,
		DiscountPercent:       req.DiscountPercent,
		ExpiryDate:            expiry,
		MinPurchasePoints:     req.MinPurchasePoints,
		MaxDiscountPoints:     req.MaxDiscountPoints,
		RequiresPremium:       req.RequiresPremium,
		MinUserLifetimePoints: req.MinUserLifetimePoints,
		BannerURL:             bannerURL,
		IsActive:              true,
	}

	if err := s.couponRepository.CreateCoupon(ctx, coupon); err != nil {
		return nil, err
	}

	return toCouponResponse(coupon), nil
}

func (s *couponService) UpdateCoupon(ctx context.Context, code string, req domain.UpdateCouponRequest) (*domain.CouponResponse, error) {
	coupon, err := s.couponRepository.GetCouponByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCouponNotFound
		}
		return nil, err
	}

	if req.DiscountPercent != nil {
		if *req.DiscountPercent < 1 || *req.DiscountPercent > 100 {
			return nil, domain.ErrInvalidDiscount
		}
		coupon.DiscountPercent = *req.DiscountPercent
	}
	if req.ExpiryDate != nil {
		expiry, err := time.Parse("2006-01-02", *req.ExpiryDate)
		if err != nil {
			return nil, domain.ErrInvalidExpiry
		}
		coupon.ExpiryDate = expiry.Add(24*time.Hour - time.Second)
	}
	if req.MinPurchasePoints != nil {
		coupon.MinPurchasePoints = req.MinPurchasePoints
	}
	if req.MaxDiscountPoints != nil {
		coupon.MaxDiscountPoints = req.MaxDiscountPoints
	}
	if req.RequiresPremium != nil {
		coupon.RequiresPremium = *req.RequiresPremium
	}
	if req.MinUserLifetimePoints != nil {
		coupon.MinUserLifetimePoints = req.MinUserLifetimePoints
	}
	if req.IsActive != nil {
		coupon.IsActive = *req.IsActive
	}
	if req.Banner != nil {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("coupon-%s", coupon.ID.String()),
			req.Banner,
			"coupons",
			storage.AllowImage...,
		)
		if err != nil {
			return nil, err
		}
		coupon.BannerURL = s.s3.GetPublicLinkKey(objectKey)
	}

	if err := s.couponRepository.UpdateCoupon(ctx, coupon); err != nil {
		return nil, err
	}

	return toCouponResponse(coupon), nil
}

func (s *couponService) DeleteCoupon(ctx context.Context, code string) error {
	if _, err := s.couponRepository.GetCouponByCode(ctx, code); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCouponNotFound
		}
		return err
	}
	return s.couponRepository.DeleteCoupon(ctx, code)
}

func toDomainCoupon(c *entities.Coupon) domain.Coupon {
	return domain.Coupon{
		Code:                  c.Code,
		DiscountPercent:       c.DiscountPercent,
		ExpiryDate:            c.ExpiryDate,
		MinPurchasePoints:     c.MinPurchasePoints,
		MaxDiscountPoints:     c.MaxDiscountPoints,
		RequiresPremium:       c.RequiresPremium,
		MinUserLifetimePoints: c.MinUserLifetimePoints,
	}
}

func toCouponResponse(c *entities.Coupon) *domain.CouponResponse {
	return &domain.CouponResponse{
		ID:                    c.ID.String(),
		Code:                  c.Code,
		DiscountPercent:       c.DiscountPercent,
		ExpiryDate:            c.ExpiryDate,
		MinPurchasePoints:     c.MinPurchasePoints,
		MaxDiscountPoints:     c.MaxDiscountPoints,
		RequiresPremium:       c.RequiresPremium,
		MinUserLifetimePoints: c.MinUserLifetimePoints,
		BannerURL:             c.BannerURL,
		IsActive:              c.IsActive,
	}
}
