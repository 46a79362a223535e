package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kolomarket-backend/domain"
	"kolomarket-backend/internal/api/presenters"
	"kolomarket-backend/pkg/coupon"
)

type (
	CouponHandler interface {
		GetCoupons(c *fiber.Ctx) error
		ApplyCoupon(c *fiber.Ctx) error
		CreateCoupon(c *fiber.Ctx) error
		UpdateCoupon(c *fiber.Ctx) error
		DeleteCoupon(c *fiber.Ctx) error
	}

	couponHandler struct {
		couponService coupon.CouponService
		validator     *validator.Validate
	}
)

func NewCouponHandler(couponService coupon.CouponService, validator *validator.Validate) CouponHandler {
	return &couponHandler{
		couponService: couponService,
		validator:     validator,
	}
}

func (h *couponHandler) GetCoupons(c *fiber.Ctx) error {
	coupons, err := h.couponService.ListCoupons(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCoupons, err)
	}

	return presenters.SuccessResponse(c, coupons, fiber.StatusOK, domain.MessageSuccessGetCoupons)
}

func (h *couponHandler) ApplyCoupon(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.ApplyCouponRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApplyCoupon, err)
	}

	resp, err := h.couponService.ApplyCoupon(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedApplyCoupon, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessApplyCoupon)
}

func (h *couponHandler) CreateCoupon(c *fiber.Ctx) error {
	req := new(domain.CreateCouponRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	// banner is optional
	if file, err := c.FormFile("banner"); err == nil {
		req.Banner = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCoupon, err)
	}

	resp, err := h.couponService.CreateCoupon(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateCoupon, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessCreateCoupon)
}

func (h *couponHandler) UpdateCoupon(c *fiber.Ctx) error {
	code := c.Params("code")

	req := new(domain.UpdateCouponRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if file, err := c.FormFile("banner"); err == nil {
		req.Banner = file
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCoupon, err)
	}

	resp, err := h.couponService.UpdateCoupon(c.Context(), code, *req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateCoupon, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessUpdateCoupon)
}

func (h *couponHandler) DeleteCoupon(c *fiber.Ctx) error {
	code := c.Params("code")

	if err := h.couponService.DeleteCoupon(c.Context(), code); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteCoupon, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteCoupon)
}
