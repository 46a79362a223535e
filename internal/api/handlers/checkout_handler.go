package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kolomarket-backend/domain"
	"kolomarket-backend/internal/api/presenters"
	"kolomarket-backend/pkg/checkout"
)

type (
	CheckoutHandler interface {
		Quote(c *fiber.Ctx) error
		PlaceOrder(c *fiber.Ctx) error
		GetOrders(c *fiber.Ctx) error
		GetOrderByID(c *fiber.Ctx) error
	}

	checkoutHandler struct {
		checkoutService checkout.CheckoutService
		validator       *validator.Validate
	}
)

func NewCheckoutHandler(checkoutService checkout.CheckoutService, validator *validator.Validate) CheckoutHandler {
	return &checkoutHandler{
		checkoutService: checkoutService,
		validator:       validator,
	}
}

func (h *checkoutHandler) Quote(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.QuoteRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQuote, err)
	}

	resp, err := h.checkoutService.Quote(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedQuote, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessQuote)
}

func (h *checkoutHandler) PlaceOrder(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.PlaceOrderRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPlaceOrder, err)
	}

	resp, err := h.checkoutService.PlaceOrder(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedPlaceOrder, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessPlaceOrder)
}

func (h *checkoutHandler) GetOrders(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	orders, count, err := h.checkoutService.GetOrders(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"orders": orders,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetOrders)
}

func (h *checkoutHandler) GetOrderByID(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	orderID := c.Params("id")

	resp, err := h.checkoutService.GetOrderByID(c.Context(), orderID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetOrders, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessGetOrders)
}
