package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kolomarket-backend/domain"
	"kolomarket-backend/internal/api/presenters"
	"kolomarket-backend/pkg/points"
)

type (
	PointsHandler interface {
		GetBalance(c *fiber.Ctx) error
		GetHistory(c *fiber.Ctx) error
		SendPoints(c *fiber.Ctx) error
		RequestPoints(c *fiber.Ctx) error
		RespondToRequest(c *fiber.Ctx) error
		TopUpPoints(c *fiber.Ctx) error
	}

	pointsHandler struct {
		pointsService points.PointsService
		validator     *validator.Validate
	}
)

func NewPointsHandler(pointsService points.PointsService, validator *validator.Validate) PointsHandler {
	return &pointsHandler{
		pointsService: pointsService,
		validator:     validator,
	}
}

func (h *pointsHandler) GetBalance(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	balance, err := h.pointsService.GetBalance(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBalance, err)
	}

	return presenters.SuccessResponse(c, balance, fiber.StatusOK, domain.MessageSuccessGetBalance)
}

func (h *pointsHandler) GetHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	transactions, count, err := h.pointsService.GetHistory(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetHistory, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetHistory)
}

func (h *pointsHandler) SendPoints(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.SendPointsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendPoints, err)
	}

	if err := h.pointsService.SendPoints(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSendPoints, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSendPoints)
}

func (h *pointsHandler) RequestPoints(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.RequestPointsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRequestPoints, err)
	}

	resp, err := h.pointsService.RequestPoints(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRequestPoints, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusCreated, domain.MessageSuccessRequestPoints)
}

func (h *pointsHandler) RespondToRequest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.RespondPointsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.RequestID = c.Params("id")

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRespondRequest, err)
	}

	if err := h.pointsService.RespondToRequest(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRespondRequest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRespondRequest)
}

func (h *pointsHandler) TopUpPoints(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.TopUpPointsRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTopUp, err)
	}

	resp, err := h.pointsService.TopUpPoints(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTopUp, err)
	}

	return presenters.SuccessResponse(c, resp, fiber.StatusOK, domain.MessageSuccessTopUp)
}
