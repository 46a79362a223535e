package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kolomarket-backend/domain"
	"kolomarket-backend/internal/api/presenters"
	"kolomarket-backend/pkg/payment"
)

type (
	PaymentHandler interface {
		Webhook(c *fiber.Ctx) error
	}

	paymentHandler struct {
		paymentService payment.PaymentService
		validator      *validator.Validate
	}
)

func NewPaymentHandler(paymentService payment.PaymentService, validator *validator.Validate) PaymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
		validator:      validator,
	}
}

// Webhook receives the payment gateway notification. The gateway retries on
// non-2xx responses, so only genuine processing failures return an error.
func (h *paymentHandler) Webhook(c *fiber.Ctx) error {
	notif := new(domain.PaymentNotification)
	if err := c.BodyParser(notif); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.paymentService.HandleNotification(c.Context(), *notif); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessWebhook)
}
