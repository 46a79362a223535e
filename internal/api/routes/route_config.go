package routes

import (
	"github.com/gofiber/fiber/v2"

	"kolomarket-backend/internal/api/handlers"
	"kolomarket-backend/internal/middleware"
	"kolomarket-backend/pkg/jwt"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	CouponHandler   handlers.CouponHandler
	CheckoutHandler handlers.CheckoutHandler
	PointsHandler   handlers.PointsHandler
	PaymentHandler  handlers.PaymentHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Coupons()
	c.Checkout()
	c.Points()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Post("/subscribe", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.SubscribePremium)
	}
}

func (c *Config) Coupons() {
	coupons := c.App.Group("/api/v1/coupons")

	coupons.Get("", c.CouponHandler.GetCoupons)
	coupons.Post("/apply", c.Middleware.AuthMiddleware(c.JWTService), c.CouponHandler.ApplyCoupon)

	// admin catalog management
	admin := coupons.Group("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware())
	admin.Post("", c.CouponHandler.CreateCoupon)
	admin.Patch("/:code", c.CouponHandler.UpdateCoupon)
	admin.Delete("/:code", c.CouponHandler.DeleteCoupon)
}

func (c *Config) Checkout() {
	checkout := c.App.Group("/api/v1/checkout", c.Middleware.AuthMiddleware(c.JWTService))

	checkout.Post("/quote", c.CheckoutHandler.Quote)
	checkout.Post("/orders", c.CheckoutHandler.PlaceOrder)
	checkout.Get("/orders", c.CheckoutHandler.GetOrders)
	checkout.Get("/orders/:id", c.CheckoutHandler.GetOrderByID)
}

func (c *Config) Points() {
	points := c.App.Group("/api/v1/points", c.Middleware.AuthMiddleware(c.JWTService))

	points.Get("/balance", c.PointsHandler.GetBalance)
	points.Get("/history", c.PointsHandler.GetHistory)
	points.Post("/send", c.PointsHandler.SendPoints)
	points.Post("/requests", c.PointsHandler.RequestPoints)
	points.Post("/requests/:id/respond", c.PointsHandler.RespondToRequest)
	points.Post("/topup", c.PointsHandler.TopUpPoints)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.PaymentHandler.Webhook)
}
