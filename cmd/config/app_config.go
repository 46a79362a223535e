package config

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"kolomarket-backend/internal/api/handlers"
	"kolomarket-backend/internal/api/routes"
	"kolomarket-backend/internal/middleware"
	"kolomarket-backend/internal/utils"
	"kolomarket-backend/internal/utils/storage"
	"kolomarket-backend/pkg/checkout"
	"kolomarket-backend/pkg/coupon"
	"kolomarket-backend/pkg/jwt"
	"kolomarket-backend/pkg/payment"
	"kolomarket-backend/pkg/points"
	"kolomarket-backend/pkg/user"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Africa/Porto-Novo",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	pointsRepository := points.NewPointsRepository(db)
	paymentRepository := payment.NewPaymentRepository(db)
	couponRepository := coupon.NewCouponRepository(db)
	feeRepository := checkout.NewFeeRepository(db)
	orderRepository := checkout.NewOrderRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, pointsRepository, jwtService)
	paymentService := payment.NewPaymentService(paymentRepository, userService, pointsRepository)
	couponService := coupon.NewCouponService(couponRepository, userService, s3)
	checkoutService := checkout.NewCheckoutService(
		userService,
		couponService,
		feeRepository,
		orderRepository,
		pointsRepository,
	)
	pointsService := points.NewPointsService(pointsRepository, userRepository, paymentService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, paymentService, validator)
	couponHandler := handlers.NewCouponHandler(couponService, validator)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, validator)
	pointsHandler := handlers.NewPointsHandler(pointsService, validator)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		CouponHandler:   couponHandler,
		CheckoutHandler: checkoutHandler,
		PointsHandler:   pointsHandler,
		PaymentHandler:  paymentHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
