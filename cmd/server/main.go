package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/tour-booking/internal/config"
	"github.com/iliyamo/tour-booking/internal/database"
	"github.com/iliyamo/tour-booking/internal/gateway"
	"github.com/iliyamo/tour-booking/internal/handler"
	"github.com/iliyamo/tour-booking/internal/middleware"
	"github.com/iliyamo/tour-booking/internal/queue"
	"github.com/iliyamo/tour-booking/internal/repository"
	"github.com/iliyamo/tour-booking/internal/router"
	"github.com/iliyamo/tour-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	// Repositories are constructed once here and passed down explicitly;
	// handlers depend on the store interfaces, not on the DB handle.
	users := repository.NewUserRepo(db)
	bookings := repository.NewBookingRepo(db)
	payments := repository.NewPaymentRepo(db)
	reconciliation := repository.NewReconciliationRepo(db)

	reconciler := service.NewReconciler(reconciliation, service.PublishBookingDecided)
	intents := gateway.NewStripeClient(cfg.GatewayURL, cfg.StripeSecret)

	e := echo.New()
	e.Validator = handler.NewRequestValidator()

	// Rate limiting degrades to a pass-through when Redis is absent.
	if rdb := config.NewRedisClient(); rdb != nil {
		e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	} else {
		log.Printf("redis unavailable; rate limiting disabled")
	}

	tokenHandler := handler.NewTokenHandler(cfg)
	userHandler := handler.NewUserHandler(users)
	bookingHandler := handler.NewBookingHandler(bookings, reconciler)
	paymentHandler := handler.NewPaymentHandler(payments, intents)

	router.RegisterRoutes(e, tokenHandler, userHandler)
	router.RegisterUsers(e, userHandler, users, cfg.JWTSecret)
	router.RegisterBookings(e, bookingHandler, users, cfg.JWTSecret)
	router.RegisterPayments(e, paymentHandler, users, cfg.JWTSecret)

	// Background consumer logs reconciliation decisions; it reconnects on
	// broker failures and never stops the server.
	go func() {
		if err := queue.StartDecisionConsumer(); err != nil {
			log.Printf("decision consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
