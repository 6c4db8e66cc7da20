package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ordermart/ordermart/config"
	handler "github.com/ordermart/ordermart/internal/handler/http"
	"github.com/ordermart/ordermart/internal/logger"
	"github.com/ordermart/ordermart/internal/middleware"
	"github.com/ordermart/ordermart/internal/repository"
	"github.com/ordermart/ordermart/internal/repository/postgres"
	"github.com/ordermart/ordermart/internal/service"
	"go.uber.org/zap"
)

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	// create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database
	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Log.Fatal("Error initializing database", zap.Error(err))
	}
	defer db.Close()

	// migrate database
	if err := db.Migrate(); err != nil {
		logger.Log.Fatal("Error migrating database", zap.Error(err))
	}

	clock := service.SystemClock()

	// dependency injection
	// member
	memberRepo := repository.NewMemberRepository(db)
	memberService := service.NewMemberService(memberRepo)
	memberHandler := handler.NewMemberHandler(memberService)

	// order
	orderRepo := repository.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo, memberService, clock)
	orderHandler := handler.NewOrderHandler(orderService)

	// payment
	paymentRepo := repository.NewPaymentRepository(db)
	paymentService := service.NewPaymentService(paymentRepo, orderService, clock)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger.Log))

	router.Post("/api/members", memberHandler.RegisterMember())
	router.Get("/api/members/{id}", memberHandler.GetMember())
	router.Get("/api/members/{id}/orders", orderHandler.ListMemberOrders())

	router.Post("/api/orders", orderHandler.CreateOrder())
	router.Get("/api/orders/{id}", orderHandler.GetOrder())

	router.Post("/api/payments", paymentHandler.RequestPayment())
	router.Post("/api/payments/{id}/approve", paymentHandler.ApprovePayment())
	router.Get("/api/payments/{id}", paymentHandler.GetPayment())

	logger.Log.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
