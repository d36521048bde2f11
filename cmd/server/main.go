package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/lukegor/price-negotiation-backend/internal/config"
	"github.com/lukegor/price-negotiation-backend/internal/db"
	httpHandlers "github.com/lukegor/price-negotiation-backend/internal/http/handlers"
	httpRouter "github.com/lukegor/price-negotiation-backend/internal/http/router"
	"github.com/lukegor/price-negotiation-backend/internal/infrastructure/persistence"
	newHandler "github.com/lukegor/price-negotiation-backend/internal/interface/http/handler"
	"github.com/lukegor/price-negotiation-backend/internal/logger"
	"github.com/lukegor/price-negotiation-backend/internal/repository"
	"github.com/lukegor/price-negotiation-backend/internal/service"
	"github.com/lukegor/price-negotiation-backend/internal/usecase/negotiation"
	"github.com/lukegor/price-negotiation-backend/internal/usecase/product"
	"github.com/lukegor/price-negotiation-backend/internal/ws"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: failed to load configuration: %v", err)
	}

	if cfg.Env == "development" {
		logger.Init("debug")
		logger.SetTextFormatter()
	} else {
		logger.Init("info")
	}

	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: failed to connect to database: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: failed to run migrations: %v", err)
	}

	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.RefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	cacheService := service.NewCacheService()

	// Repositories.
	userRepo := repository.NewUserRepository(dbConn)
	negotiationRepo := persistence.NewNegotiationRepositoryAdapter(dbConn)
	productRepo := persistence.NewProductRepositoryAdapter(dbConn)

	// Services.
	authService := service.NewAuthService(userRepo, tokenManager)

	// WebSockets.
	hub := ws.NewHub()
	go hub.Run()

	// Use cases.
	createNegotiationUC := negotiation.NewCreateNegotiationUseCase(negotiationRepo, productRepo)
	proposeNewPriceUC := negotiation.NewProposeNewPriceUseCase(negotiationRepo, productRepo)
	respondToProposalUC := negotiation.NewRespondToProposalUseCase(negotiationRepo, hub)
	getNegotiationUC := negotiation.NewGetNegotiationUseCase(negotiationRepo)
	listNegotiationsUC := negotiation.NewListNegotiationsUseCase(negotiationRepo)
	deleteNegotiationUC := negotiation.NewDeleteNegotiationUseCase(negotiationRepo)

	createProductUC := product.NewCreateProductUseCase(productRepo)
	updateProductUC := product.NewUpdateProductUseCase(productRepo)
	getProductUC := product.NewGetProductUseCase(productRepo)
	listProductsUC := product.NewListProductsUseCase(productRepo)
	deleteProductUC := product.NewDeleteProductUseCase(productRepo)

	// HTTP handlers.
	authHandler := httpHandlers.NewAuthHandler(authService)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)
	wsHandler := httpHandlers.NewWSHandler(hub, tokenManager)

	negotiationHandler := newHandler.NewNegotiationHandler(
		createNegotiationUC,
		proposeNewPriceUC,
		respondToProposalUC,
		getNegotiationUC,
		listNegotiationsUC,
		deleteNegotiationUC,
		cacheService,
		cfg.ListCacheTTL,
	)
	productHandler := newHandler.NewProductHandler(
		createProductUC,
		updateProductUC,
		getProductUC,
		listProductsUC,
		deleteProductUC,
		cacheService,
		cfg.ListCacheTTL,
	)

	engine := httpRouter.SetupRouter(cfg, authHandler, healthHandler, wsHandler, productHandler, negotiationHandler, tokenManager)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: http server shutdown error: %v", err)
		}
	}()

	log.Printf("main: HTTP server listening on port %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: server exited with error: %v", err)
	}
}

func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: failed to close database: %v", err)
	}
}
