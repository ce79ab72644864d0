package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/estofados/outlet/internal/config"
	"github.com/estofados/outlet/internal/es"
	"github.com/estofados/outlet/internal/httpserver"
	"github.com/estofados/outlet/internal/logging"
	"github.com/estofados/outlet/internal/mykafka"
	"github.com/estofados/outlet/internal/repo"
	"github.com/estofados/outlet/internal/seed"
	"github.com/estofados/outlet/internal/service"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	config.MustNonEmpty(configuration.JWT_SECRET, "JWT_SECRET")

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	if err := seed.Run(logging.IntoContext(context.Background(), logger), db); err != nil {
		log.Fatalf("seed error: %v", err)
	}

	var producer *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	var esClient *elasticsearch.Client
	if configuration.ES_URL != "" {
		esClient, err = es.NewClient(configuration)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
	}

	gormRepo := &repo.GormRepo{DB: db}
	authSvc := &service.AuthService{
		Repo:      gormRepo,
		JWTSecret: []byte(configuration.JWT_SECRET),
		TokenTTL:  time.Duration(configuration.TOKEN_TTL_MINUTES) * time.Minute,
		Producer:  producer,
	}

	deps := &httpserver.Deps{
		AuthService: authSvc,
		AuthHandler: &httpserver.AuthHandler{Svc: authSvc},
		CatalogHandler: &httpserver.CatalogHandler{Svc: &service.CatalogService{
			Repo:     gormRepo,
			Producer: producer,
			ES:       esClient,
			ESIndex:  es.ProductIndex,
		}},
		CartHandler: &httpserver.CartHandler{Svc: &service.CartService{
			Repo:     gormRepo,
			Producer: producer,
		}},
		ReviewHandler: &httpserver.ReviewHandler{Svc: &service.ReviewService{
			Repo:  gormRepo,
			Limit: configuration.REVIEWS_LIMIT,
		}},
		SearchHandler: &httpserver.SearchHandler{ES: esClient, Index: es.ProductIndex},
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(httpserver.RequestLogger(logger))

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:         configuration.APP_ADDR,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "addr", configuration.APP_ADDR)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	logger.Info("shutdown complete")
}
