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
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/lexloop/vocab_server/internal/config"
	"github.com/lexloop/vocab_server/internal/db"
	"github.com/lexloop/vocab_server/internal/es"
	"github.com/lexloop/vocab_server/internal/httpserver"
	"github.com/lexloop/vocab_server/internal/logging"
	loggingmw "github.com/lexloop/vocab_server/internal/middleware/logging"
	"github.com/lexloop/vocab_server/internal/mykafka"
	"github.com/lexloop/vocab_server/internal/repo"
	"github.com/lexloop/vocab_server/internal/service"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(initCtx, configuration.DSN())
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}

	jwtSecret := []byte(configuration.JWT_SECRET)

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

	gormRepo := &repo.GormRepo{DB: database}

	wordSvc := &service.WordService{
		Repo:     gormRepo,
		Producer: producer,
		ES:       esClient,
		Index:    "word",
	}

	deps := httpserver.Deps{
		AuthHandler: &httpserver.AuthHTTP{Svc: &service.AuthService{
			Repo:      gormRepo,
			Producer:  producer,
			JWTSecret: jwtSecret,
			TokenTTL:  configuration.JWTTTL(),
		}},
		UserHandler:   &httpserver.UserHTTP{Svc: &service.UserService{Repo: gormRepo, Producer: producer}},
		WordHandler:   &httpserver.WordHTTP{Svc: wordSvc},
		SearchHandler: &httpserver.SearchHTTP{Svc: wordSvc},
		JWTSecret:     jwtSecret,
	}

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover(), echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	corsCfg := echomw.DefaultCORSConfig
	if configuration.CLIENT_ORIGIN != "" {
		corsCfg.AllowOrigins = []string{configuration.CLIENT_ORIGIN}
	}
	e.Use(echomw.CORSWithConfig(corsCfg))

	e.Static("/", configuration.STATIC_DIR)

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
