package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/adityasp/auth-backend/internal/config"
	"github.com/adityasp/auth-backend/internal/db"
	"github.com/adityasp/auth-backend/internal/events"
	"github.com/adityasp/auth-backend/internal/hash"
	"github.com/adityasp/auth-backend/internal/httpserver"
	"github.com/adityasp/auth-backend/internal/logging"
	"github.com/adityasp/auth-backend/internal/repo"
	"github.com/adityasp/auth-backend/internal/service"
	"github.com/adityasp/auth-backend/internal/token"
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel)

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	database, err := db.Open(initCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)
	defer producer.Close()

	tokens := token.NewService(cfg.JWTSecret)

	svc := &service.AuthService{
		Repo:   repo.New(database),
		Hasher: hash.NewBcryptHasher(),
		Tokens: tokens,
		Events: producer,
	}

	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.WriteTimeout = 15 * time.Second
	e.Server.ReadHeaderTimeout = 3 * time.Second
	e.HTTPErrorHandler = httpserver.NewHTTPErrorHandler()

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(httpserver.RequestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler: &httpserver.AuthHTTP{Svc: svc},
		Tokens:      tokens,
	})

	go func() {
		addr := ":" + strconv.Itoa(cfg.ServerPort)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("echo start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("echo shutdown: %v", err)
	}
}
