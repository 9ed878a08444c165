package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"webinarhub/config"
	_ "webinarhub/docs"
	"webinarhub/internal/adapters/auth"
	"webinarhub/internal/adapters/clock"
	"webinarhub/internal/adapters/email"
	"webinarhub/internal/adapters/ident"
	deliveryhttp "webinarhub/internal/delivery/http"
	"webinarhub/internal/delivery/http/controllers"
	"webinarhub/internal/delivery/http/middleware"
	"webinarhub/internal/repository/postgres"
	"webinarhub/internal/services"
	"webinarhub/internal/usecase"
	"webinarhub/migrations"
)

const (
	useCaseTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title WebinarHub API
// @version 1.0
// @description Webinar organization service: organize webinars and change seat counts.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	startupCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("connect to db", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.PingContext(startupCtx); err != nil {
		logger.Error("db ping", "err", err)
		os.Exit(1)
	}
	if err := migrations.Apply(startupCtx, db); err != nil {
		logger.Error("apply migrations", "err", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.SES.Region,
			AccessKeyID:        cfg.Email.SES.AccessKeyID,
			SecretAccessKey:    cfg.Email.SES.SecretAccessKey,
			InsecureSkipVerify: cfg.Email.SES.InsecureSkipVerify,
		},
	})
	if err != nil {
		logger.Error("init mailer", "err", err)
		os.Exit(1)
	}

	idGenerator := ident.NewUUIDGenerator()
	systemClock := clock.NewSystem()
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	tokenIssuer := auth.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := auth.NewJWTVerifier(cfg.JWTSecret)

	webinarRepo := postgres.NewWebinarRepository(db)
	userRepo := postgres.NewUserRepository(db)

	organizeWebinars := usecase.NewOrganizeWebinars(webinarRepo, idGenerator, systemClock, useCaseTimeout)
	changeSeats := usecase.NewChangeSeats(webinarRepo, useCaseTimeout)
	authService := services.NewAuthService(userRepo, hasher, idGenerator, systemClock, tokenIssuer, cfg.TokenExpiry)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	webinarController := controllers.NewWebinarController(logger, organizeWebinars, changeSeats, userRepo, emailService)
	authController := controllers.NewAuthController(logger, authService)
	limiter := middleware.NewRateLimiter(cfg.AuthRateRPS, cfg.AuthRateBurst)

	mux := deliveryhttp.NewRouter(webinarController, authController, tokenVerifier, limiter)
	handler := middleware.Logging(logger, middleware.CORS(cfg.CORSOrigins, mux))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	logger.Info("api listening", "port", cfg.Port, "env", cfg.Environment)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "err", err)
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server shutdown error", "err", err)
	}
	logger.Info("server stopped")
}
