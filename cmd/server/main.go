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

	"confkit/config"
	_ "confkit/docs"
	"confkit/internal/adapters/auth"
	"confkit/internal/adapters/email"
	"confkit/internal/adapters/qr"
	httpdelivery "confkit/internal/delivery/http"
	"confkit/internal/delivery/http/controllers"
	"confkit/internal/delivery/http/middleware"
	"confkit/internal/repository/postgres"
	"confkit/internal/services"

	"golang.org/x/crypto/bcrypt"
)

const serviceTimeout = 5 * time.Second

// @title confkit API
// @version 1.0
// @description Backend for the confkit conference app builder: event setup, schedule, attendee roster, and attendee app generation.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "err", err)
		os.Exit(1)
	}

	// Repositories
	eventRepo := postgres.NewEventRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	attendeeRepo := postgres.NewAttendeeRepository(db)
	organizerRepo := postgres.NewOrganizerRepository(db)
	loginCodeRepo := postgres.NewLoginCodeRepository(db)

	// Adapters
	tokenIssuer := auth.NewJWTIssuer(cfg.JWTSecret)
	tokenVerifier := auth.NewJWTVerifier(cfg.JWTSecret)
	codeHasher := auth.NewBcryptCodeHasher(bcrypt.DefaultCost)
	qrGen := qr.NewGenerator()
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretKey,
			InsecureSkipVerify: cfg.SESInsecureTLS,
		},
	})
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	eventService := services.NewEventService(eventRepo, emailService, qrGen, cfg.AppBaseURL, serviceTimeout, time.Now)
	scheduleService := services.NewScheduleService(sessionRepo, eventRepo, serviceTimeout)
	attendeeService := services.NewAttendeeService(attendeeRepo, eventRepo, serviceTimeout)
	organizerService := services.NewOrganizerService(
		organizerRepo,
		loginCodeRepo,
		codeHasher,
		tokenIssuer,
		cfg.TokenExpiry,
		emailService,
		cfg.DemoLoginCode,
		logger,
	)

	// HTTP delivery
	mux := httpdelivery.NewRouter(
		tokenVerifier,
		controllers.NewOrganizerController(logger, organizerService),
		controllers.NewEventController(logger, eventService),
		controllers.NewScheduleController(logger, scheduleService),
		controllers.NewAttendeeController(logger, attendeeService),
	)
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, mux))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
