package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/vasapolrittideah/corporate-site-api/internal/config"
	"github.com/vasapolrittideah/corporate-site-api/internal/handler"
	"github.com/vasapolrittideah/corporate-site-api/internal/httpio"
	"github.com/vasapolrittideah/corporate-site-api/internal/mailer"
	"github.com/vasapolrittideah/corporate-site-api/internal/middleware"
	"github.com/vasapolrittideah/corporate-site-api/internal/repository"
	"github.com/vasapolrittideah/corporate-site-api/internal/token"
	"github.com/vasapolrittideah/corporate-site-api/internal/usecase"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	if !cfg.IsProduction() {
		logger = logger.Level(zerolog.DebugLevel)
	}

	tokens, err := token.NewService(cfg.Token)
	if err != nil {
		logger.Fatal().Err(err).Msg("refusing to start with an unusable signing secret")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelPing()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping MongoDB")
	}
	logger.Info().Str("database", cfg.MongoDB).Msg("connected to MongoDB")

	db := client.Database(cfg.MongoDB)

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelIndex()

	accountRepo := repository.NewAccountMongoRepository(indexCtx, &logger, db)
	careerRepo := repository.NewCareerMongoRepository(db)
	applicationRepo := repository.NewApplicationMongoRepository(db)
	inquiryRepo := repository.NewInquiryMongoRepository(db)
	csrProjectRepo := repository.NewCSRProjectMongoRepository(db)
	newsEventRepo := repository.NewNewsEventMongoRepository(indexCtx, &logger, db)

	notifier, err := mailer.NewMailer(cfg.SMTP)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure mailer")
	}
	if notifier == nil {
		logger.Warn().Msg("SMTP not configured; operator notifications are disabled")
	}

	responder := httpio.NewResponder(&logger, cfg.IsProduction())

	authUsecase := usecase.NewAuthUsecase(accountRepo, tokens)
	careerUsecase := usecase.NewCareerUsecase(careerRepo)
	applicationUsecase := usecase.NewApplicationUsecase(applicationRepo, careerRepo, notifierOrNil(notifier), &logger)
	inquiryUsecase := usecase.NewInquiryUsecase(inquiryRepo, notifierOrNil(notifier), &logger)
	csrProjectUsecase := usecase.NewCSRProjectUsecase(csrProjectRepo)
	newsEventUsecase := usecase.NewNewsEventUsecase(newsEventRepo)

	authn := middleware.NewAuthenticator(tokens, accountRepo, responder)

	router := handler.NewRouter(handler.Handlers{
		Auth:        handler.NewAuthHandler(authUsecase, responder),
		Account:     handler.NewAccountHandler(authUsecase, responder),
		Career:      handler.NewCareerHandler(careerUsecase, responder),
		Application: handler.NewApplicationHandler(applicationUsecase, responder),
		Inquiry:     handler.NewInquiryHandler(inquiryUsecase, responder),
		CSRProject:  handler.NewCSRProjectHandler(csrProjectUsecase, responder),
		NewsEvent:   handler.NewNewsEventHandler(newsEventUsecase, responder),
		Health:      handler.NewHealthHandler(client, responder),
	}, authn, responder)

	var chain http.Handler = router
	chain = middleware.Recover(responder)(chain)
	chain = middleware.RequestLogger(&logger)(chain)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           chain,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown: stop accepting connections, drain in-flight
	// requests, then close the Mongo client.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("server shutdown failed")
		}
		if err := client.Disconnect(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from MongoDB")
		}
	}()

	logger.Info().Str("addr", cfg.HTTPAddr).Str("env", cfg.Environment).Msg("server starting")
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server error")
	}
	logger.Info().Msg("server stopped")
}

// notifierOrNil keeps the usecase's nil check meaningful: a nil *Mailer
// stored in a non-nil interface would defeat it.
func notifierOrNil(m *mailer.Mailer) usecase.Notifier {
	if m == nil {
		return nil
	}
	return m
}
