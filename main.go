package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/phuslu/log"

	"registration/internal/config"
	"registration/internal/database"
	"registration/internal/handlers"
	"registration/internal/logging"
	"registration/internal/middleware"
	"registration/internal/notify"
	"registration/internal/services"
)

func main() {
	config.Load()
	cfg := config.AppEnv
	logging.Setup(cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			log.Error().Err(err).Msg("database disconnect failed")
		}
	}()

	db := client.Database(cfg.DBName)
	log.Info().Str("db", db.Name()).Msg("MongoDB connected")

	if err := database.EnsureCustomerIndexes(db); err != nil {
		log.Warn().Err(err).Msg("customer index warning")
	}

	mailer, err := notify.New(cfg.Mail)
	if err != nil {
		log.Fatal().Err(err).Msg("mailer setup failed")
	}
	log.Info().Str("provider", cfg.Mail.Provider).Msg("mail transport ready")

	corsMW, err := middleware.CORS(cfg.AllowedOrigins)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid ALLOWED_ORIGINS")
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(), corsMW)

	svc := services.NewCustomerService(database.NewCustomerRepository(db), mailer)
	handlers.RegisterRoutes(r, svc, database.NewPinger(client))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
