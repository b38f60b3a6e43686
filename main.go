package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"villa-api/config"
	"villa-api/controllers"
	"villa-api/database"
	"villa-api/events"
	"villa-api/logger"
	"villa-api/repositories"
	"villa-api/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func main() {
	// 1. Configuración
	bootLog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.LoadConfig()
	if err != nil {
		bootLog.Fatal().Err(err).Msg("could not load config")
	}

	log, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		bootLog.Fatal().Err(err).Msg("could not create logger")
	}
	log = log.With().Str("service", cfg.App.Name).Str("env", cfg.App.Env).Logger()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2. Base de datos: conexión, migración y datos iniciales
	ctx := context.Background()
	db, err := database.Open(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	if cfg.Database.Seed {
		n, err := database.Seed(ctx, db)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to seed database")
		}
		log.Info().Int("villas", n).Msg("seed completed")
	}

	// 3. Publicador de eventos (opcional)
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.RabbitMQ.URL != "" {
		rabbit, err := events.NewRabbitMQPublisher(cfg.RabbitMQ.URL, cfg.RabbitMQ.Queue, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create RabbitMQ publisher")
		}
		publisher = rabbit
	} else {
		log.Info().Msg("rabbitmq url not set, villa events disabled")
	}

	// 4. Capas: repository -> service -> controller
	villaRepo := repositories.NewVillaRepository(db)
	villaService := services.NewVillaService(villaRepo, publisher, log)
	villaController := controllers.NewVillaController(villaService)

	router := controllers.NewRouter(controllers.RouterConfig{
		Logger:             log,
		CORSAllowedOrigins: cfg.Server.CORSAllowedOrigins,
		Villas:             villaController,
		Health:             controllers.NewHealthController(cfg.App.Name),
	})

	// 5. Servidor HTTP
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("villa api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// 6. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down villa api")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error shutting down server")
	}

	if err := publisher.Close(); err != nil {
		log.Error().Err(err).Msg("error closing event publisher")
	}

	if err := database.Close(db); err != nil {
		log.Error().Err(err).Msg("error closing database")
	}

	log.Info().Msg("shutdown complete")
}
