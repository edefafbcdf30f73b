package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/medichq/medic-api/config"
	"github.com/medichq/medic-api/internal/email"
	appointmentHandler "github.com/medichq/medic-api/internal/handler/appointment"
	authHandler "github.com/medichq/medic-api/internal/handler/auth"
	emergencyHandler "github.com/medichq/medic-api/internal/handler/emergency"
	pharmacyHandler "github.com/medichq/medic-api/internal/handler/pharmacy"
	recordHandler "github.com/medichq/medic-api/internal/handler/record"
	reportHandler "github.com/medichq/medic-api/internal/handler/report"
	triageHandler "github.com/medichq/medic-api/internal/handler/triage"
	"github.com/medichq/medic-api/internal/middleware"
	"github.com/medichq/medic-api/internal/repository/jsonstore"
	"github.com/medichq/medic-api/internal/router"
	appointmentService "github.com/medichq/medic-api/internal/service/appointment"
	authService "github.com/medichq/medic-api/internal/service/auth"
	emergencyService "github.com/medichq/medic-api/internal/service/emergency"
	pharmacyService "github.com/medichq/medic-api/internal/service/pharmacy"
	recordService "github.com/medichq/medic-api/internal/service/record"
	reportService "github.com/medichq/medic-api/internal/service/report"
	triageService "github.com/medichq/medic-api/internal/service/triage"
	"github.com/medichq/medic-api/pkg/auth"
	"github.com/medichq/medic-api/pkg/logger"
	"github.com/medichq/medic-api/pkg/metrics"
	"github.com/medichq/medic-api/pkg/security"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	logger.Setup(cfg.LogLevel)

	store, err := jsonstore.NewStore(cfg.Storage.DataDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open data store")
	}

	// Repositories
	userRepo := jsonstore.NewUserRepository(store)
	recordRepo := jsonstore.NewRecordRepository(store)
	appointmentRepo := jsonstore.NewAppointmentRepository(store)
	medicineRepo := jsonstore.NewMedicineRepository(store)
	orderRepo := jsonstore.NewOrderRepository(store)
	reportRepo := jsonstore.NewReportRepository(store)
	emergencyRepo := jsonstore.NewEmergencyRepository(store)

	hasher := security.NewBcryptHasher(10)
	if err := jsonstore.EnsureSeedData(context.Background(), store, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword, hasher); err != nil {
		log.Fatal().Err(err).Msg("failed to seed data")
	}

	tokens := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	mailer := email.NewService(email.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
		To:       cfg.SMTP.To,
	})

	// Services
	authSvc := authService.NewService(userRepo, hasher, tokens)
	recordSvc := recordService.NewService(recordRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo)
	pharmacySvc := pharmacyService.NewService(medicineRepo, orderRepo, cfg.Pharmacy.CatalogCacheTTL)
	reportSvc := reportService.NewService(reportRepo)
	dispatcher := emergencyService.NewDispatcher(emergencyRepo, mailer, cfg.Emergency.DispatchDelay)
	emergencySvc := emergencyService.NewService(emergencyRepo, dispatcher)
	triageSvc := triageService.NewService()

	m := metrics.New("medic")

	r := router.NewRouter(
		middleware.NewAuthMiddleware(tokens),
		authHandler.NewHandler(authSvc),
		recordHandler.NewHandler(recordSvc),
		appointmentHandler.NewHandler(appointmentSvc),
		pharmacyHandler.NewHandler(pharmacySvc),
		reportHandler.NewHandler(reportSvc),
		emergencyHandler.NewHandler(emergencySvc),
		triageHandler.NewHandler(triageSvc),
		m,
		middleware.DefaultCORSConfig(),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("medic platform API listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	dispatcher.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
