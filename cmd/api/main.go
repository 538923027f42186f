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

	"github.com/residenhealth/patient-sync-api/internal/config"
	appointmenthandler "github.com/residenhealth/patient-sync-api/internal/handler/appointment"
	healthhandler "github.com/residenhealth/patient-sync-api/internal/handler/health"
	lookuphandler "github.com/residenhealth/patient-sync-api/internal/handler/lookup"
	patienthandler "github.com/residenhealth/patient-sync-api/internal/handler/patient"
	paymenthandler "github.com/residenhealth/patient-sync-api/internal/handler/payment"
	promhandler "github.com/residenhealth/patient-sync-api/internal/handler/prometheus"
	"github.com/residenhealth/patient-sync-api/internal/repository/postgres"
	"github.com/residenhealth/patient-sync-api/internal/router"
	appointmentsvc "github.com/residenhealth/patient-sync-api/internal/service/appointment"
	lookupsvc "github.com/residenhealth/patient-sync-api/internal/service/lookup"
	patientsvc "github.com/residenhealth/patient-sync-api/internal/service/patient"
	paymentsvc "github.com/residenhealth/patient-sync-api/internal/service/payment"
	syncsvc "github.com/residenhealth/patient-sync-api/internal/service/sync"
	"github.com/residenhealth/patient-sync-api/pkg/logger"
	"github.com/residenhealth/patient-sync-api/pkg/metrics"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.LogLevel),
		TimeFormat: time.RFC3339,
		Output:     os.Stdout,
	})

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	m := metrics.NewMetrics("patient_sync")

	patientRepo := postgres.NewPatientRepository(db)
	encounterRepo := postgres.NewEncounterRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	ledgerRepo := postgres.NewLedgerRepository(db)
	trackerRepo := postgres.NewTrackerRepository(db)
	lookupRepo := postgres.NewLookupRepository(db)

	lookupService := lookupsvc.NewService(lookupRepo, cfg.Cache.LookupTTL)
	syncService := syncsvc.NewService(cfg.Sync, appLogger, m)
	patientService := patientsvc.NewService(patientRepo, syncService, appLogger)
	paymentService := paymentsvc.NewService(ledgerRepo, patientRepo, encounterRepo, appLogger, m)
	appointmentService := appointmentsvc.NewService(
		appointmentRepo,
		encounterRepo,
		trackerRepo,
		lookupService,
		appLogger,
		m,
	)

	r := router.NewRouter(cfg, promhandler.New().Handler(),
		appointmenthandler.NewHandler(appointmentService),
		paymenthandler.NewHandler(paymentService),
		patienthandler.NewHandler(patientService),
		lookuphandler.NewHandler(lookupService),
	)
	r.Setup(healthhandler.NewHandler(db))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info(fmt.Sprintf("starting server on port %d", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info("server exited")
}
