package sync

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/residenhealth/patient-sync-api/internal/config"
	"github.com/residenhealth/patient-sync-api/internal/model"
	"github.com/residenhealth/patient-sync-api/pkg/circuitbreaker"
	"github.com/residenhealth/patient-sync-api/pkg/logger"
	"github.com/residenhealth/patient-sync-api/pkg/metrics"
)

// Service pushes patient create/update events to the Residen API. Pushes are
// fire and forget: there is no retry or queueing, and callers treat a failed
// push as a log line, not an error.
type Service struct {
	cfg     config.SyncConfig
	client  *http.Client
	breaker *circuitbreaker.CircuitBreaker
	logger  *logger.Logger
	metrics *metrics.Metrics
}

func NewService(cfg config.SyncConfig, log *logger.Logger, m *metrics.Metrics) *Service {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{
		cfg:    cfg,
		client: &http.Client{Timeout: timeout},
		breaker: circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
			Name:        "residen-sync",
			MaxFailures: 5,
			Timeout:     time.Minute,
		}),
		logger:  log.WithComponent("sync"),
		metrics: m,
	}
}

// Configured reports whether pushes will actually be sent.
func (s *Service) Configured() bool {
	return s.cfg.IsConfigured()
}

// PatientCreated pushes a newly created patient.
func (s *Service) PatientCreated(ctx context.Context, patient *model.Patient) error {
	url := fmt.Sprintf("%s/patient/%s", s.cfg.Endpoint, s.cfg.Token)
	return s.push(ctx, "create", http.MethodPost, url, patient)
}

// PatientUpdated pushes the current state of an updated patient.
func (s *Service) PatientUpdated(ctx context.Context, patient *model.Patient) error {
	url := fmt.Sprintf("%s/patient/%s/%s", s.cfg.Endpoint, s.cfg.PublicKey, patient.UUID)
	return s.push(ctx, "update", http.MethodPut, url, patient)
}

func (s *Service) push(ctx context.Context, operation, method, url string, patient *model.Patient) error {
	if !s.Configured() {
		s.logger.Debug("sync not configured, skipping push",
			"operation", operation, "pid", patient.ID)
		return nil
	}

	body, err := json.Marshal(patient.SyncPayload())
	if err != nil {
		return fmt.Errorf("failed to marshal sync payload: %w", err)
	}

	start := time.Now()
	err = s.breaker.Execute(func() error {
		req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("failed to build sync request: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+s.cfg.Token)
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
		req.Header.Set("Accept", "application/json")

		resp, err := s.client.Do(req)
		if err != nil {
			return fmt.Errorf("sync request failed: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("sync endpoint returned %d", resp.StatusCode)
		}
		return nil
	})
	s.metrics.SyncLatency.Observe(time.Since(start).Seconds())

	if err != nil {
		s.metrics.SyncPushes.WithLabelValues(operation, "failure").Inc()
		return err
	}

	s.metrics.SyncPushes.WithLabelValues(operation, "success").Inc()
	s.logger.Debug("patient synced", "operation", operation, "pid", patient.ID)
	return nil
}
