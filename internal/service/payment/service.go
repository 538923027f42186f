package payment

import (
	"context"
	"strings"

	"github.com/residenhealth/patient-sync-api/internal/model"
	"github.com/residenhealth/patient-sync-api/internal/repository"
	apperrors "github.com/residenhealth/patient-sync-api/pkg/errors"
	"github.com/residenhealth/patient-sync-api/pkg/logger"
	"github.com/residenhealth/patient-sync-api/pkg/metrics"
)

const receiptMessage = "Payment recorded successfully"

type Service struct {
	ledger     repository.LedgerRepository
	patients   repository.PatientRepository
	encounters repository.EncounterRepository
	logger     *logger.Logger
	metrics    *metrics.Metrics
}

func NewService(
	ledger repository.LedgerRepository,
	patients repository.PatientRepository,
	encounters repository.EncounterRepository,
	log *logger.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		ledger:     ledger,
		patients:   patients,
		encounters: encounters,
		logger:     log.WithComponent("payment"),
		metrics:    m,
	}
}

// RecordPayment validates the request and posts it across the three
// receivables tables in one transaction. Validation and ownership checks run
// before any write; a rejected request leaves no rows behind.
func (s *Service) RecordPayment(ctx context.Context, req *model.PaymentRequest) (*model.PaymentReceipt, error) {
	req.Method = strings.TrimSpace(req.Method)
	req.Source = strings.TrimSpace(req.Source)

	if err := s.validate(req); err != nil {
		s.metrics.PaymentFailures.WithLabelValues("validation").Inc()
		return nil, err
	}

	if err := s.checkOwnership(ctx, req); err != nil {
		s.metrics.PaymentFailures.WithLabelValues("ownership").Inc()
		return nil, err
	}

	posting := &model.PaymentPosting{
		PatientID:   req.PatientID,
		EncounterID: req.EncounterID,
		Amount:      req.Amount,
		Method:      req.Method,
		Source:      req.Source,
		Description: req.Description,
		User:        model.ActingUserFromContext(ctx),
	}

	ids, err := s.ledger.RecordPayment(ctx, posting)
	if err != nil {
		s.metrics.PaymentFailures.WithLabelValues("storage").Inc()
		s.logger.Error(err, "failed to record payment",
			"pid", req.PatientID, "encounter", req.EncounterID)
		if apperrors.KindOf(err) == apperrors.KindStorage {
			return nil, err
		}
		return nil, apperrors.Internal(err)
	}

	s.metrics.PaymentsRecorded.Inc()
	s.metrics.PaymentAmount.Observe(req.Amount)
	s.logger.Info("payment recorded",
		"pid", req.PatientID,
		"encounter", req.EncounterID,
		"payment_id", ids.PaymentID,
		"session_id", ids.SessionID,
		"sequence_no", ids.SequenceNo,
	)

	return &model.PaymentReceipt{
		PaymentID: ids.PaymentID,
		SessionID: ids.SessionID,
		Message:   receiptMessage,
	}, nil
}

func (s *Service) validate(req *model.PaymentRequest) error {
	if req.Amount <= 0 {
		return apperrors.Validation("amount", "amount must be a positive number")
	}
	if req.Method == "" {
		return apperrors.Validation("method", "method must not be empty")
	}
	if req.Source == "" {
		return apperrors.Validation("source", "source must not be empty")
	}
	return nil
}

// checkOwnership distinguishes a missing encounter from one that belongs to a
// different patient; callers need to know which happened.
func (s *Service) checkOwnership(ctx context.Context, req *model.PaymentRequest) error {
	exists, err := s.patients.Exists(ctx, req.PatientID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if !exists {
		return apperrors.NotFound("patient")
	}

	encounter, err := s.encounters.Get(ctx, req.EncounterID)
	if err != nil {
		return apperrors.Internal(err)
	}
	if encounter == nil {
		return apperrors.NotFound("encounter")
	}
	if encounter.PatientID != req.PatientID {
		return apperrors.Mismatch("encounter", "encounter does not belong to this patient")
	}
	return nil
}
