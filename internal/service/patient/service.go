package patient

import (
	"context"

	"github.com/google/uuid"

	"github.com/residenhealth/patient-sync-api/internal/model"
	"github.com/residenhealth/patient-sync-api/internal/repository"
	apperrors "github.com/residenhealth/patient-sync-api/pkg/errors"
	"github.com/residenhealth/patient-sync-api/pkg/logger"
)

// Syncer receives patient create/update notifications. The patient service
// calls it directly; there is no event bus in between.
type Syncer interface {
	PatientCreated(ctx context.Context, patient *model.Patient) error
	PatientUpdated(ctx context.Context, patient *model.Patient) error
}

type Service struct {
	repo   repository.PatientRepository
	syncer Syncer
	logger *logger.Logger
}

func NewService(repo repository.PatientRepository, syncer Syncer, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		syncer: syncer,
		logger: log.WithComponent("patient"),
	}
}

func (s *Service) CreatePatient(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	if err := s.validate(patient); err != nil {
		return nil, err
	}

	patient.UUID = uuid.New()
	if _, err := s.repo.Create(ctx, patient); err != nil {
		return nil, apperrors.Storage("failed to create patient", err)
	}

	// Push happens after the local write committed; a failed push never
	// fails the create.
	if err := s.syncer.PatientCreated(ctx, patient); err != nil {
		s.logger.Error(err, "patient sync failed on creation", "pid", patient.ID)
	}

	return patient, nil
}

func (s *Service) UpdatePatient(ctx context.Context, patientID int64, patient *model.Patient) (*model.Patient, error) {
	if err := s.validate(patient); err != nil {
		return nil, err
	}

	existing, err := s.repo.Get(ctx, patientID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if existing == nil {
		return nil, apperrors.NotFound("patient")
	}

	patient.ID = patientID
	patient.UUID = existing.UUID
	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, apperrors.Storage("failed to update patient", err)
	}

	if err := s.syncer.PatientUpdated(ctx, patient); err != nil {
		s.logger.Error(err, "patient sync failed on update", "pid", patient.ID)
	}

	return patient, nil
}

func (s *Service) GetPatient(ctx context.Context, patientID int64) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, patientID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if patient == nil {
		return nil, apperrors.NotFound("patient")
	}
	return patient, nil
}

func (s *Service) validate(patient *model.Patient) error {
	if patient.FirstName == "" {
		return apperrors.Validation("fname", "first name is required")
	}
	if patient.LastName == "" {
		return apperrors.Validation("lname", "last name is required")
	}
	return nil
}
