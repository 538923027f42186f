package appointment

import (
	"context"
	"time"

	"github.com/residenhealth/patient-sync-api/internal/model"
	"github.com/residenhealth/patient-sync-api/internal/repository"
	apperrors "github.com/residenhealth/patient-sync-api/pkg/errors"
	"github.com/residenhealth/patient-sync-api/pkg/logger"
	"github.com/residenhealth/patient-sync-api/pkg/metrics"
)

// CheckInClassifier decides whether a status code means the patient has
// arrived. The classification is list configuration owned by the host, so it
// is injected rather than hard-coded here.
type CheckInClassifier interface {
	IsCheckIn(ctx context.Context, status string) (bool, error)
}

type Service struct {
	appointments repository.AppointmentRepository
	encounters   repository.EncounterRepository
	tracker      repository.TrackerRepository
	classifier   CheckInClassifier
	logger       *logger.Logger
	metrics      *metrics.Metrics
	now          func() time.Time
}

func NewService(
	appointments repository.AppointmentRepository,
	encounters repository.EncounterRepository,
	tracker repository.TrackerRepository,
	classifier CheckInClassifier,
	log *logger.Logger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		appointments: appointments,
		encounters:   encounters,
		tracker:      tracker,
		classifier:   classifier,
		logger:       log.WithComponent("appointment"),
		metrics:      m,
		now:          time.Now,
	}
}

// UpdateAppointment replaces all mutable columns of the appointment and,
// when the update amounts to a same-day check-in, links the appointment to
// the day's encounter. The linkage is best effort: once the update has
// committed, nothing that happens during linkage may fail the call.
func (s *Service) UpdateAppointment(ctx context.Context, patientID, eventID int64, req *model.UpdateAppointmentRequest) error {
	if field := req.FirstMissingField(); field != "" {
		return apperrors.Validation(field, "Missing required field: "+field)
	}

	// Zero rows affected is an accepted no-op; resubmitting an identical
	// update must succeed.
	if _, err := s.appointments.Replace(ctx, patientID, eventID, req); err != nil {
		s.logger.Error(err, "failed to update appointment",
			"pid", patientID, "eid", eventID)
		return apperrors.Storage("Failed to update appointment", err)
	}
	s.metrics.AppointmentUpdates.Inc()

	s.linkEncounter(ctx, patientID, eventID, req)

	return nil
}

// linkEncounter degrades instead of failing: every error is logged with
// patient and appointment context and then dropped.
func (s *Service) linkEncounter(ctx context.Context, patientID, eventID int64, req *model.UpdateAppointmentRequest) {
	today := s.now().Format("2006-01-02")
	if req.EventDate != today || req.Status == "" {
		return
	}

	checkedIn, err := s.classifier.IsCheckIn(ctx, req.Status)
	if err != nil {
		s.metrics.TrackerSkipped.WithLabelValues("classifier_error").Inc()
		s.logger.Error(err, "failed to classify appointment status",
			"pid", patientID, "eid", eventID, "status", req.Status)
		return
	}
	if !checkedIn {
		return
	}

	encounterID, err := s.encounters.FindMostRecent(ctx, patientID, req.EventDate)
	if err != nil {
		s.metrics.TrackerSkipped.WithLabelValues("lookup_error").Inc()
		s.logger.Error(err, "failed to look up encounter for check-in",
			"pid", patientID, "eid", eventID)
		return
	}
	if encounterID == 0 {
		// Expected when the patient has not been checked into an encounter
		// yet; not a failure.
		s.metrics.TrackerSkipped.WithLabelValues("no_encounter").Inc()
		s.logger.Debug("no encounter found for checked-in appointment",
			"pid", patientID, "eid", eventID, "date", req.EventDate)
		return
	}

	entry := &model.TrackerEntry{
		ApptDate:    req.EventDate,
		ApptTime:    req.StartTime,
		EventID:     eventID,
		PatientID:   patientID,
		User:        model.ActingUserFromContext(ctx),
		Status:      req.Status,
		Room:        req.Room,
		EncounterID: encounterID,
	}
	if err := s.tracker.Create(ctx, entry); err != nil {
		s.metrics.TrackerSkipped.WithLabelValues("write_error").Inc()
		s.logger.Error(err, "failed to create tracker linkage",
			"pid", patientID, "eid", eventID, "encounter", encounterID)
		return
	}

	s.metrics.TrackerLinkages.Inc()
	s.logger.Info("linked appointment to encounter",
		"pid", patientID, "eid", eventID, "encounter", encounterID)
}

// ListAppointments is a passthrough read with optional filters.
func (s *Service) ListAppointments(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	appointments, err := s.appointments.List(ctx, filters)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return appointments, nil
}
