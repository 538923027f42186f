package repository

import (
	"context"

	"github.com/residenhealth/patient-sync-api/internal/model"
)

// All repository interfaces in one file
type (
	// PatientRepository handles patient demographic rows.
	PatientRepository interface {
		Exists(ctx context.Context, patientID int64) (bool, error)
		// Get returns nil when the patient does not exist.
		Get(ctx context.Context, patientID int64) (*model.Patient, error)
		Create(ctx context.Context, patient *model.Patient) (int64, error)
		Update(ctx context.Context, patient *model.Patient) error
	}

	// EncounterRepository is a pure read interface; encounters are created
	// by the host EMR.
	EncounterRepository interface {
		// Get returns nil when the encounter does not exist.
		Get(ctx context.Context, encounterID int64) (*model.Encounter, error)
		// FindMostRecent returns the highest encounter id for the patient on
		// the given date (YYYY-MM-DD), or 0 when there is none.
		FindMostRecent(ctx context.Context, patientID int64, date string) (int64, error)
	}

	AppointmentRepository interface {
		// Replace overwrites all mutable columns of the appointment matched
		// by (eventID, patientID) and reports the rows affected.
		Replace(ctx context.Context, patientID, eventID int64, req *model.UpdateAppointmentRequest) (int64, error)
		List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error)
	}

	// LedgerRepository posts one payment across ar_session, ar_activity and
	// payments in a single transaction.
	LedgerRepository interface {
		RecordPayment(ctx context.Context, posting *model.PaymentPosting) (*model.LedgerIDs, error)
	}

	TrackerRepository interface {
		Create(ctx context.Context, entry *model.TrackerEntry) error
	}

	LookupRepository interface {
		ListCategories(ctx context.Context) ([]*model.Category, error)
		ListRooms(ctx context.Context) ([]*model.Room, error)
		ListStatuses(ctx context.Context) ([]*model.StatusOption, error)
	}
)
