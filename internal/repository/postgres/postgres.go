package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/residenhealth/patient-sync-api/internal/repository"
)

type patientRepository struct {
	db *sqlx.DB
}

type encounterRepository struct {
	db *sqlx.DB
}

type appointmentRepository struct {
	db *sqlx.DB
}

type ledgerRepository struct {
	BaseRepository
}

type trackerRepository struct {
	db *sqlx.DB
}

type lookupRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func NewEncounterRepository(db *sqlx.DB) repository.EncounterRepository {
	return &encounterRepository{db: db}
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func NewLedgerRepository(db *sqlx.DB) repository.LedgerRepository {
	return &ledgerRepository{BaseRepository: NewBaseRepository(db)}
}

func NewTrackerRepository(db *sqlx.DB) repository.TrackerRepository {
	return &trackerRepository{db: db}
}

func NewLookupRepository(db *sqlx.DB) repository.LookupRepository {
	return &lookupRepository{db: db}
}
