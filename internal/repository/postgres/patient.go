package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/residenhealth/patient-sync-api/internal/model"
)

func (r *patientRepository) Exists(ctx context.Context, patientID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM patient_data WHERE pid = $1)`, patientID)
	if err != nil {
		return false, fmt.Errorf("failed to check patient existence: %w", err)
	}
	return exists, nil
}

func (r *patientRepository) Get(ctx context.Context, patientID int64) (*model.Patient, error) {
	query := `
		SELECT pid, uuid, fname, lname, dob, sex, email, phone_cell,
			   phone_home, street, city, state, postal_code
		FROM patient_data
		WHERE pid = $1
	`
	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, query, patientID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

// Create assigns the next pid the way the host EMR does: max(pid)+1,
// computed in the insert itself so two concurrent creates cannot race past
// the unique pid constraint silently.
func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) (int64, error) {
	query := `
		INSERT INTO patient_data (
			pid, uuid, fname, lname, dob, sex, email, phone_cell,
			phone_home, street, city, state, postal_code
		)
		SELECT COALESCE(MAX(pid), 0) + 1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		FROM patient_data
		RETURNING pid
	`
	var pid int64
	err := r.db.QueryRowContext(ctx, query,
		patient.UUID,
		patient.FirstName,
		patient.LastName,
		patient.DOB,
		patient.Sex,
		patient.Email,
		patient.Phone,
		patient.HomePhone,
		patient.Street,
		patient.City,
		patient.State,
		patient.PostalCode,
	).Scan(&pid)
	if err != nil {
		return 0, fmt.Errorf("failed to create patient: %w", err)
	}
	patient.ID = pid
	return pid, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE patient_data
		SET fname = $1, lname = $2, dob = $3, sex = $4, email = $5,
			phone_cell = $6, phone_home = $7, street = $8, city = $9,
			state = $10, postal_code = $11
		WHERE pid = $12
	`
	result, err := r.db.ExecContext(ctx, query,
		patient.FirstName,
		patient.LastName,
		patient.DOB,
		patient.Sex,
		patient.Email,
		patient.Phone,
		patient.HomePhone,
		patient.Street,
		patient.City,
		patient.State,
		patient.PostalCode,
		patient.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("patient not found")
	}
	return nil
}
