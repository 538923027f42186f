package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/residenhealth/patient-sync-api/internal/model"
)

func (r *encounterRepository) Get(ctx context.Context, encounterID int64) (*model.Encounter, error) {
	query := `
		SELECT encounter, pid, date
		FROM form_encounter
		WHERE encounter = $1
	`
	var encounter model.Encounter
	err := r.db.GetContext(ctx, &encounter, query, encounterID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get encounter: %w", err)
	}
	return &encounter, nil
}

// FindMostRecent picks the highest encounter id among the patient's
// encounters on the given date. Multiple encounters can share a date; the
// highest id is treated as the most recently created.
func (r *encounterRepository) FindMostRecent(ctx context.Context, patientID int64, date string) (int64, error) {
	query := `
		SELECT encounter
		FROM form_encounter
		WHERE pid = $1 AND date::date = $2::date
		ORDER BY encounter DESC
		LIMIT 1
	`
	var encounterID int64
	err := r.db.GetContext(ctx, &encounterID, query, patientID, date)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to find encounter: %w", err)
	}
	return encounterID, nil
}
