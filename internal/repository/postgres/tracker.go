package postgres

import (
	"context"
	"fmt"

	"github.com/residenhealth/patient-sync-api/internal/model"
)

func (r *trackerRepository) Create(ctx context.Context, entry *model.TrackerEntry) error {
	query := `
		INSERT INTO patient_tracker (
			date, apptdate, appttime, eid, pid,
			original_user, status, room, encounter
		) VALUES (NOW(), $1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ApptDate,
		entry.ApptTime,
		entry.EventID,
		entry.PatientID,
		entry.User,
		entry.Status,
		entry.Room,
		entry.EncounterID,
	)
	if err != nil {
		return fmt.Errorf("failed to create tracker entry: %w", err)
	}
	return nil
}
