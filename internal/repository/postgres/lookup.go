package postgres

import (
	"context"
	"fmt"

	"github.com/residenhealth/patient-sync-api/internal/model"
)

func (r *lookupRepository) ListCategories(ctx context.Context) ([]*model.Category, error) {
	// pc_duration is stored in seconds; callers expect minutes.
	query := `
		SELECT pc_catid, pc_catname, pc_duration / 60 AS pc_duration
		FROM openemr_postcalendar_categories
	`
	var categories []*model.Category
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

func (r *lookupRepository) ListRooms(ctx context.Context) ([]*model.Room, error) {
	query := `
		SELECT option_id, title, seq, notes, activity
		FROM list_options
		WHERE list_id = $1
		ORDER BY seq, title
	`
	var rooms []*model.Room
	if err := r.db.SelectContext(ctx, &rooms, query, "patient_flow_board_rooms"); err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	return rooms, nil
}

func (r *lookupRepository) ListStatuses(ctx context.Context) ([]*model.StatusOption, error) {
	// toggle_setting_1 marks statuses the flow board treats as "checked in".
	query := `
		SELECT option_id, title, toggle_setting_1 = 1 AS checkin
		FROM list_options
		WHERE list_id = 'apptstat' AND activity = 1
		ORDER BY seq
	`
	var statuses []*model.StatusOption
	if err := r.db.SelectContext(ctx, &statuses, query); err != nil {
		return nil, fmt.Errorf("failed to list statuses: %w", err)
	}
	return statuses, nil
}
