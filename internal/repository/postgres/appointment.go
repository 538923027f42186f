package postgres

import (
	"context"
	"fmt"

	"github.com/residenhealth/patient-sync-api/internal/model"
)

func (r *appointmentRepository) Replace(ctx context.Context, patientID, eventID int64, req *model.UpdateAppointmentRequest) (int64, error) {
	query := `
		UPDATE openemr_postcalendar_events
		SET pc_catid = $1, pc_title = $2, pc_duration = $3, pc_hometext = $4,
			pc_apptstatus = $5, "pc_eventDate" = $6, "pc_startTime" = $7,
			pc_facility = $8, pc_billing_location = $9, pc_aid = $10, pc_room = $11
		WHERE pc_eid = $12 AND pc_pid = $13
	`
	result, err := r.db.ExecContext(ctx, query,
		req.CategoryID,
		req.Title,
		req.Duration,
		req.Comments,
		req.Status,
		req.EventDate,
		req.StartTime,
		req.FacilityID,
		req.BillingLocation,
		req.ProviderID,
		req.Room,
		eventID,
		patientID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to update appointment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

func (r *appointmentRepository) List(ctx context.Context, filters *model.AppointmentFilters) ([]*model.Appointment, error) {
	query := `
		SELECT pc_eid, pc_pid, pc_catid, pc_title, pc_duration, pc_hometext,
			   pc_apptstatus, "pc_eventDate", "pc_startTime", pc_facility,
			   pc_billing_location, pc_aid, pc_room
		FROM openemr_postcalendar_events
		WHERE 1=1
	`
	args := []interface{}{}
	argCount := 1

	if filters.FacilityID != "" {
		query += fmt.Sprintf(" AND pc_facility = $%d", argCount)
		args = append(args, filters.FacilityID)
		argCount++
	}

	if filters.ProviderID != "" {
		query += fmt.Sprintf(" AND pc_aid = $%d", argCount)
		args = append(args, filters.ProviderID)
		argCount++
	}

	if filters.StartDate != "" {
		query += fmt.Sprintf(` AND "pc_eventDate" >= $%d`, argCount)
		args = append(args, filters.StartDate)
		argCount++
	}

	if filters.EndDate != "" {
		query += fmt.Sprintf(` AND "pc_eventDate" <= $%d`, argCount)
		args = append(args, filters.EndDate)
		argCount++
	}

	query += ` ORDER BY "pc_eventDate", "pc_startTime"`

	var appointments []*model.Appointment
	err := r.db.SelectContext(ctx, &appointments, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}
