package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"context"

	"github.com/jmoiron/sqlx"

	"github.com/residenhealth/patient-sync-api/internal/model"
	apperrors "github.com/residenhealth/patient-sync-api/pkg/errors"
)

// RecordPayment writes the three receivables rows for one patient payment
// inside a single transaction. A failure at any step leaves zero rows.
//
// The sequence number for (pid, encounter) is max+1 at insertion time; an
// advisory lock on the pair serializes concurrent payments against the same
// encounter so each gets a distinct number.
func (r *ledgerRepository) RecordPayment(ctx context.Context, p *model.PaymentPosting) (*model.LedgerIDs, error) {
	var ids model.LedgerIDs

	err := r.WithTx(ctx, func(tx *sqlx.Tx) error {
		// Single-bigint lock over a hash of the pair; the two-int form is
		// int4 only and would overflow on large pids.
		if _, err := tx.ExecContext(ctx,
			`SELECT pg_advisory_xact_lock(hashtextextended($1::text || ':' || $2::text, 0))`,
			p.PatientID, p.EncounterID,
		); err != nil {
			return fmt.Errorf("failed to lock payment sequence: %w", err)
		}

		sessionQuery := `
			INSERT INTO ar_session (
				payer_id, patient_id, user_id, closed, reference,
				check_date, deposit_date, pay_total, payment_type,
				description, adjustment_code, post_to_date, payment_method
			) VALUES ($1, $2, $3, false, $4, NOW(), NOW(), $5, $6, $7, $8, NOW(), $9)
			RETURNING session_id
		`
		err := tx.QueryRowContext(ctx, sessionQuery,
			0,
			p.PatientID,
			p.UserID,
			p.Source,
			p.Amount,
			model.PaymentTypePatient,
			p.Description,
			model.AdjustmentCodePatient,
			p.Method,
		).Scan(&ids.SessionID)
		if err != nil {
			return apperrors.Storage("failed to insert ar_session", err)
		}

		// Billing code for the encounter is best effort; an encounter with
		// no active billing rows posts with empty code fields.
		var codeType, code, modifier string
		err = tx.QueryRowContext(ctx,
			`SELECT code_type, code, modifier FROM billing
			 WHERE pid = $1 AND encounter = $2 AND activity = 1 LIMIT 1`,
			p.PatientID, p.EncounterID,
		).Scan(&codeType, &code, &modifier)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return apperrors.Storage("failed to read billing code", err)
		}

		var sequenceNo int64
		err = tx.QueryRowContext(ctx,
			`SELECT COALESCE(MAX(sequence_no), 0) + 1 FROM ar_activity
			 WHERE pid = $1 AND encounter = $2`,
			p.PatientID, p.EncounterID,
		).Scan(&sequenceNo)
		if err != nil {
			return apperrors.Storage("failed to compute sequence number", err)
		}
		ids.SequenceNo = sequenceNo

		activityQuery := `
			INSERT INTO ar_activity (
				pid, encounter, sequence_no, code_type, code, modifier,
				payer_type, post_time, post_user, session_id,
				pay_amount, adj_amount, account_code
			) VALUES ($1, $2, $3, $4, $5, $6, 0, NOW(), $7, $8, $9, 0, $10)
		`
		if _, err := tx.ExecContext(ctx, activityQuery,
			p.PatientID,
			p.EncounterID,
			sequenceNo,
			codeType,
			code,
			modifier,
			p.UserID,
			ids.SessionID,
			p.Amount,
			model.AccountCodePP,
		); err != nil {
			return apperrors.Storage("failed to insert ar_activity", err)
		}

		paymentQuery := `
			INSERT INTO payments (
				pid, encounter, dtime, "user", method, source, amount1, amount2
			) VALUES ($1, $2, NOW(), $3, $4, $5, $6, 0)
			RETURNING id
		`
		err = tx.QueryRowContext(ctx, paymentQuery,
			p.PatientID,
			p.EncounterID,
			p.User,
			p.Method,
			p.Source,
			p.Amount,
		).Scan(&ids.PaymentID)
		if err != nil {
			return apperrors.Storage("failed to insert payment record", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ids, nil
}
