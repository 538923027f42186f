package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/residenhealth/patient-sync-api/internal/model"
	apperrors "github.com/residenhealth/patient-sync-api/pkg/errors"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func testPosting() *model.PaymentPosting {
	return &model.PaymentPosting{
		PatientID:   42,
		EncounterID: 7,
		Amount:      25.50,
		Method:      "credit_card",
		Source:      "residen_app",
		Description: "copay",
		User:        "frontdesk",
	}
}

func TestRecordPayment_PostsAllThreeRows(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepository(db)
	p := testPosting()

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs(p.PatientID, p.EncounterID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("INSERT INTO ar_session").
		WithArgs(0, p.PatientID, p.UserID, p.Source, p.Amount,
			model.PaymentTypePatient, p.Description, model.AdjustmentCodePatient, p.Method).
		WillReturnRows(sqlmock.NewRows([]string{"session_id"}).AddRow(11))
	mock.ExpectQuery("SELECT code_type, code, modifier FROM billing").
		WithArgs(p.PatientID, p.EncounterID).
		WillReturnRows(sqlmock.NewRows([]string{"code_type", "code", "modifier"}).
			AddRow("CPT4", "99213", ""))
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(sequence_no\), 0\) \+ 1 FROM ar_activity`).
		WithArgs(p.PatientID, p.EncounterID).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3))
	mock.ExpectExec("INSERT INTO ar_activity").
		WithArgs(p.PatientID, p.EncounterID, int64(3), "CPT4", "99213", "",
			p.UserID, int64(11), p.Amount, model.AccountCodePP).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO payments").
		WithArgs(p.PatientID, p.EncounterID, p.User, p.Method, p.Source, p.Amount).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(99))
	mock.ExpectCommit()

	ids, err := repo.RecordPayment(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, int64(11), ids.SessionID)
	assert.Equal(t, int64(99), ids.PaymentID)
	assert.Equal(t, int64(3), ids.SequenceNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Expectations are matched in order, so this test also pins that the lock
// is taken before the sequence number is read: a payment that cannot take
// the lock must not touch any table.
func TestRecordPayment_LockFailureWritesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WillReturnError(errors.New("canceling statement due to lock timeout"))
	mock.ExpectRollback()

	ids, err := repo.RecordPayment(context.Background(), testPosting())

	require.Error(t, err)
	assert.Nil(t, ids)
	assert.NoError(t, mock.ExpectationsWereMet(), "no insert may run without the lock")
}

func TestRecordPayment_LockHandlesLargeIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepository(db)

	p := testPosting()
	p.PatientID = 3_000_000_000 // beyond int4 range
	p.EncounterID = 5_000_000_000

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WithArgs(p.PatientID, p.EncounterID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("INSERT INTO ar_session").
		WillReturnRows(sqlmock.NewRows([]string{"session_id"}).AddRow(11))
	mock.ExpectQuery("SELECT code_type, code, modifier FROM billing").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(sequence_no\), 0\) \+ 1 FROM ar_activity`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1))
	mock.ExpectExec("INSERT INTO ar_activity").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO payments").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectCommit()

	ids, err := repo.RecordPayment(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, int64(1), ids.SequenceNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPayment_NoBillingRowsPostsEmptyCodes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepository(db)
	p := testPosting()

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("INSERT INTO ar_session").
		WillReturnRows(sqlmock.NewRows([]string{"session_id"}).AddRow(11))
	mock.ExpectQuery("SELECT code_type, code, modifier FROM billing").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(sequence_no\), 0\) \+ 1 FROM ar_activity`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1))
	mock.ExpectExec("INSERT INTO ar_activity").
		WithArgs(p.PatientID, p.EncounterID, int64(1), "", "", "",
			p.UserID, int64(11), p.Amount, model.AccountCodePP).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO payments").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
	mock.ExpectCommit()

	ids, err := repo.RecordPayment(context.Background(), p)

	require.NoError(t, err)
	assert.Equal(t, int64(1), ids.SequenceNo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPayment_FailureRollsBackEverything(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepository(db)
	p := testPosting()

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("INSERT INTO ar_session").
		WillReturnRows(sqlmock.NewRows([]string{"session_id"}).AddRow(11))
	mock.ExpectQuery("SELECT code_type, code, modifier FROM billing").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(sequence_no\), 0\) \+ 1 FROM ar_activity`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1))
	mock.ExpectExec("INSERT INTO ar_activity").
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	ids, err := repo.RecordPayment(context.Background(), p)

	require.Error(t, err)
	assert.Nil(t, ids)
	assert.Equal(t, apperrors.KindStorage, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordPayment_SessionInsertFailureRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLedgerRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("SELECT pg_advisory_xact_lock").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("INSERT INTO ar_session").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	ids, err := repo.RecordPayment(context.Background(), testPosting())

	require.Error(t, err)
	assert.Nil(t, ids)
	assert.Equal(t, apperrors.KindStorage, apperrors.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
