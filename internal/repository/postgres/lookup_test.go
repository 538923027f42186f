package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategories_ReportsMinutes(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLookupRepository(db)

	mock.ExpectQuery("SELECT pc_catid, pc_catname").
		WillReturnRows(sqlmock.NewRows([]string{"pc_catid", "pc_catname", "pc_duration"}).
			AddRow(5, "Office Visit", 30).
			AddRow(9, "Established Patient", 15))

	categories, err := repo.ListCategories(context.Background())

	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Office Visit", categories[0].Name)
	assert.Equal(t, int64(30), categories[0].DurationMinutes)
}

func TestListRooms_QueriesFlowBoardList(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLookupRepository(db)

	mock.ExpectQuery("SELECT option_id, title, seq, notes, activity").
		WithArgs("patient_flow_board_rooms").
		WillReturnRows(sqlmock.NewRows([]string{"option_id", "title", "seq", "notes", "activity"}).
			AddRow("exam-1", "Exam 1", 10, "", 1))

	rooms, err := repo.ListRooms(context.Background())

	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, "exam-1", rooms[0].OptionID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStatuses_MapsCheckInFlag(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLookupRepository(db)

	mock.ExpectQuery("SELECT option_id, title, toggle_setting_1").
		WillReturnRows(sqlmock.NewRows([]string{"option_id", "title", "checkin"}).
			AddRow("@", "Arrived", true).
			AddRow("-", "No Show", false))

	statuses, err := repo.ListStatuses(context.Background())

	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.True(t, statuses[0].CheckIn)
	assert.False(t, statuses[1].CheckIn)
}
