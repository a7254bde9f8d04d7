package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
)

func waitingListRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"event_id", "entrant_id", "status", "responded", "joined_at", "selected_at"})
}

func TestWaitingListRepositoryListByEvent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWaitingListRepository(db)

	rows := waitingListRows().
		AddRow("ev-1", "u-1", "waiting", "", time.Now(), nil).
		AddRow("ev-1", "u-2", "chosen", "pending", time.Now(), time.Now())
	mock.ExpectQuery("SELECT event_id, entrant_id, status").
		WithArgs("ev-1").
		WillReturnRows(rows)

	entries, err := repo.ListByEvent(context.Background(), "ev-1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, models.StatusWaiting, entries[0].Status)
	assert.Equal(t, models.RespondedPending, entries[1].Responded)
}

func TestWaitingListRepositoryListByStatus(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWaitingListRepository(db)

	rows := waitingListRows().AddRow("ev-1", "u-1", "waiting", "", time.Now(), nil)
	mock.ExpectQuery("SELECT event_id, entrant_id, status").
		WithArgs("ev-1", "waiting").
		WillReturnRows(rows)

	entries, err := repo.ListByStatus(context.Background(), "ev-1", models.StatusWaiting)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestWaitingListRepositoryMarkChosen(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWaitingListRepository(db)

	mock.ExpectExec("UPDATE waiting_list").
		WithArgs("ev-1", sqlmock.AnyArg(), "chosen", "pending").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.MarkChosen(context.Background(), "ev-1", []string{"u-1", "u-2"}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitingListRepositoryMarkChosenEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWaitingListRepository(db)

	require.NoError(t, repo.MarkChosen(context.Background(), "ev-1", nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitingListRepositorySetRespondedRequiresChosen(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWaitingListRepository(db)

	mock.ExpectExec("UPDATE waiting_list SET responded").
		WithArgs("ev-1", "u-9", "accepted", "chosen").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetResponded(context.Background(), "ev-1", "u-9", models.RespondedAccepted)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no chosen entry")
}

func TestWaitingListRepositoryJoinAndLeave(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewWaitingListRepository(db)

	mock.ExpectExec("INSERT INTO waiting_list").
		WithArgs("ev-1", "u-1", "waiting").
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, repo.Join(context.Background(), "ev-1", "u-1"))

	mock.ExpectExec("DELETE FROM waiting_list").
		WithArgs("ev-1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Leave(context.Background(), "ev-1", "u-1"))

	require.NoError(t, mock.ExpectationsWereMet())
}
