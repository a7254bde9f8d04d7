package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
)

func TestBroadcastRepositoryCreateAssignsIDAndTimestamp(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewBroadcastRepository(db)

	createdAt := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO broadcasts").
		WithArgs(sqlmock.AnyArg(), "ev-1", "waiting", "Doors open at 6", false, nil).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	broadcast := &models.Broadcast{
		EventID:  "ev-1",
		Audience: models.AudienceWaiting,
		Message:  "Doors open at 6",
	}
	require.NoError(t, repo.Create(context.Background(), broadcast))
	assert.NotEmpty(t, broadcast.ID)
	assert.Equal(t, createdAt, broadcast.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBroadcastRepositoryCreateFailure(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewBroadcastRepository(db)

	mock.ExpectQuery("INSERT INTO broadcasts").
		WillReturnError(errors.New("connection reset"))

	err := repo.Create(context.Background(), &models.Broadcast{EventID: "ev-1", Audience: models.AudienceChosen, Message: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create broadcast")
}

func TestBroadcastRepositoryListByEvent(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewBroadcastRepository(db)

	rows := sqlmock.NewRows([]string{"id", "event_id", "audience", "message", "include_poster", "link_url", "created_at"}).
		AddRow("bc-2", "ev-1", "chosen", "later", false, nil, time.Now()).
		AddRow("bc-1", "ev-1", "waiting", "earlier", true, nil, time.Now().Add(-time.Hour))
	mock.ExpectQuery("SELECT id, event_id, audience").
		WithArgs("ev-1").
		WillReturnRows(rows)

	broadcasts, err := repo.ListByEvent(context.Background(), "ev-1")
	require.NoError(t, err)
	require.Len(t, broadcasts, 2)
	assert.Equal(t, "bc-2", broadcasts[0].ID)
}
