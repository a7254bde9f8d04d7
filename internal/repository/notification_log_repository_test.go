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

func TestNotificationLogRepositoryCreateDefaults(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewNotificationLogRepository(db)

	mock.ExpectExec("INSERT INTO notification_logs").
		WillReturnResult(sqlmock.NewResult(1, 1))

	log := &models.NotificationLog{
		EventID:        "ev-1",
		EventTitle:     "Pottery Night",
		Message:        "msg",
		Audience:       models.AudienceWaiting,
		RecipientCount: 12,
		SenderID:       "org-1",
	}
	require.NoError(t, repo.Create(context.Background(), log))
	assert.NotEmpty(t, log.ID)
	assert.Equal(t, "broadcast", log.Type)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationLogRepositoryListFiltersByEventAndAudience(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewNotificationLogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "event_id", "event_title", "message", "audience", "recipient_count", "type", "sender_id", "timestamp"}).
		AddRow("log-1", "ev-1", "Pottery Night", "msg", "chosen", 4, "broadcast", "org-1", time.Now())
	mock.ExpectQuery("SELECT id, event_id, event_title").
		WithArgs("ev-1", "chosen").
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM notification_logs").
		WithArgs("ev-1", "chosen").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	audience := models.AudienceChosen
	logs, total, err := repo.List(context.Background(), models.NotificationLogFilter{EventID: "ev-1", Audience: &audience})
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, 4, logs[0].RecipientCount)
}
