package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
	appErrors "github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/errors"
)

type countingEventRepo struct {
	event *models.Event
	gets  int
}

func (r *countingEventRepo) GetByID(context.Context, string) (*models.Event, error) {
	r.gets++
	return r.event, nil
}

func (r *countingEventRepo) Create(_ context.Context, event *models.Event) error {
	r.event = event
	return nil
}

func (r *countingEventRepo) ListByOrganizer(context.Context, string) ([]models.Event, error) {
	if r.event == nil {
		return nil, nil
	}
	return []models.Event{*r.event}, nil
}

func TestEventGetByIDUsesCache(t *testing.T) {
	repo := &countingEventRepo{event: &models.Event{ID: "evt-1", Title: "Swim Lessons"}}
	svc := NewEventService(repo, newMemoryCache(), time.Minute, nil, zap.NewNop())

	for i := 0; i < 3; i++ {
		event, err := svc.GetByID(context.Background(), "evt-1")
		require.NoError(t, err)
		assert.Equal(t, "Swim Lessons", event.Title)
	}
	assert.Equal(t, 1, repo.gets)
}

func TestEventCreateAssignsOrganizer(t *testing.T) {
	repo := &countingEventRepo{}
	svc := NewEventService(repo, nil, time.Minute, nil, zap.NewNop())

	event := &models.Event{Title: "Swim Lessons", Capacity: 20}
	require.NoError(t, svc.Create(context.Background(), event, "org-1"))
	require.NotNil(t, repo.event.OrganizerID)
	assert.Equal(t, "org-1", *repo.event.OrganizerID)
}

func TestEventCreateRequiresTitle(t *testing.T) {
	svc := NewEventService(&countingEventRepo{}, nil, time.Minute, nil, zap.NewNop())

	err := svc.Create(context.Background(), &models.Event{}, "org-1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
