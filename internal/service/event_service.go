package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
	appErrors "github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/errors"
)

type eventRepo interface {
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, event *models.Event) error
	ListByOrganizer(ctx context.Context, organizerID string) ([]models.Event, error)
}

// EventService manages events. Reads sit behind a short cache because every
// notify call loads the event for its title and organizer.
type EventService struct {
	events    eventRepo
	cache     unreadCache
	cacheTTL  time.Duration
	validator *validator.Validate
	logger    *zap.Logger
}

// NewEventService constructs the service.
func NewEventService(events eventRepo, cache unreadCache, cacheTTL time.Duration, validate *validator.Validate, logger *zap.Logger) *EventService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &EventService{events: events, cache: cache, cacheTTL: cacheTTL, validator: validate, logger: logger}
}

func eventCacheKey(id string) string { return fmt.Sprintf("event:%s", id) }

// GetByID returns one event, served from cache when fresh. A missing event
// surfaces as sql.ErrNoRows so callers can map it to not-found uniformly.
func (s *EventService) GetByID(ctx context.Context, id string) (*models.Event, error) {
	key := eventCacheKey(id)
	if s.cache != nil {
		var cached models.Event
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		} else if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("event cache read failed", zap.String("event_id", id), zap.Error(err))
		}
	}

	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, event, s.cacheTTL); err != nil {
			s.logger.Warn("event cache write failed", zap.String("event_id", id), zap.Error(err))
		}
	}
	return event, nil
}

// Create stores a new event owned by the given organizer.
func (s *EventService) Create(ctx context.Context, event *models.Event, organizerID string) error {
	if event.Title == "" {
		return appErrors.Clone(appErrors.ErrValidation, "event title required")
	}
	if organizerID != "" {
		event.OrganizerID = &organizerID
	}
	if err := s.events.Create(ctx, event); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create event")
	}
	return nil
}

// ListByOrganizer returns the organizer's events, newest first.
func (s *EventService) ListByOrganizer(ctx context.Context, organizerID string) ([]models.Event, error) {
	events, err := s.events.ListByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list events")
	}
	return events, nil
}
