package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
	appErrors "github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/errors"
)

type waitingListRepo interface {
	ListByEvent(ctx context.Context, eventID string) ([]models.WaitingListEntry, error)
	Get(ctx context.Context, eventID, entrantID string) (*models.WaitingListEntry, error)
	Join(ctx context.Context, eventID, entrantID string) error
	Leave(ctx context.Context, eventID, entrantID string) error
	SetResponded(ctx context.Context, eventID, entrantID string, responded models.RespondedState) error
}

// WaitingListService manages entrant membership through its lifecycle:
// join, leave, and the accept/decline reply to an invitation.
type WaitingListService struct {
	waitingList waitingListRepo
	events      eventReader
	logger      *zap.Logger
}

// NewWaitingListService constructs the service.
func NewWaitingListService(waitingList waitingListRepo, events eventReader, logger *zap.Logger) *WaitingListService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WaitingListService{waitingList: waitingList, events: events, logger: logger}
}

// List returns the full snapshot for one event.
func (s *WaitingListService) List(ctx context.Context, eventID string) ([]models.WaitingListEntry, error) {
	entries, err := s.waitingList.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list waiting list")
	}
	return entries, nil
}

// Join registers an entrant on the waiting list.
func (s *WaitingListService) Join(ctx context.Context, eventID, entrantID string) error {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}

	if existing, err := s.waitingList.Get(ctx, eventID, entrantID); err == nil && existing != nil {
		return appErrors.Clone(appErrors.ErrConflict, "entrant already on waiting list")
	} else if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check membership")
	}

	if err := s.waitingList.Join(ctx, eventID, entrantID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to join waiting list")
	}
	s.logger.Info("entrant joined", zap.String("event_id", eventID), zap.String("entrant_id", entrantID))
	return nil
}

// Leave removes the entrant's membership outright.
func (s *WaitingListService) Leave(ctx context.Context, eventID, entrantID string) error {
	if _, err := s.waitingList.Get(ctx, eventID, entrantID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "entrant not on waiting list")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check membership")
	}
	if err := s.waitingList.Leave(ctx, eventID, entrantID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to leave waiting list")
	}
	return nil
}

// Accept records a chosen entrant taking their spot. The entry stays chosen;
// the accepted reply is what moves them into the selected cohort.
func (s *WaitingListService) Accept(ctx context.Context, eventID, entrantID string) error {
	return s.respond(ctx, eventID, entrantID, models.RespondedAccepted)
}

// Decline records a chosen entrant giving up their spot.
func (s *WaitingListService) Decline(ctx context.Context, eventID, entrantID string) error {
	return s.respond(ctx, eventID, entrantID, models.RespondedDeclined)
}

func (s *WaitingListService) respond(ctx context.Context, eventID, entrantID string, responded models.RespondedState) error {
	if err := s.waitingList.SetResponded(ctx, eventID, entrantID, responded); err != nil {
		return appErrors.Wrap(err, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, "entrant has no pending invitation")
	}
	s.logger.Info("invitation answered",
		zap.String("event_id", eventID),
		zap.String("entrant_id", entrantID),
		zap.String("responded", string(responded)),
	)
	return nil
}
