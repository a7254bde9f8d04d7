package service

import (
	"context"
	"math/rand"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/dto"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
	appErrors "github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/errors"
)

type drawWaitingListRepo interface {
	ListByStatus(ctx context.Context, eventID string, status models.EntrantStatus) ([]models.WaitingListEntry, error)
	MarkChosen(ctx context.Context, eventID string, entrantIDs []string) error
}

type singleNotifier interface {
	NotifySingle(ctx context.Context, eventID string, req dto.NotifySingleRequest, actor *models.JWTClaims) (*dto.NotifyResponse, error)
}

// DrawService runs the lottery: it samples entrants still waiting, promotes
// them to chosen in one batch, and invites each winner. Invitations are
// best-effort; the draw itself succeeds once the batch commit lands.
type DrawService struct {
	waitingList drawWaitingListRepo
	notifier    singleNotifier
	metrics     *MetricsService
	validator   *validator.Validate
	logger      *zap.Logger
	shuffle     func(n int, swap func(i, j int))
}

// NewDrawService constructs the service.
func NewDrawService(waitingList drawWaitingListRepo, notifier singleNotifier, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *DrawService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DrawService{
		waitingList: waitingList,
		notifier:    notifier,
		metrics:     metrics,
		validator:   validate,
		logger:      logger,
		shuffle:     rand.Shuffle,
	}
}

// RunDraw selects up to req.Count uniformly random waiting entrants.
// Requesting more winners than the pool holds drains the pool.
func (s *DrawService) RunDraw(ctx context.Context, eventID string, req dto.RunDrawRequest, actor *models.JWTClaims) (*dto.DrawResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid draw payload")
	}

	pool, err := s.waitingList.ListByStatus(ctx, eventID, models.StatusWaiting)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRecipientQueryFailed.Code, appErrors.ErrRecipientQueryFailed.Status, appErrors.ErrRecipientQueryFailed.Message)
	}

	winners := s.sample(pool, req.Count)
	if err := s.waitingList.MarkChosen(ctx, eventID, winners); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit draw winners")
	}
	s.metrics.RecordDraw(len(winners))

	s.inviteWinners(ctx, eventID, winners, actor)

	return &dto.DrawResponse{
		EventID:    eventID,
		Requested:  req.Count,
		DrawnCount: len(winners),
		WinnerIDs:  winners,
	}, nil
}

// DrawReplacement promotes one random waiting entrant, used when a chosen
// entrant declines their spot.
func (s *DrawService) DrawReplacement(ctx context.Context, eventID string, actor *models.JWTClaims) (*dto.DrawResponse, error) {
	return s.RunDraw(ctx, eventID, dto.RunDrawRequest{Count: 1}, actor)
}

func (s *DrawService) sample(pool []models.WaitingListEntry, count int) []string {
	ids := make([]string, len(pool))
	for i, entry := range pool {
		ids[i] = entry.EntrantID
	}
	s.shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	if count < len(ids) {
		ids = ids[:count]
	}
	return ids
}

func (s *DrawService) inviteWinners(ctx context.Context, eventID string, winners []string, actor *models.JWTClaims) {
	if s.notifier == nil {
		return
	}
	for _, winnerID := range winners {
		_, err := s.notifier.NotifySingle(ctx, eventID, dto.NotifySingleRequest{
			RecipientID: winnerID,
			Message:     "You were selected in the draw. Accept or decline your spot.",
			Audience:    string(models.AudienceChosen),
		}, actor)
		if err != nil {
			// The winner is already committed as chosen; they still see the
			// invitation through their waiting-list status.
			s.logger.Warn("winner invitation failed",
				zap.String("event_id", eventID),
				zap.String("entrant_id", winnerID),
				zap.Error(err),
			)
		}
	}
}
