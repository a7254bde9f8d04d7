package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/dto"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
	appErrors "github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/errors"
)

type stubDrawWaitingList struct {
	pool      []models.WaitingListEntry
	listErr   error
	marked    []string
	markedErr error
}

func (s *stubDrawWaitingList) ListByStatus(_ context.Context, _ string, status models.EntrantStatus) ([]models.WaitingListEntry, error) {
	if status != models.StatusWaiting {
		return nil, nil
	}
	return s.pool, s.listErr
}

func (s *stubDrawWaitingList) MarkChosen(_ context.Context, _ string, ids []string) error {
	if s.markedErr != nil {
		return s.markedErr
	}
	s.marked = ids
	return nil
}

type stubSingleNotifier struct {
	sent []dto.NotifySingleRequest
	err  error
}

func (s *stubSingleNotifier) NotifySingle(_ context.Context, _ string, req dto.NotifySingleRequest, _ *models.JWTClaims) (*dto.NotifyResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.sent = append(s.sent, req)
	return &dto.NotifyResponse{DeliveredCount: 1}, nil
}

func waitingPool(ids ...string) []models.WaitingListEntry {
	pool := make([]models.WaitingListEntry, 0, len(ids))
	for _, id := range ids {
		pool = append(pool, models.WaitingListEntry{EntrantID: id, Status: models.StatusWaiting})
	}
	return pool
}

func newDrawService(wl *stubDrawWaitingList, n *stubSingleNotifier) *DrawService {
	svc := NewDrawService(wl, n, nil, nil, zap.NewNop())
	// Deterministic "shuffle" for assertions.
	svc.shuffle = func(int, func(i, j int)) {}
	return svc
}

func TestRunDrawPromotesAndInvitesWinners(t *testing.T) {
	wl := &stubDrawWaitingList{pool: waitingPool("u1", "u2", "u3", "u4")}
	notifier := &stubSingleNotifier{}
	svc := newDrawService(wl, notifier)

	resp, err := svc.RunDraw(context.Background(), "evt-1", dto.RunDrawRequest{Count: 2}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, resp.DrawnCount)
	assert.Equal(t, []string{"u1", "u2"}, resp.WinnerIDs)
	assert.Equal(t, []string{"u1", "u2"}, wl.marked)
	require.Len(t, notifier.sent, 2)
	assert.Equal(t, "u1", notifier.sent[0].RecipientID)
	assert.Equal(t, string(models.AudienceChosen), notifier.sent[0].Audience)
}

func TestRunDrawDrainsShortPool(t *testing.T) {
	wl := &stubDrawWaitingList{pool: waitingPool("u1", "u2")}
	svc := newDrawService(wl, &stubSingleNotifier{})

	resp, err := svc.RunDraw(context.Background(), "evt-1", dto.RunDrawRequest{Count: 10}, nil)
	require.NoError(t, err)

	assert.Equal(t, 10, resp.Requested)
	assert.Equal(t, 2, resp.DrawnCount)
}

func TestRunDrawSucceedsWhenInvitationsFail(t *testing.T) {
	wl := &stubDrawWaitingList{pool: waitingPool("u1")}
	notifier := &stubSingleNotifier{err: errors.New("fan-out down")}
	svc := newDrawService(wl, notifier)

	resp, err := svc.RunDraw(context.Background(), "evt-1", dto.RunDrawRequest{Count: 1}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, resp.DrawnCount)
	assert.Equal(t, []string{"u1"}, wl.marked)
}

func TestRunDrawFailsWhenCommitFails(t *testing.T) {
	wl := &stubDrawWaitingList{pool: waitingPool("u1"), markedErr: errors.New("update waiting_list: deadlock")}
	notifier := &stubSingleNotifier{}
	svc := newDrawService(wl, notifier)

	_, err := svc.RunDraw(context.Background(), "evt-1", dto.RunDrawRequest{Count: 1}, nil)
	require.Error(t, err)

	assert.Equal(t, appErrors.ErrInternal.Code, appErrors.FromError(err).Code)
	assert.Empty(t, notifier.sent)
}

func TestRunDrawRejectsZeroCount(t *testing.T) {
	svc := newDrawService(&stubDrawWaitingList{}, &stubSingleNotifier{})

	_, err := svc.RunDraw(context.Background(), "evt-1", dto.RunDrawRequest{Count: 0}, nil)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestDrawReplacementPromotesOne(t *testing.T) {
	wl := &stubDrawWaitingList{pool: waitingPool("u7", "u8")}
	svc := newDrawService(wl, &stubSingleNotifier{})

	resp, err := svc.DrawReplacement(context.Background(), "evt-1", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.DrawnCount)
}
