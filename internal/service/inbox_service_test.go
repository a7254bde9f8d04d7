package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
	appErrors "github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/errors"
)

type stubInboxReader struct {
	items       []models.InboxItem
	total       int
	unread      int
	unreadCalls int
	markReadErr error
	marked      []string
}

func (s *stubInboxReader) ListForUser(context.Context, string, int, int) ([]models.InboxItem, int, error) {
	return s.items, s.total, nil
}

func (s *stubInboxReader) UnreadCount(context.Context, string) (int, error) {
	s.unreadCalls++
	return s.unread, nil
}

func (s *stubInboxReader) MarkRead(_ context.Context, _ string, inboxID string) error {
	if s.markReadErr != nil {
		return s.markReadErr
	}
	s.marked = append(s.marked, inboxID)
	return nil
}

type memoryCache struct {
	values  map[string][]byte
	deleted []string
}

func newMemoryCache() *memoryCache { return &memoryCache{values: map[string][]byte{}} }

func (c *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := c.values[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.values[key] = raw
	return nil
}

func (c *memoryCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.deleted = append(c.deleted, pattern)
	delete(c.values, pattern)
	return nil
}

func TestUnreadCountCachesResult(t *testing.T) {
	repo := &stubInboxReader{unread: 7}
	cache := newMemoryCache()
	svc := NewInboxService(repo, cache, time.Minute, zap.NewNop())

	count, err := svc.UnreadCount(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	// Second read is served from cache.
	count, err = svc.UnreadCount(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.Equal(t, 1, repo.unreadCalls)
}

func TestMarkReadInvalidatesUnreadCache(t *testing.T) {
	repo := &stubInboxReader{unread: 3}
	cache := newMemoryCache()
	svc := NewInboxService(repo, cache, time.Minute, zap.NewNop())

	_, err := svc.UnreadCount(context.Background(), "u1")
	require.NoError(t, err)

	require.NoError(t, svc.MarkRead(context.Background(), "u1", "item-1"))
	assert.Equal(t, []string{"item-1"}, repo.marked)
	assert.Contains(t, cache.deleted, "inbox:unread:u1")
}

func TestMarkReadUnknownItemIsNotFound(t *testing.T) {
	repo := &stubInboxReader{markReadErr: sql.ErrNoRows}
	svc := NewInboxService(repo, newMemoryCache(), time.Minute, zap.NewNop())

	err := svc.MarkRead(context.Background(), "u1", "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestListMapsItemsToViews(t *testing.T) {
	link := "https://example.com/event"
	repo := &stubInboxReader{
		items: []models.InboxItem{{
			ID:         "i1",
			Type:       "invite",
			Audience:   models.AudienceChosen,
			EventID:    "evt-1",
			EventTitle: "Swim Lessons",
			Message:    "You were chosen",
			LinkURL:    &link,
		}},
		total: 1,
	}
	svc := NewInboxService(repo, nil, time.Minute, zap.NewNop())

	views, total, err := svc.List(context.Background(), "u1", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, views, 1)
	assert.Equal(t, "invite", views[0].Type)
	assert.Equal(t, "Swim Lessons", views[0].EventTitle)
	require.NotNil(t, views[0].LinkURL)
	assert.Equal(t, link, *views[0].LinkURL)
}

func TestUnreadCountWithoutCacheHitsRepoEachTime(t *testing.T) {
	repo := &stubInboxReader{unread: 2}
	svc := NewInboxService(repo, nil, time.Minute, zap.NewNop())

	for i := 0; i < 3; i++ {
		count, err := svc.UnreadCount(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	}
	assert.Equal(t, 3, repo.unreadCalls)
}

func TestUnreadCountSurvivesCacheFailure(t *testing.T) {
	repo := &stubInboxReader{unread: 4}
	svc := NewInboxService(repo, failingCache{}, time.Minute, zap.NewNop())

	count, err := svc.UnreadCount(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

type failingCache struct{}

func (failingCache) Get(context.Context, string, interface{}) error {
	return errors.New("redis: connection refused")
}
func (failingCache) Set(context.Context, string, interface{}, time.Duration) error {
	return errors.New("redis: connection refused")
}
func (failingCache) DeleteByPattern(context.Context, string) error {
	return errors.New("redis: connection refused")
}
