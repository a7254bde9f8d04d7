package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/dto"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
	appErrors "github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/errors"
)

type inboxReader interface {
	ListForUser(ctx context.Context, userID string, page, pageSize int) ([]models.InboxItem, int, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, userID, inboxID string) error
}

type unreadCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// InboxService serves the entrant-facing inbox reads. Unread counts are the
// hot path (clients poll them for badges) so they sit behind a short Redis
// TTL; everything else reads through.
type InboxService struct {
	inbox     inboxReader
	cache     unreadCache
	logger    *zap.Logger
	unreadTTL time.Duration
}

// NewInboxService constructs the service.
func NewInboxService(inbox inboxReader, cache unreadCache, unreadTTL time.Duration, logger *zap.Logger) *InboxService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if unreadTTL <= 0 {
		unreadTTL = 30 * time.Second
	}
	return &InboxService{inbox: inbox, cache: cache, logger: logger, unreadTTL: unreadTTL}
}

func unreadCacheKey(userID string) string {
	return fmt.Sprintf("inbox:unread:%s", userID)
}

// List returns one page of a user's inbox, newest first.
func (s *InboxService) List(ctx context.Context, userID string, page, pageSize int) ([]dto.InboxItemView, int, error) {
	items, total, err := s.inbox.ListForUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list inbox")
	}

	views := make([]dto.InboxItemView, 0, len(items))
	for _, item := range items {
		views = append(views, dto.InboxItemView{
			ID:            item.ID,
			Type:          item.Type,
			Audience:      item.Audience,
			EventID:       item.EventID,
			EventTitle:    item.EventTitle,
			Message:       item.Message,
			IncludePoster: item.IncludePoster,
			LinkURL:       item.LinkURL,
			Read:          item.Read,
			CreatedAt:     item.CreatedAt,
		})
	}
	return views, total, nil
}

// UnreadCount returns the user's unread total, served from cache when fresh.
func (s *InboxService) UnreadCount(ctx context.Context, userID string) (int, error) {
	key := unreadCacheKey(userID)
	if s.cache != nil {
		var cached int
		if err := s.cache.Get(ctx, key, &cached); err == nil {
			return cached, nil
		} else if !errors.Is(err, appErrors.ErrCacheMiss) {
			s.logger.Warn("unread cache read failed", zap.String("user_id", userID), zap.Error(err))
		}
	}

	count, err := s.inbox.UnreadCount(ctx, userID)
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count unread inbox")
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, count, s.unreadTTL); err != nil {
			s.logger.Warn("unread cache write failed", zap.String("user_id", userID), zap.Error(err))
		}
	}
	return count, nil
}

// MarkRead flips one item to read on both mirrors and drops the stale
// cached unread count.
func (s *InboxService) MarkRead(ctx context.Context, userID, inboxID string) error {
	if err := s.inbox.MarkRead(ctx, userID, inboxID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "inbox item not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to mark inbox item read")
	}

	if s.cache != nil {
		if err := s.cache.DeleteByPattern(ctx, unreadCacheKey(userID)); err != nil {
			s.logger.Warn("unread cache invalidation failed", zap.String("user_id", userID), zap.Error(err))
		}
	}
	return nil
}
