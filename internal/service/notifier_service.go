package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/dto"
	"github.com/CMPUT301F25quartz/quartz-events-sub000/internal/models"
	appErrors "github.com/CMPUT301F25quartz/quartz-events-sub000/pkg/errors"
)

// DefaultBatchLimit caps recipients per fan-out transaction. Each recipient
// contributes two inbox rows, so 450 keeps a transaction under a
// 500-operation ceiling.
const DefaultBatchLimit = 450

type broadcastWriter interface {
	Create(ctx context.Context, broadcast *models.Broadcast) error
}

type waitingListSnapshotter interface {
	ListByEvent(ctx context.Context, eventID string) ([]models.WaitingListEntry, error)
}

type inboxBatchWriter interface {
	InsertBatch(ctx context.Context, items []models.InboxItem) error
}

type eventReader interface {
	GetByID(ctx context.Context, id string) (*models.Event, error)
}

type notificationPrefReader interface {
	NotificationPreference(ctx context.Context, userID string) (bool, error)
}

// auditLogger records completed fan-outs for admins. Implementations are
// best-effort: a failed log write must never surface to the notify caller.
type auditLogger interface {
	Log(log models.NotificationLog)
}

// NotifierService is the audience-targeted broadcast engine. Every notify
// call writes a durable broadcast record first, classifies the waiting-list
// snapshot into the target cohort, and fans inbox items out to both mirrors
// in sequentially committed chunks.
type NotifierService struct {
	broadcasts  broadcastWriter
	waitingList waitingListSnapshotter
	inbox       inboxBatchWriter
	events      eventReader
	prefs       notificationPrefReader
	audit       auditLogger
	metrics     *MetricsService
	validator   *validator.Validate
	logger      *zap.Logger
	batchLimit  int
}

// NewNotifierService constructs the service.
func NewNotifierService(
	broadcasts broadcastWriter,
	waitingList waitingListSnapshotter,
	inbox inboxBatchWriter,
	events eventReader,
	prefs notificationPrefReader,
	audit auditLogger,
	metrics *MetricsService,
	validate *validator.Validate,
	logger *zap.Logger,
	batchLimit int,
) *NotifierService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if batchLimit <= 0 {
		batchLimit = DefaultBatchLimit
	}
	svc := &NotifierService{
		broadcasts:  broadcasts,
		waitingList: waitingList,
		inbox:       inbox,
		events:      events,
		prefs:       prefs,
		audit:       audit,
		metrics:     metrics,
		validator:   validate,
		logger:      logger,
		batchLimit:  batchLimit,
	}
	svc.validator.RegisterValidation("audience", func(fl validator.FieldLevel) bool {
		return models.Audience(strings.ToLower(fl.Field().String())).Valid()
	})
	return svc
}

// NotifyAudience broadcasts a message to every waiting-list entrant in the
// target cohort. Exactly one of the returned response or error is non-nil.
func (s *NotifierService) NotifyAudience(ctx context.Context, eventID string, req dto.NotifyAudienceRequest, actor *models.JWTClaims) (*dto.NotifyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid notification payload")
	}
	audience := models.Audience(strings.ToLower(req.Audience))

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}

	// The broadcast record must land before any inbox write: its id is the
	// only thread tying inbox items back to the message that produced them.
	broadcast := &models.Broadcast{
		EventID:       eventID,
		Audience:      audience,
		Message:       req.Message,
		IncludePoster: req.IncludePoster,
		LinkURL:       req.LinkURL,
	}
	if err := s.broadcasts.Create(ctx, broadcast); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrAuditWriteFailed.Code, appErrors.ErrAuditWriteFailed.Status, appErrors.ErrAuditWriteFailed.Message)
	}

	snapshot, err := s.waitingList.ListByEvent(ctx, eventID)
	if err != nil {
		// The broadcast row is left behind as recorded intent with zero
		// delivery; nothing cleans it up.
		return nil, appErrors.Wrap(err, appErrors.ErrRecipientQueryFailed.Code, appErrors.ErrRecipientQueryFailed.Status, appErrors.ErrRecipientQueryFailed.Message)
	}

	recipients := make([]string, 0, len(snapshot))
	for _, entry := range snapshot {
		if audience.Matches(entry) {
			recipients = append(recipients, entry.EntrantID)
		}
	}

	delivered, err := s.fanOut(ctx, recipients, event, audience, req.Message, req.IncludePoster, req.LinkURL, broadcast.ID)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordBroadcast(string(audience), delivered)
	s.logAudit(event, audience, req.Message, delivered, actor)

	return &dto.NotifyResponse{
		BroadcastID:    broadcast.ID,
		Audience:       audience,
		DeliveredCount: delivered,
	}, nil
}

// NotifySingle sends a one-off message to a single entrant, reusing the
// broadcast-audit and admin-log pattern with exactly one atomic write.
func (s *NotifierService) NotifySingle(ctx context.Context, eventID string, req dto.NotifySingleRequest, actor *models.JWTClaims) (*dto.NotifyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid notification payload")
	}
	audience := models.Audience(strings.ToLower(req.Audience))
	if !audience.Valid() && audience != models.AudienceRemoved {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown audience")
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "event not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load event")
	}

	broadcast := &models.Broadcast{
		EventID:       eventID,
		Audience:      audience,
		Message:       req.Message,
		IncludePoster: req.IncludePoster,
		LinkURL:       req.LinkURL,
	}
	if err := s.broadcasts.Create(ctx, broadcast); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrAuditWriteFailed.Code, appErrors.ErrAuditWriteFailed.Status, appErrors.ErrAuditWriteFailed.Message)
	}

	// Preference lookups never block delivery; any failure means popup on.
	showPopup := true
	if s.prefs != nil {
		if enabled, prefErr := s.prefs.NotificationPreference(ctx, req.RecipientID); prefErr == nil {
			showPopup = enabled
		}
	}

	item := s.buildItem(req.RecipientID, event, audience, req.Message, req.IncludePoster, req.LinkURL, broadcast.ID)
	item.ShowPopup = showPopup
	if err := s.inbox.InsertBatch(ctx, []models.InboxItem{item}); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrChunkCommitFailed.Code, appErrors.ErrChunkCommitFailed.Status, appErrors.ErrChunkCommitFailed.Message)
	}

	s.metrics.RecordBroadcast(string(audience), 1)
	s.logAudit(event, audience, req.Message, 1, actor)

	return &dto.NotifyResponse{
		BroadcastID:    broadcast.ID,
		Audience:       audience,
		DeliveredCount: 1,
	}, nil
}

// fanOut writes one inbox item per recipient into both mirrors, chunked to
// the batch limit and committed strictly in order. The returned count is
// exact on success; a mid-sequence failure aborts without retries, leaving
// earlier chunks durably delivered.
func (s *NotifierService) fanOut(ctx context.Context, recipients []string, event *models.Event, audience models.Audience, message string, includePoster bool, linkURL *string, broadcastID string) (int, error) {
	if len(recipients) == 0 {
		return 0, nil
	}

	chunks := chunkIDs(recipients, s.batchLimit)
	delivered := 0
	for i, chunk := range chunks {
		items := make([]models.InboxItem, 0, len(chunk))
		for _, recipientID := range chunk {
			item := s.buildItem(recipientID, event, audience, message, includePoster, linkURL, broadcastID)
			item.ShowPopup = true
			items = append(items, item)
		}
		if err := s.inbox.InsertBatch(ctx, items); err != nil {
			// The public contract is binary; the partial count is only
			// surfaced here so operators can reconcile.
			s.logger.Error("inbox fan-out aborted",
				zap.String("broadcast_id", broadcastID),
				zap.String("event_id", event.ID),
				zap.Int("failed_chunk", i),
				zap.Int("total_chunks", len(chunks)),
				zap.Int("delivered_before_failure", delivered),
				zap.Error(err),
			)
			s.metrics.RecordChunkCommit(false)
			return 0, appErrors.Wrap(err, appErrors.ErrChunkCommitFailed.Code, appErrors.ErrChunkCommitFailed.Status, appErrors.ErrChunkCommitFailed.Message)
		}
		delivered += len(chunk)
		s.metrics.RecordChunkCommit(true)
	}
	return delivered, nil
}

func (s *NotifierService) buildItem(recipientID string, event *models.Event, audience models.Audience, message string, includePoster bool, linkURL *string, broadcastID string) models.InboxItem {
	return models.InboxItem{
		ID:            uuid.NewString(),
		Type:          audience.InboxType(),
		Audience:      audience,
		EventID:       event.ID,
		EventTitle:    event.Title,
		RecipientID:   recipientID,
		Message:       message,
		IncludePoster: includePoster,
		LinkURL:       linkURL,
		Read:          false,
		BroadcastID:   broadcastID,
	}
}

// logAudit hands the admin record to the best-effort audit sink. The sender
// is the event's owning organizer, with a fixed fallback when absent.
func (s *NotifierService) logAudit(event *models.Event, audience models.Audience, message string, recipientCount int, actor *models.JWTClaims) {
	if s.audit == nil {
		return
	}
	senderID := models.SenderFallback
	if event.OrganizerID != nil && *event.OrganizerID != "" {
		senderID = *event.OrganizerID
	}
	if actor != nil {
		s.logger.Debug("notification audit", zap.String("actor", actor.UserID), zap.String("sender", senderID))
	}
	s.audit.Log(models.NotificationLog{
		EventID:        event.ID,
		EventTitle:     event.Title,
		Message:        message,
		Audience:       audience,
		RecipientCount: recipientCount,
		Type:           "broadcast",
		SenderID:       senderID,
	})
}

// chunkIDs partitions ids into ordered chunks of at most limit entries.
func chunkIDs(ids []string, limit int) [][]string {
	if limit <= 0 {
		limit = DefaultBatchLimit
	}
	chunks := make([][]string, 0, (len(ids)+limit-1)/limit)
	for from := 0; from < len(ids); from += limit {
		to := from + limit
		if to > len(ids) {
			to = len(ids)
		}
		chunks = append(chunks, ids[from:to])
	}
	return chunks
}
