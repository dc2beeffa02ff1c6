package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/naxrita/hrms-backend-go/internal/domain/notification"
)

// inboxLimit caps how many notifications a single fetch returns.
const inboxLimit = 50

type NotificationService struct {
	notification.NotificationRepository
	logger *slog.Logger
	now    func() time.Time
}

func NewNotificationService(repository notification.NotificationRepository, logger *slog.Logger) *NotificationService {
	return &NotificationService{
		NotificationRepository: repository,
		logger:                 logger,
		now:                    time.Now,
	}
}

// Notify stores a notification for a user. Failures are logged and
// swallowed so the triggering operation never fails on a side effect.
func (s *NotificationService) Notify(ctx context.Context, userID string, notifType notification.Type, message string, relatedID string) {
	n := &notification.Notification{
		UserID:    userID,
		Type:      notifType,
		Message:   message,
		CreatedAt: s.now(),
	}
	if relatedID != "" {
		n.RelatedID = &relatedID
	}

	if err := s.NotificationRepository.Create(ctx, n); err != nil {
		s.logger.ErrorContext(ctx, "failed to create notification",
			slog.String("user_id", userID),
			slog.String("type", string(notifType)),
			slog.Any("error", err))
	}
}

func (s *NotificationService) ListByUser(ctx context.Context, userID string) ([]notification.Notification, error) {
	notifications, err := s.NotificationRepository.ListByUser(ctx, userID, inboxLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	if err := s.NotificationRepository.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	count, err := s.NotificationRepository.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return count, nil
}

func (s *NotificationService) Delete(ctx context.Context, id string) error {
	if err := s.NotificationRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}
