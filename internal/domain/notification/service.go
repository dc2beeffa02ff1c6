package notification

import "context"

type Service interface {
	Notify(ctx context.Context, userID string, notifType Type, message string, relatedID string)
	ListByUser(ctx context.Context, userID string) ([]Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context, userID string) (int64, error)
	Delete(ctx context.Context, id string) error
}
