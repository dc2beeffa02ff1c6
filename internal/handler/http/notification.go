package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/naxrita/hrms-backend-go/internal/domain/notification"
	"github.com/naxrita/hrms-backend-go/internal/handler/http/response"
)

type NotificationHandler interface {
	ListByUser(w http.ResponseWriter, r *http.Request)
	MarkRead(w http.ResponseWriter, r *http.Request)
	MarkAllRead(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type NotificationHandlerImpl struct {
	notificationService notification.Service
}

func NewNotificationHandler(notificationService notification.Service) NotificationHandler {
	return &NotificationHandlerImpl{notificationService: notificationService}
}

// ListByUser implements NotificationHandler.
func (n *NotificationHandlerImpl) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	notifications, err := n.notificationService.ListByUser(r.Context(), userID)
	if err != nil {
		slog.Error("ListByUser notifications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.OK(w, notification.ToListResponse(notifications))
}

// MarkRead implements NotificationHandler.
func (n *NotificationHandlerImpl) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := n.notificationService.MarkRead(r.Context(), id); err != nil {
		slog.Error("MarkRead notification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Message(w, http.StatusOK, "Notification marked as read")
}

// MarkAllRead implements NotificationHandler.
func (n *NotificationHandlerImpl) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	updated, err := n.notificationService.MarkAllRead(r.Context(), userID)
	if err != nil {
		slog.Error("MarkAllRead notifications service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Message(w, http.StatusOK, fmt.Sprintf("%d notifications marked as read", updated))
}

// Delete implements NotificationHandler.
func (n *NotificationHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := n.notificationService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete notification service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Message(w, http.StatusOK, "Notification deleted")
}
