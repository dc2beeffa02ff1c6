package notification

type Response struct {
	ID        string  `json:"_id"`
	UserID    string  `json:"user_id"`
	Type      string  `json:"type"`
	Message   string  `json:"message"`
	RelatedID *string `json:"related_id,omitempty"`
	Read      bool    `json:"read"`
	CreatedAt string  `json:"createdAt"`
}

// ListResponse is the inbox payload: the most recent notifications
// plus the unread count for the badge.
type ListResponse struct {
	Notifications []Response `json:"notifications"`
	UnreadCount   int        `json:"unreadCount"`
}

func ToResponse(n *Notification) Response {
	return Response{
		ID:        n.ID,
		UserID:    n.UserID,
		Type:      string(n.Type),
		Message:   n.Message,
		RelatedID: n.RelatedID,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func ToListResponse(notifications []Notification) ListResponse {
	out := ListResponse{Notifications: make([]Response, 0, len(notifications))}
	for i := range notifications {
		out.Notifications = append(out.Notifications, ToResponse(&notifications[i]))
		if !notifications[i].Read {
			out.UnreadCount++
		}
	}
	return out
}
