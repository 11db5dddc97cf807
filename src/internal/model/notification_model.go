package model

type NotificationResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Category  string `json:"category,omitempty"`
	Priority  string `json:"priority,omitempty"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unread_count"`
}
