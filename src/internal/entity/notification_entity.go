package entity

type NotificationType string

const (
	NotifySuccess NotificationType = "success"
	NotifyWarning NotificationType = "warning"
	NotifyInfo    NotificationType = "info"
	NotifyError   NotificationType = "error"
)

type NotificationCategory string

const (
	CategoryTransaction NotificationCategory = "transaction"
	CategorySecurity    NotificationCategory = "security"
	CategoryMarket      NotificationCategory = "market"
	CategoryAccount     NotificationCategory = "account"
	CategorySystem      NotificationCategory = "system"
)

type NotificationData struct {
	ID        string               `json:"id"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Type      NotificationType     `json:"type"`
	Category  NotificationCategory `json:"category,omitempty"`
	Priority  string               `json:"priority,omitempty"`
	Timestamp string               `json:"timestamp"`
	Read      bool                 `json:"read"`
}
