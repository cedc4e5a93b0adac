package ports

// Severity classifies a user-visible notification.
type Severity string

const (
	SeveritySuccess     Severity = "success"
	SeverityDestructive Severity = "destructive"
)

// Notification is a toast shown to the user. Fire-and-forget: no return
// value, no retry.
type Notification struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Notifier accepts notifications for eventual display.
type Notifier interface {
	Notify(n Notification)
}
