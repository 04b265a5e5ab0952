package ports

// Notification is a user-facing message describing a completed mutation
// ("item added", "quantity updated", …).
type Notification struct {
	UserID  string
	Event   string
	Message string
}

// Notifier delivers notifications. Implementations must not block the
// calling operation.
type Notifier interface {
	Notify(n Notification)
}
