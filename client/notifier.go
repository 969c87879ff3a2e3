package client

// Notifier surfaces user-visible messages from the request pipeline. The
// pipeline guarantees at most one call per logical failure event, no matter
// how many concurrent requests hit the same root cause.
type Notifier interface {
	// SessionExpired is called exactly once when the session is terminated.
	// Implementations should point the user back at the login entry point.
	SessionExpired()

	// PermissionDenied is called when a request fails with a 403.
	PermissionDenied()

	// ServerError is called when a request fails with a 5xx status.
	ServerError()
}

// NopNotifier discards all notifications. Useful for tests and for embedding
// the client where no user is watching.
type NopNotifier struct{}

func (NopNotifier) SessionExpired()   {}
func (NopNotifier) PermissionDenied() {}
func (NopNotifier) ServerError()      {}
