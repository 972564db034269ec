package server

// Server runs the accounts API until the process is asked to stop.
type Server interface {
	// RunServer blocks until SIGINT, SIGTERM or SIGQUIT arrives or the
	// listener fails, and returns the listener error if there was one.
	RunServer() error

	// Shutdown drains in-flight requests within the configured shutdown
	// timeout.
	Shutdown()
}
