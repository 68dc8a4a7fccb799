package server

// Server is the process lifecycle handed to cmd/server.
//
// RunServer blocks until SIGINT, SIGTERM or SIGQUIT arrives or the listener
// fails. Background workers started with it are stopped before it returns.
type Server interface {
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests
	// up to the shutdown timeout.
	Shutdown()
}
