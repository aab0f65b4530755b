// Package logger provides a structured logging facility based on Zap.
//
// It returns a configured logger instance for the chosen environment
// (console encoding for development, JSON for production) and integrates
// with the Fiber web framework.
//
// # Request correlation
//
// WithRayID extracts the RayID (request ID) from a Fiber context and
// attaches it to the log entry, so every log line produced while serving
// a request, including reload logs triggered through the refresh
// endpoint, can be correlated.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
