// Package logging provides structured logging for the pinpad tools.
//
// This package wraps zap with convenience functions for the logging
// patterns used across the terminal front end and the simulator server.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed input tracing (button events, carousel commits)
//   - Info: Normal operations (sessions, connections, outcomes)
//   - Warn: Non-fatal issues (malformed simulator messages, drops)
//   - Error: Fatal issues (startup failures, listener errors)
//
// # Secret Hygiene
//
// Nothing in this package ever logs PIN content. Session helpers record
// buffer lengths and action names only, and Mask is available for the
// rare place that must echo a secret-shaped string:
//
//	logging.LogSessionEvent(sessionID, "confirmed", len(pin))
//	logging.Debug("echo", zap.String("pin", logging.Mask(pin)))
//
// # Configuration
//
// Logging is controlled by the PINPAD_LOG_LEVEL environment variable and
// is silent when it is unset, so the Bubble Tea UI renders without noise:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
