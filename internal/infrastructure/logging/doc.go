// Package logging provides structured logging using uber/zap.
//
// This package offers production-ready logging with two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// The level comes from LOG_LEVEL and the mode from LOG_DEV (see config).
// Request access lines are written by middleware.RequestLogger, filesystem
// failures by the HTTP handlers with the operation error kind as a field.
//
// Example Usage:
//
//	logger := logging.FromLevel("debug", true)
//	logger.Info("Server starting", zap.String("port", "3000"))
//	logger.Warn("read failed", zap.String("kind", "read"), zap.Error(err))
package logging
