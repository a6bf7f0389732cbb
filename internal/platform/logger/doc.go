// Package logger configures the application's structured logging and
// provides helpers for carrying request-scoped loggers in a context.
package logger
