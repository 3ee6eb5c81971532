package logging

import (
	"log/slog"
)

// WithTable creates a logger with table context.
// Use this for catalog and row store operations.
//
// Example:
//
//	log := logging.WithTable("users")
//	log.Info("table registered", "columns", 3)
func WithTable(tableName string) *slog.Logger {
	return GetLogger().With("table", tableName)
}

// WithDatabase creates a logger carrying the database identifier.
func WithDatabase(name string) *slog.Logger {
	return GetLogger().With("database", name)
}

// WithStatement creates a logger with the kind of statement being executed.
//
// Example:
//
//	log := logging.WithStatement("SELECT")
//	log.Debug("projected rows", "rows", n)
func WithStatement(kind string) *slog.Logger {
	return GetLogger().With("statement", kind)
}

// WithComponent creates a logger with component/subsystem context.
//
// Example:
//
//	log := logging.WithComponent("catalog")
//	log.Info("component initialized")
func WithComponent(component string) *slog.Logger {
	return GetLogger().With("component", component)
}

// WithError creates a logger with error context.
// Use this when logging errors to include the error in structured format.
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
