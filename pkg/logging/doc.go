// Package logging provides a process-wide structured logger for SQLit.
//
// The package wraps [log/slog] and exposes a single global logger instance
// that is initialized once and then retrieved via GetLogger. All subsystems
// obtain a logger through this package rather than constructing their own
// slog.Logger values, so that level and destination are controlled from a
// single place.
//
// # Initialisation
//
// Call Init once at program startup:
//
//	if err := logging.Init(logging.Config{Level: logging.LevelDebug, OutputPath: "sqlit.log"}); err != nil {
//	    log.Fatal(err)
//	}
//
// If GetLogger is called before Init, a WARN-level stderr logger is created
// lazily (via sync.Once) so that library callers never see a nil logger.
//
// # Context helpers
//
//	log := logging.WithTable(name)       // adds table field
//	log := logging.WithStatement("CREATE TABLE")
//	log := logging.WithComponent("catalog")
package logging
