// Package kazlog provides named leveled loggers that fan records out to
// pluggable handlers, with positional string formatting and per-call-site
// warning deduplication.
//
// # Features
//
//   - Named loggers looked up lazily from a Context registry
//   - Package-level functions on a default root logger (no setup needed)
//   - Ordered handler fan-out: console, file, or your own Handler
//   - Severity thresholds per logger: NONE, ERROR, WARN, INFO, DEBUG
//   - Positional template formatting: Format("{0}-{1}", 42, "x")
//   - WarnOnce: at most one warning per (file, line) call site
//   - Automatic call-site capture, or explicit sites via Here()
//   - Root threshold filtering via the KAZLOG_LEVEL environment variable
//
// # Usage
//
// Attach a handler to the root logger once at startup:
//
//	kazlog.Root().AddHandler(kazlog.NewConsoleHandler())
//	kazlog.Info("server started")
//
// Named loggers share handlers and are created on first lookup:
//
//	fh, err := kazlog.NewFileHandler("./app.log")
//	if err != nil {
//		// the file could not be opened; fix the configuration
//	}
//	db := kazlog.GetLogger("db")
//	db.AddHandler(fh)
//	db.SetThreshold(kazlog.LevelWarn)
//	db.Warn("slow query")
//
// Warn at most once per call site:
//
//	for _, row := range rows {
//		kazlog.WarnOnce("legacy row format") // logged a single time
//		process(row)
//	}
//
// # Output
//
// Each record becomes one line per handler. The message body is
// "<goroutine-id>: <text> (<file>:<line>)"; the console handler prefixes
// it with "[LEVEL]" and the file handler additionally with a timestamp.
//
// # Level Filtering
//
// A logger emits a record only when the record's level ordinal is at or
// below the logger's threshold. Set the root threshold from the
// environment:
//
//	KAZLOG_LEVEL=ERROR ./myapp
//
// Logging is a best-effort side channel: formatting and handler failures
// are reported to stderr and never crash the host process.
package kazlog
