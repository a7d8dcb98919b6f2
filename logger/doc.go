// Package logger provides a small static logging facility with a colored
// console sink, an append-only file sink and an optional full-screen fatal
// error banner.
//
// # Features
//
//   - Seven severity levels: INFO, WARN, ERROR, FATAL, SUCCESS, DEBUG, NETWORK
//   - Template-driven console lines with {timestamp}, {level} and {message} placeholders
//   - Per-level console colors via a configurable color table
//   - Append-only file sink that receives the raw (unformatted) message
//   - Optional full-screen fatal banner that blocks for a key press
//   - Optional fatal signaling: FATAL calls return *FatalError after all sinks are written
//   - DEBUG messages gated on an attached debugger
//   - TOML configuration files with validation
//
// # Usage
//
// Construct a Logger with an explicit configuration:
//
//	log := logger.New(logger.DefaultConfig())
//	log.Info("server started")
//	log.Warn("disk low")
//
// Enable the file sink; the file receives the raw message, one per line,
// while the console shows the formatted line:
//
//	cfg := logger.DefaultConfig()
//	cfg.LogToFile = true
//	cfg.LogFile = "/var/log/app.log"
//	log := logger.New(cfg)
//
// Handle the fatal signal:
//
//	cfg.FatalLogThrowsOnError = true
//	log.Configure(cfg)
//	if err := log.Fatal("out of memory"); err != nil {
//	    var fatal *logger.FatalError
//	    if errors.As(err, &fatal) {
//	        // sinks are already written at this point
//	    }
//	}
//
// Load configuration from a TOML file:
//
//	cfg, err := logger.LoadConfig("/etc/app/logger.toml")
//
// # Errors
//
// The facility never swallows errors. File I/O failures propagate unchanged
// from Log, and logging a level without a color-table entry while
// UseConsoleColors is set fails with ErrMissingLevelColor instead of
// silently picking a default.
//
// # Concurrency
//
// A Logger performs no internal locking. Concurrent calls from multiple
// goroutines may interleave console escape sequences and file appends;
// callers that need concurrent use must serialize calls externally.
package logger
