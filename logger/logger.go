package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/valyala/fasttemplate"
)

// timestampLayout renders wall-clock time with millisecond precision.
const timestampLayout = "2006-01-02 15:04:05.000"

// ErrMissingLevelColor reports that a level being logged has no entry in
// Config.LevelColors while console colors are enabled.
var ErrMissingLevelColor = errors.New("no console color configured for level")

// FatalError carries the message of a FATAL log call. It is returned by Log
// after every configured sink has been written, when
// Config.FatalLogThrowsOnError is set. It is a control-flow signal the
// caller may propagate, handle or ignore.
type FatalError struct {
	Message string
}

func (e *FatalError) Error() string {
	return "Fatal error: " + e.Message
}

// Logger formats messages and dispatches them to the configured sinks.
//
// A Logger performs no internal locking. Concurrent calls may interleave
// console escape sequences and file appends; callers logging from multiple
// goroutines must serialize access externally.
type Logger struct {
	cfg Config

	out         io.Writer
	keyIn       io.Reader
	debugActive func() bool
	now         func() time.Time
}

// New returns a Logger using cfg. Console output goes to os.Stdout and the
// fatal screen key-press wait reads from os.Stdin; see SetOutput and
// SetKeyInput to redirect either.
func New(cfg Config) *Logger {
	return &Logger{
		cfg:         cfg,
		out:         os.Stdout,
		keyIn:       os.Stdin,
		debugActive: debuggerAttached,
		now:         time.Now,
	}
}

// Configure replaces the configuration. It takes effect for all subsequent
// calls.
func (l *Logger) Configure(cfg Config) {
	l.cfg = cfg
}

// Config returns a copy of the current configuration.
func (l *Logger) Config() Config {
	return l.cfg
}

// SetOutput redirects console output, including the fatal screen, to w.
func (l *Logger) SetOutput(w io.Writer) {
	l.out = w
}

// SetKeyInput sets the reader the fatal screen blocks on for its key press.
// Non-interactive callers can supply a pre-filled or empty reader to skip
// the wait.
func (l *Logger) SetKeyInput(r io.Reader) {
	l.keyIn = r
}

// SetDebugCheck replaces the debugger-attached probe that gates DEBUG
// messages.
func (l *Logger) SetDebugCheck(active func() bool) {
	l.debugActive = active
}

// Log renders message with the current timestamp and the level tag, then
// dispatches it to the configured sinks.
//
// DEBUG messages are dropped entirely unless a debugger is attached. A FATAL
// message with ShowFatalErrorScreen set replaces the plain console line with
// a full-screen banner that blocks until a key is pressed. The file sink
// always receives the raw message, not the formatted line. With
// FatalLogThrowsOnError set, a FATAL call returns *FatalError once every
// sink has been written; any earlier I/O or configuration error pre-empts
// that signal.
func (l *Logger) Log(message string, level Level) error {
	if level == DebugLevel && !l.debugActive() {
		return nil
	}

	formatted := l.formatLine(message, level)

	if level == FatalLevel && l.cfg.ShowFatalErrorScreen {
		if err := l.showFatalScreen(formatted); err != nil {
			return err
		}
	} else if l.cfg.LogToConsole {
		if l.cfg.UseConsoleColors {
			color, ok := l.cfg.LevelColors[level]
			if !ok {
				return fmt.Errorf("%w: %s", ErrMissingLevelColor, level)
			}
			if _, err := fmt.Fprint(l.out, color.Foreground()+formatted+ansiReset+"\n"); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintln(l.out, formatted); err != nil {
				return err
			}
		}
	}

	if l.cfg.LogToFile {
		if err := appendLine(l.cfg.LogFile, message); err != nil {
			return err
		}
	}

	if level == FatalLevel && l.cfg.FatalLogThrowsOnError {
		return &FatalError{Message: message}
	}
	return nil
}

// Info logs message at INFO level.
func (l *Logger) Info(message string) error {
	return l.Log(message, InfoLevel)
}

// Warn logs message at WARN level.
func (l *Logger) Warn(message string) error {
	return l.Log(message, WarnLevel)
}

// Error logs message at ERROR level.
func (l *Logger) Error(message string) error {
	return l.Log(message, ErrorLevel)
}

// Fatal logs message at FATAL level. Depending on configuration the call may
// show the fatal screen and may return a *FatalError.
func (l *Logger) Fatal(message string) error {
	return l.Log(message, FatalLevel)
}

// Success logs message at SUCCESS level.
func (l *Logger) Success(message string) error {
	return l.Log(message, SuccessLevel)
}

// Debug logs message at DEBUG level. Without an attached debugger the call
// is a no-op.
func (l *Logger) Debug(message string) error {
	return l.Log(message, DebugLevel)
}

// Network logs message at NETWORK level.
func (l *Logger) Network(message string) error {
	return l.Log(message, NetworkLevel)
}

// formatLine renders the console line from the configured template.
func (l *Logger) formatLine(message string, level Level) string {
	t := fasttemplate.New(l.cfg.LogFormat, "{", "}")
	return t.ExecuteString(map[string]interface{}{
		"timestamp": l.now().Format(timestampLayout),
		"level":     level.String(),
		"message":   message,
	})
}

// appendLine appends msg and a newline to the file at path, creating the
// file if it does not exist. The file is opened per call so configuration
// changes between calls take effect immediately.
func appendLine(path, msg string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(msg + "\n"); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
