package logger

import (
	"fmt"
	"io"
	"strings"
)

// ansiClearScreen erases the console and moves the cursor home. The erase
// happens after the background color is set so the whole screen is painted.
const ansiClearScreen = "\033[2J\033[H"

const fatalPrompt = "Press any key to continue..."

// showFatalScreen paints the console with the configured fatal background,
// prints a bordered banner around the formatted line and blocks until a key
// press arrives on the key-press reader. Color state is reset afterwards.
func (l *Logger) showFatalScreen(formatted string) error {
	border := strings.Repeat("*", len(formatted)+4)

	var b strings.Builder
	b.WriteString(l.cfg.FatalErrorScreenColor.Background())
	b.WriteString(White.Foreground())
	b.WriteString(ansiClearScreen)
	b.WriteString(border + "\n")
	b.WriteString("* " + formatted + " *\n")
	b.WriteString(border + "\n")
	b.WriteString(fatalPrompt + "\n")

	if _, err := fmt.Fprint(l.out, b.String()); err != nil {
		return err
	}
	if err := l.awaitKeyPress(); err != nil {
		return err
	}
	_, err := fmt.Fprint(l.out, ansiReset)
	return err
}

// awaitKeyPress blocks until a single byte arrives on the key-press reader.
// EOF counts as an acknowledgement so scripted and non-interactive readers
// don't wedge the call.
func (l *Logger) awaitKeyPress() error {
	buf := make([]byte, 1)
	if _, err := l.keyIn.Read(buf); err != nil && err != io.EOF {
		return err
	}
	return nil
}
