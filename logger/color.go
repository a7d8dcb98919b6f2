package logger

// Color names a console color. Colors are used as level foregrounds via
// Config.LevelColors and as the fatal screen background via
// Config.FatalErrorScreenColor.
type Color string

const (
	Black   Color = "black"
	Red     Color = "red"
	Green   Color = "green"
	Yellow  Color = "yellow"
	Blue    Color = "blue"
	Magenta Color = "magenta"
	Cyan    Color = "cyan"
	White   Color = "white"
	Gray    Color = "gray"

	BrightRed     Color = "bright-red"
	BrightGreen   Color = "bright-green"
	BrightYellow  Color = "bright-yellow"
	BrightBlue    Color = "bright-blue"
	BrightMagenta Color = "bright-magenta"
	BrightCyan    Color = "bright-cyan"
	BrightWhite   Color = "bright-white"
)

// ansiReset restores the console default foreground and background.
const ansiReset = "\033[0m"

var foregroundCodes = map[Color]string{
	Black:         "\033[30m",
	Red:           "\033[31m",
	Green:         "\033[32m",
	Yellow:        "\033[33m",
	Blue:          "\033[34m",
	Magenta:       "\033[35m",
	Cyan:          "\033[36m",
	White:         "\033[37m",
	Gray:          "\033[90m",
	BrightRed:     "\033[91m",
	BrightGreen:   "\033[92m",
	BrightYellow:  "\033[93m",
	BrightBlue:    "\033[94m",
	BrightMagenta: "\033[95m",
	BrightCyan:    "\033[96m",
	BrightWhite:   "\033[97m",
}

var backgroundCodes = map[Color]string{
	Black:         "\033[40m",
	Red:           "\033[41m",
	Green:         "\033[42m",
	Yellow:        "\033[43m",
	Blue:          "\033[44m",
	Magenta:       "\033[45m",
	Cyan:          "\033[46m",
	White:         "\033[47m",
	Gray:          "\033[100m",
	BrightRed:     "\033[101m",
	BrightGreen:   "\033[102m",
	BrightYellow:  "\033[103m",
	BrightBlue:    "\033[104m",
	BrightMagenta: "\033[105m",
	BrightCyan:    "\033[106m",
	BrightWhite:   "\033[107m",
}

// Foreground returns the ANSI escape sequence that sets c as the foreground
// color, or the empty string for an unknown color.
func (c Color) Foreground() string {
	return foregroundCodes[c]
}

// Background returns the ANSI escape sequence that sets c as the background
// color, or the empty string for an unknown color.
func (c Color) Background() string {
	return backgroundCodes[c]
}

// Valid reports whether c names a known color.
func (c Color) Valid() bool {
	_, ok := foregroundCodes[c]
	return ok
}
