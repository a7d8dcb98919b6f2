package logger

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/valyala/fasttemplate"
)

// Config holds every option recognized by the logger. A Logger reads its
// Config on every call, so fields may be changed between calls via
// Logger.Configure.
type Config struct {
	// LogToFile enables the append-only file sink.
	// Default: false
	LogToFile bool `toml:"log_to_file"`
	// LogFile is the path the file sink appends to. The file is created on
	// first use and never truncated.
	// Default: "" (required when LogToFile is set)
	LogFile string `toml:"log_file" validate:"required_if=LogToFile true"`
	// LogFormat is the console line template. Recognized placeholders are
	// {timestamp}, {level} and {message}.
	// Default: "{timestamp} [{level}] {message}"
	LogFormat string `toml:"log_format" validate:"required"`
	// LogToConsole enables the console sink.
	// Default: true
	LogToConsole bool `toml:"log_to_console"`
	// UseConsoleColors wraps console lines in the ANSI foreground color
	// configured for the level in LevelColors.
	// Default: true
	UseConsoleColors bool `toml:"use_console_colors"`
	// ShowFatalErrorScreen replaces the plain console line of FATAL messages
	// with a full-screen banner that blocks until a key is pressed.
	// Default: false
	ShowFatalErrorScreen bool `toml:"show_fatal_error_screen"`
	// FatalErrorScreenColor is the background color of the fatal screen.
	// Default: red
	FatalErrorScreenColor Color `toml:"fatal_error_screen_color" validate:"omitempty,color"`
	// FatalLogThrowsOnError makes FATAL calls return a *FatalError after
	// every configured sink has been written.
	// Default: false
	FatalLogThrowsOnError bool `toml:"fatal_log_throws_on_error"`
	// LevelColors maps each level to its console foreground color. With
	// UseConsoleColors set, logging a level that has no entry is a
	// configuration error.
	LevelColors map[Level]Color `toml:"level_colors" validate:"omitempty,dive,keys,level,endkeys,color"`
}

// DefaultConfig returns the configuration the logger starts from: console
// sink with colors on, file sink off, the standard line template and a full
// color table.
func DefaultConfig() Config {
	return Config{
		LogToFile:             false,
		LogFile:               "",
		LogFormat:             "{timestamp} [{level}] {message}",
		LogToConsole:          true,
		UseConsoleColors:      true,
		ShowFatalErrorScreen:  false,
		FatalErrorScreenColor: Red,
		FatalLogThrowsOnError: false,
		LevelColors:           DefaultLevelColors(),
	}
}

// DefaultLevelColors returns the default per-level console color table.
func DefaultLevelColors() map[Level]Color {
	return map[Level]Color{
		InfoLevel:    Cyan,
		WarnLevel:    Yellow,
		ErrorLevel:   Red,
		FatalLevel:   Magenta,
		SuccessLevel: Green,
		DebugLevel:   Gray,
		NetworkLevel: Blue,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	must(v.RegisterValidation("color", func(fl validator.FieldLevel) bool {
		return Color(fl.Field().String()).Valid()
	}))
	must(v.RegisterValidation("level", func(fl validator.FieldLevel) bool {
		return Level(fl.Field().String()).Valid()
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// Validate checks the configuration for inconsistencies: a file sink without
// a path, a malformed line template, unknown color or level names, and an
// incomplete color table while console colors are enabled.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid logger config: %w", err)
	}
	if _, err := fasttemplate.NewTemplate(c.LogFormat, "{", "}"); err != nil {
		return fmt.Errorf("invalid logger config: malformed log_format: %w", err)
	}
	if c.ShowFatalErrorScreen && !c.FatalErrorScreenColor.Valid() {
		return fmt.Errorf("invalid logger config: fatal_error_screen_color %q is not a known color", string(c.FatalErrorScreenColor))
	}
	if c.UseConsoleColors {
		for _, level := range AllLevels() {
			if _, ok := c.LevelColors[level]; !ok {
				return fmt.Errorf("invalid logger config: %w: %s", ErrMissingLevelColor, level)
			}
		}
	}
	return nil
}

// LoadConfig reads a TOML configuration file. Options absent from the file
// keep their defaults, so a partial level_colors table only overrides the
// listed levels.
func LoadConfig(configPath string) (*Config, error) {
	configFile := filepath.Clean(configPath)

	content, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(content, &config); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("failed to parse config file (line %d, column %d): %s", row, col, derr.String())
		}
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Save writes the configuration to path as TOML.
func (c *Config) Save(path string) error {
	buf := bytes.Buffer{}
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
