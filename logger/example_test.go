package logger_test

import (
	"errors"
	"fmt"

	"github.com/mordilloSan/go-conlog/logger"
)

// This example shows plain console lines rendered from a template without
// the timestamp placeholder, so the output is reproducible.
func Example() {
	cfg := logger.DefaultConfig()
	cfg.UseConsoleColors = false
	cfg.LogFormat = "[{level}] {message}"

	log := logger.New(cfg)
	log.Info("hello world")
	log.Warn("disk low")
	// Output:
	// [INFO] hello world
	// [WARN] disk low
}

// This example handles the fatal signal returned once all sinks are written.
func ExampleLogger_Fatal() {
	cfg := logger.DefaultConfig()
	cfg.LogToConsole = false
	cfg.FatalLogThrowsOnError = true

	log := logger.New(cfg)
	err := log.Fatal("database unreachable")

	var fatal *logger.FatalError
	if errors.As(err, &fatal) {
		fmt.Println(fatal.Error())
	}
	// Output: Fatal error: database unreachable
}
