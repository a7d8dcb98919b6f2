package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mordilloSan/go-conlog/logger"
)

// Example demonstrating go-conlog usage.
// Usage: ./go-conlog [config.toml]
func main() {
	cfg := logger.DefaultConfig()

	// Load a TOML config when a path is given; options absent from the
	// file keep their defaults.
	if len(os.Args) > 1 {
		loaded, err := logger.LoadConfig(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = *loaded
	}

	log := logger.New(cfg)

	log.Info("service starting")
	log.Success("configuration loaded")
	log.Network("listening on :8080")
	log.Warn("disk space below 10%")
	log.Error("failed to reach upstream")
	log.Debug("only visible under a debugger")

	// A FATAL call returns *FatalError once every sink has been written.
	cfg.FatalLogThrowsOnError = true
	log.Configure(cfg)
	if err := log.Fatal("unrecoverable state"); err != nil {
		var fatal *logger.FatalError
		if errors.As(err, &fatal) {
			fmt.Println("caught:", fatal.Error())
		}
	}
}
