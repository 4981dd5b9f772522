// Copyright
// SPDX-License-Identifier: MIT
// coderun: terminal client for a remote code-execution endpoint
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"coderun/internal/client"
	cfg "coderun/internal/config"
	"coderun/internal/tui"
)

const Version = "0.1.0"

func main() {
	_ = godotenv.Load()

	var (
		endpoint    = flag.String("endpoint", "", "execution endpoint URL (overrides "+cfg.EnvEndpoint+" and -config)")
		configPath  = flag.String("config", "", "path to a JSON config file with endpoint_url")
		debugLog    = flag.String("debug", "", "append a JSON debug log to this file")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("coderun", Version)
		return
	}

	conf, err := cfg.Resolve(*endpoint, *configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "coderun:", err)
		os.Exit(1)
	}

	// Stderr belongs to the TUI; logs go to a file only when asked for.
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if *debugLog != "" {
		f, err := os.OpenFile(*debugLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "coderun:", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if err := tui.Run(client.New(conf.EndpointURL), logger); err != nil {
		fmt.Fprintln(os.Stderr, "coderun:", err)
		os.Exit(1)
	}
}
