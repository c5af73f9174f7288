package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/ewrenn/calc/internal/server"
	"github.com/ewrenn/calc/pkg/types"
)

func main() {
	var (
		initialValue = flag.Float64("initial-value", 0, "Initial value of the accumulator session")
		logLevel     = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	config := &types.Config{
		InitialValue: *initialValue,
		LogLevel:     *logLevel,
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		log.Fatalf("Invalid log level: %s", config.LogLevel)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	calcServer := server.NewCalcServer(config)
	if err := calcServer.Serve(context.Background()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
