package help

import (
	"log/slog"
	"os"
)

func Logger() *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelDebug, // tests want the construction debug lines
	}

	h := slog.NewJSONHandler(os.Stdout, opts)

	log := slog.New(h).With(
		slog.String("service", "ashRand"),
		slog.String("env", "test"),
	)

	slog.SetDefault(log)

	return log
}
