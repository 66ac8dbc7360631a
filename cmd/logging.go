package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"showtime-finder-cli/config"
)

// fileLogger logs JSON to path, or nowhere when path is empty. The TUI owns
// the terminal, so it never logs to stderr.
func fileLogger(path string, cfg *config.Config) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: levelOf(cfg)}
	if path == "" {
		return slog.New(slog.NewJSONHandler(io.Discard, opts)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log output: %w", err)
	}
	return slog.New(slog.NewJSONHandler(f, opts)), func() { _ = f.Close() }, nil
}

// stderrLogger logs text to w for the commands that do not take over the
// terminal.
func stderrLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: levelOf(cfg)}))
}
