package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// Open builds a file-backed logger. The TUI owns stdout, so log lines go to
// path, or to DefaultLogPath when path is empty. The returned closer closes
// the log file.
func Open(path, level string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		p, err := DefaultLogPath()
		if err != nil {
			return zerolog.Nop(), nopCloser{}, err
		}
		path = p
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	logger, err := New(f, level)
	if err != nil {
		f.Close()
		return zerolog.Nop(), nopCloser{}, err
	}
	return logger, f, nil
}

// New builds a JSON logger writing to w at the given level name.
func New(w io.Writer, level string) (zerolog.Logger, error) {
	lvl := zerolog.InfoLevel
	if level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return zerolog.Nop(), fmt.Errorf("parse log level: %w", err)
		}
		lvl = parsed
	}
	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("app", "diceroller").
		Logger(), nil
}

// DefaultLogPath resolves the log file path:
// 1. $XDG_STATE_HOME/diceroller/diceroller.log
// 2. ~/.local/state/diceroller/diceroller.log
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	p := filepath.Join(stateHome, "diceroller", "diceroller.log")
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("create log dir: %w", err)
	}
	return p, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
