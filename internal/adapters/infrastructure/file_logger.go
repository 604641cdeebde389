package infrastructure

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/logger"
)

// FileLoggerAdapter writes JSON log lines to a file. The terminal dashboard
// uses it so log output never lands on the screen.
type FileLoggerAdapter struct {
	*SlogLoggerAdapter

	mutex sync.Mutex
	file  *os.File
}

// NewFileLoggerAdapter opens (or creates) logPath for appending
func NewFileLoggerAdapter(logPath string, level slog.Level) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to open log file", err)
	}

	return &FileLoggerAdapter{
		SlogLoggerAdapter: NewSlogLoggerAdapter(logger.NewWithWriter(file, level)),
		file:              file,
	}, nil
}

// Close closes the log file. Writes after Close fail silently.
func (f *FileLoggerAdapter) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

var _ ports.Logger = (*FileLoggerAdapter)(nil)
