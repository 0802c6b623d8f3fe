// Package archive persists rendered statement PDFs to the local filesystem.
// Archiving is best-effort: callers treat failures as non-fatal and still
// dispatch the email.
package archive

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ledger-statement-service/internal/config"
)

// Store writes rendered statements into a single output directory.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates an archive store. An empty configured directory selects a
// platform-dependent default.
func NewStore(logger *slog.Logger, cfg *config.ArchiveConfig) *Store {
	dir := cfg.OutputDir
	if dir == "" {
		dir = defaultOutputDir()
	}

	return &Store{
		dir:    dir,
		logger: logger,
	}
}

// Dir returns the resolved output directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the document under the store's directory, creating it if
// needed, and returns the full path of the written file.
func (s *Store) Save(fileName string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create archive directory %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, fileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write statement %s: %w", path, err)
	}

	s.logger.Info("Statement archived", "path", path, "bytes", len(data))
	return path, nil
}

func defaultOutputDir() string {
	if runtime.GOOS == "windows" {
		return filepath.Join("E:", "Ledger Statements")
	}
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return filepath.Join(wd, "storage", "statements")
}
