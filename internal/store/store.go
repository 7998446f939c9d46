// Package store manages the flat data directory holding captured samples
// and analysis artefacts.
package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Fixed filenames within the data directory.
const (
	InputFile    = "input.wav"
	SpectrumFile = "spectrum.png"
	StatsFile    = "data.txt"
	ReportFile   = "report.txt"
)

// Store resolves paths inside a single flat data directory.
type Store struct {
	dir string
}

// New returns a Store rooted at dir.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Ensure creates the data directory if it does not exist.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

// InputPath is the latest captured ambient sample.
func (s *Store) InputPath() string { return filepath.Join(s.dir, InputFile) }

// SpectrumPath is the rendered spectrogram image.
func (s *Store) SpectrumPath() string { return filepath.Join(s.dir, SpectrumFile) }

// StatsPath is the analyzer's statistics table.
func (s *Store) StatsPath() string { return filepath.Join(s.dir, StatsFile) }

// ReportPath is the plain-text analysis report.
func (s *Store) ReportPath() string { return filepath.Join(s.dir, ReportFile) }

// HasStats reports whether a previous run left a statistics table behind,
// which offers the operator the use-old path.
func (s *Store) HasStats() bool {
	info, err := os.Stat(s.StatsPath())
	return err == nil && !info.IsDir()
}

// WriteStats persists the raw statistics table beside the sample.
func (s *Store) WriteStats(table string) error {
	if err := os.WriteFile(s.StatsPath(), []byte(table), 0o644); err != nil {
		return fmt.Errorf("failed to write statistics table: %w", err)
	}
	return nil
}

// OpenStats opens the statistics table for parsing.
func (s *Store) OpenStats() (*os.File, error) {
	f, err := os.Open(s.StatsPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open statistics table: %w", err)
	}
	return f, nil
}

// ArchiveInput copies the latest sample to a timestamped name so earlier
// recordings survive the next capture. Returns the archive path.
func (s *Store) ArchiveInput(now time.Time) (string, error) {
	src, err := os.Open(s.InputPath())
	if err != nil {
		return "", fmt.Errorf("failed to open sample for archiving: %w", err)
	}
	defer src.Close()

	dstPath := filepath.Join(s.dir, fmt.Sprintf("input_%d.wav", now.Unix()))
	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create archive copy: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("failed to archive sample: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to archive sample: %w", err)
	}
	return dstPath, nil
}
