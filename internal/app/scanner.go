package app

import (
	"path/filepath"
	"strings"

	"tidyext/internal/domain"
	"tidyext/internal/logging"
)

type Scanner struct {
	FS     FileSystem
	Logger logging.Logger
}

// Discover returns the regular files directly inside sourceDir whose
// extension equals ext, ignoring case on both sides. Subdirectories are
// never entered and symlinks are never followed. The order of the returned
// matches follows the enumeration order of the underlying filesystem.
func (s Scanner) Discover(sourceDir, ext string) ([]domain.Match, error) {
	stop := s.Logger.Measure("Scanning source directory")
	defer stop()

	entries, err := s.FS.ReadDir(sourceDir)
	if err != nil {
		return nil, err
	}

	want := "." + strings.ToLower(ext)
	var matches []domain.Match
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if strings.ToLower(filepath.Ext(entry.Name())) != want {
			continue
		}
		matches = append(matches, domain.Match{
			Path: filepath.Join(sourceDir, entry.Name()),
			Name: entry.Name(),
		})
	}

	s.Logger.Verbosef("Found %d .%s files in %s", len(matches), ext, sourceDir)
	return matches, nil
}
