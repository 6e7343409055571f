package app

import (
	"path/filepath"

	"tidyext/internal/domain"
	"tidyext/internal/logging"
)

type Mover struct {
	FS     FileSystem
	Logger logging.Logger
}

// EnsureDestination resolves sourceDir/ext and creates it when absent. The
// returned bool reports whether the directory was created by this call.
// Creation errors are fatal to the run; an already existing destination is
// left untouched.
func (m Mover) EnsureDestination(sourceDir, ext string) (string, bool, error) {
	dest := filepath.Join(sourceDir, ext)

	exists, err := m.FS.Exists(dest)
	if err != nil {
		return dest, false, err
	}
	if exists {
		return dest, false, nil
	}

	if err := m.FS.Mkdir(dest, 0o755); err != nil {
		return dest, false, err
	}
	return dest, true, nil
}

// MoveAll renames each match into destDir under its original base name. A
// failed rename is recorded per file and does not stop the remaining moves.
// A same-named file already present in destDir is replaced, following
// rename semantics.
func (m Mover) MoveAll(matches []domain.Match, destDir string) domain.MoveReport {
	report := domain.MoveReport{Results: make([]domain.MoveResult, 0, len(matches))}

	for _, match := range matches {
		target := filepath.Join(destDir, match.Name)
		if err := m.FS.Rename(match.Path, target); err != nil {
			report.Results = append(report.Results, domain.MoveResult{Name: match.Name, Err: err})
			continue
		}
		report.Moved++
		report.Results = append(report.Results, domain.MoveResult{Name: match.Name})
	}

	m.Logger.Verbosef("Moved %d of %d files to %s", report.Moved, len(matches), destDir)
	return report
}
