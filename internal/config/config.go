package config

import (
	"errors"
	"strings"
)

type Config struct {
	SourceDir string
	Ext       string
}

// Parse builds a Config from the two positional arguments. The extension is
// normalized by stripping one leading dot and lowercasing, so ".MOV" and
// "mov" select the same files and the same destination directory.
func Parse(args []string) (Config, error) {
	if len(args) < 2 {
		return Config{}, errors.New("directory and extension are required")
	}

	sourceDir := strings.TrimSpace(args[0])
	if sourceDir == "" {
		return Config{}, errors.New("directory must not be empty")
	}

	ext := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(args[1]), "."))
	if ext == "" {
		return Config{}, errors.New("extension must not be empty")
	}

	return Config{SourceDir: sourceDir, Ext: ext}, nil
}
