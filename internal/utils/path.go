package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// ResolveWordListPath finds the word list file the solver should load.
// Candidates are tried in order of preference:
//  1. The user-specified path as given (absolute, or relative to cwd)
//  2. Relative to the executable directory (installed deployments)
//
// The first existing file wins.
func ResolveWordListPath(userPath string) (string, error) {
	var candidates []string

	if userPath != "" {
		candidates = append(candidates, userPath)
		if !filepath.IsAbs(userPath) {
			if execDir, err := GetExecutableDir(); err == nil {
				candidates = append(candidates, filepath.Join(execDir, userPath))
			}
		}
	}

	for _, path := range candidates {
		if FileExists(path) {
			log.Debugf("Found word list at: %s", path)
			return path, nil
		}
		log.Debugf("Word list candidate not found: %s", path)
	}

	return "", fmt.Errorf("word list not found at %s", userPath)
}

// GetConfigPath returns the path for the given config filename, under
// the platform config directory when available and next to the
// executable otherwise. The directory is created on demand.
func GetConfigPath(filename string) (string, error) {
	baseDir, err := os.UserConfigDir()
	if err != nil {
		log.Warnf("Could not determine user config dir: %v", err)
		execDir, execErr := GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return filepath.Join(execDir, filename), nil
	}

	configDir := filepath.Join(baseDir, "rackserve")
	if err := EnsureDir(configDir); err != nil {
		return "", err
	}
	return filepath.Join(configDir, filename), nil
}
