//go:build windows

package configpaths

import (
	"os"
	"path/filepath"
)

// systemConfigDir returns the machine-wide configuration directory.
func systemConfigDir() (string, error) {
	if d := os.Getenv("ProgramData"); d != "" {
		return filepath.Join(d, appName), nil
	}
	return DefaultConfigDir()
}
