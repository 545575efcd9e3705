//go:build !windows

package configpaths

import (
	"os"
	"path/filepath"
)

// systemConfigDir returns the machine-wide configuration directory. Root
// services use /etc/padforge.
func systemConfigDir() (string, error) {
	if os.Geteuid() == 0 {
		return filepath.Join(string(os.PathSeparator), "etc", appName), nil
	}
	return DefaultConfigDir()
}
