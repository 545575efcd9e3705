// Package configpaths resolves the candidate configuration file locations,
// in loading priority order.
package configpaths

import (
	"os"
	"path/filepath"
	"strings"
)

const appName = "padforge"

// DefaultConfigDir returns the per-user configuration directory.
func DefaultConfigDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName), nil
}

// ConfigCandidatePaths returns the JSON, YAML and TOML config file
// candidates, lowest priority first. An explicitly given user config is
// appended last to its format's list so it overrides the defaults.
func ConfigCandidatePaths(userConfig string) (jsonPaths, yamlPaths, tomlPaths []string) {
	var dirs []string
	if d, err := systemConfigDir(); err == nil {
		dirs = append(dirs, d)
	}
	if d, err := DefaultConfigDir(); err == nil {
		dirs = append(dirs, d)
	}
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}

	for _, dir := range dirs {
		jsonPaths = append(jsonPaths, filepath.Join(dir, appName+".json"))
		yamlPaths = append(yamlPaths,
			filepath.Join(dir, appName+".yaml"),
			filepath.Join(dir, appName+".yml"))
		tomlPaths = append(tomlPaths, filepath.Join(dir, appName+".toml"))
	}

	switch {
	case userConfig == "":
	case strings.HasSuffix(userConfig, ".yaml"), strings.HasSuffix(userConfig, ".yml"):
		yamlPaths = append(yamlPaths, userConfig)
	case strings.HasSuffix(userConfig, ".toml"):
		tomlPaths = append(tomlPaths, userConfig)
	default:
		jsonPaths = append(jsonPaths, userConfig)
	}
	return jsonPaths, yamlPaths, tomlPaths
}
