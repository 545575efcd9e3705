// Package config defines the CLI structure and configuration for padforge.
package config

import (
	"github.com/padforge/padforge/internal/cmd"
)

type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"PADFORGE_LOG_LEVEL"`
	File  string `help:"Log file path (default: none; logs only to console)" env:"PADFORGE_LOG_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log `embed:"" prefix:"log."`

	Run      cmd.Run      `cmd:"" help:"Create a virtual pad and keep it alive until interrupted"`
	Profiles cmd.Profiles `cmd:"" help:"List the supported controller profiles"`
	Config   cmd.Config   `cmd:"" help:"Print the effective configuration"`
}
