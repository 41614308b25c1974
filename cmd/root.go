package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/config"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Browse  BrowseCmd  `cmd:"" help:"Start the browser TUI (default)" default:"1"`
	Grab    GrabCmd    `cmd:"grab" help:"Aggregate files non-interactively and print the text"`
	Recents RecentsCmd `cmd:"recents" help:"Manage the recent base paths list"`
	Serve   ServeCmd   `cmd:"serve" help:"Serve the browser TUI over SSH"`

	// Internal fields (not flags)
	settings *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// Settings returns the loaded settings, never nil
func (c *CLI) Settings() *config.Settings {
	if c.settings == nil {
		return &config.Settings{}
	}
	return c.settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// Only apply a setting if the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("APPENDER_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("APPENDER_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	if err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles); err != nil {
		return err
	}

	// Propagate debug settings so child processes log to the same place
	if c.Debug || c.DebugFile != "" {
		os.Setenv("APPENDER_DEBUG", "1")
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("APPENDER_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	return nil
}
