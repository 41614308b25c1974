package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/adapters/storage"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/application"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/logging"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/paths"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/search"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/ui"
)

// BrowseCmd starts the TUI application
type BrowseCmd struct {
	Host            string `help:"Host to prefill in the connect form" short:"H"`
	User            string `help:"User to prefill in the connect form" short:"u"`
	BaseDir         string `help:"Base directory to prefill in the connect form" short:"b"`
	ErrorClearDelay int    `help:"Seconds before error messages auto-clear" default:"10"`
	SuggestionLimit int    `help:"Maximum search suggestions shown" default:"8"`
	RecentsPath     string `help:"Path to the recents file" type:"path"`
}

// Run executes the TUI
func (b *BrowseCmd) Run(cli *CLI) error {
	settings := cli.Settings()

	// Apply settings with flag-over-settings precedence
	if b.Host == "" {
		b.Host = settings.DefaultHost
	}
	if b.User == "" {
		b.User = settings.DefaultUser
	}
	if b.BaseDir == "" {
		b.BaseDir = settings.DefaultBaseDir
	}
	if b.ErrorClearDelay == 10 && settings.ErrorClearDelay != nil {
		b.ErrorClearDelay = *settings.ErrorClearDelay
	}
	if b.SuggestionLimit == search.DefaultLimit && settings.SuggestionLimit != nil {
		b.SuggestionLimit = *settings.SuggestionLimit
	}
	if b.RecentsPath == "" {
		b.RecentsPath = settings.RecentsPath
	}
	if b.RecentsPath == "" {
		b.RecentsPath = paths.GetRecentsPath()
	}

	logging.Logger.Info("Starting browser TUI")

	cfg := ui.ModelConfig{
		BackendFor:      application.BackendFor,
		Recents:         storage.NewRecentsFile(b.RecentsPath),
		DefaultHost:     b.Host,
		DefaultUser:     b.User,
		DefaultBaseDir:  b.BaseDir,
		SuggestionLimit: b.SuggestionLimit,
		ErrorClearDelay: time.Duration(b.ErrorClearDelay) * time.Second,
	}

	p := tea.NewProgram(
		ui.NewModel(cfg),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	logging.Logger.Info("Starting TUI program")
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally")
	return nil
}
