package cmd

import (
	"os"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/paths"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/server"
)

// ServeCmd starts an SSH server exposing the browser TUI. Connecting clients
// authenticate with their public key and browse from the configured base
// directory on this host.
type ServeCmd struct {
	Host    string `help:"Address to bind" default:"0.0.0.0"`
	Port    string `help:"Port to listen on" default:"23235"`
	BaseDir string `help:"Base directory served sessions start from" type:"path"`
}

// Run starts the server and blocks until shutdown
func (s *ServeCmd) Run(cli *CLI) error {
	baseDir := s.BaseDir
	if baseDir == "" {
		baseDir = cli.Settings().DefaultBaseDir
	}
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		baseDir = home
	}
	baseDir = paths.ExpandPath(baseDir)

	srv, err := server.NewServer(s.Host, s.Port, baseDir, cli.Settings())
	if err != nil {
		return err
	}
	return srv.Start()
}
