package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/adapters/localfs"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/adapters/sftpfs"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/aggregate"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/domain"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/logging"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/ports"
)

// GrabCmd aggregates the given paths without the TUI and prints the result.
// The output is the same text artifact the TUI's fetch & append produces.
type GrabCmd struct {
	Host string `help:"Remote host; omit to read the local filesystem" short:"H"`
	User string `help:"Remote user" short:"u"`

	Paths []string `arg:"" name:"path" help:"Absolute paths to aggregate, in order"`
}

// Run executes the aggregation
func (g *GrabCmd) Run(cli *CLI) error {
	selection := domain.NewSelectionSet()
	for _, p := range g.Paths {
		selection.Add(p)
	}

	backend, err := g.backend(context.Background())
	if err != nil {
		return err
	}
	defer backend.Close()

	logging.Logger.Info("Aggregating selection", "paths", selection.Len(), "remote", g.Host != "")
	fmt.Print(aggregate.Build(context.Background(), selection.Paths(), backend))
	return nil
}

// backend dials the remote host when one is given, otherwise uses the local
// disk. The remote password comes from APPENDER_PASSWORD; prompting is the
// TUI's job, not this command's.
func (g *GrabCmd) backend(ctx context.Context) (ports.FileSystemBackend, error) {
	if g.Host == "" {
		return localfs.New(), nil
	}

	password := os.Getenv("APPENDER_PASSWORD")
	if password == "" {
		return nil, fmt.Errorf("APPENDER_PASSWORD must be set for remote aggregation")
	}

	backend, err := sftpfs.Dial(ctx, sftpfs.Config{
		Host:     g.Host,
		User:     g.User,
		Password: password,
	})
	if err != nil {
		return nil, &domain.ConnectionError{Target: g.Host, Cause: err}
	}
	return backend, nil
}
