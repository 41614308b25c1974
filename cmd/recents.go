package cmd

import (
	"fmt"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/adapters/storage"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/paths"
)

// RecentsCmd manages the persisted list of recent base paths
type RecentsCmd struct {
	RecentsPath string `help:"Path to the recents file" type:"path"`

	List  RecentsListCmd  `cmd:"list" help:"Print the recent base paths" default:"1"`
	Add   RecentsAddCmd   `cmd:"add" help:"Add a base path to the recents list"`
	Clear RecentsClearCmd `cmd:"clear" help:"Empty the recents list"`
}

func (r *RecentsCmd) store(cli *CLI) *storage.RecentsFile {
	path := r.RecentsPath
	if path == "" {
		path = cli.Settings().RecentsPath
	}
	if path == "" {
		path = paths.GetRecentsPath()
	}
	return storage.NewRecentsFile(path)
}

// RecentsListCmd prints the stored paths in order
type RecentsListCmd struct{}

// Run executes the list command
func (l *RecentsListCmd) Run(parent *RecentsCmd, cli *CLI) error {
	recents := parent.store(cli).Load()
	if len(recents) == 0 {
		fmt.Println("No recent paths")
		return nil
	}
	for i, p := range recents {
		fmt.Printf("%2d. %s\n", i+1, p)
	}
	return nil
}

// RecentsAddCmd appends one path
type RecentsAddCmd struct {
	Path string `arg:"" help:"Base path to remember"`
}

// Run executes the add command
func (a *RecentsAddCmd) Run(parent *RecentsCmd, cli *CLI) error {
	return parent.store(cli).Append(paths.ExpandPath(a.Path))
}

// RecentsClearCmd empties the list
type RecentsClearCmd struct{}

// Run executes the clear command
func (c *RecentsClearCmd) Run(parent *RecentsCmd, cli *CLI) error {
	return parent.store(cli).Clear()
}
