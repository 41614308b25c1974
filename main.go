package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/cmd"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/config"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/version"
)

func main() {
	// Load settings before parsing so flags keep precedence over them
	settings, err := config.LoadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		settings = &config.Settings{}
	}

	var cli cmd.CLI
	cli.SetSettings(settings)

	ctx := kong.Parse(&cli,
		kong.Name("appender"),
		kong.Description(version.Tagline),
		kong.UsageOnError(),
		kong.Vars{"version": version.Info()},
	)

	if err := ctx.Run(&cli); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
