package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/ericpoe/ask-a-tech/commands"
)

var options = commands.Options{
	Config: commands.DEFAULT_CONFIG,
	Debug:  false,
}

func main() {
	pflag.CommandLine.SetInterspersed(false)
	pflag.StringVar(&options.Config, "config", options.Config, "Configuration file path")
	pflag.BoolVar(&options.Debug, "debug", options.Debug, "Enables debugging information")
	pflag.Usage = commands.Usage
	pflag.Parse()

	cmd, err := commands.Parse(pflag.Args())
	if err != nil {
		fmt.Printf("\n   ERROR: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		commands.Usage()
		os.Exit(1)
	}

	if err := cmd.Execute(context.Background(), &options); err != nil {
		fmt.Fprintf(os.Stderr, "\n   ERROR: %v\n\n", err)
		os.Exit(1)
	}
}
