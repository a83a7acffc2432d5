package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"
)

// VERSION is set at build time with -ldflags "-X github.com/ericpoe/ask-a-tech/commands.VERSION=..."
var VERSION = "v0.0.0"

var VersionCmd = Version{}

// Version is a CLI command implementation that displays the version information.
type Version struct {
}

func (cmd *Version) Name() string {
	return "version"
}

func (cmd *Version) Description() string {
	return "Displays the current version"
}

func (cmd *Version) Usage() string {
	return ""
}

func (cmd *Version) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s version\n", APP)
	fmt.Println()
	fmt.Printf("  Displays the %s version in the format v<major>.<minor>.<build> e.g. v1.0.3\n", APP)
	fmt.Println()
}

func (cmd *Version) FlagSet() *pflag.FlagSet {
	return pflag.NewFlagSet("version", pflag.ContinueOnError)
}

func (cmd *Version) Execute(ctx context.Context, options *Options) error {
	fmt.Printf("%s\n", VERSION)

	return nil
}
