package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ericpoe/ask-a-tech/config"
)

const APP = "ask-a-tech"

type Options struct {
	Config string
	Debug  bool
}

type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *pflag.FlagSet
	Execute(ctx context.Context, options *Options) error
}

// Commands is the command list for main(), in the order they are listed by 'help'.
var Commands = []Command{
	&RunCmd,
	&GetCmd,
	&AuthoriseCmd,
	&VersionCmd,
}

// Parse finds the command named in args and parses its options. A nil command with a nil error
// means no command was given.
func Parse(args []string) (Command, error) {
	if len(args) == 0 {
		return nil, nil
	}

	if args[0] == "help" {
		HelpCmd.args = args[1:]
		return &HelpCmd, nil
	}

	for _, c := range Commands {
		if c.Name() == args[0] {
			flagset := c.FlagSet()
			if err := flagset.Parse(args[1:]); err != nil {
				return nil, err
			}

			return c, nil
		}
	}

	return nil, fmt.Errorf("invalid command '%v'", args[0])
}

func load(options *Options) (*config.Config, error) {
	cfg := config.NewConfig(DEFAULT_WORKDIR)
	if err := cfg.Load(options.Config); err != nil {
		return nil, fmt.Errorf("could not load configuration (%w)", err)
	}

	return cfg, nil
}

func helpOptions(flagset *pflag.FlagSet) {
	count := 0
	flagset.VisitAll(func(f *pflag.Flag) {
		count++
	})

	if count > 0 {
		fmt.Println("  Options:")
		fmt.Println()

		for _, line := range strings.Split(strings.TrimRight(flagset.FlagUsages(), "\n"), "\n") {
			fmt.Printf("  %v\n", line)
		}
	}
}
