package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"
)

var HelpCmd = Help{}

type Help struct {
	args []string
}

func (cmd *Help) Name() string {
	return "help"
}

func (cmd *Help) Description() string {
	return "Displays the help for a command"
}

func (cmd *Help) Usage() string {
	return "<command>"
}

func (cmd *Help) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s help <command>\n", APP)
	fmt.Println()
	fmt.Println("  Displays the help for a command")
	fmt.Println()
}

func (cmd *Help) FlagSet() *pflag.FlagSet {
	return pflag.NewFlagSet("help", pflag.ContinueOnError)
}

func (cmd *Help) Execute(ctx context.Context, options *Options) error {
	if len(cmd.args) > 0 {
		if cmd.args[0] == cmd.Name() {
			cmd.Help()
			return nil
		}

		for _, c := range Commands {
			if c.Name() == cmd.args[0] {
				c.Help()
				return nil
			}
		}

		return fmt.Errorf("invalid command '%v'", cmd.args[0])
	}

	cmd.usage()

	return nil
}

func (cmd *Help) usage() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] <command> [options]\n", APP)
	fmt.Println()
	fmt.Println("  Commands:")
	fmt.Println()

	fmt.Printf("    %-10s %s\n", cmd.Name(), cmd.Description())
	for _, c := range Commands {
		fmt.Printf("    %-10s %s\n", c.Name(), c.Description())
	}

	fmt.Println()
	fmt.Println("  Options:")
	fmt.Println()
	fmt.Println("    --config  Configuration file path")
	fmt.Println("    --debug   Enables debugging information")
	fmt.Println()
}

// Usage displays the command list.
func Usage() {
	HelpCmd.usage()
}
