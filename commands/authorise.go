package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/ericpoe/ask-a-tech/gsheets"
)

var AuthoriseCmd = Authorise{}

type Authorise struct {
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises ask-a-tech to access the Google Sheets spreadsheet"
}

func (cmd *Authorise) Usage() string {
	return ""
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--config <file>] authorise\n", APP)
	fmt.Println()
	fmt.Println("  Authorises ask-a-tech to access the Google Sheets spreadsheet and saves the OAuth2")
	fmt.Println("  tokens to the configured tokens file for unattended runs. Not required for service")
	fmt.Println("  account credentials.")
	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s --config ask-a-tech.yaml authorise\n", APP)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *pflag.FlagSet {
	return pflag.NewFlagSet("authorise", pflag.ContinueOnError)
}

func (cmd *Authorise) Execute(ctx context.Context, options *Options) error {
	cfg, err := load(options)
	if err != nil {
		return err
	}

	if err := gsheets.Authorise(ctx, cfg.Google.Credentials, cfg.Google.Tokens, os.Stdin, os.Stdout); err != nil {
		return fmt.Errorf("authorisation error (%w)", err)
	}

	return nil
}
