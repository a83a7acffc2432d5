package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/ericpoe/ask-a-tech/gsheets"
)

var GetCmd = Get{
	worksheet: "",
	file:      time.Now().Format("2006-01-02T150405.tsv"),
}

type Get struct {
	worksheet string
	file      string
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves the form responses from a worksheet and stores them to a local TSV file"
}

func (cmd *Get) Usage() string {
	return "[--worksheet <title>] [--file <file>]"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] get [options]\n", APP)
	fmt.Println()
	fmt.Println("  Downloads the rows of a worksheet to a TSV file. Defaults to the active worksheet.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s get --file pending.tsv\n", APP)
	fmt.Printf("    %s get --worksheet Archive --file archive.tsv\n", APP)
	fmt.Println()
}

func (cmd *Get) FlagSet() *pflag.FlagSet {
	flagset := pflag.NewFlagSet("get", pflag.ContinueOnError)

	flagset.StringVar(&cmd.worksheet, "worksheet", cmd.worksheet, "Worksheet title. Defaults to the configured active worksheet")
	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to '<yyyy-mm-ddTHHmmss>.tsv'")

	return flagset
}

func (cmd *Get) Execute(ctx context.Context, options *Options) error {
	cfg, err := load(options)
	if err != nil {
		return err
	}

	worksheet := cfg.Spreadsheet.Active
	if cmd.worksheet != "" {
		worksheet = cmd.worksheet
	}

	if options.Debug {
		fmt.Printf("  ... spreadsheet:%v  worksheet:%v\n", cfg.SpreadsheetID(), worksheet)
	}

	session, err := gsheets.Authenticate(ctx, cfg)
	if err != nil {
		return err
	}

	rows, err := session.Fetch(ctx, worksheet)
	if err != nil {
		return err
	}

	if err := writeTSV(cmd.file, rows); err != nil {
		return err
	}

	fmt.Printf("  Retrieved %v rows from '%v' to %v\n", len(rows), worksheet, cmd.file)

	return nil
}
