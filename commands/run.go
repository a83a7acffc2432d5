package commands

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ericpoe/ask-a-tech/gsheets"
	"github.com/ericpoe/ask-a-tech/lockfile"
	"github.com/ericpoe/ask-a-tech/logging"
	"github.com/ericpoe/ask-a-tech/triage"
	"github.com/ericpoe/ask-a-tech/whd"
)

var RunCmd = Run{
	dryrun:  false,
	timeout: 0,
}

// Run creates a Web Help Desk ticket for every row in the active worksheet and moves the row to
// the archive worksheet. Intended to be invoked periodically by cron.
type Run struct {
	dryrun  bool
	timeout time.Duration
}

func (cmd *Run) Name() string {
	return "run"
}

func (cmd *Run) Description() string {
	return "Creates help desk tickets for the pending Ask-A-Tech form responses"
}

func (cmd *Run) Usage() string {
	return "[--dry-run] [--timeout <duration>]"
}

func (cmd *Run) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] run [options]\n", APP)
	fmt.Println()
	fmt.Println("  Creates a Web Help Desk ticket for each row in the active worksheet and moves")
	fmt.Println("  the row to the archive worksheet. The run stops at the first failure, leaving")
	fmt.Println("  the failed row and all the rows after it for the next run.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s run\n", APP)
	fmt.Printf("    %s --debug run --dry-run\n", APP)
	fmt.Println()
}

func (cmd *Run) FlagSet() *pflag.FlagSet {
	flagset := pflag.NewFlagSet("run", pflag.ContinueOnError)

	flagset.BoolVar(&cmd.dryrun, "dry-run", cmd.dryrun, "Builds the tickets without submitting them or archiving any rows")
	flagset.DurationVar(&cmd.timeout, "timeout", cmd.timeout, "Web Help Desk request timeout e.g. 30s. Defaults to no timeout")

	return flagset
}

func (cmd *Run) Execute(ctx context.Context, options *Options) error {
	cfg, err := load(options)
	if err != nil {
		return err
	}

	log, err := logging.NewLogger(cfg.Log, options.Debug)
	if err != nil {
		return err
	}

	defer log.Sync()

	lock, err := lockfile.Acquire(filepath.Join(cfg.Workdir, "ask-a-tech.lock"))
	if err != nil {
		log.Error("run not started", zap.Error(err))
		return err
	}

	defer lock.Release()

	authenticate := func(ctx context.Context) (triage.Session, error) {
		session, err := gsheets.Authenticate(ctx, cfg)
		if err != nil {
			return nil, err
		}

		return session, nil
	}

	client := whd.NewClient(&cfg.WHD, &http.Client{Timeout: cmd.timeout})
	pipeline := triage.NewPipeline(cfg, authenticate, client, log, cmd.dryrun)

	summary, err := pipeline.Run(ctx)
	if err != nil {
		return err
	}

	if options.Debug {
		fmt.Printf("  run %v: %v rows, %v tickets created\n", summary.Run, summary.Fetched, summary.Processed)
	}

	return nil
}
