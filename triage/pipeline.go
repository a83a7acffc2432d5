package triage

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ericpoe/ask-a-tech/config"
	"github.com/ericpoe/ask-a-tech/types"
	"github.com/ericpoe/ask-a-tech/whd"
)

// Session is an authenticated connection to the spreadsheet holding the active and archive worksheets.
type Session interface {
	Fetch(ctx context.Context, worksheet string) ([]types.Row, error)
	Insert(ctx context.Context, worksheet string, row types.Row) error
	Delete(ctx context.Context, worksheet string, row types.Row) error
}

type Authenticator func(ctx context.Context) (Session, error)

type Submitter interface {
	Submit(ctx context.Context, ticket whd.Ticket) error
}

// Pipeline turns the rows in the active worksheet into help desk tickets, one row at a time and
// in worksheet order. The first failure aborts the run, leaving that row and every row after it
// in the active worksheet for the next run.
type Pipeline struct {
	config       *config.Config
	authenticate Authenticator
	submitter    Submitter
	log          *zap.Logger
	dryrun       bool
}

type Summary struct {
	Run       string
	Fetched   int
	Processed int
}

func NewPipeline(cfg *config.Config, authenticate Authenticator, submitter Submitter, log *zap.Logger, dryrun bool) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}

	return &Pipeline{
		config:       cfg,
		authenticate: authenticate,
		submitter:    submitter,
		log:          log,
		dryrun:       dryrun,
	}
}

// Run processes every row currently in the active worksheet. Any error returned is a *types.Error
// and has already been logged.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	summary := Summary{
		Run: uuid.NewString(),
	}

	log := p.log.With(zap.String("run", summary.Run))
	active := p.config.Spreadsheet.Active
	archive := p.config.Spreadsheet.Archive

	session, err := p.authenticate(ctx)
	if err != nil {
		return summary, abort(log, types.NewError(types.AuthError, "", err), nil)
	}

	rows, err := session.Fetch(ctx, active)
	if err != nil {
		return summary, abort(log, types.NewError(types.FetchError, "", err), nil)
	}

	summary.Fetched = len(rows)
	log.Debug("fetched rows", zap.String("worksheet", active), zap.Int("rows", len(rows)))

	archiver := NewArchiver(session, active, archive)

	for _, row := range rows {
		ticket := whd.Build(row, &p.config.WHD)

		if p.dryrun {
			log.Debug("dry run", zap.Int64("row", row.Number()), zap.Any("ticket", ticket))
			continue
		}

		if err := p.submitter.Submit(ctx, ticket); err != nil {
			var e *types.Error
			if !errors.As(err, &e) || e.Kind != types.SubmitError {
				err = types.NewError(types.SubmitError, types.Network, err)
			}

			return summary, abort(log, err, &row)
		}

		if err := archiver.Archive(ctx, row); err != nil {
			return summary, abort(log, err, &row)
		}

		summary.Processed++

		log.Info("created ticket",
			zap.Int64("row", row.Number()),
			zap.String("client", ticket.ClientReporter.ID),
			zap.String("timestamp", row.Timestamp))
	}

	if summary.Fetched > 0 {
		log.Info("run complete", zap.Int("fetched", summary.Fetched), zap.Int("processed", summary.Processed))
	}

	return summary, nil
}

func abort(log *zap.Logger, err error, row *types.Row) error {
	fields := []zap.Field{}

	var e *types.Error
	if errors.As(err, &e) {
		fields = append(fields, zap.String("kind", string(e.Kind)))
		if e.Cause != "" {
			fields = append(fields, zap.String("cause", string(e.Cause)))
		}
	}

	if row != nil {
		fields = append(fields, zap.Int64("row", row.Number()), zap.String("username", row.Username))
	}

	fields = append(fields, zap.Error(err))

	log.Error("run aborted", fields...)

	return err
}
