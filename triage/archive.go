package triage

import (
	"context"

	"github.com/ericpoe/ask-a-tech/types"
)

// Archiver moves rows from the active worksheet to the archive worksheet.
type Archiver struct {
	session Session
	active  string
	archive string
}

func NewArchiver(session Session, active, archive string) *Archiver {
	return &Archiver{
		session: session,
		active:  active,
		archive: archive,
	}
}

// Archive copies a row to the archive worksheet and then deletes it from the active worksheet.
// The two steps are not atomic: if the delete fails the row is left in both worksheets.
func (a *Archiver) Archive(ctx context.Context, row types.Row) error {
	if err := a.session.Insert(ctx, a.archive, row); err != nil {
		return types.NewError(types.ArchiveError, types.Insert, err)
	}

	if err := a.session.Delete(ctx, a.active, row); err != nil {
		return types.NewError(types.ArchiveError, types.Delete, err)
	}

	return nil
}
