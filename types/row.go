package types

import (
	"fmt"
)

// Row is one submitted question in the active worksheet. A row has no key of its own: it is
// identified by Index, its 0-based row number in the worksheet it was read from.
type Row struct {
	Index     int64
	Timestamp string
	Username  string
	Question  string
}

// Number returns the 1-based row number as displayed in the spreadsheet.
func (r Row) Number() int64 {
	return r.Index + 1
}

func (r Row) String() string {
	return fmt.Sprintf("row %v (%v)", r.Number(), r.Username)
}
