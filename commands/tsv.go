package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ericpoe/ask-a-tech/types"
)

func rowsToTSV(f io.Writer, rows []types.Row) error {
	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write([]string{"Row", "Timestamp", "Username", "Question"}); err != nil {
		return err
	}

	for _, row := range rows {
		record := []string{
			fmt.Sprintf("%v", row.Number()),
			row.Timestamp,
			row.Username,
			row.Question,
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

// writeTSV writes the rows to a temporary file alongside the target and then renames it, so that
// the target is only ever replaced by a complete file.
func writeTSV(file string, rows []types.Row) error {
	dir := filepath.Dir(file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".ask-a-tech-*.tsv")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := rowsToTSV(tmp, rows); err != nil {
		return fmt.Errorf("error creating TSV file (%w)", err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), file)
}
