package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ericpoe/ask-a-tech/types"
)

func TestRowsToTSV(t *testing.T) {
	expected := `Row	Timestamp	Username	Question
2	1/13/2014 12:15:00	user1@usd230.org	Lorem ipsum dolor sit amet?
4	1/15/2014 14:25:35	user2@usd230.org	Nunc libero nulla
`

	rows := []types.Row{
		{Index: 1, Timestamp: "1/13/2014 12:15:00", Username: "user1@usd230.org", Question: "Lorem ipsum dolor sit amet?"},
		{Index: 3, Timestamp: "1/15/2014 14:25:35", Username: "user2@usd230.org", Question: "Nunc libero nulla"},
	}

	var f strings.Builder

	if err := rowsToTSV(&f, rows); err != nil {
		t.Fatalf("Unexpected error returned from rowsToTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestRowsToTSVWithMultilineQuestion(t *testing.T) {
	expected := `Row	Timestamp	Username	Question
2	1/13/2014 12:15:00	user1@usd230.org	"Printer
jammed?"
`

	rows := []types.Row{
		{Index: 1, Timestamp: "1/13/2014 12:15:00", Username: "user1@usd230.org", Question: "Printer\njammed?"},
	}

	var f strings.Builder

	if err := rowsToTSV(&f, rows); err != nil {
		t.Fatalf("Unexpected error returned from rowsToTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestRowsToTSVWithNoRows(t *testing.T) {
	expected := "Row\tTimestamp\tUsername\tQuestion\n"

	var f strings.Builder

	if err := rowsToTSV(&f, []types.Row{}); err != nil {
		t.Fatalf("Unexpected error returned from rowsToTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %q\n   got:      %q\n", expected, f.String())
	}
}

func TestWriteTSV(t *testing.T) {
	expected := "Row\tTimestamp\tUsername\tQuestion\n2\t1/13/2014 12:15:00\tuser1@usd230.org\tVPN down?\n"

	dir := filepath.Join(t.TempDir(), "exports")
	file := filepath.Join(dir, "pending.tsv")
	rows := []types.Row{
		{Index: 1, Timestamp: "1/13/2014 12:15:00", Username: "user1@usd230.org", Question: "VPN down?"},
	}

	if err := writeTSV(file, rows); err != nil {
		t.Fatalf("Unexpected error returned from writeTSV (%v)", err)
	}

	bytes, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("Error reading TSV file (%v)", err)
	}

	if string(bytes) != expected {
		t.Errorf("Incorrect TSV\n   expected: %q\n   got:      %q\n", expected, string(bytes))
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Error reading TSV directory (%v)", err)
	}

	if len(files) != 1 || files[0].Name() != "pending.tsv" {
		t.Errorf("Expected only 'pending.tsv' in %v, got %v", dir, files)
	}
}
