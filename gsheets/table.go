package gsheets

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ericpoe/ask-a-tech/types"
)

const (
	TIMESTAMP = "timestamp"
	USERNAME  = "username"
	QUESTION  = "question"
)

var columns = []string{TIMESTAMP, USERNAME, QUESTION}

var nonalphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// makeRows converts the values of a form responses worksheet to rows. The first row is the
// header: columns are matched by normalised title so 'Question?' and 'QUESTION' are both the
// question column and column order is irrelevant.
func makeRows(values [][]any) ([]types.Row, error) {
	if len(values) == 0 {
		return []types.Row{}, nil
	}

	index, err := makeIndex(values[0])
	if err != nil {
		return nil, err
	}

	for _, k := range columns {
		if _, ok := index[k]; !ok {
			return nil, fmt.Errorf("missing '%v' column", k)
		}
	}

	rows := []types.Row{}
	for i, record := range values[1:] {
		row := types.Row{
			Index:     int64(i + 1),
			Timestamp: clean(cell(record, index[TIMESTAMP])),
			Username:  clean(cell(record, index[USERNAME])),
			Question:  cell(record, index[QUESTION]),
		}

		if row.Timestamp == "" && row.Username == "" && clean(row.Question) == "" {
			continue
		}

		rows = append(rows, row)
	}

	return rows, nil
}

// makeRecord lays out a row for a worksheet with the given header. A worksheet without a header
// gets the fields in timestamp, username, question order.
func makeRecord(header []any, row types.Row) ([]any, error) {
	index := map[string]int{
		TIMESTAMP: 0,
		USERNAME:  1,
		QUESTION:  2,
	}

	if len(header) > 0 {
		if ix, err := makeIndex(header); err != nil {
			return nil, err
		} else {
			index = ix
		}

		for _, k := range columns {
			if _, ok := index[k]; !ok {
				return nil, fmt.Errorf("missing '%v' column", k)
			}
		}
	}

	width := 0
	for _, k := range columns {
		if index[k] >= width {
			width = index[k] + 1
		}
	}

	record := make([]any, width)
	for i := range record {
		record[i] = ""
	}

	record[index[TIMESTAMP]] = row.Timestamp
	record[index[USERNAME]] = row.Username
	record[index[QUESTION]] = row.Question

	return record, nil
}

func makeIndex(header []any) (map[string]int, error) {
	index := map[string]int{}
	for i, v := range header {
		k := normalise(fmt.Sprintf("%v", v))
		if k == "" {
			continue
		}

		if _, ok := index[k]; ok {
			return nil, fmt.Errorf("duplicate column name '%v'", v)
		}

		index[k] = i
	}

	return index, nil
}

func cell(record []any, ix int) string {
	if ix < len(record) && record[ix] != nil {
		return fmt.Sprintf("%v", record[ix])
	}

	return ""
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

func normalise(v string) string {
	return nonalphanumeric.ReplaceAllString(strings.ToLower(v), "")
}
