package gsheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/ericpoe/ask-a-tech/config"
	"github.com/ericpoe/ask-a-tech/types"
)

// Session is an authenticated connection to a single spreadsheet. It is not safe for concurrent use.
//
// Rows are identified by their position so a session keeps a count of the rows it has deleted
// from each worksheet: rows must be deleted in the order in which they were fetched.
type Session struct {
	google      *sheets.Service
	spreadsheet *sheets.Spreadsheet
	headers     map[string][]any
	deleted     map[string]int64
}

// Authenticate authorises access to the configured spreadsheet and retrieves the spreadsheet
// metadata, which confirms both the credentials and the spreadsheet ID.
func Authenticate(ctx context.Context, cfg *config.Config) (*Session, error) {
	client, err := authorize(ctx, cfg.Google.Credentials, cfg.Google.Tokens)
	if err != nil {
		return nil, fmt.Errorf("Google Sheets authentication/authorization error (%w)", err)
	}

	return NewSession(ctx, cfg.SpreadsheetID(), option.WithHTTPClient(client))
}

func NewSession(ctx context.Context, spreadsheetId string, options ...option.ClientOption) (*Session, error) {
	google, err := sheets.NewService(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("unable to create new Google Sheets client (%w)", err)
	}

	spreadsheet, err := google.Spreadsheets.Get(spreadsheetId).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet (%w)", err)
	}

	return &Session{
		google:      google,
		spreadsheet: spreadsheet,
		headers:     map[string][]any{},
		deleted:     map[string]int64{},
	}, nil
}

// Fetch returns the rows of a worksheet in worksheet order.
func (s *Session) Fetch(ctx context.Context, worksheet string) ([]types.Row, error) {
	sheet, err := s.getSheet(worksheet)
	if err != nil {
		return nil, err
	}

	response, err := s.google.Spreadsheets.Values.Get(s.spreadsheet.SpreadsheetId, quote(sheet.Properties.Title)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from worksheet '%v' (%w)", worksheet, err)
	}

	rows, err := makeRows(response.Values)
	if err != nil {
		return nil, fmt.Errorf("invalid worksheet '%v' (%w)", worksheet, err)
	}

	return rows, nil
}

// Insert appends a row to a worksheet, placing each field in the column with the matching header.
func (s *Session) Insert(ctx context.Context, worksheet string, row types.Row) error {
	sheet, err := s.getSheet(worksheet)
	if err != nil {
		return err
	}

	header, err := s.getHeader(ctx, sheet)
	if err != nil {
		return err
	}

	record, err := makeRecord(header, row)
	if err != nil {
		return fmt.Errorf("invalid worksheet '%v' (%w)", worksheet, err)
	}

	rows := sheets.ValueRange{
		Values: [][]any{record},
	}

	if _, err := s.google.Spreadsheets.Values.Append(s.spreadsheet.SpreadsheetId, quote(sheet.Properties.Title)+"!A1", &rows).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("error writing %v to worksheet '%v' (%w)", row, worksheet, err)
	}

	return nil
}

// Delete removes a previously fetched row from a worksheet.
func (s *Session) Delete(ctx context.Context, worksheet string, row types.Row) error {
	sheet, err := s.getSheet(worksheet)
	if err != nil {
		return err
	}

	key := normalise(worksheet)
	index := row.Index - s.deleted[key]
	if index < 1 {
		return fmt.Errorf("invalid row index %v for %v", index, row)
	}

	rq := sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			&sheets.Request{
				DeleteDimension: &sheets.DeleteDimensionRequest{
					Range: &sheets.DimensionRange{
						SheetId:         sheet.Properties.SheetId,
						Dimension:       "ROWS",
						StartIndex:      index,
						EndIndex:        index + 1,
						ForceSendFields: []string{"SheetId", "StartIndex"},
					},
				},
			},
		},
	}

	if _, err := s.google.Spreadsheets.BatchUpdate(s.spreadsheet.SpreadsheetId, &rq).Context(ctx).Do(); err != nil {
		return fmt.Errorf("error deleting %v from worksheet '%v' (%w)", row, worksheet, err)
	}

	s.deleted[key]++

	return nil
}

func (s *Session) getSheet(worksheet string) (*sheets.Sheet, error) {
	name := normalise(worksheet)
	for _, sheet := range s.spreadsheet.Sheets {
		if sheet.Properties != nil && normalise(sheet.Properties.Title) == name {
			return sheet, nil
		}
	}

	return nil, fmt.Errorf("unable to identify worksheet '%s'", worksheet)
}

func (s *Session) getHeader(ctx context.Context, sheet *sheets.Sheet) ([]any, error) {
	title := sheet.Properties.Title
	key := normalise(title)
	if header, ok := s.headers[key]; ok {
		return header, nil
	}

	response, err := s.google.Spreadsheets.Values.Get(s.spreadsheet.SpreadsheetId, quote(title)+"!1:1").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve column headers from worksheet '%v' (%w)", title, err)
	}

	header := []any{}
	if len(response.Values) > 0 {
		header = response.Values[0]
	}

	s.headers[key] = header

	return header, nil
}

// quote returns a worksheet title in A1 notation form e.g. 'Form Responses 1'
func quote(worksheet string) string {
	return "'" + strings.ReplaceAll(worksheet, "'", "''") + "'"
}
