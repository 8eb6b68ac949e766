package feed

import (
	"context"
	"fmt"
	"regexp"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSource reads the stats tab through the Google Sheets API with a
// service account, for sheets that are not published.
type SheetsSource struct {
	service       *sheets.Service
	spreadsheetID string
	readRange     string
}

// NewSheetsSource creates a read-only Sheets client from service account
// credentials. readRange is A1 notation, e.g. "Stats!A:FD".
func NewSheetsSource(ctx context.Context, credentialsJSON []byte, sheetURL, readRange string) (*SheetsSource, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse credentials: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	spreadsheetID, err := extractSpreadsheetID(sheetURL)
	if err != nil {
		return nil, err
	}

	return &SheetsSource{
		service:       srv,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
	}, nil
}

// Rows fetches the configured range as formatted text.
func (s *SheetsSource) Rows(ctx context.Context) ([][]string, error) {
	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, s.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return valuesToRows(resp.Values), nil
}

var spreadsheetIDPattern = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)

// extractSpreadsheetID extracts the spreadsheet ID from a Google Sheets URL.
func extractSpreadsheetID(url string) (string, error) {
	matches := spreadsheetIDPattern.FindStringSubmatch(url)
	if len(matches) < 2 {
		return "", fmt.Errorf("could not extract spreadsheet ID from URL: %s", url)
	}
	return matches[1], nil
}

func valuesToRows(values [][]interface{}) [][]string {
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		row := make([]string, len(v))
		for i, c := range v {
			switch c := c.(type) {
			case nil:
			case string:
				row[i] = c
			default:
				row[i] = fmt.Sprint(c)
			}
		}
		rows = append(rows, row)
	}
	return rows
}
