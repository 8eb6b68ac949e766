package feed

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ethsmith/csc-manager/internal/model"
)

// DefaultExportURL is the public CSV export of the season stats sheet.
const DefaultExportURL = "https://docs.google.com/spreadsheets/d/1lcZ80NLIG2vLQvS7G3zL8tPcc6_iV24PG_V-ZmZNWHo/gviz/tq?tqx=out:csv&gid=289298243"

// Source supplies the raw feed grid, header row included. A Source either
// returns the whole grid or fails; there is no partial delivery.
type Source interface {
	Rows(ctx context.Context) ([][]string, error)
}

// Fetch reads one full grid from src, drops the header row and parses the rest.
// A grid with fewer than two rows yields no records.
func Fetch(ctx context.Context, src Source) (records []model.StatRecord, rejected int, err error) {
	rows, err := src.Rows(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch stats feed: %w", err)
	}
	if len(rows) < 2 {
		return []model.StatRecord{}, 0, nil
	}
	records, rejected = ParseRows(rows[1:])
	return records, rejected, nil
}

// ExportSource downloads the sheet's CSV export over HTTP.
type ExportSource struct {
	url  string
	http *http.Client
}

// NewExportSource returns a source for the given CSV export URL.
func NewExportSource(url string, timeout time.Duration) *ExportSource {
	return &ExportSource{
		url:  url,
		http: &http.Client{Timeout: timeout},
	}
}

// Rows performs one GET of the export and decodes it.
func (s *ExportSource) Rows(ctx context.Context) ([][]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET stats export: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, fmt.Errorf("GET stats export: HTTP %d: %s", resp.StatusCode, body)
	}
	return DecodeCSV(resp.Body)
}

// DecodeCSV reads a comma-separated grid. Rows may have any width; empty lines
// are skipped and stray quotes are tolerated.
func DecodeCSV(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode csv: %w", err)
		}
		rows = append(rows, rec)
	}
	return rows, nil
}
