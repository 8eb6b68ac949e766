// Package feed turns the league stats spreadsheet into typed StatRecords.
//
// The spreadsheet is positional: column i of every row always holds the same
// statistic (see Columns). Parsing is lenient by construction: a bad numeric
// cell reads as 0 and only rows without an identity are dropped.
package feed

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/ethsmith/csc-manager/internal/model"
)

// decimalPrefix matches the longest leading decimal number of a cell, so
// "45%" reads as 45 and "1.2.3" as 1.2.
var decimalPrefix = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// Num converts one cell to a number. It never fails: blank or unparsable
// cells are 0, and so are NaN and infinities.
func Num(cell string) float64 {
	v, _ := ParseNumber(cell)
	return v
}

// ParseNumber reads the leading decimal number of s. ok is false when there
// is none or it is not finite.
func ParseNumber(s string) (v float64, ok bool) {
	m := decimalPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// Exponent overflow ("1e999") parses as ±Inf with ErrRange.
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseRow builds a StatRecord from one feed row. ok is false when the steam
// ID or name cell is missing or blank. Cells past SchemaWidth are ignored and
// missing trailing cells read as 0.
func ParseRow(cells []string) (rec model.StatRecord, ok bool) {
	id := strings.TrimSpace(cell(cells, 0))
	name := strings.TrimSpace(cell(cells, 1))
	if id == "" || name == "" {
		return model.StatRecord{}, false
	}
	rec = model.StatRecord{
		SteamID: id,
		Name:    name,
		Tier:    cell(cells, 2),
	}
	for _, c := range Columns {
		*c.field(&rec) = Num(cell(cells, c.Index))
	}
	return rec, true
}

// ParseRows parses data rows (header already removed), dropping invalid ones.
func ParseRows(rows [][]string) (records []model.StatRecord, rejected int) {
	records = make([]model.StatRecord, 0, len(rows))
	for _, r := range rows {
		rec, ok := ParseRow(r)
		if !ok {
			rejected++
			continue
		}
		records = append(records, rec)
	}
	return records, rejected
}

func cell(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}
