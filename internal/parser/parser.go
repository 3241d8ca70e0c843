// Package parser turns a historical price CSV into a series of close prices.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CloseColumn is the zero-based index of the close price in the feed.
const CloseColumn = 3

var (
	// ErrNoHeader is returned when the input holds no rows at all.
	ErrNoHeader = errors.New("csv has no header row")
	// ErrShortRow is returned when a data row has no field at the close column.
	ErrShortRow = errors.New("row is missing the close column")
)

// ParseOrDefault parses field as a decimal float64, returning def when the
// field is not a number (placeholders such as "-", empty strings, letters,
// hex literals). Underscores between digits are accepted as separators.
// Out-of-range values come back as ±Inf.
func ParseOrDefault(field string, def float64) float64 {
	s, ok := normalizeNumber(strings.TrimSpace(field))
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v
		}
		return def
	}
	return v
}

// normalizeNumber rejects hex literals and strips underscores that sit
// between two digits. Any other underscore makes the field invalid.
func normalizeNumber(s string) (string, bool) {
	digits := strings.TrimLeft(s, "+-")
	if len(digits) > 1 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		return "", false
	}
	if !strings.Contains(s, "_") {
		return s, true
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return strings.ReplaceAll(s, "_", ""), true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// ParseCloses reads comma-separated rows from r, drops the first row as a
// header and returns the value of column from every remaining row.
// The result has exactly one element per data row, in input order.
// Quoting is lenient: a stray or unterminated quote is kept as field text
// rather than rejected. Blank lines are not rows.
func ParseCloses(r io.Reader, column int, missing float64) ([]float64, error) {
	if column < 0 {
		return nil, fmt.Errorf("invalid column index %d", column)
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if err == io.EOF {
			return nil, ErrNoHeader
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	closes := []float64{}
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(closes)+1, err)
		}
		if len(record) <= column {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d has %d fields: %w", line, len(record), ErrShortRow)
		}
		closes = append(closes, ParseOrDefault(record[column], missing))
	}
	return closes, nil
}
