package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Warning is a non-fatal issue found while parsing a roster file. The
// row number is 1-indexed counting the header as row 1.
type Warning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// rawRows parses CSV bytes into header-keyed maps, one per data row.
// Column-count mismatches are padded or truncated with a warning so a
// single ragged row never sinks the whole upload.
func rawRows(data []byte) ([]map[string]string, []Warning, error) {
	decoded, _ := decode(data)

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	headers, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errors.New("empty file: no header row found")
		}
		return nil, nil, fmt.Errorf("failed to read header row: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(h)
	}

	var (
		rows     []map[string]string
		warnings []Warning
	)
	rowNum := 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			warnings = append(warnings, Warning{
				Row:     rowNum,
				Message: fmt.Sprintf("parse error: %v", err),
			})
			continue
		}

		if len(row) < len(headers) {
			warnings = append(warnings, Warning{
				Row:     rowNum,
				Message: fmt.Sprintf("row has %d columns, expected %d; padding", len(row), len(headers)),
			})
			padded := make([]string, len(headers))
			copy(padded, row)
			row = padded
		} else if len(row) > len(headers) {
			warnings = append(warnings, Warning{
				Row:     rowNum,
				Message: fmt.Sprintf("row has %d columns, expected %d; truncating", len(row), len(headers)),
			})
			row = row[:len(headers)]
		}

		rec := make(map[string]string, len(headers))
		for i, h := range headers {
			rec[h] = strings.TrimSpace(row[i])
		}
		rows = append(rows, rec)
	}

	if len(rows) == 0 {
		return nil, warnings, errors.New("file contains no data rows")
	}
	return rows, warnings, nil
}
