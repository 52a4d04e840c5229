// Package ingest reads reading-history CSV exports and normalizes their rows
// into book records.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/joshsymonds/shelf-wrapped/internal/common"
)

// RawRow is one data row of an export file, keyed by header column name.
// Missing or short rows simply lack keys; downstream coercion handles that.
type RawRow map[string]string

// Decoder reads a CSV export into an ordered sequence of raw rows.
type Decoder struct {
	progress io.Writer
}

// NewDecoder creates a new CSV decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// WithProgress enables a progress indicator written to w while decoding.
func (d *Decoder) WithProgress(w io.Writer) *Decoder {
	d.progress = w
	return d
}

// DecodeAll reads every data row from reader. The first non-blank line is the
// header; blank lines anywhere are skipped. Ragged rows are tolerated: extra
// cells are dropped, missing cells are simply absent from the row map.
func (d *Decoder) DecodeAll(ctx context.Context, reader io.Reader) ([]RawRow, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, common.NewUserError("export file is empty", common.ErrMissingHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	bar := d.newBar()

	var rows []RawRow
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read data row: %w", err)
		}
		if isBlank(record) {
			continue
		}

		row := make(RawRow, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		rows = append(rows, row)

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	slog.Debug("Decoded CSV export",
		"columns", len(header),
		"rows", len(rows))

	return rows, nil
}

func (d *Decoder) newBar() *progressbar.ProgressBar {
	if d.progress == nil {
		return nil
	}
	return progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(d.progress),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan][bold]Reading your shelves...[reset]"),
		progressbar.OptionSpinnerType(14),
	)
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
