package ingest

import (
	"strconv"
	"strings"
	"time"

	"github.com/joshsymonds/shelf-wrapped/internal/common"
	"github.com/joshsymonds/shelf-wrapped/internal/model"
)

// Source normalizes raw rows from one export schema into book records.
// Normalization is total: malformed numbers coerce to 0 and malformed dates
// coerce to the zero time, never an error. Each record is derived from exactly
// one row; no state is carried between rows.
type Source interface {
	// Format returns the schema this source handles.
	Format() model.SourceFormat
	// Normalize converts one raw row into a book record.
	Normalize(row RawRow) model.Book
}

// ForFormat returns the source implementation for the given format tag.
func ForFormat(format model.SourceFormat) (Source, error) {
	switch format {
	case model.SourceGoodreads:
		return goodreadsSource{}, nil
	case model.SourceStoryGraph:
		return storygraphSource{}, nil
	default:
		return nil, common.NewUserError("supported formats are goodreads and storygraph", common.ErrUnknownFormat)
	}
}

// NormalizeAll runs every row through the source.
func NormalizeAll(src Source, rows []RawRow) []model.Book {
	books := make([]model.Book, 0, len(rows))
	for _, row := range rows {
		books = append(books, src.Normalize(row))
	}
	return books
}

// Date layouts seen across export files. Goodreads uses slashed dates; other
// tools re-export the same data with dashes or long-form month names.
var dateLayouts = []string{
	"2006/01/02",
	"2006-01-02",
	"Jan 02, 2006",
	"January 2, 2006",
}

func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parsePages(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func parseIntRating(s string) float64 {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return float64(n)
}

func parseFloatRating(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}
