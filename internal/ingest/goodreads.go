package ingest

import (
	"strings"

	"github.com/joshsymonds/shelf-wrapped/internal/model"
)

// Goodreads library export columns. The export carries many more columns than
// these; everything else is ignored.
const (
	grColTitle     = "Title"
	grColAuthor    = "Author"
	grColPages     = "Number of Pages"
	grColRating    = "My Rating"
	grColDateRead  = "Date Read"
	grColDateAdded = "Date Added"
	grColShelf     = "Exclusive Shelf"
)

type goodreadsSource struct{}

func (goodreadsSource) Format() model.SourceFormat {
	return model.SourceGoodreads
}

func (goodreadsSource) Normalize(row RawRow) model.Book {
	return model.Book{
		Title:     strings.TrimSpace(row[grColTitle]),
		Author:    strings.TrimSpace(row[grColAuthor]),
		Pages:     parsePages(row[grColPages]),
		Rating:    parseIntRating(row[grColRating]),
		DateRead:  parseDate(row[grColDateRead]),
		DateAdded: parseDate(row[grColDateAdded]),
		Shelf:     goodreadsShelf(row[grColShelf]),
	}
}

func goodreadsShelf(value string) model.Shelf {
	switch strings.TrimSpace(value) {
	case "read":
		return model.ShelfRead
	case "to-read":
		return model.ShelfToRead
	default:
		return model.ShelfOther
	}
}
