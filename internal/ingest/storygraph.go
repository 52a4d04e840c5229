package ingest

import (
	"strings"

	"github.com/joshsymonds/shelf-wrapped/internal/model"
)

// StoryGraph export columns. The format has no added-date column, so DateAdded
// is always absent for this source and the backlog fallback never fires.
const (
	sgColTitle    = "Title"
	sgColAuthors  = "Authors"
	sgColPages    = "Pages"
	sgColRating   = "Star Rating"
	sgColDateRead = "Last Date Read"
	sgColStatus   = "Read Status"
)

type storygraphSource struct{}

func (storygraphSource) Format() model.SourceFormat {
	return model.SourceStoryGraph
}

func (storygraphSource) Normalize(row RawRow) model.Book {
	return model.Book{
		Title:    strings.TrimSpace(row[sgColTitle]),
		Author:   strings.TrimSpace(row[sgColAuthors]),
		Pages:    parsePages(row[sgColPages]),
		Rating:   parseFloatRating(row[sgColRating]),
		DateRead: parseDate(row[sgColDateRead]),
		Shelf:    storygraphShelf(row[sgColStatus]),
	}
}

// storygraphShelf treats only the literal status "read" as read; every other
// status (to-read, currently-reading, did-not-finish) counts as to-read.
func storygraphShelf(value string) model.Shelf {
	if strings.TrimSpace(value) == "read" {
		return model.ShelfRead
	}
	return model.ShelfToRead
}
