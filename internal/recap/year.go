// Package recap computes a single-year reading recap from normalized book
// records: which books count for the year, the aggregate statistics over them,
// and the persona classification input they feed.
package recap

import (
	"github.com/joshsymonds/shelf-wrapped/internal/model"
)

// YearSet is the derived split of a full book list for one target year.
type YearSet struct {
	// Completed holds the books that count as finished in the target year,
	// with DateRead backfilled from DateAdded where the fallback applied.
	Completed []model.Book
	// BacklogAdded counts to-read books added to the shelves in the target year.
	BacklogAdded int
	// Year is the target calendar year the split was computed for.
	Year int
}

// SplitYear partitions books into those completed in year and the count of
// to-read books added in year.
//
// A book counts as completed when it sits on the read shelf and either its
// read date falls in the target year, or it has no read date at all and its
// added date falls in the target year. The fallback is deliberately narrow: a
// read date from a different year disqualifies the book even when the added
// date matches. Books accepted via the fallback get their read date set to the
// added date so month-level statistics still see them.
func SplitYear(books []model.Book, year int) YearSet {
	set := YearSet{Year: year}

	for _, b := range books {
		switch b.Shelf {
		case model.ShelfRead:
			if b.HasDateRead() {
				if b.DateRead.Year() == year {
					set.Completed = append(set.Completed, b)
				}
			} else if b.HasDateAdded() && b.DateAdded.Year() == year {
				b.DateRead = b.DateAdded
				set.Completed = append(set.Completed, b)
			}
		case model.ShelfToRead:
			if b.HasDateAdded() && b.DateAdded.Year() == year {
				set.BacklogAdded++
			}
		}
	}

	return set
}
