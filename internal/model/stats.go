package model

import (
	"fmt"
	"time"
)

// AuthorCount is one entry in the ranked author list.
type AuthorCount struct {
	Name  string
	Count int
}

// Stats holds the aggregate statistics derived from the books completed in the
// target year. All fields degenerate to zero/empty/sentinel values when the
// completed set is empty; none of the derivations can fail.
type Stats struct {
	ThickestBook Book          // sentinel (empty title/author, 0 pages) when no books completed
	TopBooks     []Book        // rated books only, best first, at most 5
	TopAuthors   []AuthorCount // canonical author keys, most read first, at most 5
	TotalBooks   int
	TotalPages   int
	AvgPages     int        // rounded; 0 when TotalBooks is 0
	AvgRating    float64    // rounded to one decimal; 0 when TotalBooks is 0
	PeakMonth    time.Month // 0 when no books completed
}

// FormattedAvgRating renders the average rating with one decimal place, the
// form the slides display ("0.0" for an empty year).
func (s Stats) FormattedAvgRating() string {
	return fmt.Sprintf("%.1f", s.AvgRating)
}

// HasPeakMonth reports whether any completed book carried a read date.
func (s Stats) HasPeakMonth() bool {
	return s.PeakMonth != 0
}
