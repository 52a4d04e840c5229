package recap

import (
	"math"
	"sort"
	"time"

	"github.com/joshsymonds/shelf-wrapped/internal/model"
)

const rankingSize = 5

// Aggregate computes the full statistics bundle over the books completed in
// the target year. Every statistic has a well-defined zero or sentinel value
// for an empty input.
func Aggregate(completed []model.Book) model.Stats {
	stats := model.Stats{
		TotalBooks: len(completed),
	}

	var ratingSum float64
	for i, b := range completed {
		stats.TotalPages += b.Pages
		ratingSum += b.Rating
		if i == 0 || b.Pages > stats.ThickestBook.Pages {
			stats.ThickestBook = b
		}
	}

	if stats.TotalBooks > 0 {
		stats.AvgPages = int(math.Round(float64(stats.TotalPages) / float64(stats.TotalBooks)))
		stats.AvgRating = math.Round(ratingSum/float64(stats.TotalBooks)*10) / 10
	}

	stats.TopBooks = topBooks(completed)
	stats.TopAuthors = topAuthors(completed)
	stats.PeakMonth = peakMonth(completed)

	return stats
}

// topBooks ranks rated books by rating, then by page count. Unrated books do
// not participate at all.
func topBooks(completed []model.Book) []model.Book {
	var rated []model.Book
	for _, b := range completed {
		if b.Rating > 0 {
			rated = append(rated, b)
		}
	}

	sort.SliceStable(rated, func(i, j int) bool {
		if rated[i].Rating != rated[j].Rating {
			return rated[i].Rating > rated[j].Rating
		}
		return rated[i].Pages > rated[j].Pages
	})

	if len(rated) > rankingSize {
		rated = rated[:rankingSize]
	}
	return rated
}

// topAuthors groups by canonical author name and ranks by count. The stable
// sort keeps equal-count authors in first-appearance order.
func topAuthors(completed []model.Book) []model.AuthorCount {
	counts := make(map[string]int)
	var order []string
	for _, b := range completed {
		name := b.CanonicalAuthor()
		if name == "" {
			continue
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	authors := make([]model.AuthorCount, 0, len(order))
	for _, name := range order {
		authors = append(authors, model.AuthorCount{Name: name, Count: counts[name]})
	}

	sort.SliceStable(authors, func(i, j int) bool {
		return authors[i].Count > authors[j].Count
	})

	if len(authors) > rankingSize {
		authors = authors[:rankingSize]
	}
	return authors
}

// peakMonth finds the calendar month with the most completed books, keyed off
// the (post-backfill) read date. Months are scanned January through December,
// so the earlier month wins a tie. Returns 0 when nothing was completed.
func peakMonth(completed []model.Book) time.Month {
	var byMonth [13]int
	for _, b := range completed {
		if b.HasDateRead() {
			byMonth[b.DateRead.Month()]++
		}
	}

	best := time.Month(0)
	bestCount := 0
	for m := time.January; m <= time.December; m++ {
		if byMonth[m] > bestCount {
			best = m
			bestCount = byMonth[m]
		}
	}
	return best
}
