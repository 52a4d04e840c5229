// Package model defines the core domain models used throughout the application.
package model

import (
	"strings"
	"time"
)

// Shelf is the categorical read-status of a book.
type Shelf string

// Shelf constants. Any source value that is not a recognized "read" marker
// normalizes to ShelfToRead or ShelfOther; only ShelfToRead participates in
// backlog counting.
const (
	ShelfRead   Shelf = "read"
	ShelfToRead Shelf = "to-read"
	ShelfOther  Shelf = "other"
)

// SourceFormat identifies which export schema a raw row came from.
type SourceFormat string

// Supported export formats.
const (
	SourceGoodreads  SourceFormat = "goodreads"
	SourceStoryGraph SourceFormat = "storygraph"
)

// ParseSourceFormat validates a user-supplied format string.
func ParseSourceFormat(s string) (SourceFormat, bool) {
	switch SourceFormat(strings.ToLower(strings.TrimSpace(s))) {
	case SourceGoodreads:
		return SourceGoodreads, true
	case SourceStoryGraph:
		return SourceStoryGraph, true
	default:
		return "", false
	}
}

// Book represents a single normalized book record from any source. A Book is
// fully determined by exactly one raw export row and is immutable after
// normalization, with one exception: the year filter backfills DateRead from
// DateAdded on records it accepts via the add-date fallback.
type Book struct {
	DateRead  time.Time // zero value means "not recorded"
	DateAdded time.Time // zero value means "not recorded"
	Title     string
	Author    string // may embed a parenthetical annotation, e.g. "Jane Doe (Goodreads Author)"
	Shelf     Shelf
	Rating    float64 // 0 means unrated; whole numbers for Goodreads, may be fractional for StoryGraph
	Pages     int
}

// CanonicalAuthor returns the author name with any trailing parenthetical
// annotation stripped, so "Jane Doe (Goodreads Author)" and "Jane Doe" collapse
// to the same key.
func (b Book) CanonicalAuthor() string {
	name := b.Author
	if i := strings.Index(name, "("); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

// HasDateRead reports whether a read date was recorded.
func (b Book) HasDateRead() bool {
	return !b.DateRead.IsZero()
}

// HasDateAdded reports whether an added date was recorded.
func (b Book) HasDateAdded() bool {
	return !b.DateAdded.IsZero()
}
