package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/shelf-wrapped/internal/model"
	"github.com/joshsymonds/shelf-wrapped/internal/recap"
)

func sampleResult() recap.Result {
	return recap.Result{
		SessionID: "test-session",
		Year:      2025,
		Backlog:   4,
		Completed: []model.Book{{Title: "Dune"}},
		Stats: model.Stats{
			TotalBooks:   2,
			TotalPages:   657,
			AvgPages:     329,
			AvgRating:    4.5,
			ThickestBook: model.Book{Title: "Dune", Author: "Frank Herbert", Pages: 412},
			TopBooks: []model.Book{
				{Title: "Dune", Rating: 5},
				{Title: "Piranesi", Rating: 4},
			},
			TopAuthors: []model.AuthorCount{
				{Name: "Frank Herbert", Count: 1},
				{Name: "Susanna Clarke", Count: 1},
			},
			PeakMonth: time.February,
		},
		Persona: model.Persona{
			Name:           "Epic Enthusiast",
			Icon:           "⚔️",
			Description:    "Long books, loved hard.",
			Roast:          "Sure it was.",
			PrimaryColor:   "#7C3AED",
			SecondaryColor: "#C4B5FD",
			Tags:           []string{"#TheLongHaul"},
		},
	}
}

func TestBuildSlides_FullYear(t *testing.T) {
	slides := BuildSlides(sampleResult(), "Ada")
	require.NotEmpty(t, slides)

	deck := RenderPlain(slides)

	assert.Contains(t, deck, "2025 Wrapped")
	assert.Contains(t, deck, "Hello, Ada.")
	assert.Contains(t, deck, "2 books")
	assert.Contains(t, deck, "657 pages")
	assert.Contains(t, deck, "329 pages")
	assert.Contains(t, deck, "4.5 stars")
	assert.Contains(t, deck, "Frank Herbert")
	assert.Contains(t, deck, "February")
	assert.Contains(t, deck, "1. Dune (5★)")
	assert.Contains(t, deck, "4 books")
	assert.Contains(t, deck, "Epic Enthusiast")
	assert.Contains(t, deck, "#TheLongHaul")
	assert.Contains(t, deck, "Sure it was.")
}

func TestBuildSlides_PersonaSlideCarriesAccent(t *testing.T) {
	slides := BuildSlides(sampleResult(), "Ada")

	last := slides[len(slides)-1]
	assert.Equal(t, "You are...", last.Title)
	assert.EqualValues(t, "#7C3AED", last.Accent)
}

func TestBuildSlides_EmptyYear(t *testing.T) {
	res := recap.Result{
		Year:    2025,
		Persona: model.Persona{Name: "Balanced Realist", Icon: "⚖️"},
	}

	slides := BuildSlides(res, "Ada")
	deck := RenderPlain(slides)

	// The empty-year deck must not surface the sentinel thickest book.
	assert.Contains(t, deck, "A quiet year")
	assert.NotContains(t, deck, "The heavyweight")
	assert.NotContains(t, deck, "Your top books")
	assert.Contains(t, deck, "0 books")
	assert.Contains(t, deck, "Balanced Realist")
}

func TestBuildSlides_FractionalRatingsDisplayCleanly(t *testing.T) {
	res := sampleResult()
	res.Stats.TopBooks = []model.Book{{Title: "Circe", Rating: 4.25}}

	deck := RenderPlain(BuildSlides(res, "Ada"))
	assert.Contains(t, deck, "Circe (4.25★)")
}

func TestRenderPlain_OneSectionPerSlide(t *testing.T) {
	slides := []Slide{
		{Title: "First", Lines: []string{"a"}},
		{Title: "Second", Lines: []string{"b", "c"}},
	}

	out := RenderPlain(slides)
	assert.Equal(t, 1, strings.Count(out, "First"))
	assert.Equal(t, 1, strings.Count(out, "Second"))
	assert.True(t, strings.Index(out, "First") < strings.Index(out, "Second"))
}

func TestWrap(t *testing.T) {
	lines := wrap("one two three four five", 9)
	assert.Equal(t, []string{"one two", "three", "four five"}, lines)

	assert.Nil(t, wrap("", 10))
}

func TestPlural(t *testing.T) {
	assert.Equal(t, "1 book", plural(1, "book"))
	assert.Equal(t, "0 books", plural(0, "book"))
	assert.Equal(t, "42 pages", plural(42, "page"))
}
