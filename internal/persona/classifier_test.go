package persona

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joshsymonds/shelf-wrapped/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		stats   model.Stats
		backlog int
	}{
		{
			name:    "backlog dominance",
			stats:   model.Stats{TotalBooks: 3, AvgPages: 250, AvgRating: 3.5},
			backlog: 12,
			want:    "Serial Shelver",
		},
		{
			name:    "backlog must exceed twice the books read",
			stats:   model.Stats{TotalBooks: 10, AvgPages: 250, AvgRating: 3.5},
			backlog: 12,
			want:    "Balanced Realist",
		},
		{
			name:    "backlog must exceed five even with nothing read",
			stats:   model.Stats{TotalBooks: 0},
			backlog: 5,
			want:    "Balanced Realist",
		},
		{
			name:  "deep sparse reading",
			stats: model.Stats{TotalBooks: 8, AvgPages: 520, AvgRating: 3.9},
			want:  "Deep Diver",
		},
		{
			name:  "high volume short books modest ratings",
			stats: model.Stats{TotalBooks: 25, AvgPages: 220, AvgRating: 3.4},
			want:  "Page Sprinter",
		},
		{
			name:  "long books loved",
			stats: model.Stats{TotalBooks: 18, AvgPages: 400, AvgRating: 4.1},
			want:  "Epic Enthusiast",
		},
		{
			name:  "high ratings generally",
			stats: model.Stats{TotalBooks: 18, AvgPages: 280, AvgRating: 4.4},
			want:  "Generous Star-Giver",
		},
		{
			name:  "nothing matches",
			stats: model.Stats{TotalBooks: 16, AvgPages: 320, AvgRating: 3.9},
			want:  "Balanced Realist",
		},
		{
			name:  "empty year falls through",
			stats: model.Stats{},
			want:  "Balanced Realist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.stats, tt.backlog)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

// A statistics vector can satisfy both the long-books rule and the
// high-ratings rule at once; the long-books rule is listed first and must win.
func TestClassify_OrderBreaksOverlap(t *testing.T) {
	stats := model.Stats{TotalBooks: 16, AvgPages: 500, AvgRating: 4.5}

	got := Classify(stats, 0)
	assert.Equal(t, "Epic Enthusiast", got.Name)
}

func TestClassify_DeepDiverBeatsGenerousRatings(t *testing.T) {
	// Few long books rated highly: the sparse-reading rule sits above both
	// rating rules.
	stats := model.Stats{TotalBooks: 5, AvgPages: 600, AvgRating: 4.8}

	got := Classify(stats, 0)
	assert.Equal(t, "Deep Diver", got.Name)
}

func TestRules_FallbackIsLastAndUnconditional(t *testing.T) {
	last := Rules[len(Rules)-1]
	assert.Equal(t, "Balanced Realist", last.Persona.Name)
	assert.True(t, last.Matches(model.Stats{}, 0))
	assert.True(t, last.Matches(model.Stats{TotalBooks: 100, AvgPages: 900, AvgRating: 5}, 1000))
}

func TestCatalog_EntriesAreComplete(t *testing.T) {
	for _, rule := range Rules {
		p := rule.Persona
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.NotEmpty(t, p.Icon)
		assert.NotEmpty(t, p.Roast)
		assert.NotEmpty(t, p.PrimaryColor)
		assert.NotEmpty(t, p.SecondaryColor)
		assert.NotEmpty(t, p.Tags)
	}
}
