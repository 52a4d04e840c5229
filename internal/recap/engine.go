package recap

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/joshsymonds/shelf-wrapped/internal/ingest"
	"github.com/joshsymonds/shelf-wrapped/internal/model"
	"github.com/joshsymonds/shelf-wrapped/internal/persona"
)

// Result is everything downstream consumers need after one upload: the books
// that counted, the backlog count, the statistics bundle, and the selected
// persona. A new upload produces a whole new Result; results are never merged.
type Result struct {
	SessionID string
	Persona   model.Persona
	Stats     model.Stats
	Completed []model.Book
	Backlog   int
	Year      int
}

// Compute runs the full normalize → filter → aggregate → classify pipeline
// over one decoded row set. It is synchronous and deterministic: the same rows
// and year always yield the same statistics and persona (the session ID is the
// only fresh value per run).
func Compute(src ingest.Source, rows []ingest.RawRow, year int) Result {
	books := ingest.NormalizeAll(src, rows)
	set := SplitYear(books, year)
	stats := Aggregate(set.Completed)
	p := persona.Classify(stats, set.BacklogAdded)

	slog.Debug("Computed reading recap",
		"source", src.Format(),
		"year", year,
		"rows", len(rows),
		"completed", stats.TotalBooks,
		"backlog", set.BacklogAdded,
		"persona", p.Name)

	return Result{
		SessionID: uuid.NewString(),
		Year:      year,
		Completed: set.Completed,
		Backlog:   set.BacklogAdded,
		Stats:     stats,
		Persona:   p,
	}
}
