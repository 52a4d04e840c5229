package persona

import "github.com/joshsymonds/shelf-wrapped/internal/model"

// Rule pairs a predicate over the year's statistics with the persona it
// selects.
type Rule struct {
	Matches func(stats model.Stats, backlog int) bool
	Persona model.Persona
}

// Rules is the classification table, evaluated top to bottom; the first match
// wins. The order is load-bearing: later predicates can be numerically true at
// the same time as earlier ones (a long-book 4.3-average year satisfies both
// the epic and the generous predicates), and precedence goes to the more
// specific rule listed first. Reordering changes user-visible results.
var Rules = []Rule{
	{
		// Backlog dominance: far more added than finished.
		Matches: func(s model.Stats, backlog int) bool {
			return backlog > 2*s.TotalBooks && backlog > 5
		},
		Persona: serialShelver,
	},
	{
		// Few books, very long ones.
		Matches: func(s model.Stats, _ int) bool {
			return s.TotalBooks < 15 && s.AvgPages > 450
		},
		Persona: deepDiver,
	},
	{
		// Many short books with middling ratings.
		Matches: func(s model.Stats, _ int) bool {
			return s.TotalBooks > 20 && s.AvgPages < 300 && s.AvgRating < 3.8
		},
		Persona: pageSprinter,
	},
	{
		// Long books rated highly.
		Matches: func(s model.Stats, _ int) bool {
			return s.AvgRating >= 4.0 && s.AvgPages > 350
		},
		Persona: epicEnthusiast,
	},
	{
		// High ratings across the board.
		Matches: func(s model.Stats, _ int) bool {
			return s.AvgRating >= 4.2
		},
		Persona: easyToPlease,
	},
	{
		// Unconditional fallback; keeps classification total.
		Matches: func(model.Stats, int) bool {
			return true
		},
		Persona: balancedRealist,
	},
}

// Classify returns the persona for the year's statistics. Always resolves:
// the final rule matches unconditionally.
func Classify(stats model.Stats, backlog int) model.Persona {
	for _, rule := range Rules {
		if rule.Matches(stats, backlog) {
			return rule.Persona
		}
	}
	// Unreachable while the fallback rule is in place.
	return balancedRealist
}
