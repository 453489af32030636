package matching

import (
	"sort"

	"github.com/advisehq/advisor/internal/catalog"
	"github.com/advisehq/advisor/internal/profile"
)

// Result is one programme's outcome for a scoring run: the programme,
// its match score, and the human-readable reasons in rule order.
type Result struct {
	Programme *catalog.Programme
	Score     float64
	Reasons   []string
}

// Ranking is the sorted, truncated, explained list of programme matches
// produced for one scoring pass.
type Ranking struct {
	Results []Result
}

func (r *Ranking) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Results)
}

// Matcher scores every candidate programme against a user profile and
// returns a ranking. Implementations are pure functions of their
// inputs: identical inputs always yield identical rankings.
type Matcher interface {
	Name() string
	Match(user profile.Vector, programmes *catalog.Programmes, topN int) (*Ranking, error)
}

// Quality maps a rank-weighted match score to the display band used on
// the results screen.
func Quality(score float64) string {
	switch {
	case score >= 10:
		return "Excellent match"
	case score >= 7:
		return "Very good match"
	case score >= 5:
		return "Good match"
	default:
		return "Moderate match"
	}
}

// rank sorts results descending by score and truncates to topN. The
// sort is stable: tied programmes keep their table order.
func rank(results []Result, topN int) *Ranking {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if topN >= 0 && topN < len(results) {
		results = results[:topN]
	}

	return &Ranking{Results: results}
}
