package profile

import "fmt"

const (
	// maxSelections bounds how many options a user may pick per scenario
	// question; the collector enforces the same bound.
	maxSelections = 2

	// maxOptionWeight is the largest contribution a single option grants
	// to one dimension.
	maxOptionWeight = 2

	// textScale is the total mass granted to the free-text signal: about
	// one scenario question's worth of influence.
	textScale = 6
)

// ScenarioQuestion is the scoring-relevant view of one multi-choice
// scenario question. Weights maps an option label to its per-dimension
// contributions; options without an entry (including the designated
// skip option) contribute nothing.
type ScenarioQuestion struct {
	ID      string
	Weights map[string]map[Dimension]float64
}

// WeightedScorer implements the weighted multi-choice strategy over the
// work-mode scheme. Selected option weights are accumulated per
// dimension, the optional free text adds a rescaled keyword tally, and
// the totals are divided by the theoretical maximum so the result is a
// 0-1 fractional profile.
type WeightedScorer struct {
	scheme      *Scheme
	questions   []ScenarioQuestion
	includeText bool
}

// NewWeightedScorer builds a scorer for the given scenario block. When
// includeText is set, the free-text signal participates in both the
// accumulation and the normalization denominator.
func NewWeightedScorer(scheme *Scheme, questions []ScenarioQuestion, includeText bool) *WeightedScorer {
	return &WeightedScorer{scheme: scheme, questions: questions, includeText: includeText}
}

func (s *WeightedScorer) Scheme() *Scheme { return s.scheme }

func (s *WeightedScorer) Score(r Responses) (Vector, error) {
	totals := NewVector(s.scheme)

	for _, q := range s.questions {
		selected, ok := r.Selections[q.ID]
		if !ok || len(selected) == 0 {
			return nil, fmt.Errorf("question %s: %w", q.ID, ErrMissingResponse)
		}

		for _, choice := range selected {
			for d, w := range q.Weights[choice] {
				if !s.scheme.Contains(d) {
					return nil, fmt.Errorf("question %s option %q tagged %q: %w", q.ID, choice, d, ErrUnknownDimension)
				}
				totals[d] += w
			}
		}
	}

	if s.includeText {
		for d, w := range ExtractTextVector(s.scheme, r.FreeText) {
			totals[d] += w
		}
	}

	max := float64(len(s.questions) * maxSelections * maxOptionWeight)
	if s.includeText {
		max += textScale
	}

	v := NewVector(s.scheme)
	if max > 0 {
		for _, d := range s.scheme.Dimensions {
			v[d] = totals[d] / max
		}
	}

	return v, nil
}
