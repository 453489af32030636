package profile

import "fmt"

// LikertQuestion is the scoring-relevant view of one Likert question:
// its identifier and the single dimension it feeds.
type LikertQuestion struct {
	ID        string
	Dimension Dimension
}

// AdditiveScorer implements the additive Likert strategy. Each answer on
// the 1-5 scale contributes (answer - 1) points to its question's
// dimension bucket; buckets are normalized against the theoretical
// maximum of (questions per dimension x 4) and reported as 0-100
// percentages. A uniformly neutral questionnaire (every answer 3) lands
// every dimension at exactly 50.
type AdditiveScorer struct {
	scheme    *Scheme
	questions []LikertQuestion
}

// NewAdditiveScorer builds a scorer for the given Likert block.
func NewAdditiveScorer(scheme *Scheme, questions []LikertQuestion) *AdditiveScorer {
	return &AdditiveScorer{scheme: scheme, questions: questions}
}

func (s *AdditiveScorer) Scheme() *Scheme { return s.scheme }

// Score folds every Likert response into its dimension bucket and
// normalizes. Every question of the block is required: an absent answer
// aborts with ErrMissingResponse, and a question tagged with a
// dimension outside the scheme aborts with ErrUnknownDimension.
func (s *AdditiveScorer) Score(r Responses) (Vector, error) {
	totals := make(map[Dimension]float64, len(s.scheme.Dimensions))
	counts := make(map[Dimension]int, len(s.scheme.Dimensions))

	for _, q := range s.questions {
		if !s.scheme.Contains(q.Dimension) {
			return nil, fmt.Errorf("question %s tagged %q: %w", q.ID, q.Dimension, ErrUnknownDimension)
		}

		answer, ok := r.Likert[q.ID]
		if !ok {
			return nil, fmt.Errorf("question %s: %w", q.ID, ErrMissingResponse)
		}
		if answer < 1 || answer > 5 {
			return nil, fmt.Errorf("question %s: answer %d outside the 1-5 scale", q.ID, answer)
		}

		// 1-5 scale mapped to a 0-4 contribution.
		totals[q.Dimension] += float64(answer - 1)
		counts[q.Dimension]++
	}

	v := NewVector(s.scheme)
	for _, d := range s.scheme.Dimensions {
		if counts[d] == 0 {
			continue
		}
		max := float64(counts[d] * 4)
		v[d] = totals[d] / max * 100
	}

	return v, nil
}
