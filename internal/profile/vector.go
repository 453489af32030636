package profile

import (
	"math"
	"sort"
)

// Vector holds one normalized score per dimension of a scheme. A vector
// is created fresh per scoring run and never mutated after it is
// returned to the caller.
type Vector map[Dimension]float64

// NewVector returns a zero vector with every dimension of the scheme
// present exactly once.
func NewVector(s *Scheme) Vector {
	v := make(Vector, len(s.Dimensions))
	for _, d := range s.Dimensions {
		v[d] = 0
	}
	return v
}

// Cosine computes the cosine similarity between a and b over the
// scheme's dimension set. It is exactly 0.0 when either operand has
// zero magnitude; that is a convention, not an error.
func Cosine(s *Scheme, a, b Vector) float64 {
	var dot, na, nb float64
	for _, d := range s.Dimensions {
		dot += a[d] * b[d]
		na += a[d] * a[d]
		nb += b[d] * b[d]
	}
	if na == 0 || nb == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Ranked pairs a dimension with its score for ordered summaries.
type Ranked struct {
	Dimension Dimension
	Score     float64
}

// Top returns the n highest-scoring dimensions in descending order.
// Ties are broken by the scheme's enumeration order, so identical
// inputs always produce identical rankings.
func (v Vector) Top(s *Scheme, n int) []Ranked {
	ranked := make([]Ranked, 0, len(s.Dimensions))
	for _, d := range s.Dimensions {
		ranked = append(ranked, Ranked{Dimension: d, Score: v[d]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}
