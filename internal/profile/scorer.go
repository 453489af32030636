package profile

// Responses is the read-only response record handed to a scorer by the
// collector. Likert holds one 1-5 value per Likert question, Selections
// holds up to two picked option labels per scenario question, and
// FreeText carries the optional open-ended answer.
type Responses struct {
	Likert     map[string]int
	Selections map[string][]string
	FreeText   string
}

// Scorer converts a response record into a normalized profile vector.
// Implementations are pure: identical responses yield identical vectors.
type Scorer interface {
	Scheme() *Scheme
	Score(r Responses) (Vector, error)
}
