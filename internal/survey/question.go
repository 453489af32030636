package survey

import "github.com/advisehq/advisor/internal/profile"

// Kind distinguishes the question forms offered by the questionnaire.
type Kind string

const (
	KindLikert Kind = "likert"
	KindMulti  Kind = "multi"
	KindText   Kind = "text"
)

// SkipOption is the designated no-op choice on scenario questions. It
// satisfies the "non-empty selection" rule without contributing weight.
const SkipOption = "None of these"

// MaxSelections bounds multi-choice answers per question.
const MaxSelections = 2

// Option is one selectable answer on a scenario question, carrying its
// weighting contributions to one or two dimensions.
type Option struct {
	Label   string
	Weights map[profile.Dimension]float64
}

// Question is immutable reference data describing one questionnaire
// entry. Likert questions carry a single dimension tag; multi-choice
// questions carry weighted options; text questions carry neither.
type Question struct {
	ID        string
	Category  string
	Prompt    string
	Kind      Kind
	Dimension profile.Dimension
	Options   []Option
	Required  bool
}

// LikertView projects the Likert questions of a block into the scoring
// contract's view.
func LikertView(questions []Question) []profile.LikertQuestion {
	view := make([]profile.LikertQuestion, 0, len(questions))
	for _, q := range questions {
		if q.Kind != KindLikert {
			continue
		}
		view = append(view, profile.LikertQuestion{ID: q.ID, Dimension: q.Dimension})
	}
	return view
}

// ScenarioView projects the multi-choice questions of a block into the
// scoring contract's view.
func ScenarioView(questions []Question) []profile.ScenarioQuestion {
	view := make([]profile.ScenarioQuestion, 0, len(questions))
	for _, q := range questions {
		if q.Kind != KindMulti {
			continue
		}
		weights := make(map[string]map[profile.Dimension]float64, len(q.Options))
		for _, opt := range q.Options {
			if len(opt.Weights) == 0 {
				continue
			}
			weights[opt.Label] = opt.Weights
		}
		view = append(view, profile.ScenarioQuestion{ID: q.ID, Weights: weights})
	}
	return view
}
