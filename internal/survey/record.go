package survey

import (
	"fmt"

	"github.com/advisehq/advisor/internal/profile"
)

// Record accumulates a user's answers while the questionnaire runs.
// Once handed to a scorer (via Responses) it is treated as read-only.
type Record struct {
	likert     map[string]int
	selections map[string][]string
	freeText   string
}

func NewRecord() *Record {
	return &Record{
		likert:     make(map[string]int),
		selections: make(map[string][]string),
	}
}

// AnswerLikert records a 1-5 answer for a Likert question.
func (r *Record) AnswerLikert(questionID string, answer int) error {
	if answer < 1 || answer > 5 {
		return fmt.Errorf("question %s: answer %d outside the 1-5 scale", questionID, answer)
	}
	r.likert[questionID] = answer
	return nil
}

// AnswerMulti records the selected option labels for a scenario
// question. The selection set must be non-empty and bounded; the skip
// option counts as a valid selection.
func (r *Record) AnswerMulti(questionID string, selected []string) error {
	if len(selected) == 0 {
		return fmt.Errorf("question %s: at least one option (or %q) must be selected", questionID, SkipOption)
	}
	if len(selected) > MaxSelections {
		return fmt.Errorf("question %s: at most %d options may be selected", questionID, MaxSelections)
	}
	r.selections[questionID] = append([]string(nil), selected...)
	return nil
}

// AnswerText records the optional free-text answer.
func (r *Record) AnswerText(text string) {
	r.freeText = text
}

// Likert returns the recorded answer for a Likert question.
func (r *Record) Likert(questionID string) (int, bool) {
	answer, ok := r.likert[questionID]
	return answer, ok
}

// Validate checks that every required question has a recorded answer.
// It reports the first gap as a MissingResponse so the collector can
// refuse to proceed to scoring.
func (r *Record) Validate(questions []Question) error {
	for _, q := range questions {
		if !q.Required {
			continue
		}
		switch q.Kind {
		case KindLikert:
			if _, ok := r.likert[q.ID]; !ok {
				return fmt.Errorf("question %s: %w", q.ID, profile.ErrMissingResponse)
			}
		case KindMulti:
			if len(r.selections[q.ID]) == 0 {
				return fmt.Errorf("question %s: %w", q.ID, profile.ErrMissingResponse)
			}
		}
	}
	return nil
}

// Responses produces the read-only view handed to a scorer.
func (r *Record) Responses() profile.Responses {
	likert := make(map[string]int, len(r.likert))
	for id, answer := range r.likert {
		likert[id] = answer
	}
	selections := make(map[string][]string, len(r.selections))
	for id, selected := range r.selections {
		selections[id] = append([]string(nil), selected...)
	}
	return profile.Responses{
		Likert:     likert,
		Selections: selections,
		FreeText:   r.freeText,
	}
}
