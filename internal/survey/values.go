package survey

import "sort"

// ValueQuestion asks how much the user cares about one career value on
// the 1-5 Likert scale. The Value key matches programme value tags.
type ValueQuestion struct {
	ID     string
	Prompt string
	Value  string
}

// DefaultValueQuestions returns the built-in value block (Q25-Q29).
func DefaultValueQuestions() []ValueQuestion {
	return []ValueQuestion{
		{ID: "Q25", Prompt: "A high salary matters to me when choosing a career", Value: "high-salary"},
		{ID: "Q26", Prompt: "I want my work to directly help people", Value: "helping-people"},
		{ID: "Q27", Prompt: "I need room for creativity in my work", Value: "creativity"},
		{ID: "Q28", Prompt: "Working with cutting-edge technology excites me", Value: "technology"},
		{ID: "Q29", Prompt: "Work-life balance matters more to me than prestige", Value: "work-life-balance"},
	}
}

// TopValues ranks the declared values by their Likert answers and
// returns the top n value keys. Unanswered value questions are skipped;
// ties keep question order, so results are deterministic.
func TopValues(r *Record, questions []ValueQuestion, n int) []string {
	type scored struct {
		value  string
		answer int
	}

	ranked := make([]scored, 0, len(questions))
	for _, q := range questions {
		if answer, ok := r.Likert(q.ID); ok {
			ranked = append(ranked, scored{value: q.Value, answer: answer})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].answer > ranked[j].answer
	})

	if n > len(ranked) {
		n = len(ranked)
	}

	values := make([]string, 0, n)
	for _, s := range ranked[:n] {
		values = append(values, s.value)
	}
	return values
}
