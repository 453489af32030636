package survey

import (
	"testing"

	"go.uber.org/zap"
)

// scriptedCollector returns a collector whose prompts are answered from
// a queue of canned choices instead of the terminal.
func scriptedCollector(t *testing.T, choices []string, texts []string) *Collector {
	t.Helper()

	c := NewCollector(zap.NewNop())
	c.selectRunner = func(_ string, items []string) (int, string, error) {
		if len(choices) == 0 {
			t.Fatal("unexpected select prompt")
		}
		choice := choices[0]
		choices = choices[1:]
		for idx, item := range items {
			if item == choice {
				return idx, item, nil
			}
		}
		t.Fatalf("scripted choice %q not offered in %v", choice, items)
		return 0, "", nil
	}
	c.promptRunner = func(string) (string, error) {
		if len(texts) == 0 {
			t.Fatal("unexpected text prompt")
		}
		text := texts[0]
		texts = texts[1:]
		return text, nil
	}
	return c
}

func TestCollectorRunLikertBlock(t *testing.T) {
	questions := DefaultInterestQuestions()

	choices := make([]string, 0, len(questions))
	for range questions {
		choices = append(choices, "3 - Neutral")
	}

	c := scriptedCollector(t, choices, nil)
	record, err := c.Run(questions, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, q := range questions {
		if answer, ok := record.Likert(q.ID); !ok || answer != 3 {
			t.Fatalf("question %s: expected neutral answer, got %d (present=%v)", q.ID, answer, ok)
		}
	}
}

func TestCollectorMultiStopsAtSkip(t *testing.T) {
	questions := DefaultScenarioQuestions()[:1]

	c := scriptedCollector(t, []string{SkipOption}, nil)
	record, err := c.Run(questions, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	responses := record.Responses()
	selected := responses.Selections["q1"]
	if len(selected) != 1 || selected[0] != SkipOption {
		t.Fatalf("expected single skip selection, got %v", selected)
	}
}

func TestCollectorMultiDoneAfterFirstPick(t *testing.T) {
	questions := DefaultScenarioQuestions()[:1]

	c := scriptedCollector(t, []string{"Prototype hardware", "Done"}, nil)
	record, err := c.Run(questions, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	responses := record.Responses()
	selected := responses.Selections["q1"]
	if len(selected) != 1 || selected[0] != "Prototype hardware" {
		t.Fatalf("expected single selection, got %v", selected)
	}
}

func TestCollectorMultiCapsAtTwoSelections(t *testing.T) {
	questions := DefaultScenarioQuestions()[:1]

	c := scriptedCollector(t, []string{"Prototype hardware", "Design screens/UX"}, nil)
	record, err := c.Run(questions, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	responses := record.Responses()
	if got := len(responses.Selections["q1"]); got != 2 {
		t.Fatalf("expected exactly two selections, got %d", got)
	}
}

func TestCollectorRecordsFreeText(t *testing.T) {
	questions := []Question{DefaultOpenQuestion()}

	c := scriptedCollector(t, nil, []string{"  built a robot arm  "})
	record, err := c.Run(questions, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := record.Responses().FreeText; got != "built a robot arm" {
		t.Fatalf("expected trimmed free text, got %q", got)
	}
}

func TestPickTagsAllowsEmptySelection(t *testing.T) {
	c := scriptedCollector(t, []string{"Done"}, nil)

	tags, err := c.PickTags("Interests", []string{"ai", "design"}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 0 {
		t.Fatalf("expected no tags, got %v", tags)
	}
}

func TestPickTagsRemovesChosenItems(t *testing.T) {
	c := scriptedCollector(t, []string{"ai", "design", "Done"}, nil)

	tags, err := c.PickTags("Interests", []string{"ai", "design", "healthcare"}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tags) != 2 || tags[0] != "ai" || tags[1] != "design" {
		t.Fatalf("unexpected tags: %v", tags)
	}
}
