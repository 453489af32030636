package survey

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"go.uber.org/zap"
)

const doneOption = "Done"

// likertLabels present the 1-5 agreement scale; the selected index + 1
// is the recorded answer.
var likertLabels = []string{
	"1 - Strongly Disagree",
	"2 - Disagree",
	"3 - Neutral",
	"4 - Agree",
	"5 - Strongly Agree",
}

// Collector walks the user through a questionnaire on the terminal and
// builds a validated response record. It is the only interactive part
// of the pipeline; everything downstream is pure.
type Collector struct {
	logger *zap.Logger

	// selectRunner is swapped out in tests.
	selectRunner func(label string, items []string) (int, string, error)
	promptRunner func(label string) (string, error)
}

func NewCollector(logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{
		logger:       logger,
		selectRunner: runSelect,
		promptRunner: runPrompt,
	}
}

func runSelect(label string, items []string) (int, string, error) {
	prompt := promptui.Select{
		Label: label,
		Items: items,
		Size:  len(items),
	}
	return prompt.Run()
}

func runPrompt(label string) (string, error) {
	prompt := promptui.Prompt{Label: label}
	return prompt.Run()
}

// Run asks every question in order and returns the validated record.
func (c *Collector) Run(questions []Question, values []ValueQuestion) (*Record, error) {
	record := NewRecord()

	total := len(questions) + len(values)
	asked := 0

	for _, q := range questions {
		asked++
		label := fmt.Sprintf("[%d/%d] %s: %s", asked, total, q.Category, q.Prompt)

		switch q.Kind {
		case KindLikert:
			idx, _, err := c.selectRunner(label, likertLabels)
			if err != nil {
				return nil, fmt.Errorf("question %s: %w", q.ID, err)
			}
			if err := record.AnswerLikert(q.ID, idx+1); err != nil {
				return nil, err
			}
		case KindMulti:
			selected, err := c.collectMulti(label, q)
			if err != nil {
				return nil, fmt.Errorf("question %s: %w", q.ID, err)
			}
			if err := record.AnswerMulti(q.ID, selected); err != nil {
				return nil, err
			}
		case KindText:
			text, err := c.promptRunner(q.Prompt)
			if err != nil {
				return nil, fmt.Errorf("question %s: %w", q.ID, err)
			}
			record.AnswerText(strings.TrimSpace(text))
		}
	}

	for _, q := range values {
		asked++
		label := fmt.Sprintf("[%d/%d] Values: %s", asked, total, q.Prompt)
		idx, _, err := c.selectRunner(label, likertLabels)
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", q.ID, err)
		}
		if err := record.AnswerLikert(q.ID, idx+1); err != nil {
			return nil, err
		}
	}

	if err := record.Validate(questions); err != nil {
		return nil, err
	}

	c.logger.Debug("questionnaire completed", zap.Int("questions", total))

	return record, nil
}

// collectMulti gathers up to MaxSelections option labels. Picking the
// skip option ends the selection immediately; after the first pick a
// Done entry lets the user stop early.
func (c *Collector) collectMulti(label string, q Question) ([]string, error) {
	var selected []string

	remaining := make([]string, 0, len(q.Options))
	for _, opt := range q.Options {
		remaining = append(remaining, opt.Label)
	}

	for len(selected) < MaxSelections {
		items := remaining
		if len(selected) > 0 {
			items = append([]string{doneOption}, remaining...)
		}

		_, choice, err := c.selectRunner(label, items)
		if err != nil {
			return nil, err
		}

		if choice == doneOption {
			break
		}

		selected = append(selected, choice)
		if choice == SkipOption {
			break
		}

		remaining = removeItem(remaining, choice)
	}

	return selected, nil
}

// PickTags lets the user choose up to max tags from the available set.
// An empty result is valid: the user may stop at Done immediately.
func (c *Collector) PickTags(label string, available []string, max int) ([]string, error) {
	var selected []string
	remaining := append([]string(nil), available...)

	for len(selected) < max && len(remaining) > 0 {
		items := append([]string{doneOption}, remaining...)
		_, choice, err := c.selectRunner(label, items)
		if err != nil {
			return nil, err
		}
		if choice == doneOption {
			break
		}
		selected = append(selected, choice)
		remaining = removeItem(remaining, choice)
	}

	return selected, nil
}

// PickOne lets the user choose a single entry from the available set.
func (c *Collector) PickOne(label string, available []string) (string, error) {
	_, choice, err := c.selectRunner(label, available)
	return choice, err
}

func removeItem(items []string, target string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item != target {
			out = append(out, item)
		}
	}
	return out
}
