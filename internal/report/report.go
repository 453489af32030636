package report

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/advisehq/advisor/internal/catalog"
	"github.com/advisehq/advisor/internal/matching"
	"github.com/advisehq/advisor/internal/profile"
)

// Report is the plain-text result summary for one scoring pass. It is a
// human-readable export, not a machine format.
type Report struct {
	RunID      string
	SchemeName string

	profileLines []string
	topValues    []string
	ranking      *matching.Ranking

	// Explanation is the optional AI-generated annotation. It never
	// affects scores or order and may be empty.
	Explanation string
}

// New assembles a report from a finished scoring pass. displayScale
// converts stored scores to display percentages: 1 for the additive
// scheme (already 0-100), 100 for fractional work-mode profiles.
func New(scheme *profile.Scheme, top []profile.Ranked, displayScale float64, descriptions catalog.DimensionDescriptions, topValues []string, ranking *matching.Ranking) *Report {
	lines := make([]string, 0, len(top))
	for i, entry := range top {
		line := fmt.Sprintf("%d. %s (%s) - %.1f%%",
			i+1, scheme.DisplayName(entry.Dimension), entry.Dimension, entry.Score*displayScale)
		if desc := descriptions[entry.Dimension]; desc != "" {
			line += "\n   " + desc
		}
		lines = append(lines, line)
	}

	return &Report{
		RunID:        uuid.NewString(),
		SchemeName:   scheme.Name,
		profileLines: lines,
		topValues:    topValues,
		ranking:      ranking,
	}
}

// Ranking exposes the ranked matches the report was built from.
func (r *Report) Ranking() *matching.Ranking {
	return r.ranking
}

// ProfileSummary returns the profile section as plain text, one ranked
// dimension per line.
func (r *Report) ProfileSummary() string {
	return strings.Join(r.profileLines, "\n")
}

// Render produces the exportable text.
func (r *Report) Render() string {
	var b strings.Builder

	b.WriteString("PROGRAMME ADVISOR - YOUR RESULTS\n")
	b.WriteString("Run: " + r.RunID + "\n\n")

	b.WriteString("YOUR PROFILE:\n")
	for _, line := range r.profileLines {
		b.WriteString(line + "\n")
	}

	if len(r.topValues) > 0 {
		b.WriteString("\nYOUR TOP VALUES:\n")
		display := make([]string, 0, len(r.topValues))
		for _, value := range r.topValues {
			display = append(display, titleCase(value))
		}
		b.WriteString(strings.Join(display, ", ") + "\n")
	}

	b.WriteString("\nYOUR TOP PROGRAMME MATCHES:\n")
	if r.ranking.Len() == 0 {
		b.WriteString("No programmes available to match against.\n")
	}
	for i, result := range r.ranking.Results {
		b.WriteString(fmt.Sprintf("%d. %s (%s) - Match Score: %.1f\n",
			i+1, result.Programme.Name, result.Programme.Institution, result.Score))
		for _, reason := range result.Reasons {
			b.WriteString("   - " + reason + "\n")
		}
	}

	if r.Explanation != "" {
		b.WriteString("\nWHY THESE FIT (AI):\n")
		b.WriteString(r.Explanation + "\n")
	}

	return b.String()
}

// DumpToTmpFile writes the rendered report to a temporary file and
// returns its name.
func (r *Report) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "advisor_results_*.txt")
	if err != nil {
		return "", err
	}
	defer file.Close()

	if _, err := file.WriteString(r.Render()); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// titleCase renders a value tag such as "work-life-balance" as
// "Work Life Balance" for display.
func titleCase(tag string) string {
	words := strings.FieldsFunc(tag, func(r rune) bool { return r == '-' || r == ' ' })
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
