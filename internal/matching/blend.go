package matching

import (
	"fmt"
	"strings"

	"github.com/advisehq/advisor/internal/catalog"
	"github.com/advisehq/advisor/internal/profile"
)

// DefaultBlendTopN is the ranking length for the blended cosine scheme.
const DefaultBlendTopN = 6

// Blend weights: mode fit dominates, interest-tag overlap and study
// style refine. When only the dimension signal is configured the mode
// fit carries the full weight.
const (
	modeWeight     = 70
	interestWeight = 20
	styleWeight    = 10
)

// Blend implements the weighted continuous scheme used with work-mode
// profiles. Each programme's tag set becomes its own fractional vector;
// cosine similarity against the user profile is blended with
// interest-tag overlap and study-style fit into a 0-100 score.
type Blend struct {
	scheme *profile.Scheme

	// Secondary signals. When blended is false only the mode fit is
	// used, matching the earlier scheme variant.
	blended      bool
	interestTags []string
	studyStyle   string
}

// NewBlend builds the mode-fit-only variant.
func NewBlend(scheme *profile.Scheme) *Blend {
	return &Blend{scheme: scheme}
}

// NewBlendWithSignals builds the full 70/20/10 variant. Missing signals
// (no selected tags, empty style) simply score zero for their
// component.
func NewBlendWithSignals(scheme *profile.Scheme, interestTags []string, studyStyle string) *Blend {
	return &Blend{
		scheme:       scheme,
		blended:      true,
		interestTags: interestTags,
		studyStyle:   studyStyle,
	}
}

func (m *Blend) Name() string { return "blend" }

func (m *Blend) Match(user profile.Vector, programmes *catalog.Programmes, topN int) (*Ranking, error) {
	results := make([]Result, 0, programmes.Len())

	for _, programme := range programmes.Items {
		modeFit := profile.Cosine(m.scheme, user, programme.ModeVector(m.scheme))

		var score float64
		var reason string
		if m.blended {
			interestFit := m.interestFit(programme)
			styleFit := m.styleFit(programme)
			score = modeWeight*modeFit + interestWeight*interestFit + styleWeight*styleFit
			reason = fmt.Sprintf("mode match %.0f%% | interest match %.0f%% | style match %.0f%%",
				modeFit*100, interestFit*100, styleFit*100)
		} else {
			score = 100 * modeFit
			reason = fmt.Sprintf("mode match %.0f%%", modeFit*100)
		}

		if modes := programme.ModeTags; strings.TrimSpace(modes) != "" {
			reason += " | programme modes: " + modes
		}

		results = append(results, Result{
			Programme: programme,
			Score:     score,
			Reasons:   []string{reason},
		})
	}

	return rank(results, topN), nil
}

// interestFit is the fraction of the user's selected interest tags that
// the programme carries. No selected tags means no signal: 0.
func (m *Blend) interestFit(p *catalog.Programme) float64 {
	if len(m.interestTags) == 0 {
		return 0
	}

	programmeTags := make(map[string]bool, len(p.InterestTags))
	for _, tag := range p.InterestTags {
		programmeTags[strings.ToLower(strings.TrimSpace(tag))] = true
	}

	matches := 0
	for _, tag := range m.interestTags {
		if programmeTags[strings.ToLower(strings.TrimSpace(tag))] {
			matches++
		}
	}

	return float64(matches) / float64(len(m.interestTags))
}

func (m *Blend) styleFit(p *catalog.Programme) float64 {
	if m.studyStyle == "" {
		return 0
	}
	if p.HasStyleTag(m.studyStyle) {
		return 1.0
	}
	return 0
}
