package matching

import (
	"fmt"
	"strings"

	"github.com/advisehq/advisor/internal/catalog"
	"github.com/advisehq/advisor/internal/profile"
)

// DefaultRankWeightedTopN is the ranking length for the rank-weighted
// scheme.
const DefaultRankWeightedTopN = 8

// valueMatchPoints is granted per declared value found in a programme's
// value-tag set.
const valueMatchPoints = 1.5

// RankWeighted implements the discrete rank-weighted scheme used with
// additive Likert profiles. The user's top three dimensions are
// compared against each programme's ranked dimension tags with a fixed
// point table; declared values add independent bonuses. Scores are
// open-ended (roughly 0-15.5 in practice).
type RankWeighted struct {
	scheme    *profile.Scheme
	topValues []string
}

// NewRankWeighted builds the scheme with the user's top declared values
// as the secondary signal.
func NewRankWeighted(scheme *profile.Scheme, topValues []string) *RankWeighted {
	return &RankWeighted{scheme: scheme, topValues: topValues}
}

func (m *RankWeighted) Name() string { return "rank_weighted" }

func (m *RankWeighted) Match(user profile.Vector, programmes *catalog.Programmes, topN int) (*Ranking, error) {
	top := user.Top(m.scheme, 3)

	results := make([]Result, 0, programmes.Len())
	for _, programme := range programmes.Items {
		if err := m.validateTags(programme); err != nil {
			return nil, err
		}

		result := m.scoreProgramme(top, programme)
		results = append(results, result)
	}

	return rank(results, topN), nil
}

func (m *RankWeighted) validateTags(p *catalog.Programme) error {
	for _, tag := range []profile.Dimension{p.Primary, p.Secondary} {
		if !m.scheme.Contains(tag) {
			return fmt.Errorf("programme %s tagged %q: %w", p.ID, tag, profile.ErrUnknownDimension)
		}
	}
	if p.Tertiary != "" && !m.scheme.Contains(p.Tertiary) {
		return fmt.Errorf("programme %s tagged %q: %w", p.ID, p.Tertiary, profile.ErrUnknownDimension)
	}
	return nil
}

// scoreProgramme applies the point table. Tier comparisons are mutually
// exclusive per rank; the top-2 bonus and value matches are independent
// additions. Reasons accumulate in rule-evaluation order.
func (m *RankWeighted) scoreProgramme(top []profile.Ranked, p *catalog.Programme) Result {
	score := 0.0
	var reasons []string

	name := func(d profile.Dimension) string { return m.scheme.DisplayName(d) }

	// User's 1st dimension.
	first := top[0].Dimension
	if first == p.Primary {
		score += 5
		reasons = append(reasons, fmt.Sprintf("Your top interest (%s) matches the programme's primary focus", name(first)))
	} else if first == p.Secondary {
		score += 3
		reasons = append(reasons, fmt.Sprintf("Your top interest (%s) matches a key component", name(first)))
	}

	// User's 2nd dimension.
	if len(top) > 1 {
		second := top[1].Dimension
		if second == p.Primary {
			score += 3
			reasons = append(reasons, fmt.Sprintf("Your secondary interest (%s) matches the programme's primary focus", name(second)))
		} else if second == p.Secondary {
			score += 2
			reasons = append(reasons, fmt.Sprintf("Your secondary interest (%s) matches a component", name(second)))
		} else if p.Tertiary != "" && second == p.Tertiary {
			score += 1
			reasons = append(reasons, fmt.Sprintf("Your secondary interest (%s) aligns with programme aspects", name(second)))
		}
	}

	// User's 3rd dimension.
	if len(top) > 2 && top[2].Dimension == p.Primary {
		score += 1
		reasons = append(reasons, fmt.Sprintf("Your third interest (%s) matches the programme focus", name(top[2].Dimension)))
	}

	// Bonus when the user's top two dimensions are exactly the
	// programme's primary and secondary, in either order.
	if len(top) > 1 {
		pair := map[profile.Dimension]bool{p.Primary: true, p.Secondary: true}
		if pair[top[0].Dimension] && pair[top[1].Dimension] {
			score += 2
			reasons = append(reasons, "Strong alignment: your top 2 interests match this programme's core profile")
		}
	}

	// Declared values, independent of the dimension tiers.
	var matched []string
	for _, value := range m.topValues {
		if p.HasValueTag(value) {
			score += valueMatchPoints
			matched = append(matched, value)
		}
	}
	if len(matched) > 0 {
		reasons = append(reasons, "Shares your values: "+strings.Join(matched, ", "))
	}

	return Result{Programme: p, Score: score, Reasons: reasons}
}
