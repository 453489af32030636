package matching

import (
	"errors"
	"reflect"
	"testing"

	"github.com/advisehq/advisor/internal/catalog"
	"github.com/advisehq/advisor/internal/profile"
)

// riasecProfile builds a vector where the listed dimensions take
// descending scores and everything else stays low.
func riasecProfile(ordered ...profile.Dimension) profile.Vector {
	v := profile.NewVector(profile.RIASEC())
	score := 90.0
	for _, d := range ordered {
		v[d] = score
		score -= 10
	}
	return v
}

func TestRankWeightedPrimarySecondaryExactMatch(t *testing.T) {
	// Top dimension matches primary (+5), second matches secondary (+2),
	// and the top-2 set equals {primary, secondary} (+2 bonus): 9.
	programmes := &catalog.Programmes{Items: []*catalog.Programme{
		{ID: "P1", Name: "Mechanical Engineering", Primary: profile.Realistic, Secondary: profile.Investigative},
	}}

	m := NewRankWeighted(profile.RIASEC(), nil)
	ranking, err := m.Match(riasecProfile(profile.Realistic, profile.Investigative, profile.Artistic), programmes, DefaultRankWeightedTopN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ranking.Len() != 1 {
		t.Fatalf("expected one result, got %d", ranking.Len())
	}
	if got := ranking.Results[0].Score; got != 9.0 {
		t.Fatalf("expected exactly 9 points, got %v", got)
	}
	if got := len(ranking.Results[0].Reasons); got != 3 {
		t.Fatalf("expected 3 reasons, got %d: %v", got, ranking.Results[0].Reasons)
	}
}

func TestRankWeightedExactMatchDominatesSwappedPair(t *testing.T) {
	// A programme whose primary/secondary mirror the user's order must
	// outrank the same pair swapped: 5+2+2 = 9 over 3+3+2 = 8.
	programmes := &catalog.Programmes{Items: []*catalog.Programme{
		{ID: "swapped", Primary: profile.Investigative, Secondary: profile.Realistic},
		{ID: "exact", Primary: profile.Realistic, Secondary: profile.Investigative},
	}}

	m := NewRankWeighted(profile.RIASEC(), nil)
	ranking, err := m.Match(riasecProfile(profile.Realistic, profile.Investigative, profile.Artistic), programmes, DefaultRankWeightedTopN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ranking.Results[0].Programme.ID != "exact" {
		t.Fatalf("expected the exact-order match first, got %s", ranking.Results[0].Programme.ID)
	}
	if got := ranking.Results[0].Score; got != 9.0 {
		t.Fatalf("expected 9 points for the exact-order match, got %v", got)
	}
	if got := ranking.Results[1].Score; got != 8.0 {
		t.Fatalf("expected 8 points for the swapped pair, got %v", got)
	}
}

func TestRankWeightedPointTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		programme *catalog.Programme
		expect    float64
	}{
		{
			name:      "first matches secondary only",
			programme: &catalog.Programme{ID: "P1", Primary: profile.Social, Secondary: profile.Realistic},
			expect:    3,
		},
		{
			name:      "second matches primary",
			programme: &catalog.Programme{ID: "P2", Primary: profile.Investigative, Secondary: profile.Social},
			expect:    3,
		},
		{
			name:      "second matches tertiary",
			programme: &catalog.Programme{ID: "P3", Primary: profile.Social, Secondary: profile.Enterprising, Tertiary: profile.Investigative},
			expect:    1,
		},
		{
			name:      "third matches primary",
			programme: &catalog.Programme{ID: "P4", Primary: profile.Artistic, Secondary: profile.Social},
			expect:    1,
		},
		{
			name:      "no overlap",
			programme: &catalog.Programme{ID: "P5", Primary: profile.Social, Secondary: profile.Enterprising},
			expect:    0,
		},
	}

	// User ranking: R, I, A.
	user := riasecProfile(profile.Realistic, profile.Investigative, profile.Artistic)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := NewRankWeighted(profile.RIASEC(), nil)
			ranking, err := m.Match(user, &catalog.Programmes{Items: []*catalog.Programme{tt.programme}}, 8)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := ranking.Results[0].Score; got != tt.expect {
				t.Fatalf("expected %v points, got %v (reasons: %v)", tt.expect, got, ranking.Results[0].Reasons)
			}
		})
	}
}

func TestRankWeightedValueMatches(t *testing.T) {
	programmes := &catalog.Programmes{Items: []*catalog.Programme{
		{
			ID:        "P1",
			Primary:   profile.Social,
			Secondary: profile.Enterprising,
			ValueTags: []string{"technology", "helping-people"},
		},
	}}

	m := NewRankWeighted(profile.RIASEC(), []string{"technology", "helping-people", "high-salary"})
	ranking, err := m.Match(riasecProfile(profile.Realistic, profile.Investigative, profile.Artistic), programmes, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ranking.Results[0].Score; got != 3.0 {
		t.Fatalf("expected 1.5 points per matched value, got %v", got)
	}

	reasons := ranking.Results[0].Reasons
	if len(reasons) != 1 || reasons[0] != "Shares your values: technology, helping-people" {
		t.Fatalf("unexpected reasons: %v", reasons)
	}
}

func TestRankWeightedStableTieOrder(t *testing.T) {
	// Both programmes score identically; input order must hold.
	programmes := &catalog.Programmes{Items: []*catalog.Programme{
		{ID: "first", Primary: profile.Realistic, Secondary: profile.Social},
		{ID: "second", Primary: profile.Realistic, Secondary: profile.Social},
	}}

	m := NewRankWeighted(profile.RIASEC(), nil)
	ranking, err := m.Match(riasecProfile(profile.Realistic, profile.Investigative, profile.Artistic), programmes, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ranking.Results[0].Programme.ID != "first" || ranking.Results[1].Programme.ID != "second" {
		t.Fatalf("tie broke input order: %s before %s",
			ranking.Results[0].Programme.ID, ranking.Results[1].Programme.ID)
	}
}

func TestRankWeightedTruncation(t *testing.T) {
	var items []*catalog.Programme
	for i := 0; i < 12; i++ {
		items = append(items, &catalog.Programme{
			ID:      string(rune('a' + i)),
			Primary: profile.Social, Secondary: profile.Enterprising,
		})
	}

	m := NewRankWeighted(profile.RIASEC(), nil)
	user := riasecProfile(profile.Realistic, profile.Investigative, profile.Artistic)

	ranking, err := m.Match(user, &catalog.Programmes{Items: items}, DefaultRankWeightedTopN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ranking.Len() != DefaultRankWeightedTopN {
		t.Fatalf("expected %d results, got %d", DefaultRankWeightedTopN, ranking.Len())
	}

	// Fewer programmes than topN: ranking length follows the table.
	short, err := m.Match(user, &catalog.Programmes{Items: items[:3]}, DefaultRankWeightedTopN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if short.Len() != 3 {
		t.Fatalf("expected 3 results, got %d", short.Len())
	}
}

func TestRankWeightedEmptyTable(t *testing.T) {
	m := NewRankWeighted(profile.RIASEC(), nil)
	ranking, err := m.Match(riasecProfile(profile.Realistic), &catalog.Programmes{}, 8)
	if err != nil {
		t.Fatalf("empty table is a valid degenerate input, got %v", err)
	}
	if ranking.Len() != 0 {
		t.Fatalf("expected empty ranking, got %d", ranking.Len())
	}
}

func TestRankWeightedUnknownProgrammeTag(t *testing.T) {
	programmes := &catalog.Programmes{Items: []*catalog.Programme{
		{ID: "P1", Primary: "X", Secondary: profile.Social},
	}}

	m := NewRankWeighted(profile.RIASEC(), nil)
	_, err := m.Match(riasecProfile(profile.Realistic), programmes, 8)
	if !errors.Is(err, profile.ErrUnknownDimension) {
		t.Fatalf("expected ErrUnknownDimension, got %v", err)
	}
}

func TestRankWeightedIdempotence(t *testing.T) {
	programmes := &catalog.Programmes{Items: []*catalog.Programme{
		{ID: "P1", Primary: profile.Realistic, Secondary: profile.Investigative, ValueTags: []string{"technology"}},
		{ID: "P2", Primary: profile.Investigative, Secondary: profile.Realistic},
		{ID: "P3", Primary: profile.Artistic, Secondary: profile.Social},
	}}

	m := NewRankWeighted(profile.RIASEC(), []string{"technology"})
	user := riasecProfile(profile.Realistic, profile.Investigative, profile.Artistic)

	first, err := m.Match(user, programmes, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := m.Match(user, programmes, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("matcher is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
