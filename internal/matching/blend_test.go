package matching

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/advisehq/advisor/internal/catalog"
	"github.com/advisehq/advisor/internal/profile"
)

func builderProfile() profile.Vector {
	v := profile.NewVector(profile.WorkModes())
	v[profile.Builder] = 1
	return v
}

func TestBlendPureModeFit(t *testing.T) {
	programmes := &catalog.Programmes{Items: []*catalog.Programme{
		{ID: "P1", Name: "Mechanical Engineering", ModeTags: "builder"},
	}}

	m := NewBlend(profile.WorkModes())
	ranking, err := m.Match(builderProfile(), programmes, DefaultBlendTopN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ranking.Results[0].Score; math.Abs(got-100.0) > 1e-9 {
		t.Fatalf("expected 100.0 for an identical mode vector, got %v", got)
	}
	if reason := ranking.Results[0].Reasons[0]; !strings.Contains(reason, "mode match 100%") {
		t.Fatalf("unexpected reason: %q", reason)
	}
}

func TestBlendZeroVectorProgramme(t *testing.T) {
	programmes := &catalog.Programmes{Items: []*catalog.Programme{
		{ID: "P1", ModeTags: "nothing-recognized"},
	}}

	m := NewBlend(profile.WorkModes())
	ranking, err := m.Match(builderProfile(), programmes, DefaultBlendTopN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := ranking.Results[0].Score; got != 0.0 {
		t.Fatalf("expected 0.0 for an unrecognized tag set, got %v", got)
	}
}

func TestBlendWeightsComponents(t *testing.T) {
	programmes := &catalog.Programmes{Items: []*catalog.Programme{
		{
			ID:           "P1",
			ModeTags:     "builder",
			InterestTags: []string{"robotics", "energy"},
			StyleTags:    []string{"project-based"},
		},
	}}

	m := NewBlendWithSignals(profile.WorkModes(), []string{"robotics", "healthcare"}, "project-based")
	ranking, err := m.Match(builderProfile(), programmes, DefaultBlendTopN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// mode_fit 1.0, interest_fit 0.5 (one of two tags), style_fit 1.0:
	// 70 + 10 + 10 = 90.
	if got := ranking.Results[0].Score; math.Abs(got-90.0) > 1e-9 {
		t.Fatalf("expected 90.0, got %v", got)
	}

	reason := ranking.Results[0].Reasons[0]
	for _, fragment := range []string{"mode match 100%", "interest match 50%", "style match 100%"} {
		if !strings.Contains(reason, fragment) {
			t.Fatalf("reason %q missing %q", reason, fragment)
		}
	}
}

func TestBlendNoUserInterestTags(t *testing.T) {
	programmes := &catalog.Programmes{Items: []*catalog.Programme{
		{ID: "P1", ModeTags: "builder", InterestTags: []string{"robotics"}},
	}}

	m := NewBlendWithSignals(profile.WorkModes(), nil, "")
	ranking, err := m.Match(builderProfile(), programmes, DefaultBlendTopN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only the mode component can contribute: 70 * 1.0.
	if got := ranking.Results[0].Score; math.Abs(got-70.0) > 1e-9 {
		t.Fatalf("expected 70.0, got %v", got)
	}
}

func TestBlendTruncatesToTopN(t *testing.T) {
	var items []*catalog.Programme
	for i := 0; i < 10; i++ {
		items = append(items, &catalog.Programme{ID: string(rune('a' + i)), ModeTags: "builder"})
	}

	m := NewBlend(profile.WorkModes())
	ranking, err := m.Match(builderProfile(), &catalog.Programmes{Items: items}, DefaultBlendTopN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ranking.Len() != DefaultBlendTopN {
		t.Fatalf("expected %d results, got %d", DefaultBlendTopN, ranking.Len())
	}
}

func TestBlendStableTieOrder(t *testing.T) {
	programmes := &catalog.Programmes{Items: []*catalog.Programme{
		{ID: "first", ModeTags: "builder"},
		{ID: "second", ModeTags: "builder"},
	}}

	m := NewBlend(profile.WorkModes())
	ranking, err := m.Match(builderProfile(), programmes, DefaultBlendTopN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if ranking.Results[0].Programme.ID != "first" {
		t.Fatalf("tie broke input order: got %s first", ranking.Results[0].Programme.ID)
	}
}

func TestBlendIdempotence(t *testing.T) {
	programmes := &catalog.Programmes{Items: []*catalog.Programme{
		{ID: "P1", ModeTags: "builder,systems"},
		{ID: "P2", ModeTags: "people,creative"},
	}}

	m := NewBlendWithSignals(profile.WorkModes(), []string{"robotics"}, "seminar")
	user := builderProfile()

	first, err := m.Match(user, programmes, DefaultBlendTopN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := m.Match(user, programmes, DefaultBlendTopN)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("matcher is not idempotent")
	}
}

func TestQualityBands(t *testing.T) {
	tests := []struct {
		score  float64
		expect string
	}{
		{12, "Excellent match"},
		{10, "Excellent match"},
		{8, "Very good match"},
		{5.5, "Good match"},
		{3, "Moderate match"},
	}

	for _, tt := range tests {
		if got := Quality(tt.score); got != tt.expect {
			t.Fatalf("score %v: expected %q, got %q", tt.score, tt.expect, got)
		}
	}
}
