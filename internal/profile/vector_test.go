package profile

import (
	"math"
	"testing"
)

func TestCosineSelfSimilarity(t *testing.T) {
	scheme := WorkModes()
	v := NewVector(scheme)
	v[Builder] = 0.7
	v[Analyst] = 0.2
	v[Systems] = 0.4

	got := Cosine(scheme, v, v)
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("expected cosine of a vector with itself to be 1.0, got %v", got)
	}
}

func TestCosineZeroVector(t *testing.T) {
	scheme := WorkModes()
	v := NewVector(scheme)
	v[Builder] = 1

	zero := NewVector(scheme)

	if got := Cosine(scheme, v, zero); got != 0.0 {
		t.Fatalf("expected cosine with a zero vector to be exactly 0.0, got %v", got)
	}
	if got := Cosine(scheme, zero, zero); got != 0.0 {
		t.Fatalf("expected cosine of two zero vectors to be exactly 0.0, got %v", got)
	}
}

func TestNewVectorHasEveryDimension(t *testing.T) {
	for _, scheme := range []*Scheme{RIASEC(), WorkModes()} {
		v := NewVector(scheme)
		if len(v) != len(scheme.Dimensions) {
			t.Fatalf("scheme %s: expected %d keys, got %d", scheme.Name, len(scheme.Dimensions), len(v))
		}
		for _, d := range scheme.Dimensions {
			if _, ok := v[d]; !ok {
				t.Fatalf("scheme %s: dimension %s missing", scheme.Name, d)
			}
		}
	}
}

func TestTopBreaksTiesByEnumerationOrder(t *testing.T) {
	scheme := RIASEC()

	// All dimensions tied: the ranking must follow R,I,A,S,E,C.
	v := NewVector(scheme)
	for _, d := range scheme.Dimensions {
		v[d] = 50
	}

	top := v.Top(scheme, 3)
	want := []Dimension{Realistic, Investigative, Artistic}
	for i, r := range top {
		if r.Dimension != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], r.Dimension)
		}
	}
}

func TestTopOrdersByScoreDescending(t *testing.T) {
	scheme := RIASEC()
	v := NewVector(scheme)
	v[Artistic] = 80
	v[Conventional] = 70
	v[Realistic] = 10

	top := v.Top(scheme, 3)
	want := []Dimension{Artistic, Conventional, Realistic}
	for i, r := range top {
		if r.Dimension != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], r.Dimension)
		}
	}
}

func TestTopClampsToSchemeSize(t *testing.T) {
	scheme := WorkModes()
	v := NewVector(scheme)

	if got := len(v.Top(scheme, 20)); got != len(scheme.Dimensions) {
		t.Fatalf("expected %d entries, got %d", len(scheme.Dimensions), got)
	}
}
