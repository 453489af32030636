package profile

// Dimension is one axis of a fixed, closed vocabulary. A profile assigns
// exactly one normalized score per dimension of its scheme.
type Dimension string

// RIASEC interest dimensions.
const (
	Realistic     Dimension = "R"
	Investigative Dimension = "I"
	Artistic      Dimension = "A"
	Social        Dimension = "S"
	Enterprising  Dimension = "E"
	Conventional  Dimension = "C"
)

// Work-mode dimensions.
const (
	Builder    Dimension = "builder"
	Analyst    Dimension = "analyst"
	People     Dimension = "people"
	Creative   Dimension = "creative"
	Researcher Dimension = "researcher"
	Operator   Dimension = "operator"
	Systems    Dimension = "systems"
)

// Scheme is a fixed, ordered dimension vocabulary. The enumeration order
// is part of the contract: ties in rankings are always broken by it.
type Scheme struct {
	Name       string
	Dimensions []Dimension

	names map[Dimension]string
}

var riasecScheme = &Scheme{
	Name:       "riasec",
	Dimensions: []Dimension{Realistic, Investigative, Artistic, Social, Enterprising, Conventional},
	names: map[Dimension]string{
		Realistic:     "Realistic",
		Investigative: "Investigative",
		Artistic:      "Artistic",
		Social:        "Social",
		Enterprising:  "Enterprising",
		Conventional:  "Conventional",
	},
}

var workModeScheme = &Scheme{
	Name:       "workmode",
	Dimensions: []Dimension{Builder, Analyst, People, Creative, Researcher, Operator, Systems},
	names: map[Dimension]string{
		Builder:    "Builder",
		Analyst:    "Analyst",
		People:     "People",
		Creative:   "Creative",
		Researcher: "Researcher",
		Operator:   "Operator",
		Systems:    "Systems",
	},
}

// RIASEC returns the six-dimension interest scheme.
func RIASEC() *Scheme { return riasecScheme }

// WorkModes returns the seven-dimension work-mode scheme.
func WorkModes() *Scheme { return workModeScheme }

// Contains reports whether d belongs to the scheme's vocabulary.
func (s *Scheme) Contains(d Dimension) bool {
	_, ok := s.names[d]
	return ok
}

// DisplayName returns the human-readable name for a dimension, or the
// raw code when the dimension is not part of the scheme.
func (s *Scheme) DisplayName(d Dimension) string {
	if name, ok := s.names[d]; ok {
		return name
	}
	return string(d)
}

// Parse maps a raw tag to a dimension of the scheme. Matching is
// case-sensitive for the single-letter RIASEC codes and exact for the
// work-mode words; callers lower-case free-form tags before parsing.
func (s *Scheme) Parse(raw string) (Dimension, bool) {
	d := Dimension(raw)
	if s.Contains(d) {
		return d, true
	}
	return "", false
}
