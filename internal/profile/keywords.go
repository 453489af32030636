package profile

import "strings"

// textKeywords maps each work-mode dimension to the substrings scanned
// for in the optional free-text answer. Partial stems are intentional
// ("manufactur" covers manufacturing/manufacture); " r " keeps the R
// language from matching every word containing the letter.
var textKeywords = map[Dimension][]string{
	Builder:    {"prototype", "hardware", "tooling", "fabrication", "manufactur", "mech", "hands-on", "lab", "robot", "cad", "solidworks", "autocad", "arduino"},
	Analyst:    {"data", "model", "analysis", "statistics", "analytics", "excel", "sql", "python", " r ", "matlab", "forecast", "optimi", "quant"},
	People:     {"interview", "users", "stakeholder", "team", "client", "community", "lead", "mentor", "volunteer", "club"},
	Creative:   {"design", "ui", "ux", "sketch", "figma", "aesthet", "visual", "brand", "story", "media"},
	Researcher: {"paper", "research", "experiment", "hypothesis", "literature", "study", "theory", "journal", "simulation"},
	Operator:   {"process", "ops", "operations", "sop", "checklist", "maintenance", "logistics", "supply", "safety", "compliance"},
	Systems:    {"system", "architecture", "workflow", "pipeline", "integration", "platform", "network", "infrastructure"},
}

// ExtractTextVector scans text case-insensitively for keyword hits and
// returns a vector whose total mass equals textScale. Zero hits yield a
// zero vector, so empty or off-topic text contributes nothing.
func ExtractTextVector(s *Scheme, text string) Vector {
	v := NewVector(s)

	t := strings.ToLower(text)
	hits := 0
	for _, d := range s.Dimensions {
		for _, kw := range textKeywords[d] {
			if strings.Contains(t, kw) {
				v[d]++
				hits++
			}
		}
	}

	if hits == 0 {
		return v
	}

	for _, d := range s.Dimensions {
		v[d] = v[d] / float64(hits) * textScale
	}
	return v
}
