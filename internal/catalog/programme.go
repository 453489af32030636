package catalog

import (
	"strings"

	"github.com/advisehq/advisor/internal/profile"
)

// Programme is one candidate programme from the reference table.
// Records are immutable once loaded for the session.
type Programme struct {
	ID          string
	Name        string
	Institution string

	// Ranked dimension tags. Tertiary may be empty.
	Primary   profile.Dimension
	Secondary profile.Dimension
	Tertiary  profile.Dimension

	// ModeTags is the raw comma-separated work-mode tag string used by
	// the blended scheme. Duplicates are meaningful: they weight the
	// programme's vector towards the repeated mode.
	ModeTags string

	ValueTags    []string
	InterestTags []string
	StyleTags    []string

	Link string
}

// Programmes is the loaded programme table.
type Programmes struct {
	Items []*Programme
}

func (p *Programmes) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Items)
}

func (p *Programmes) FindByID(id string) *Programme {
	for _, programme := range p.Items {
		if programme.ID == id {
			return programme
		}
	}
	return nil
}

// Names returns the display names in table order.
func (p *Programmes) Names() []string {
	names := make([]string, 0, p.Len())
	for _, programme := range p.Items {
		names = append(names, programme.Name)
	}
	return names
}

// ModeVector converts the programme's comma-separated mode tags into a
// normalized fractional vector over the scheme: count per recognized
// dimension divided by the total recognized tag count. Unrecognized
// tags are ignored; a programme without recognized tags gets the zero
// vector.
func (p *Programme) ModeVector(scheme *profile.Scheme) profile.Vector {
	counts := profile.NewVector(scheme)
	total := 0.0

	for _, raw := range strings.Split(p.ModeTags, ",") {
		tag := strings.ToLower(strings.TrimSpace(raw))
		if tag == "" {
			continue
		}
		if d, ok := scheme.Parse(tag); ok {
			counts[d]++
			total++
		}
	}

	if total == 0 {
		return counts
	}

	v := profile.NewVector(scheme)
	for _, d := range scheme.Dimensions {
		v[d] = counts[d] / total
	}
	return v
}

// HasValueTag reports whether the programme carries the given value tag.
func (p *Programme) HasValueTag(tag string) bool {
	for _, t := range p.ValueTags {
		if t == tag {
			return true
		}
	}
	return false
}

// HasStyleTag reports whether the programme carries the given
// study-style tag, case-insensitively.
func (p *Programme) HasStyleTag(style string) bool {
	for _, t := range p.StyleTags {
		if strings.EqualFold(t, style) {
			return true
		}
	}
	return false
}

// DimensionDescriptions maps a dimension code to its human-readable
// description for display and reports.
type DimensionDescriptions map[profile.Dimension]string
