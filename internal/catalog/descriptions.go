package catalog

import "github.com/advisehq/advisor/internal/profile"

var riasecDescriptions = DimensionDescriptions{
	profile.Realistic:     "Practical and hands-on. You like working with tools, machines, and tangible results.",
	profile.Investigative: "Analytical and curious. You like solving abstract problems and understanding how things work.",
	profile.Artistic:      "Creative and expressive. You like open-ended work with room for original ideas.",
	profile.Social:        "Supportive and communicative. You like teaching, helping, and working with people.",
	profile.Enterprising:  "Persuasive and ambitious. You like leading projects and influencing outcomes.",
	profile.Conventional:  "Organized and precise. You like structure, data, and well-defined procedures.",
}

var workModeDescriptions = DimensionDescriptions{
	profile.Builder:    "You prefer making things: prototypes, products, working systems.",
	profile.Analyst:    "You prefer reasoning over data and models to reach conclusions.",
	profile.People:     "You prefer work centred on communication and collaboration.",
	profile.Creative:   "You prefer inventing, designing, and exploring new ideas.",
	profile.Researcher: "You prefer deep, methodical investigation of open questions.",
	profile.Operator:   "You prefer keeping processes running reliably and efficiently.",
	profile.Systems:    "You prefer connecting parts into coherent larger structures.",
}

// DefaultDescriptions returns the built-in dimension descriptions for
// the scheme, used when no descriptions file is configured.
func DefaultDescriptions(scheme *profile.Scheme) DimensionDescriptions {
	switch scheme {
	case profile.WorkModes():
		return workModeDescriptions
	default:
		return riasecDescriptions
	}
}
