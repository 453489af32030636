package ai

import (
	"context"
)

// Snapshot carries the user-facing profile summary handed to an
// explanation provider. It contains no raw survey answers besides the
// optional free-text response.
type Snapshot struct {
	// SchemeName identifies the profiling scheme the summary was built from.
	SchemeName string
	// Summary is the rendered profile section of the report.
	Summary string
	// FreeText is the user's optional open-ended answer, possibly empty.
	FreeText string
}

// ProgrammeBrief is the minimal programme view shared with a provider.
type ProgrammeBrief struct {
	Name        string
	Institution string
	Modes       []string
}

// Explainer produces a short narrative for why the top-ranked
// programmes fit the user's profile. The returned text is advisory
// only and never changes scores or ordering.
type Explainer interface {
	Explain(ctx context.Context, snapshot Snapshot, top []ProgrammeBrief) (string, error)
}
