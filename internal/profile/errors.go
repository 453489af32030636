package profile

import "errors"

var (
	// ErrMissingResponse indicates a required question has no recorded
	// answer. The caller cannot proceed to scoring.
	ErrMissingResponse = errors.New("missing response for required question")

	// ErrUnknownDimension indicates a dimension key outside the fixed
	// scheme vocabulary. It is a data-integrity defect in reference data
	// and aborts the scoring pass.
	ErrUnknownDimension = errors.New("unknown dimension")
)
