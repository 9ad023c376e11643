package render

import "errors"

var (
	// ErrMalformedFace is returned for a face without exactly three vertices.
	ErrMalformedFace = errors.New("face must have exactly 3 vertices")
	// ErrNonFinite is returned for a face with a NaN or infinite coordinate.
	ErrNonFinite = errors.New("face has non-finite coordinates")
	// ErrPassFinished is returned when drawing into a pass after Finish.
	ErrPassFinished = errors.New("render pass already finished")
	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("invalid render config")
)
