package resumes

import "errors"

var (
	// ErrTextTooShort rejects submissions whose normalized text is under the
	// minimum readable length.
	ErrTextTooShort = errors.New("resume text too short")
	// ErrDimensionMismatch signals embedding vectors of unequal length, which
	// only happens when the upstream model configuration changes mid-flight.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)

const (
	ErrorCodeValidation = "validation_error"
	ErrorCodeStorage    = "storage_error"
	ErrorCodeInternal   = "internal_error"
)
