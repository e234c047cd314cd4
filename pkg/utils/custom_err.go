package utils

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrGenerationFailed = errors.New("generation failed")
	ErrInvalidAIOutput  = errors.New("model returned malformed output")
	ErrTripNotFound     = errors.New("trip not found")
	ErrFeedbackInvalid  = errors.New("invalid feedback")
	ErrDatabaseError    = errors.New("database error")
)
