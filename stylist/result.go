package stylist

import (
	"errors"
)

var (
	ErrConfigurationAbsent = errors.New("no text generation client configured")
	ErrExternalTransport   = errors.New("text generation call failed")
	ErrExtractionFailure   = errors.New("no json object in completion")
	ErrValidationFailure   = errors.New("completion is missing required fields")
	ErrPromptRender        = errors.New("prompt could not be rendered")
)

type Outcome string

const (
	OutcomeNormalized       Outcome = "normalized"
	OutcomeUnavailable      Outcome = "unavailable"
	OutcomeExternalError    Outcome = "external_error"
	OutcomeExtractionFailed Outcome = "extraction_failed"
	OutcomeValidationFailed Outcome = "validation_failed"
	OutcomePromptFailed     Outcome = "prompt_failed"
)

// Attempt is the result of one try at the model. Value is only meaningful
// when Outcome is OutcomeNormalized; otherwise Reason says why the caller
// has to fall back.
type Attempt[T any] struct {
	Value   T
	Outcome Outcome
	Reason  error
}

func (a Attempt[T]) Ok() bool {
	return a.Outcome == OutcomeNormalized
}

func normalized[T any](v T) Attempt[T] {
	return Attempt[T]{Value: v, Outcome: OutcomeNormalized}
}

// failed tags an attempt with the outcome that matches reason.
func failed[T any](reason error) Attempt[T] {
	return Attempt[T]{Outcome: outcomeOf(reason), Reason: reason}
}

func outcomeOf(err error) Outcome {
	switch {
	case errors.Is(err, ErrConfigurationAbsent):
		return OutcomeUnavailable
	case errors.Is(err, ErrExtractionFailure):
		return OutcomeExtractionFailed
	case errors.Is(err, ErrValidationFailure):
		return OutcomeValidationFailed
	case errors.Is(err, ErrPromptRender):
		return OutcomePromptFailed
	default:
		return OutcomeExternalError
	}
}
