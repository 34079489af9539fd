// internal/game/errors.go
//
// Error taxonomy for the match engine.
//
// Three families:
//   - ValidationError: malformed input (word length/characters, missing
//     fields). Non-retryable, surfaced verbatim to the caller.
//   - GameError: rule violations with a stable code and a user-facing
//     message per case. Non-retryable.
//   - store.ErrUnavailable (wrapped): transient collaborator failure,
//     retryable with backoff at the collaborator boundary only.

package game

import (
	"errors"
	"fmt"
)

// ValidationError reports malformed caller input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// GameError reports a rule violation with a stable machine-readable code.
type GameError struct {
	Code    string
	Message string
}

func (e *GameError) Error() string { return e.Message }

var (
	ErrMatchNotFound  = &GameError{Code: "match_not_found", Message: "match not found"}
	ErrNotYourTurn    = &GameError{Code: "not_your_turn", Message: "it is not your turn"}
	ErrMatchNotActive = &GameError{Code: "match_not_active", Message: "match is not active"}
	ErrMatchFinished  = &GameError{Code: "match_finished", Message: "match is already finished"}
	ErrAccessDenied   = &GameError{Code: "access_denied", Message: "you are not part of this match"}
	ErrNotAITurn      = &GameError{Code: "not_ai_turn", Message: "it is not the computer's turn"}
	ErrTurnDwell      = &GameError{Code: "turn_dwell", Message: "too soon to skip this turn"}
	ErrNoAttemptsLeft = &GameError{Code: "attempts_exhausted", Message: "no guesses remaining"}
)

// IsGameError extracts a *GameError from an error chain.
func IsGameError(err error) (*GameError, bool) {
	var ge *GameError
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

// IsValidationError extracts a *ValidationError from an error chain.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
