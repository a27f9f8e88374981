package ledger

import "errors"

// Validation failures surfaced to the CLI layer. All are recoverable; the
// caller is expected to report them and re-prompt.
var (
	ErrDuplicateUser = errors.New("user already exists")
	ErrUnknownUser   = errors.New("unknown user")
	ErrInvalidAmount = errors.New("amount must not be negative")
	ErrNoBudget      = errors.New("no budget set")
)
