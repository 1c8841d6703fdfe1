package book

import (
	"errors"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// Sentinel errors for the three recoverable failure kinds. The command
// dispatch boundary matches on these with errors.Is and converts them to
// user-facing messages; the core itself never terminates the process.
var (
	// ErrValidation is returned when malformed phone or birthday input is
	// rejected at construction time, before any mutation is applied.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when an operation references a name absent
	// from the book.
	ErrNotFound = errors.New(config.ErrContactMissing)

	// ErrArgument is returned when a caller supplied too few positional
	// arguments for a command.
	ErrArgument = errors.New(config.ErrMissingArgument)
)
