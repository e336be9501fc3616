package legislation

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is
var (
	// ErrInvalidInput is returned for malformed queries (negative age, year
	// before every table, incomplete profile).
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingVintage is returned when a scheme table has no row at or
	// before the requested legislation year for the individual.
	ErrMissingVintage = errors.New("missing legislative vintage")

	// ErrUnknownScheme is returned when a profile names a special scheme the
	// tables do not define.
	ErrUnknownScheme = errors.New("unknown special scheme")
)

// Scheme names used in error reports and logs
const (
	SchemeGeneral         = "general"
	SchemeAveragingWindow = "averaging_window"
	SchemePublic          = "public"
	SchemeEarlyRetirement = "early_retirement"
)

// InvalidInputError describes a query that cannot be resolved
type InvalidInputError struct {
	Field  string
	Reason string
	Err    error
}

func (e *InvalidInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *InvalidInputError) Is(target error) bool { return target == ErrInvalidInput }

func (e *InvalidInputError) Unwrap() error { return e.Err }

// MissingVintageError reports the scheme table that has no applicable row
type MissingVintageError struct {
	Scheme    string
	Year      int
	BirthYear int // zero unless the lookup was cohort-indexed
}

func (e *MissingVintageError) Error() string {
	if e.BirthYear != 0 {
		return fmt.Sprintf("%s table defines no cohort rule for birth year %d in the vintage applicable to %d", e.Scheme, e.BirthYear, e.Year)
	}
	return fmt.Sprintf("%s table defines no vintage at or before %d", e.Scheme, e.Year)
}

func (e *MissingVintageError) Is(target error) bool { return target == ErrMissingVintage }
