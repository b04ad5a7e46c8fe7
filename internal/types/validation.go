package types

import (
	"errors"
	"fmt"
)

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNoSession is returned when the server reports no identity bound to the
// current session cookie.
var ErrNoSession = errors.New("no active session")

// ------------------------------
// Validation
// ------------------------------

// ValidateEntityKey checks that a key has a known type and a non-empty id.
func ValidateEntityKey(k EntityKey) error {
	if !k.Type.Valid() {
		return fmt.Errorf("invalid entity type %q", k.Type)
	}
	if k.ID == "" {
		return fmt.Errorf("entity id must not be empty")
	}
	return nil
}

// ValidateIDPresent checks a required identifier is non-empty.
func ValidateIDPresent(id, field string) error {
	if id == "" {
		return fmt.Errorf("%s must not be empty", field)
	}
	return nil
}

// ValidateRating checks a rating value is within the 1..5 scale.
func ValidateRating(r float64) error {
	if r < 1 || r > 5 {
		return fmt.Errorf("rating %v out of range [1,5]", r)
	}
	return nil
}
