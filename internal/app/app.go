// Package app holds the argument checks shared by the league services.
package app

import (
	"errors"
	"regexp"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"

	"github.com/preston-bernstein/league-stats-service/internal/store"
)

// ErrInvalidArgument marks caller mistakes: malformed ids, bad limits,
// unknown categories.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = store.ErrNotFound

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

var slugPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)

// ValidateID accepts UUIDs and lowercase slugs.
func ValidateID(kind, id string) error {
	if id == "" {
		return eris.Wrapf(ErrInvalidArgument, "%s id is required", kind)
	}
	if uuid.Validate(id) == nil || slugPattern.MatchString(id) {
		return nil
	}
	return eris.Wrapf(ErrInvalidArgument, "invalid %s id %q", kind, id)
}

// Limit resolves a requested page size: zero selects DefaultLimit, anything
// outside 1..MaxLimit is rejected.
func Limit(limit int) (int, error) {
	if limit == 0 {
		return DefaultLimit, nil
	}
	if limit < 0 || limit > MaxLimit {
		return 0, eris.Wrapf(ErrInvalidArgument, "limit must be between 1 and %d", MaxLimit)
	}
	return limit, nil
}
