package common

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies every failure the pick/parlay core can produce. The web
// layer maps kinds to HTTP statuses; nothing below it looks at statuses.
type Kind string

const (
	KindValidation      Kind = "validation_error"
	KindUnauthenticated Kind = "unauthenticated"
	KindUnknownUser     Kind = "unknown_user"
	KindParlayLocked    Kind = "parlay_locked"
	KindMatchupLocked   Kind = "matchup_locked"
	KindMatchupNotFound Kind = "matchup_not_found"
	KindNoOddsAvailable Kind = "no_odds_available"
	KindStorageFault    Kind = "storage_fault"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match two taxonomy errors by kind alone.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Kind == other.Kind
}

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapStorage tags an underlying read/write failure as a StorageFault.
func WrapStorage(message string, err error) *Error {
	return &Error{Kind: KindStorageFault, Message: message, Err: err}
}

// KindOf returns the taxonomy kind of err, or KindStorageFault for
// anything that escaped classification.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorageFault
}

// HTTPStatus maps a core failure to the status the web layer surfaces.
// NoOddsAvailable and MatchupNotFound are data-integrity faults, not
// client errors.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthenticated, KindUnknownUser:
		return http.StatusUnauthorized
	case KindParlayLocked, KindMatchupLocked:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
