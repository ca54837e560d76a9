package models

import "errors"

var (
	// ErrDuplicateName: a category name collides within its sibling scope.
	// No partial mutation happens; the caller gets an immediate rejection.
	ErrDuplicateName = errors.New("category name already exists in this scope")

	// ErrHasDependents: deletion blocked because furniture still references
	// the category (or one of its subcategories). The caller must resubmit
	// with explicit cascade consent.
	ErrHasDependents = errors.New("category has dependent furniture items")

	// ErrStoreUnavailable: the backing store is unreachable or misconfigured.
	// Fatal for the current request, surfaced upward untouched, never retried
	// here.
	ErrStoreUnavailable = errors.New("record store unavailable")
)
