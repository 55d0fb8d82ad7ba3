package repository

import "errors"

// ErrNotFound is returned by all backends when a dream record with the
// requested ID does not exist.
var ErrNotFound = errors.New("dream not found")

// ErrDuplicateID is returned by all backends when creating a record whose
// ID already exists.
var ErrDuplicateID = errors.New("duplicate dream ID")
