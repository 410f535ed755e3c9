package models

import "errors"

// ErrNotFound covers both a missing resource and one owned by another
// user; the two are deliberately indistinguishable to the caller.
var ErrNotFound = errors.New("not found")

// ErrValidation marks malformed client input rejected before any
// persistence attempt.
var ErrValidation = errors.New("validation error")
