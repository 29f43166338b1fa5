// Package common contains shared constants and sentinel errors used across
// the client packages. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// ErrValidation marks input rejected locally, before any network call.
	ErrValidation = errors.New("validation error")

	// ErrNotFound is returned by repositories when a key has no value.
	ErrNotFound = errors.New("not found")
)
