// Package apperr defines sentinel errors shared across service layers.
package apperr

import "errors"

// ErrNotFound indicates the requested object does not exist in the vault.
var ErrNotFound = errors.New("not found")
