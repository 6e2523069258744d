// Package repository defines the store interfaces the application layer
// depends on. Implementations live under internal/infrastructure.
package repository

import "errors"

// ErrNotFound is returned by every lookup that matches no row.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when a unique constraint would be violated and the
// implementation pre-checks it (username/email/name uniqueness).
var ErrDuplicate = errors.New("duplicate")
