package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrNotFound       = errors.New("not found")
	ErrNoRowsAffected = errors.New("no rows affected")

	// ErrRegionNotFound matches ErrNotFound under errors.Is.
	ErrRegionNotFound = fmt.Errorf("region %w", ErrNotFound)
)
