package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrFirmNotFound signals that no firm matched the requested id(s).
	ErrFirmNotFound = fmt.Errorf("firm %w", ErrNotFound)
	// ErrInvalidQuery signals malformed or out-of-range query input.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrInvalidFirm signals a firm record that breaks a catalog invariant.
	ErrInvalidFirm = errors.New("invalid firm")
)
