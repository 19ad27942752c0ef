package propdex

import "github.com/kailas-cloud/propdex/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound     = domain.ErrNotFound
	ErrFirmNotFound = domain.ErrFirmNotFound
	ErrInvalidQuery = domain.ErrInvalidQuery
	ErrInvalidFirm  = domain.ErrInvalidFirm
)
