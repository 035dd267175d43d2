package repository

import "errors"

// ErrNotFound is returned when a query resolves no row. Implementations
// translate their storage-specific not-found errors into this one so the
// service layer never depends on a particular driver.
var ErrNotFound = errors.New("record not found")
