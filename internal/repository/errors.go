package repository

import "errors"

// ErrStoreUnavailable indicates that the content store could not be reached
// or returned a malformed response. Implementations wrap transport, status,
// and decode failures in this sentinel so callers can map every upstream
// failure to a single structured response.
var ErrStoreUnavailable = errors.New("content store unavailable")
