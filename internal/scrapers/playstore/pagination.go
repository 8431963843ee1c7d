package playstore

import (
	"errors"
	"net/http"
)

// PaginationEndPolicy decides whether a transport error means that the
// requested page is past the last page rather than a failure.
type PaginationEndPolicy func(err error) bool

// StatusPaginationEnd treats a *StatusError with the given status as the end
// of the pages.
func StatusPaginationEnd(status int) PaginationEndPolicy {
	return func(err error) bool {
		var statusErr *StatusError
		return errors.As(err, &statusErr) && statusErr.Status == status
	}
}

// DefaultPaginationEnd is how the review endpoint signals the end of the pages:
// it answers pages past the last one with a 400 instead of an empty list
// (observed since 2018-02-10).
var DefaultPaginationEnd = StatusPaginationEnd(http.StatusBadRequest)
