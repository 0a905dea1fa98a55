package request

import (
	"net/http"
	"strconv"

	"github.com/edvin/accountdesk/internal/model"
)

// PageSize is the fixed number of accounts per listing page.
const PageSize = 20

// DefaultStatus is the filter applied when the status parameter is absent.
const DefaultStatus = model.StatusNew

// Listing holds parsed listing query parameters. An empty Status means no
// status predicate (the "All Statuses" option).
type Listing struct {
	Page   int
	Status model.Status
}

// ParseListing extracts page and status from query parameters. Input is
// lenient: a missing or malformed page resolves to 1, a missing status to
// DefaultStatus, and an unknown non-empty status to DefaultStatus. An
// explicitly empty status selects all statuses.
func ParseListing(r *http.Request) Listing {
	q := r.URL.Query()

	l := Listing{Page: 1, Status: DefaultStatus}

	if pageStr := q.Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil && page > 0 {
			l.Page = page
		}
	}

	if q.Has("status") {
		status := model.Status(q.Get("status"))
		if status == "" || status.Valid() {
			l.Status = status
		}
	}

	return l
}

// Offset returns the row offset for the requested page.
func (l Listing) Offset() int {
	return (l.Page - 1) * PageSize
}

// TotalPages returns the page count for total rows under the current filter.
// Zero rows yield zero pages.
func TotalPages(total int) int {
	return (total + PageSize - 1) / PageSize
}
