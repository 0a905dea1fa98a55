package request

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/edvin/accountdesk/internal/model"
)

// BulkAction is the operation applied to a set of selected accounts.
type BulkAction string

const (
	BulkUpdateStatus BulkAction = "update_status"
	BulkDelete       BulkAction = "delete"
)

var (
	ErrInvalidAction    = errors.New("invalid bulk action")
	ErrInvalidNewStatus = errors.New("invalid new status")
	ErrEmptySelection   = errors.New("no accounts selected")
	ErrInvalidSelection = errors.New("invalid account selection")
)

// Bulk holds a validated bulk-action submission.
type Bulk struct {
	Action    BulkAction
	NewStatus model.Status
	IDs       []int64
}

// ParseBulk validates a bulk-action form. Unlike listing parameters, bulk
// input is strict: any malformed field rejects the whole submission before
// anything is mutated.
func ParseBulk(r *http.Request) (Bulk, error) {
	if err := r.ParseForm(); err != nil {
		return Bulk{}, ErrInvalidSelection
	}

	var b Bulk

	switch action := BulkAction(r.PostFormValue("action")); action {
	case BulkUpdateStatus:
		newStatus := model.Status(r.PostFormValue("new_status"))
		if !newStatus.Valid() {
			return Bulk{}, ErrInvalidNewStatus
		}
		b.Action = action
		b.NewStatus = newStatus
	case BulkDelete:
		b.Action = action
	default:
		return Bulk{}, ErrInvalidAction
	}

	raw := r.PostForm["selectedAccounts[]"]
	if len(raw) == 0 {
		return Bulk{}, ErrEmptySelection
	}
	for _, v := range raw {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Bulk{}, ErrInvalidSelection
		}
		b.IDs = append(b.IDs, id)
	}

	return b, nil
}
