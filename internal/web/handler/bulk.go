package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/edvin/accountdesk/internal/core"
	"github.com/edvin/accountdesk/internal/web/request"
)

type Bulk struct {
	svc *core.AccountService
}

func NewBulk(svc *core.AccountService) *Bulk {
	return &Bulk{svc: svc}
}

// Apply validates a bulk submission and applies it, then redirects back to
// the listing. Validation failures redirect with an error flag and mutate
// nothing.
func (h *Bulk) Apply(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	b, err := request.ParseBulk(r)
	if err != nil {
		http.Redirect(w, r, listingURL(r, errorCode(err)), http.StatusSeeOther)
		return
	}

	var affected int64
	switch b.Action {
	case request.BulkUpdateStatus:
		affected, err = h.svc.BulkUpdateStatus(ctx, b.IDs, b.NewStatus)
	case request.BulkDelete:
		affected, err = h.svc.BulkDelete(ctx, b.IDs)
	}
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("action", string(b.Action)).Msg("bulk action failed")
		http.Redirect(w, r, listingURL(r, "store"), http.StatusSeeOther)
		return
	}

	zerolog.Ctx(ctx).Info().
		Str("action", string(b.Action)).
		Int("selected", len(b.IDs)).
		Int64("affected", affected).
		Msg("bulk action applied")

	http.Redirect(w, r, listingURL(r, ""), http.StatusSeeOther)
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, request.ErrInvalidAction):
		return "invalid_action"
	case errors.Is(err, request.ErrInvalidNewStatus):
		return "invalid_status"
	case errors.Is(err, request.ErrEmptySelection):
		return "empty_selection"
	default:
		return "invalid_selection"
	}
}

// listingURL builds the redirect back to the listing, preserving the status
// filter the form was submitted from.
func listingURL(r *http.Request, errCode string) string {
	v := url.Values{}
	if r.PostForm.Has("status") {
		v.Set("status", r.PostFormValue("status"))
	}
	if errCode != "" {
		v.Set("error", errCode)
	}
	if len(v) == 0 {
		return "/"
	}
	return "/?" + v.Encode()
}
