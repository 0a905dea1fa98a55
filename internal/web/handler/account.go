package handler

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/edvin/accountdesk/internal/core"
	"github.com/edvin/accountdesk/internal/model"
	"github.com/edvin/accountdesk/internal/web/request"
	"github.com/edvin/accountdesk/internal/web/templates"
)

type Account struct {
	svc  *core.AccountService
	tmpl *templates.Renderer
}

func NewAccount(svc *core.AccountService, tmpl *templates.Renderer) *Account {
	return &Account{svc: svc, tmpl: tmpl}
}

// EditView is the data rendered by the edit template.
type EditView struct {
	Account     *model.Account
	AllStatuses []model.Status
	Error       string
}

func (h *Account) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	account, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	h.renderEdit(w, r, http.StatusOK, EditView{Account: account, AllStatuses: model.AllStatuses})
}

func (h *Account) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	account, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	form := request.EditAccountForm{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Status:   r.PostFormValue("status"),
		Country:  r.PostFormValue("country"),
	}
	status := model.Status(form.Status)
	if err := request.Validate(form); err != nil || !status.Valid() {
		h.renderEdit(w, r, http.StatusBadRequest, EditView{
			Account:     account,
			AllStatuses: model.AllStatuses,
			Error:       "Check the form: every field must be filled in correctly.",
		})
		return
	}

	account.Username = form.Username
	account.Email = form.Email
	account.Status = status
	account.Country = form.Country

	if err := h.svc.Update(r.Context(), account); err != nil {
		serverError(w, r, err)
		return
	}

	http.Redirect(w, r, "/?"+url.Values{"status": {string(status)}}.Encode(), http.StatusSeeOther)
}

func (h *Account) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		serverError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Account) renderEdit(w http.ResponseWriter, r *http.Request, status int, view EditView) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.tmpl.Render(w, "edit.tmpl", view); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("render edit")
	}
}

func accountID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
