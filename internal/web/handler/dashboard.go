package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/edvin/accountdesk/internal/core"
	"github.com/edvin/accountdesk/internal/model"
	mw "github.com/edvin/accountdesk/internal/web/middleware"
	"github.com/edvin/accountdesk/internal/web/request"
	"github.com/edvin/accountdesk/internal/web/templates"
)

type Dashboard struct {
	svc  *core.AccountService
	tmpl *templates.Renderer
}

func NewDashboard(svc *core.AccountService, tmpl *templates.Renderer) *Dashboard {
	return &Dashboard{svc: svc, tmpl: tmpl}
}

// StatusCard is one summary card on the dashboard.
type StatusCard struct {
	Status model.Status
	Count  int
	Color  string
	Icon   string
}

// DashboardView is the data rendered by the dashboard template.
type DashboardView struct {
	Username      string
	TotalAccounts int
	Cards         []StatusCard
	AllStatuses   []model.Status
	Status        model.Status
	Accounts      []model.Account
	CurrentPage   int
	TotalPages    int
	Pages         []int
	Error         string
}

// User-facing messages for the error flag set by a rejected bulk submission.
var errorMessages = map[string]string{
	"invalid_action":    "Unknown bulk action.",
	"invalid_status":    "Select a valid new status.",
	"empty_selection":   "Select at least one account.",
	"invalid_selection": "Invalid account selection.",
	"store":             "The action could not be applied. Try again.",
}

func (h *Dashboard) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	l := request.ParseListing(r)

	accounts, err := h.svc.List(ctx, l.Status, request.PageSize, l.Offset())
	if err != nil {
		serverError(w, r, err)
		return
	}

	total, err := h.svc.Count(ctx, l.Status)
	if err != nil {
		serverError(w, r, err)
		return
	}

	counts, overall, err := h.svc.CountByStatus(ctx)
	if err != nil {
		serverError(w, r, err)
		return
	}

	byStatus := make(map[model.Status]int, len(counts))
	for _, sc := range counts {
		byStatus[sc.Status] = sc.Count
	}

	cards := make([]StatusCard, 0, len(model.AllStatuses))
	for _, status := range model.AllStatuses {
		style, _ := status.Card()
		cards = append(cards, StatusCard{
			Status: status,
			Count:  byStatus[status],
			Color:  style.Color,
			Icon:   style.Icon,
		})
	}

	totalPages := request.TotalPages(total)
	pages := make([]int, 0, totalPages)
	for i := 1; i <= totalPages; i++ {
		pages = append(pages, i)
	}

	view := DashboardView{
		TotalAccounts: overall,
		Cards:         cards,
		AllStatuses:   model.AllStatuses,
		Status:        l.Status,
		Accounts:      accounts,
		CurrentPage:   l.Page,
		TotalPages:    totalPages,
		Pages:         pages,
	}

	if claims := mw.GetSession(ctx); claims != nil {
		view.Username = claims.Username
	}
	if code := r.URL.Query().Get("error"); code != "" {
		msg, ok := errorMessages[code]
		if !ok {
			msg = "The request could not be processed."
		}
		view.Error = msg
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.Render(w, "dashboard.tmpl", view); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("render dashboard")
	}
}

func serverError(w http.ResponseWriter, r *http.Request, err error) {
	zerolog.Ctx(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
