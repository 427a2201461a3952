package v1

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kyra-labs/internship-dashboard/internal/auth"
	"github.com/kyra-labs/internship-dashboard/internal/models"
	"github.com/kyra-labs/internship-dashboard/internal/registration"
	"github.com/kyra-labs/internship-dashboard/internal/utils"
	"github.com/kyra-labs/internship-dashboard/internal/view"
)

type ViewHandler struct {
	registrations *registration.Service
}

func NewViewHandler(registrations *registration.Service) *ViewHandler {
	return &ViewHandler{registrations: registrations}
}

// GET /roles
func (h *ViewHandler) Roles(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", models.Roles, nil)
}

// GET /views/{item}
func (h *ViewHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	nav, ok := view.ParseNav(chi.URLParam(r, "item"))
	if !ok {
		utils.WriteJSONResponse(w, http.StatusNotFound, false, "unknown navigation item", view.NavItems, nil)
		return
	}
	if nav == view.NavLogout {
		// logout changes state, so it is POST-only
		w.Header().Set("Allow", http.MethodPost)
		utils.WriteJSONResponse(w, http.StatusMethodNotAllowed, false, "use POST /auth/logout", nil, nil)
		return
	}
	s, _ := auth.GetSessionFromCtx(r.Context())
	_, v := view.Navigate(s, nav)
	if !s.Authenticated {
		utils.WriteJSONResponse(w, http.StatusUnauthorized, false, "login required", v, nil)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", v, nil)
}

// POST /views/register
// Fields are free text and never validated; an empty body submits a blank form.
func (h *ViewHandler) SubmitRegistration(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.WriteJSONResponse(w, http.StatusBadRequest, false, "Invalid request", nil, err.Error())
		return
	}
	s, id := auth.GetSessionFromCtx(r.Context())
	receipt := h.registrations.Submit(r.Context(), registration.Submission{
		SessionID: id,
		Role:      s.Role,
		Fields:    req.Fields,
	})
	utils.WriteJSONResponse(w, http.StatusOK, true, receipt.Message, view.Acknowledge(s, receipt), nil)
}

// GET /faq?q=<question>
func (h *ViewHandler) FAQ(w http.ResponseWriter, r *http.Request) {
	s, _ := auth.GetSessionFromCtx(r.Context())
	v, ok := view.SelectQuestion(s, r.URL.Query().Get("q"))
	if !ok {
		utils.WriteJSONResponse(w, http.StatusNotFound, false, "unknown question", nil, nil)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, true, "success", v, nil)
}
