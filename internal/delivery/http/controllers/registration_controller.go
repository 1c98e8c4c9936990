package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"freelancercheckin/internal/delivery/http/helpers"
	"freelancercheckin/internal/domain"
)

// RegisterRequest is the request body for POST /events/{eventID}/registrations.
type RegisterRequest struct {
	FullName     string `json:"fullName"`
	CPF          string `json:"cpf"`
	RG           string `json:"rg"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	SelectedRole string `json:"selectedRole"`
}

// Freelancer converts the request into the domain form input.
func (r RegisterRequest) Freelancer() domain.Freelancer {
	return domain.Freelancer{
		FullName:     strings.TrimSpace(r.FullName),
		CPF:          strings.TrimSpace(r.CPF),
		RG:           strings.TrimSpace(r.RG),
		Phone:        strings.TrimSpace(r.Phone),
		Address:      strings.TrimSpace(r.Address),
		SelectedRole: r.SelectedRole,
	}
}

// Validate implements Validator. Every field is required.
func (r RegisterRequest) Validate() []string {
	return r.Freelancer().Validate()
}

// RegisterSuccessResponse is the success response envelope for POST /events/{eventID}/registrations (201).
type RegisterSuccessResponse struct {
	Data  *domain.RegistrationReceipt `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

// EventRosterSuccessResponse is the success response envelope for GET /events/{eventID}/registrations (200).
type EventRosterSuccessResponse struct {
	Data  *domain.EventRoster `json:"data"`
	Error *helpers.APIError   `json:"error"`
}

// SearchRegistrantsResponse is the response body for GET /registrations.
type SearchRegistrantsResponse struct {
	Items           []domain.RegistrantRow `json:"items"`
	Pagination      helpers.PaginationMeta `json:"pagination"`
	RegisteredTotal int                    `json:"registered_total"`
}

// SearchRegistrantsSuccessResponse is the success response envelope for GET /registrations (200).
type SearchRegistrantsSuccessResponse struct {
	Data  SearchRegistrantsResponse `json:"data"`
	Error *helpers.APIError         `json:"error"`
}

type RegistrationController struct {
	Logger  *slog.Logger
	Service domain.BoardService
}

func NewRegistrationController(logger *slog.Logger, svc domain.BoardService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register a freelancer for an event
// @Description Records the freelancer's interest in one role of the event. Roles that reached their vacancies still accept registrations.
// @Tags registrations
// @Accept json
// @Produce json
// @Param eventID path string true "Event ID"
// @Param body body RegisterRequest true "Freelancer form"
// @Success 201 {object} controllers.RegisterSuccessResponse "data contains the registration and the confirmation message"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID}/registrations [post]
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	receipt, err := c.Service.Register(r.Context(), eventID, req.Freelancer())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, receipt)
}

// EventRoster godoc
// @Summary List an event's registrants by role
// @Description Groups the event's registrations by role in the event's role order, each group sorted by name and flagged when its vacancies are filled.
// @Tags registrations
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventRosterSuccessResponse "data contains the roster"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/registrations [get]
func (c *RegistrationController) EventRoster(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	roster, err := c.Service.EventRoster(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, roster)
}

// SearchRegistrants godoc
// @Summary Search the talent database
// @Description Searches every registration by name or role (case-insensitive) or CPF (exact substring), sorted by name. Registrations of deleted events carry a placeholder title.
// @Tags registrations
// @Produce json
// @Param q query string false "Search term; empty matches everything"
// @Param page query int false "Page number (1-based)" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} controllers.SearchRegistrantsSuccessResponse "data contains items, pagination and registered_total"
// @Router /registrations [get]
func (c *RegistrationController) SearchRegistrants(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	rows, registered := c.Service.SearchRegistrants(r.Context(), r.URL.Query().Get("q"))
	start, end := params.Bounds(len(rows))
	meta := helpers.NewPaginationMeta(params.Page, params.PageSize, len(rows))
	helpers.WriteJSONSuccess(w, http.StatusOK, SearchRegistrantsResponse{
		Items:           rows[start:end],
		Pagination:      meta,
		RegisteredTotal: registered,
	})
}
