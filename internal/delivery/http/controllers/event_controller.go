package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"freelancercheckin/internal/delivery/http/helpers"
	"freelancercheckin/internal/domain"
)

// CreateEventRequest is the request body for POST /events. The id and description are server-generated.
type CreateEventRequest struct {
	Title     string        `json:"title"`
	Date      string        `json:"date"`
	Location  string        `json:"location"`
	StartTime string        `json:"startTime"`
	EndTime   string        `json:"endTime"`
	Roles     []domain.Role `json:"roles"`
	ImageURL  string        `json:"imageUrl,omitempty"`
}

// Draft converts the request into the domain creation input.
func (c CreateEventRequest) Draft() domain.EventDraft {
	return domain.EventDraft{
		Title:     c.Title,
		Date:      c.Date,
		Location:  c.Location,
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
		Roles:     c.Roles,
		ImageURL:  c.ImageURL,
	}
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	return c.Draft().Validate()
}

// CreateEventSuccessResponse is the success response envelope for POST /events (201).
type CreateEventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// ListEventsSuccessResponse is the success response envelope for GET /events (200).
type ListEventsSuccessResponse struct {
	Data  []domain.EventSummary `json:"data"`
	Error *helpers.APIError     `json:"error"`
}

// GetEventSuccessResponse is the success response envelope for GET /events/{eventID} (200).
type GetEventSuccessResponse struct {
	Data  *domain.EventSummary `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.BoardService
}

func NewEventController(logger *slog.Logger, svc domain.BoardService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns every published event, most recent first, with its registration count and display date.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.ListEventsSuccessResponse "data contains the event board"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Service.ListEvents(r.Context()))
}

// CreateEvent godoc
// @Summary Publish a new event
// @Description Creates an event. A short promotional description is generated before the event is stored; when generation is unavailable a generic text is used. Only one creation runs at a time.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} controllers.CreateEventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: submission_in_progress"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), req.Draft())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		case errors.Is(err, domain.ErrSubmissionInProgress):
			helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeSubmissionInProgress, "an event is already being created")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		}
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.GetEventSuccessResponse "data contains the event summary"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	summary, err := c.Service.GetEvent(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summary)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Removes the event after explicit confirmation. Registrations that reference it are kept and later shown with a placeholder title. Deleting an unknown ID succeeds.
// @Tags events
// @Param eventID path string true "Event ID"
// @Param confirm query bool true "Must be true"
// @Success 204 "No Content"
// @Failure 428 {object} helpers.APIResponse "error.code: confirmation_required"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventID")
	if eventID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "missing eventID")
		return
	}
	confirmed := r.URL.Query().Get("confirm") == "true"
	if err := c.Service.DeleteEvent(r.Context(), eventID, confirmed); err != nil {
		if errors.Is(err, domain.ErrConfirmationRequired) {
			helpers.WriteJSONError(w, http.StatusPreconditionRequired, helpers.ErrCodeConfirmationRequired,
				"deleting an event requires confirm=true; registrations for it are kept")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
