package controllers

import (
	"io"
	"log/slog"
	"net/http"

	"confkit/internal/delivery/http/helpers"
	"confkit/internal/domain"
)

// maxCSVBodyBytes caps the raw CSV import body at 5 MiB.
const maxCSVBodyBytes = 5 << 20

// AttendeeRequest is the request body for POST /events/{eventID}/attendees
// and PUT /attendees/{attendeeID}.
type AttendeeRequest struct {
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Company   *string `json:"company"`
	JobTitle  *string `json:"job_title"`
	Phone     *string `json:"phone"`
}

func (r AttendeeRequest) toUpdate() domain.AttendeeUpdate {
	return domain.AttendeeUpdate{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Company:   r.Company,
		JobTitle:  r.JobTitle,
		Phone:     r.Phone,
	}
}

// AttendeeSuccessResponse is the success envelope carrying a single attendee.
type AttendeeSuccessResponse struct {
	Data  *domain.Attendee  `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AttendeeListResponse is the data payload for GET /events/{eventID}/attendees.
type AttendeeListResponse struct {
	Attendees  []*domain.Attendee     `json:"attendees"`
	Pagination helpers.PaginationMeta `json:"pagination"`
}

// AttendeeListSuccessResponse is the success envelope for GET /events/{eventID}/attendees.
type AttendeeListSuccessResponse struct {
	Data  AttendeeListResponse `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// ImportSuccessResponse is the success envelope for POST /events/{eventID}/attendees/import.
type ImportSuccessResponse struct {
	Data  *domain.CSVImportSummary `json:"data"`
	Error *helpers.APIError        `json:"error"`
}

type AttendeeController struct {
	Logger  *slog.Logger
	Service domain.AttendeeService
}

func NewAttendeeController(logger *slog.Logger, svc domain.AttendeeService) *AttendeeController {
	return &AttendeeController{
		Logger:  logger,
		Service: svc,
	}
}

// AddAttendee godoc
// @Summary Add an attendee to an event's roster
// @Tags attendees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param attendee body AttendeeRequest true "Attendee fields"
// @Success 201 {object} controllers.AttendeeSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict, email already on the roster"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_failed"
// @Router /events/{eventID}/attendees [post]
func (c *AttendeeController) AddAttendee(w http.ResponseWriter, r *http.Request) {
	var req AttendeeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ownerID, ok := organizerID(w, r)
	if !ok {
		return
	}
	attendee, err := c.Service.AddAttendee(r.Context(), r.PathValue("eventID"), ownerID, req.toUpdate())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, attendee)
}

// ListAttendees godoc
// @Summary List an event's attendees
// @Description Returns a page of the roster ordered by last name. Page and page_size come from the query string.
// @Tags attendees
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.AttendeeListSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/attendees [get]
func (c *AttendeeController) ListAttendees(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := organizerID(w, r)
	if !ok {
		return
	}
	p := helpers.ParsePagination(r)
	attendees, total, err := c.Service.ListAttendees(r.Context(), r.PathValue("eventID"), ownerID, p)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AttendeeListResponse{
		Attendees:  attendees,
		Pagination: helpers.NewPaginationMeta(p.Page, p.PageSize, total),
	})
}

// UpdateAttendee godoc
// @Summary Update an attendee
// @Tags attendees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param attendeeID path string true "Attendee ID"
// @Param attendee body AttendeeRequest true "Attendee fields"
// @Success 200 {object} controllers.AttendeeSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_failed"
// @Router /attendees/{attendeeID} [put]
func (c *AttendeeController) UpdateAttendee(w http.ResponseWriter, r *http.Request) {
	var req AttendeeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ownerID, ok := organizerID(w, r)
	if !ok {
		return
	}
	attendee, err := c.Service.UpdateAttendee(r.Context(), r.PathValue("attendeeID"), ownerID, req.toUpdate())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, attendee)
}

// DeleteAttendee godoc
// @Summary Remove an attendee from the roster
// @Tags attendees
// @Produce json
// @Security BearerAuth
// @Param attendeeID path string true "Attendee ID"
// @Success 204 "no content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /attendees/{attendeeID} [delete]
func (c *AttendeeController) DeleteAttendee(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := organizerID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteAttendee(r.Context(), r.PathValue("attendeeID"), ownerID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ImportCSV godoc
// @Summary Bulk-import attendees from CSV
// @Description Accepts a raw CSV body with an email,first_name,last_name header (company, job_title, and phone optional). The whole blob is validated first; a rejected blob imports nothing. Rows whose email is already on the roster are skipped as duplicates.
// @Tags attendees
// @Accept text/csv
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param csv body string true "Raw CSV content"
// @Success 200 {object} controllers.ImportSuccessResponse "data contains imported/duplicate counts"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_failed, error.fields carries up to 10 row errors"
// @Router /events/{eventID}/attendees/import [post]
func (c *AttendeeController) ImportCSV(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := organizerID(w, r)
	if !ok {
		return
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxCSVBodyBytes))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "failed to read request body")
		return
	}
	summary, err := c.Service.ImportCSV(r.Context(), r.PathValue("eventID"), ownerID, string(body))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, summary)
}
