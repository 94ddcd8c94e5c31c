package controllers

import (
	"log/slog"
	"net/http"

	"confkit/internal/delivery/http/helpers"
	"confkit/internal/delivery/http/middleware"
	"confkit/internal/domain"
)

// EventSetupRequest is the request body for POST /events and PUT
// /events/{eventID}/setup. Required fields are name, start_date, and
// end_date; the rest of the setup form is optional and nil leaves the field
// empty (create) or clears it (update).
type EventSetupRequest struct {
	Name                string  `json:"name"`
	StartDate           string  `json:"start_date"`
	EndDate             string  `json:"end_date"`
	Description         *string `json:"description"`
	PrimaryColor        *string `json:"primary_color"`
	AccentColor         *string `json:"accent_color"`
	OrganizerName       *string `json:"organizer_name"`
	OrganizerEmail      *string `json:"organizer_email"`
	OrganizerPhone      *string `json:"organizer_phone"`
	OrganizationName    *string `json:"organization_name"`
	OrganizationWebsite *string `json:"organization_website"`
}

func (r EventSetupRequest) toUpdate() domain.EventSetupUpdate {
	return domain.EventSetupUpdate{
		Name:                r.Name,
		StartDate:           r.StartDate,
		EndDate:             r.EndDate,
		Description:         r.Description,
		PrimaryColor:        r.PrimaryColor,
		AccentColor:         r.AccentColor,
		OrganizerName:       r.OrganizerName,
		OrganizerEmail:      r.OrganizerEmail,
		OrganizerPhone:      r.OrganizerPhone,
		OrganizationName:    r.OrganizationName,
		OrganizationWebsite: r.OrganizationWebsite,
	}
}

// VenueRequest is the request body for PUT /events/{eventID}/venue. All
// fields are optional; nil clears the stored value.
type VenueRequest struct {
	VenueName     *string `json:"venue_name"`
	VenueAddress  *string `json:"venue_address"`
	VenueMapsLink *string `json:"venue_maps_link"`
}

// GenerateAppRequest is the request body for POST /events/{eventID}/app.
type GenerateAppRequest struct {
	EmailLink bool `json:"email_link"`
}

// EventSuccessResponse is the success envelope carrying a single event.
type EventSuccessResponse struct {
	Data  *domain.Event     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// EventListSuccessResponse is the success envelope for GET /events.
type EventListSuccessResponse struct {
	Data  []*domain.Event   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// AppLinkSuccessResponse is the success envelope for POST /events/{eventID}/app.
// qr_png is base64-encoded PNG bytes.
type AppLinkSuccessResponse struct {
	Data  *domain.AppLink   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// organizerID extracts the authenticated organizer or writes a 401.
func organizerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.OrganizerIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, helpers.ErrCodeUnauthorized, "unauthorized")
		return "", false
	}
	return id, true
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates a conference event from the setup form. The authenticated organizer becomes the owner; app_code is server-generated.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body EventSetupRequest true "Event setup fields"
// @Success 201 {object} controllers.EventSuccessResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_failed, error.fields lists offending fields"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventSetupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ownerID, ok := organizerID(w, r)
	if !ok {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), ownerID, req.toUpdate())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListMyEvents godoc
// @Summary List the organizer's events
// @Tags events
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.EventListSuccessResponse "data contains the organizer's events"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListMyEvents(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := organizerID(w, r)
	if !ok {
		return
	}
	events, err := c.Service.ListMyEvents(r.Context(), ownerID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := organizerID(w, r)
	if !ok {
		return
	}
	event, err := c.Service.GetEvent(r.Context(), r.PathValue("eventID"), ownerID)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// GetEventByAppCode godoc
// @Summary Get an event by its public app code
// @Description Public attendee-facing lookup used by the generated app. No authentication required.
// @Tags app
// @Produce json
// @Param appCode path string true "App code"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /app/{appCode} [get]
func (c *EventController) GetEventByAppCode(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEventByAppCode(r.Context(), r.PathValue("appCode"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateEventSetup godoc
// @Summary Update an event's setup form
// @Description Full update of the setup/branding fields. Omitted optional fields are cleared.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param event body EventSetupRequest true "Event setup fields"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_failed"
// @Router /events/{eventID}/setup [put]
func (c *EventController) UpdateEventSetup(w http.ResponseWriter, r *http.Request) {
	var req EventSetupRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ownerID, ok := organizerID(w, r)
	if !ok {
		return
	}
	event, err := c.Service.UpdateEventSetup(r.Context(), r.PathValue("eventID"), ownerID, req.toUpdate())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// UpdateVenue godoc
// @Summary Update an event's venue panel
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param venue body VenueRequest true "Venue fields"
// @Success 200 {object} controllers.EventSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 422 {object} helpers.APIResponse "error.code: validation_failed"
// @Router /events/{eventID}/venue [put]
func (c *EventController) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	var req VenueRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ownerID, ok := organizerID(w, r)
	if !ok {
		return
	}
	upd := domain.VenueUpdate{
		VenueName:     req.VenueName,
		VenueAddress:  req.VenueAddress,
		VenueMapsLink: req.VenueMapsLink,
	}
	event, err := c.Service.UpdateVenue(r.Context(), r.PathValue("eventID"), ownerID, upd)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Success 204 "no content"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := organizerID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteEvent(r.Context(), r.PathValue("eventID"), ownerID); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GenerateApp godoc
// @Summary Generate the attendee app link and QR code
// @Description Builds the public app URL for the event and a QR code PNG pointing at it. With email_link set, the link is also emailed to the organizer contact.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param eventID path string true "Event ID"
// @Param options body GenerateAppRequest true "Generation options"
// @Success 200 {object} controllers.AppLinkSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{eventID}/app [post]
func (c *EventController) GenerateApp(w http.ResponseWriter, r *http.Request) {
	var req GenerateAppRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ownerID, ok := organizerID(w, r)
	if !ok {
		return
	}
	link, err := c.Service.GenerateApp(r.Context(), r.PathValue("eventID"), ownerID, req.EmailLink)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, link)
}
