// Package http wires the controllers, middleware, and swagger UI into the
// server's route table.
package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"confkit/internal/delivery/http/controllers"
	"confkit/internal/delivery/http/middleware"
	"confkit/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes.
func NewRouter(
	verifier domain.TokenVerifier,
	organizerController *controllers.OrganizerController,
	eventController *controllers.EventController,
	scheduleController *controllers.ScheduleController,
	attendeeController *controllers.AttendeeController,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/request-code", organizerController.RequestCode)
	mux.HandleFunc("POST /auth/verify", organizerController.VerifyCode)
	mux.HandleFunc("GET /me", auth(organizerController.Me))

	// Events
	mux.HandleFunc("POST /events", auth(eventController.CreateEvent))
	mux.HandleFunc("GET /events", auth(eventController.ListMyEvents))
	mux.HandleFunc("GET /events/{eventID}", auth(eventController.GetEvent))
	mux.HandleFunc("PUT /events/{eventID}/setup", auth(eventController.UpdateEventSetup))
	mux.HandleFunc("PUT /events/{eventID}/venue", auth(eventController.UpdateVenue))
	mux.HandleFunc("DELETE /events/{eventID}", auth(eventController.DeleteEvent))
	mux.HandleFunc("POST /events/{eventID}/app", auth(eventController.GenerateApp))

	// Schedule
	mux.HandleFunc("POST /events/{eventID}/sessions", auth(scheduleController.CreateSession))
	mux.HandleFunc("GET /events/{eventID}/sessions", auth(scheduleController.ListSessions))
	mux.HandleFunc("PUT /sessions/{sessionID}", auth(scheduleController.UpdateSession))
	mux.HandleFunc("DELETE /sessions/{sessionID}", auth(scheduleController.DeleteSession))

	// Attendees
	mux.HandleFunc("POST /events/{eventID}/attendees", auth(attendeeController.AddAttendee))
	mux.HandleFunc("GET /events/{eventID}/attendees", auth(attendeeController.ListAttendees))
	mux.HandleFunc("POST /events/{eventID}/attendees/import", auth(attendeeController.ImportCSV))
	mux.HandleFunc("PUT /attendees/{attendeeID}", auth(attendeeController.UpdateAttendee))
	mux.HandleFunc("DELETE /attendees/{attendeeID}", auth(attendeeController.DeleteAttendee))

	// Public attendee app lookup
	mux.HandleFunc("GET /app/{appCode}", eventController.GetEventByAppCode)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
