package controllers

import (
	"log/slog"
	"net/http"

	"confkit/internal/delivery/http/helpers"
	"confkit/internal/domain"
)

// RequestCodeRequest is the request body for POST /auth/request-code.
type RequestCodeRequest struct {
	Email string `json:"email"`
}

// Validate implements Validator.
func (r RequestCodeRequest) Validate() []string {
	var errs []string
	if r.Email == "" {
		errs = append(errs, "email is required")
	}
	return errs
}

// VerifyCodeRequest is the request body for POST /auth/verify.
type VerifyCodeRequest struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

// Validate implements Validator.
func (r VerifyCodeRequest) Validate() []string {
	var errs []string
	if r.Email == "" {
		errs = append(errs, "email is required")
	}
	if r.Code == "" {
		errs = append(errs, "code is required")
	}
	return errs
}

// VerifyCodeResponse is the data payload for POST /auth/verify.
type VerifyCodeResponse struct {
	Token     string            `json:"token"`
	Organizer *domain.Organizer `json:"organizer"`
}

// VerifyCodeSuccessResponse is the success envelope for POST /auth/verify.
type VerifyCodeSuccessResponse struct {
	Data  VerifyCodeResponse `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// OrganizerSuccessResponse is the success envelope for GET /me.
type OrganizerSuccessResponse struct {
	Data  *domain.Organizer `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type OrganizerController struct {
	Logger  *slog.Logger
	Service domain.OrganizerService
}

func NewOrganizerController(logger *slog.Logger, svc domain.OrganizerService) *OrganizerController {
	return &OrganizerController{
		Logger:  logger,
		Service: svc,
	}
}

// RequestCode godoc
// @Summary Request a one-time login code
// @Description Emails a six digit login code to the address. Responds 204 whether or not an account exists for the email.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RequestCodeRequest true "Email to send the code to"
// @Success 204 "code sent"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /auth/request-code [post]
func (c *OrganizerController) RequestCode(w http.ResponseWriter, r *http.Request) {
	var req RequestCodeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.RequestLoginCode(r.Context(), req.Email); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// VerifyCode godoc
// @Summary Exchange a login code for a token
// @Description Verifies the one-time code and returns a bearer token plus the organizer record. First-time logins create the organizer account.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body VerifyCodeRequest true "Email and code"
// @Success 200 {object} controllers.VerifyCodeSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request, invalid or expired code"
// @Router /auth/verify [post]
func (c *OrganizerController) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req VerifyCodeRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	token, organizer, err := c.Service.VerifyLoginCode(r.Context(), req.Email, req.Code)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, VerifyCodeResponse{Token: token, Organizer: organizer})
}

// Me godoc
// @Summary Get the authenticated organizer
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.OrganizerSuccessResponse
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /me [get]
func (c *OrganizerController) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := organizerID(w, r)
	if !ok {
		return
	}
	organizer, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, organizer)
}
