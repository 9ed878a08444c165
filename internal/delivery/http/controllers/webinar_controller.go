package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"webinarhub/internal/delivery/http/helpers"
	"webinarhub/internal/delivery/http/middleware"
	"webinarhub/internal/domain"
)

// OrganizeWebinarRequest is the request body for POST /webinars. The payload
// is stored as given; seat counts and date ordering are only enforced later,
// when seats are changed.
type OrganizeWebinarRequest struct {
	Title     string    `json:"title"`
	Seats     int       `json:"seats"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// OrganizeWebinarResponse is the response body for POST /webinars (201).
type OrganizeWebinarResponse struct {
	ID string `json:"id"`
}

// ChangeSeatsRequest is the request body for POST /webinars/{webinarID}/seats.
type ChangeSeatsRequest struct {
	Seats int `json:"seats"`
}

// ChangeSeatsResponse is the response body for POST /webinars/{webinarID}/seats (200).
type ChangeSeatsResponse struct {
	Message string `json:"message"`
}

type WebinarController struct {
	Logger      *slog.Logger
	Organize    domain.OrganizeWebinarsUseCase
	ChangeSeats domain.ChangeSeatsUseCase
	Users       domain.UserRepository
	Emails      domain.EmailService
}

func NewWebinarController(
	logger *slog.Logger,
	organize domain.OrganizeWebinarsUseCase,
	changeSeats domain.ChangeSeatsUseCase,
	users domain.UserRepository,
	emails domain.EmailService,
) *WebinarController {
	return &WebinarController{
		Logger:      logger,
		Organize:    organize,
		ChangeSeats: changeSeats,
		Users:       users,
		Emails:      emails,
	}
}

// OrganizeWebinar godoc
// @Summary Organize a new webinar
// @Description Create a webinar owned by the authenticated user. The server assigns the id; the organizer is taken from the token and cannot be set in the body.
// @Tags webinars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param webinar body OrganizeWebinarRequest true "Webinar data"
// @Success 201 {object} controllers.OrganizeWebinarResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /webinars [post]
func (c *WebinarController) OrganizeWebinar(w http.ResponseWriter, r *http.Request) {
	var req OrganizeWebinarRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := c.Organize.Execute(r.Context(), domain.OrganizeWebinarInput{
		UserID:    userID,
		Title:     req.Title,
		Seats:     req.Seats,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		return
	}
	c.sendConfirmation(r, userID, &req)
	helpers.WriteJSON(w, http.StatusCreated, OrganizeWebinarResponse{ID: id})
}

// sendConfirmation emails the organizer a scheduling confirmation. Failures
// are logged, never surfaced: the webinar is already created at this point.
func (c *WebinarController) sendConfirmation(r *http.Request, userID string, req *OrganizeWebinarRequest) {
	if c.Emails == nil || c.Users == nil {
		return
	}
	organizer, err := c.Users.GetByID(r.Context(), userID)
	if err != nil {
		c.Logger.WarnContext(r.Context(), "confirmation email skipped", "user_id", userID, "err", err)
		return
	}
	err = c.Emails.SendWebinarScheduled(r.Context(), &domain.WebinarScheduledEmailData{
		Email:         organizer.Email,
		OrganizerName: organizer.Name,
		Title:         req.Title,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		Seats:         req.Seats,
	})
	if err != nil {
		c.Logger.WarnContext(r.Context(), "confirmation email failed", "user_id", userID, "err", err)
	}
}

// ChangeWebinarSeats godoc
// @Summary Change the number of seats
// @Description Raise the seat count of a webinar. Only the organizer may do so, only to a strictly larger value, and never above 1000.
// @Tags webinars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param webinarID path string true "Webinar ID"
// @Param seats body ChangeSeatsRequest true "New seat count"
// @Success 200 {object} controllers.ChangeSeatsResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /webinars/{webinarID}/seats [post]
func (c *WebinarController) ChangeWebinarSeats(w http.ResponseWriter, r *http.Request) {
	webinarID := r.PathValue("webinarID")
	if webinarID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "missing webinarID")
		return
	}
	var req ChangeSeatsRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	err := c.ChangeSeats.Execute(r.Context(), domain.ChangeSeatsInput{
		User:      domain.User{ID: userID},
		WebinarID: webinarID,
		Seats:     req.Seats,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrWebinarNotFound):
			helpers.WriteJSONError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrNotOrganizer):
			helpers.WriteJSONError(w, http.StatusUnauthorized, err.Error())
		case errors.Is(err, domain.ErrSeatsDecreased), errors.Is(err, domain.ErrTooManySeats):
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ChangeSeatsResponse{Message: "Seats updated"})
}
