package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/michellealmonte/marketing-api/internal/dto"
	"github.com/michellealmonte/marketing-api/internal/repository"
	"github.com/michellealmonte/marketing-api/internal/service"
)

// NewsletterHandler exposes the newsletter subscription endpoints.
type NewsletterHandler struct {
	newsletter *service.NewsletterService
}

// NewNewsletterHandler constructs a NewsletterHandler.
func NewNewsletterHandler(newsletter *service.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter}
}

// Subscribe handles POST /api/newsletter/subscribe requests.
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req dto.NewsletterRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	sub, err := h.newsletter.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return Error(c, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, repository.ErrDuplicateEmail):
			return Error(c, http.StatusConflict, "This email is already subscribed to our newsletter")
		default:
			return Error(c, http.StatusInternalServerError, "unable to subscribe, please try again later")
		}
	}

	return Success(c, http.StatusCreated,
		"Welcome to our style community! Check your inbox for a confirmation.",
		dto.SubscriptionResponse{Email: sub.Email},
	)
}

// Unsubscribe handles POST /api/newsletter/unsubscribe requests.
func (h *NewsletterHandler) Unsubscribe(c echo.Context) error {
	var req dto.NewsletterRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	err := h.newsletter.Unsubscribe(c.Request().Context(), req.Email)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return Error(c, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, repository.ErrSubscriberNotFound):
			return Error(c, http.StatusNotFound, "email not found in our subscriber list")
		default:
			return Error(c, http.StatusInternalServerError, "unable to unsubscribe, please try again later")
		}
	}

	return Success(c, http.StatusOK, "You have been unsubscribed", nil)
}

// ListSubscribers handles GET /api/newsletter/subscribers requests (admin only).
func (h *NewsletterHandler) ListSubscribers(c echo.Context) error {
	subs, err := h.newsletter.ListActive(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list subscribers")
	}
	return Success(c, http.StatusOK, "subscribers retrieved", subs)
}
