package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/michellealmonte/marketing-api/internal/dto"
	"github.com/michellealmonte/marketing-api/internal/repository"
	"github.com/michellealmonte/marketing-api/internal/service"
)

// ContactHandler exposes the contact form endpoints.
type ContactHandler struct {
	contacts *service.ContactsService
}

// NewContactHandler constructs a ContactHandler.
func NewContactHandler(contacts *service.ContactsService) *ContactHandler {
	return &ContactHandler{contacts: contacts}
}

// Submit handles POST /api/contact requests.
func (h *ContactHandler) Submit(c echo.Context) error {
	var req dto.ContactRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	contact, err := h.contacts.Submit(c.Request().Context(), req)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			return Error(c, http.StatusBadRequest, vErr.Error())
		}
		return Error(c, http.StatusInternalServerError, "unable to process your request, please try again later")
	}

	return Success(c, http.StatusCreated,
		"Thank you for your message! I will get back to you within 24 hours.",
		dto.ContactCreatedResponse{ID: contact.ID, Name: contact.Name, Email: contact.Email},
	)
}

// List handles GET /api/contact requests (admin only).
func (h *ContactHandler) List(c echo.Context) error {
	contacts, err := h.contacts.List(c.Request().Context())
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list submissions")
	}
	return Success(c, http.StatusOK, "submissions retrieved", contacts)
}

// UpdateStatus handles PUT /api/contact/:id/status requests (admin only).
func (h *ContactHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return Error(c, http.StatusBadRequest, "invalid submission id")
	}

	var req dto.UpdateContactStatusRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	contact, err := h.contacts.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			return Error(c, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, repository.ErrContactNotFound):
			return Error(c, http.StatusNotFound, "submission not found")
		default:
			return Error(c, http.StatusInternalServerError, "failed to update submission")
		}
	}

	return Success(c, http.StatusOK, "status updated", contact)
}
