package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"contacts/internal/delivery/api/response"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
	Logger    *slog.Logger
}

// ContactHandler serves the domain contact endpoints.
type ContactHandler struct {
	contactUC usecase.ContactUsecase
	logger    *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{
		contactUC: params.ContactUC,
		logger:    params.Logger,
	}
}

// CreateContact creates a contact, optionally with a relationship to a prisoner.
func (h *ContactHandler) CreateContact(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}

	var body CreateContactRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	out, err := h.contactUC.CreateContact(c.Request().Context(), req, body.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, &CreateContactResponse{
		Contact:      toContactResponse(out.Contact),
		Relationship: toPrisonerContactResponse(out.Relationship),
	})
}

// GetContact returns a contact with everything it owns.
func (h *ContactHandler) GetContact(c echo.Context) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	details, err := h.contactUC.GetContact(c.Request().Context(), contactID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toContactDetailsResponse(details))
}

// UpdateContact patches a contact.
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}

	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	var body UpdateContactRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	contact, err := h.contactUC.UpdateContact(c.Request().Context(), req, contactID, body.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toContactResponse(contact))
}

// SearchContacts pages through contacts by last name prefix.
func (h *ContactHandler) SearchContacts(c echo.Context) error {
	lastName := c.QueryParam("lastName")
	if lastName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "lastName is required")
	}

	page, err := queryInt(c, "page", 0)
	if err != nil {
		return err
	}
	size, err := queryInt(c, "size", defaultPageSize)
	if err != nil {
		return err
	}
	if size == 0 || size > maxPageSize {
		return echo.NewHTTPError(http.StatusBadRequest, "size must be between 1 and "+strconv.Itoa(maxPageSize))
	}

	out, err := h.contactUC.SearchContacts(c.Request().Context(), &usecase.SearchContactsInput{
		LastName: lastName,
		Page:     page,
		Size:     size,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toSearchContactsResponse(out))
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}

	return v, nil
}
