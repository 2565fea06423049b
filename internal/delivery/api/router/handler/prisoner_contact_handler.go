package handler

import (
	"log/slog"
	"net/http"

	"contacts/internal/delivery/api/response"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PrisonerContactHandlerParams holds dependencies for PrisonerContactHandler, injected by Fx.
type PrisonerContactHandlerParams struct {
	fx.In

	PrisonerContactUC usecase.PrisonerContactUsecase
	Logger            *slog.Logger
}

// PrisonerContactHandler serves relationships between contacts and prisoners.
type PrisonerContactHandler struct {
	prisonerContactUC usecase.PrisonerContactUsecase
	logger            *slog.Logger
}

// NewPrisonerContactHandler is the constructor for PrisonerContactHandler
func NewPrisonerContactHandler(params PrisonerContactHandlerParams) *PrisonerContactHandler {
	return &PrisonerContactHandler{
		prisonerContactUC: params.PrisonerContactUC,
		logger:            params.Logger,
	}
}

// CreatePrisonerContactRequest links an existing contact to a prisoner.
type CreatePrisonerContactRequest struct {
	ContactID    int64               `json:"contactId" validate:"required,gt=0"`
	Relationship RelationshipRequest `json:"relationship"`
}

// CreatePrisonerContact links a contact to a prisoner.
func (h *PrisonerContactHandler) CreatePrisonerContact(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}

	var body CreatePrisonerContactRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	relationship, err := h.prisonerContactUC.CreatePrisonerContact(c.Request().Context(), req, &usecase.CreatePrisonerContactInput{
		ContactID:    body.ContactID,
		Relationship: body.Relationship.toInput(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPrisonerContactResponse(relationship))
}

// GetPrisonerContact returns one relationship.
func (h *PrisonerContactHandler) GetPrisonerContact(c echo.Context) error {
	id, err := pathID(c, "prisonerContactId")
	if err != nil {
		return err
	}

	relationship, err := h.prisonerContactUC.GetPrisonerContact(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPrisonerContactResponse(relationship))
}

// UpdatePrisonerContact patches a relationship.
func (h *PrisonerContactHandler) UpdatePrisonerContact(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "prisonerContactId")
	if err != nil {
		return err
	}

	var body UpdatePrisonerContactRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	relationship, err := h.prisonerContactUC.UpdatePrisonerContact(c.Request().Context(), req, id, body.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPrisonerContactResponse(relationship))
}

// ListPrisonerContacts lists a prisoner's contacts with their most relevant address.
func (h *PrisonerContactHandler) ListPrisonerContacts(c echo.Context) error {
	prisonerNumber := c.Param("prisonerNumber")
	if err := c.Validate(&struct {
		PrisonerNumber string `json:"prisonerNumber" validate:"prisoner_number"`
	}{PrisonerNumber: prisonerNumber}); err != nil {
		return err
	}

	items, err := h.prisonerContactUC.ListPrisonerContacts(c.Request().Context(), prisonerNumber)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPrisonerContactSummaryResponses(items))
}
