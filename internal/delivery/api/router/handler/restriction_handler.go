package handler

import (
	"log/slog"
	"net/http"

	"contacts/internal/delivery/api/response"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RestrictionHandlerParams holds dependencies for RestrictionHandler, injected by Fx.
type RestrictionHandlerParams struct {
	fx.In

	RestrictionUC usecase.RestrictionUsecase
	Logger        *slog.Logger
}

// RestrictionHandler serves contact and relationship restrictions.
type RestrictionHandler struct {
	restrictionUC usecase.RestrictionUsecase
	logger        *slog.Logger
}

// NewRestrictionHandler is the constructor for RestrictionHandler
func NewRestrictionHandler(params RestrictionHandlerParams) *RestrictionHandler {
	return &RestrictionHandler{
		restrictionUC: params.RestrictionUC,
		logger:        params.Logger,
	}
}

// CreateContactRestriction places an estate-wide restriction on a contact.
func (h *RestrictionHandler) CreateContactRestriction(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	var body RestrictionRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	restriction, err := h.restrictionUC.CreateContactRestriction(c.Request().Context(), req, contactID, body.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toContactRestrictionResponse(restriction))
}

// ListContactRestrictions lists a contact's restrictions with who entered them.
func (h *RestrictionHandler) ListContactRestrictions(c echo.Context) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	views, err := h.restrictionUC.ListContactRestrictions(c.Request().Context(), contactID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*RestrictionResponse, 0, len(views))
	for _, v := range views {
		resp := toContactRestrictionResponse(v.Restriction)
		resp.EnteredByDisplayName = v.EnteredByDisplayName
		out = append(out, resp)
	}

	return response.Success(c, http.StatusOK, out)
}

// UpdateContactRestriction replaces a contact restriction.
func (h *RestrictionHandler) UpdateContactRestriction(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	ids, err := pathIDs(c, "contactId", "restrictionId")
	if err != nil {
		return err
	}

	var body RestrictionRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	restriction, err := h.restrictionUC.UpdateContactRestriction(c.Request().Context(), req, ids[0], ids[1], body.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toContactRestrictionResponse(restriction))
}

// CreatePrisonerContactRestriction places a restriction on one relationship.
func (h *RestrictionHandler) CreatePrisonerContactRestriction(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	prisonerContactID, err := pathID(c, "prisonerContactId")
	if err != nil {
		return err
	}

	var body RestrictionRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	restriction, err := h.restrictionUC.CreatePrisonerContactRestriction(c.Request().Context(), req, prisonerContactID, body.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPrisonerContactRestrictionResponse(restriction))
}

// ListPrisonerContactRestrictions lists a relationship's restrictions with who entered them.
func (h *RestrictionHandler) ListPrisonerContactRestrictions(c echo.Context) error {
	prisonerContactID, err := pathID(c, "prisonerContactId")
	if err != nil {
		return err
	}

	views, err := h.restrictionUC.ListPrisonerContactRestrictions(c.Request().Context(), prisonerContactID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*RestrictionResponse, 0, len(views))
	for _, v := range views {
		resp := toPrisonerContactRestrictionResponse(v.Restriction)
		resp.EnteredByDisplayName = v.EnteredByDisplayName
		out = append(out, resp)
	}

	return response.Success(c, http.StatusOK, out)
}

// UpdatePrisonerContactRestriction replaces a relationship restriction.
func (h *RestrictionHandler) UpdatePrisonerContactRestriction(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	ids, err := pathIDs(c, "prisonerContactId", "restrictionId")
	if err != nil {
		return err
	}

	var body RestrictionRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	restriction, err := h.restrictionUC.UpdatePrisonerContactRestriction(c.Request().Context(), req, ids[0], ids[1], body.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPrisonerContactRestrictionResponse(restriction))
}
