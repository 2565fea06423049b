package handler

import (
	"log/slog"
	"net/http"

	"contacts/internal/delivery/api/response"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EmploymentHandlerParams holds dependencies for EmploymentHandler, injected by Fx.
type EmploymentHandlerParams struct {
	fx.In

	EmploymentUC usecase.EmploymentUsecase
	Logger       *slog.Logger
}

// EmploymentHandler serves a contact's employments.
type EmploymentHandler struct {
	employmentUC usecase.EmploymentUsecase
	logger       *slog.Logger
}

// NewEmploymentHandler is the constructor for EmploymentHandler
func NewEmploymentHandler(params EmploymentHandlerParams) *EmploymentHandler {
	return &EmploymentHandler{
		employmentUC: params.EmploymentUC,
		logger:       params.Logger,
	}
}

func (h *EmploymentHandler) CreateEmployment(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	var body EmploymentRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	employment, err := h.employmentUC.CreateEmployment(c.Request().Context(), req, contactID, &usecase.EmploymentInput{
		OrganisationID: body.OrganisationID,
		IsActive:       body.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toEmploymentResponse(employment))
}

func (h *EmploymentHandler) GetEmployment(c echo.Context) error {
	ids, err := pathIDs(c, "contactId", "employmentId")
	if err != nil {
		return err
	}

	employment, err := h.employmentUC.GetEmployment(c.Request().Context(), ids[0], ids[1])
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toEmploymentResponse(employment))
}

func (h *EmploymentHandler) ListEmployments(c echo.Context) error {
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	employments, err := h.employmentUC.ListEmployments(c.Request().Context(), contactID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toEmploymentResponses(employments))
}

func (h *EmploymentHandler) UpdateEmployment(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	ids, err := pathIDs(c, "contactId", "employmentId")
	if err != nil {
		return err
	}

	var body EmploymentRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	employment, err := h.employmentUC.UpdateEmployment(c.Request().Context(), req, ids[0], ids[1], &usecase.EmploymentInput{
		OrganisationID: body.OrganisationID,
		IsActive:       body.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toEmploymentResponse(employment))
}

func (h *EmploymentHandler) DeleteEmployment(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	ids, err := pathIDs(c, "contactId", "employmentId")
	if err != nil {
		return err
	}

	if err := h.employmentUC.DeleteEmployment(c.Request().Context(), req, ids[0], ids[1]); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// PatchEmployments applies a batch of creates, updates and deletes all-or-nothing.
func (h *EmploymentHandler) PatchEmployments(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	var body PatchEmploymentsRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	employments, err := h.employmentUC.PatchEmployments(c.Request().Context(), req, contactID, body.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toEmploymentResponses(employments))
}
