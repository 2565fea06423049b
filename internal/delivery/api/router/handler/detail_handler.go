package handler

import (
	"log/slog"
	"net/http"

	"contacts/internal/delivery/api/response"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DetailHandlerParams holds dependencies for DetailHandler, injected by Fx.
type DetailHandlerParams struct {
	fx.In

	EmailUC    usecase.EmailUsecase
	IdentityUC usecase.IdentityUsecase
	Logger     *slog.Logger
}

// DetailHandler serves contact emails and identities.
type DetailHandler struct {
	emailUC    usecase.EmailUsecase
	identityUC usecase.IdentityUsecase
	logger     *slog.Logger
}

// NewDetailHandler is the constructor for DetailHandler
func NewDetailHandler(params DetailHandlerParams) *DetailHandler {
	return &DetailHandler{
		emailUC:    params.EmailUC,
		identityUC: params.IdentityUC,
		logger:     params.Logger,
	}
}

func (h *DetailHandler) CreateEmail(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	var body EmailRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	email, err := h.emailUC.CreateEmail(c.Request().Context(), req, contactID, &usecase.EmailInput{EmailAddress: body.EmailAddress})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toEmailResponse(email))
}

func (h *DetailHandler) GetEmail(c echo.Context) error {
	ids, err := pathIDs(c, "contactId", "emailId")
	if err != nil {
		return err
	}

	email, err := h.emailUC.GetEmail(c.Request().Context(), ids[0], ids[1])
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toEmailResponse(email))
}

func (h *DetailHandler) UpdateEmail(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	ids, err := pathIDs(c, "contactId", "emailId")
	if err != nil {
		return err
	}

	var body EmailRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	email, err := h.emailUC.UpdateEmail(c.Request().Context(), req, ids[0], ids[1], &usecase.EmailInput{EmailAddress: body.EmailAddress})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toEmailResponse(email))
}

func (h *DetailHandler) DeleteEmail(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	ids, err := pathIDs(c, "contactId", "emailId")
	if err != nil {
		return err
	}

	if err := h.emailUC.DeleteEmail(c.Request().Context(), req, ids[0], ids[1]); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

func (h *DetailHandler) CreateIdentity(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	var body IdentityRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	identity, err := h.identityUC.CreateIdentity(c.Request().Context(), req, contactID, body.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toIdentityResponse(identity))
}

func (h *DetailHandler) GetIdentity(c echo.Context) error {
	ids, err := pathIDs(c, "contactId", "identityId")
	if err != nil {
		return err
	}

	identity, err := h.identityUC.GetIdentity(c.Request().Context(), ids[0], ids[1])
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toIdentityResponse(identity))
}

func (h *DetailHandler) UpdateIdentity(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	ids, err := pathIDs(c, "contactId", "identityId")
	if err != nil {
		return err
	}

	var body IdentityRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	identity, err := h.identityUC.UpdateIdentity(c.Request().Context(), req, ids[0], ids[1], body.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toIdentityResponse(identity))
}

func (h *DetailHandler) DeleteIdentity(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	ids, err := pathIDs(c, "contactId", "identityId")
	if err != nil {
		return err
	}

	if err := h.identityUC.DeleteIdentity(c.Request().Context(), req, ids[0], ids[1]); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
