package handler

import (
	"log/slog"
	"net/http"

	"contacts/internal/delivery/api/response"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC      usecase.AddressUsecase
	PhoneUC        usecase.PhoneUsecase
	AddressPhoneUC usecase.AddressPhoneUsecase
	Logger         *slog.Logger
}

// AddressHandler serves contact addresses, phones and address-linked phones.
type AddressHandler struct {
	addressUC      usecase.AddressUsecase
	phoneUC        usecase.PhoneUsecase
	addressPhoneUC usecase.AddressPhoneUsecase
	logger         *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC:      params.AddressUC,
		phoneUC:        params.PhoneUC,
		addressPhoneUC: params.AddressPhoneUC,
		logger:         params.Logger,
	}
}

// CreateAddress adds an address, with any phones in the body, to a contact.
func (h *AddressHandler) CreateAddress(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	var body AddressRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	details, err := h.addressUC.CreateAddress(c.Request().Context(), req, contactID, body.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAddressDetailsResponse(details))
}

// GetAddress returns an address with its linked phones.
func (h *AddressHandler) GetAddress(c echo.Context) error {
	ids, err := pathIDs(c, "contactId", "addressId")
	if err != nil {
		return err
	}

	details, err := h.addressUC.GetAddress(c.Request().Context(), ids[0], ids[1])
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressDetailsResponse(details))
}

// UpdateAddress replaces an address.
func (h *AddressHandler) UpdateAddress(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	ids, err := pathIDs(c, "contactId", "addressId")
	if err != nil {
		return err
	}

	var body AddressRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), req, ids[0], ids[1], body.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address))
}

// DeleteAddress removes an address and its phone links.
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	ids, err := pathIDs(c, "contactId", "addressId")
	if err != nil {
		return err
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), req, ids[0], ids[1]); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// CreatePhone adds a phone to a contact.
func (h *AddressHandler) CreatePhone(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	contactID, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	var body PhoneRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	phone, err := h.phoneUC.CreatePhone(c.Request().Context(), req, contactID, body.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPhoneResponse(phone))
}

// GetPhone returns one of a contact's phones.
func (h *AddressHandler) GetPhone(c echo.Context) error {
	ids, err := pathIDs(c, "contactId", "phoneId")
	if err != nil {
		return err
	}

	phone, err := h.phoneUC.GetPhone(c.Request().Context(), ids[0], ids[1])
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPhoneResponse(phone))
}

// UpdatePhone replaces a phone.
func (h *AddressHandler) UpdatePhone(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	ids, err := pathIDs(c, "contactId", "phoneId")
	if err != nil {
		return err
	}

	var body PhoneRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	phone, err := h.phoneUC.UpdatePhone(c.Request().Context(), req, ids[0], ids[1], body.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPhoneResponse(phone))
}

// DeletePhone removes a phone.
func (h *AddressHandler) DeletePhone(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	ids, err := pathIDs(c, "contactId", "phoneId")
	if err != nil {
		return err
	}

	if err := h.phoneUC.DeletePhone(c.Request().Context(), req, ids[0], ids[1]); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// CreateAddressPhone adds a phone and links it to an address.
func (h *AddressHandler) CreateAddressPhone(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	ids, err := pathIDs(c, "contactId", "addressId")
	if err != nil {
		return err
	}

	var body PhoneRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	phone, err := h.addressPhoneUC.CreateAddressPhone(c.Request().Context(), req, ids[0], ids[1], body.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAddressPhoneResponse(phone))
}

// GetAddressPhone returns an address-linked phone by its link id.
func (h *AddressHandler) GetAddressPhone(c echo.Context) error {
	ids, err := pathIDs(c, "contactId", "addressPhoneId")
	if err != nil {
		return err
	}

	phone, err := h.addressPhoneUC.GetAddressPhone(c.Request().Context(), ids[0], ids[1])
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressPhoneResponse(phone))
}

// UpdateAddressPhone replaces the phone behind a link.
func (h *AddressHandler) UpdateAddressPhone(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	ids, err := pathIDs(c, "contactId", "addressPhoneId")
	if err != nil {
		return err
	}

	var body PhoneRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	phone, err := h.addressPhoneUC.UpdateAddressPhone(c.Request().Context(), req, ids[0], ids[1], body.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressPhoneResponse(phone))
}

// DeleteAddressPhone removes a link and its phone.
func (h *AddressHandler) DeleteAddressPhone(c echo.Context) error {
	req, err := domainRequester(c)
	if err != nil {
		return err
	}
	ids, err := pathIDs(c, "contactId", "addressPhoneId")
	if err != nil {
		return err
	}

	if err := h.addressPhoneUC.DeleteAddressPhone(c.Request().Context(), req, ids[0], ids[1]); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
