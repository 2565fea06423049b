package handler

import (
	"log/slog"
	"net/http"

	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/response"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SyncHandlerParams holds dependencies for SyncHandler, injected by Fx.
type SyncHandlerParams struct {
	fx.In

	ContactUC         usecase.ContactUsecase
	AddressUC         usecase.AddressUsecase
	PhoneUC           usecase.PhoneUsecase
	AddressPhoneUC    usecase.AddressPhoneUsecase
	EmailUC           usecase.EmailUsecase
	IdentityUC        usecase.IdentityUsecase
	RestrictionUC     usecase.RestrictionUsecase
	PrisonerContactUC usecase.PrisonerContactUsecase
	EmploymentUC      usecase.EmploymentUsecase
	Logger            *slog.Logger
}

// SyncHandler replays writes made in the legacy prison system. Rows are addressed
// by their own id, and the acting user comes from the body rather than the token.
type SyncHandler struct {
	contactUC         usecase.ContactUsecase
	addressUC         usecase.AddressUsecase
	phoneUC           usecase.PhoneUsecase
	addressPhoneUC    usecase.AddressPhoneUsecase
	emailUC           usecase.EmailUsecase
	identityUC        usecase.IdentityUsecase
	restrictionUC     usecase.RestrictionUsecase
	prisonerContactUC usecase.PrisonerContactUsecase
	employmentUC      usecase.EmploymentUsecase
	logger            *slog.Logger
}

// NewSyncHandler is the constructor for SyncHandler
func NewSyncHandler(params SyncHandlerParams) *SyncHandler {
	return &SyncHandler{
		contactUC:         params.ContactUC,
		addressUC:         params.AddressUC,
		phoneUC:           params.PhoneUC,
		addressPhoneUC:    params.AddressPhoneUC,
		emailUC:           params.EmailUC,
		identityUC:        params.IdentityUC,
		restrictionUC:     params.RestrictionUC,
		prisonerContactUC: params.PrisonerContactUC,
		employmentUC:      params.EmploymentUC,
		logger:            params.Logger,
	}
}

// SyncCreatedBy carries the legacy user that made a create.
type SyncCreatedBy struct {
	CreatedBy string `json:"createdBy" validate:"required,max=100"`
}

// SyncUpdatedBy carries the legacy user that made an update.
type SyncUpdatedBy struct {
	UpdatedBy string `json:"updatedBy" validate:"required,max=100"`
}

// SyncContactOwned identifies the contact a synced create belongs to.
type SyncContactOwned struct {
	ContactID int64 `json:"contactId" validate:"required,gt=0"`
}

type syncCreateContactRequest struct {
	CreateContactRequest
	SyncCreatedBy
}

type syncUpdateContactRequest struct {
	UpdateContactRequest
	SyncUpdatedBy
}

type syncCreateAddressRequest struct {
	AddressRequest
	SyncContactOwned
	SyncCreatedBy
}

type syncUpdateAddressRequest struct {
	AddressRequest
	SyncUpdatedBy
}

type syncCreatePhoneRequest struct {
	PhoneRequest
	SyncContactOwned
	SyncCreatedBy
}

type syncUpdatePhoneRequest struct {
	PhoneRequest
	SyncUpdatedBy
}

type syncCreateAddressPhoneRequest struct {
	PhoneRequest
	SyncContactOwned
	ContactAddressID int64 `json:"contactAddressId" validate:"required,gt=0"`
	SyncCreatedBy
}

type syncCreateEmailRequest struct {
	EmailRequest
	SyncContactOwned
	SyncCreatedBy
}

type syncUpdateEmailRequest struct {
	EmailRequest
	SyncUpdatedBy
}

type syncCreateIdentityRequest struct {
	IdentityRequest
	SyncContactOwned
	SyncCreatedBy
}

type syncUpdateIdentityRequest struct {
	IdentityRequest
	SyncUpdatedBy
}

type syncCreateContactRestrictionRequest struct {
	RestrictionRequest
	SyncContactOwned
	SyncCreatedBy
}

type syncUpdateRestrictionRequest struct {
	RestrictionRequest
	SyncUpdatedBy
}

type syncCreatePrisonerContactRestrictionRequest struct {
	RestrictionRequest
	PrisonerContactID int64 `json:"prisonerContactId" validate:"required,gt=0"`
	SyncCreatedBy
}

type syncCreatePrisonerContactRequest struct {
	CreatePrisonerContactRequest
	SyncCreatedBy
}

type syncUpdatePrisonerContactRequest struct {
	UpdatePrisonerContactRequest
	SyncUpdatedBy
}

type syncCreateEmploymentRequest struct {
	EmploymentRequest
	SyncContactOwned
	SyncCreatedBy
}

type syncUpdateEmploymentRequest struct {
	EmploymentRequest
	SyncUpdatedBy
}

// syncCaller is the authenticated migration client, used as the actor for deletes.
func syncCaller(c echo.Context) (usecase.Requester, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return usecase.Requester{}, echo.NewHTTPError(http.StatusUnauthorized, "Missing caller identity")
	}

	return usecase.NOMIS(principal.Username), nil
}

// Contacts

func (h *SyncHandler) GetContact(c echo.Context) error {
	id, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	details, err := h.contactUC.GetContact(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toContactResponse(details.Contact))
}

func (h *SyncHandler) CreateContact(c echo.Context) error {
	var body syncCreateContactRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	out, err := h.contactUC.CreateContact(c.Request().Context(), usecase.NOMIS(body.CreatedBy), body.CreateContactRequest.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toContactResponse(out.Contact))
}

func (h *SyncHandler) UpdateContact(c echo.Context) error {
	id, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	var body syncUpdateContactRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	contact, err := h.contactUC.UpdateContact(c.Request().Context(), usecase.NOMIS(body.UpdatedBy), id, body.UpdateContactRequest.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toContactResponse(contact))
}

func (h *SyncHandler) DeleteContact(c echo.Context) error {
	req, err := syncCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "contactId")
	if err != nil {
		return err
	}

	if err := h.contactUC.DeleteContact(c.Request().Context(), req, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Addresses

func (h *SyncHandler) GetAddress(c echo.Context) error {
	id, err := pathID(c, "contactAddressId")
	if err != nil {
		return err
	}

	details, err := h.addressUC.GetAddress(c.Request().Context(), usecase.AnyContact, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(details.Address))
}

func (h *SyncHandler) CreateAddress(c echo.Context) error {
	var body syncCreateAddressRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	details, err := h.addressUC.CreateAddress(c.Request().Context(), usecase.NOMIS(body.CreatedBy), body.ContactID, body.AddressRequest.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAddressResponse(details.Address))
}

func (h *SyncHandler) UpdateAddress(c echo.Context) error {
	id, err := pathID(c, "contactAddressId")
	if err != nil {
		return err
	}

	var body syncUpdateAddressRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	address, err := h.addressUC.UpdateAddress(c.Request().Context(), usecase.NOMIS(body.UpdatedBy), usecase.AnyContact, id, body.AddressRequest.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address))
}

func (h *SyncHandler) DeleteAddress(c echo.Context) error {
	req, err := syncCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "contactAddressId")
	if err != nil {
		return err
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), req, usecase.AnyContact, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Phones

func (h *SyncHandler) GetPhone(c echo.Context) error {
	id, err := pathID(c, "contactPhoneId")
	if err != nil {
		return err
	}

	phone, err := h.phoneUC.GetPhone(c.Request().Context(), usecase.AnyContact, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPhoneResponse(phone))
}

func (h *SyncHandler) CreatePhone(c echo.Context) error {
	var body syncCreatePhoneRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	phone, err := h.phoneUC.CreatePhone(c.Request().Context(), usecase.NOMIS(body.CreatedBy), body.ContactID, body.PhoneRequest.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPhoneResponse(phone))
}

func (h *SyncHandler) UpdatePhone(c echo.Context) error {
	id, err := pathID(c, "contactPhoneId")
	if err != nil {
		return err
	}

	var body syncUpdatePhoneRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	phone, err := h.phoneUC.UpdatePhone(c.Request().Context(), usecase.NOMIS(body.UpdatedBy), usecase.AnyContact, id, body.PhoneRequest.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPhoneResponse(phone))
}

func (h *SyncHandler) DeletePhone(c echo.Context) error {
	req, err := syncCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "contactPhoneId")
	if err != nil {
		return err
	}

	if err := h.phoneUC.DeletePhone(c.Request().Context(), req, usecase.AnyContact, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Address phones

func (h *SyncHandler) GetAddressPhone(c echo.Context) error {
	id, err := pathID(c, "contactAddressPhoneId")
	if err != nil {
		return err
	}

	phone, err := h.addressPhoneUC.GetAddressPhone(c.Request().Context(), usecase.AnyContact, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressPhoneResponse(phone))
}

func (h *SyncHandler) CreateAddressPhone(c echo.Context) error {
	var body syncCreateAddressPhoneRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	phone, err := h.addressPhoneUC.CreateAddressPhone(c.Request().Context(), usecase.NOMIS(body.CreatedBy), body.ContactID, body.ContactAddressID, body.PhoneRequest.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAddressPhoneResponse(phone))
}

func (h *SyncHandler) UpdateAddressPhone(c echo.Context) error {
	id, err := pathID(c, "contactAddressPhoneId")
	if err != nil {
		return err
	}

	var body syncUpdatePhoneRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	phone, err := h.addressPhoneUC.UpdateAddressPhone(c.Request().Context(), usecase.NOMIS(body.UpdatedBy), usecase.AnyContact, id, body.PhoneRequest.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressPhoneResponse(phone))
}

func (h *SyncHandler) DeleteAddressPhone(c echo.Context) error {
	req, err := syncCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "contactAddressPhoneId")
	if err != nil {
		return err
	}

	if err := h.addressPhoneUC.DeleteAddressPhone(c.Request().Context(), req, usecase.AnyContact, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Emails

func (h *SyncHandler) GetEmail(c echo.Context) error {
	id, err := pathID(c, "contactEmailId")
	if err != nil {
		return err
	}

	email, err := h.emailUC.GetEmail(c.Request().Context(), usecase.AnyContact, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toEmailResponse(email))
}

func (h *SyncHandler) CreateEmail(c echo.Context) error {
	var body syncCreateEmailRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	email, err := h.emailUC.CreateEmail(c.Request().Context(), usecase.NOMIS(body.CreatedBy), body.ContactID, &usecase.EmailInput{EmailAddress: body.EmailAddress})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toEmailResponse(email))
}

func (h *SyncHandler) UpdateEmail(c echo.Context) error {
	id, err := pathID(c, "contactEmailId")
	if err != nil {
		return err
	}

	var body syncUpdateEmailRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	email, err := h.emailUC.UpdateEmail(c.Request().Context(), usecase.NOMIS(body.UpdatedBy), usecase.AnyContact, id, &usecase.EmailInput{EmailAddress: body.EmailAddress})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toEmailResponse(email))
}

func (h *SyncHandler) DeleteEmail(c echo.Context) error {
	req, err := syncCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "contactEmailId")
	if err != nil {
		return err
	}

	if err := h.emailUC.DeleteEmail(c.Request().Context(), req, usecase.AnyContact, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Identities

func (h *SyncHandler) GetIdentity(c echo.Context) error {
	id, err := pathID(c, "contactIdentityId")
	if err != nil {
		return err
	}

	identity, err := h.identityUC.GetIdentity(c.Request().Context(), usecase.AnyContact, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toIdentityResponse(identity))
}

func (h *SyncHandler) CreateIdentity(c echo.Context) error {
	var body syncCreateIdentityRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	identity, err := h.identityUC.CreateIdentity(c.Request().Context(), usecase.NOMIS(body.CreatedBy), body.ContactID, body.IdentityRequest.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toIdentityResponse(identity))
}

func (h *SyncHandler) UpdateIdentity(c echo.Context) error {
	id, err := pathID(c, "contactIdentityId")
	if err != nil {
		return err
	}

	var body syncUpdateIdentityRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	identity, err := h.identityUC.UpdateIdentity(c.Request().Context(), usecase.NOMIS(body.UpdatedBy), usecase.AnyContact, id, body.IdentityRequest.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toIdentityResponse(identity))
}

func (h *SyncHandler) DeleteIdentity(c echo.Context) error {
	req, err := syncCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "contactIdentityId")
	if err != nil {
		return err
	}

	if err := h.identityUC.DeleteIdentity(c.Request().Context(), req, usecase.AnyContact, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Contact restrictions

func (h *SyncHandler) GetContactRestriction(c echo.Context) error {
	id, err := pathID(c, "contactRestrictionId")
	if err != nil {
		return err
	}

	restriction, err := h.restrictionUC.GetContactRestriction(c.Request().Context(), usecase.AnyContact, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toContactRestrictionResponse(restriction))
}

func (h *SyncHandler) CreateContactRestriction(c echo.Context) error {
	var body syncCreateContactRestrictionRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	restriction, err := h.restrictionUC.CreateContactRestriction(c.Request().Context(), usecase.NOMIS(body.CreatedBy), body.ContactID, body.RestrictionRequest.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toContactRestrictionResponse(restriction))
}

func (h *SyncHandler) UpdateContactRestriction(c echo.Context) error {
	id, err := pathID(c, "contactRestrictionId")
	if err != nil {
		return err
	}

	var body syncUpdateRestrictionRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	restriction, err := h.restrictionUC.UpdateContactRestriction(c.Request().Context(), usecase.NOMIS(body.UpdatedBy), usecase.AnyContact, id, body.RestrictionRequest.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toContactRestrictionResponse(restriction))
}

func (h *SyncHandler) DeleteContactRestriction(c echo.Context) error {
	req, err := syncCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "contactRestrictionId")
	if err != nil {
		return err
	}

	if err := h.restrictionUC.DeleteContactRestriction(c.Request().Context(), req, usecase.AnyContact, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Prisoner contacts

func (h *SyncHandler) GetPrisonerContact(c echo.Context) error {
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

func (h *SyncHandler) CreatePrisonerContact(c echo.Context) error {
	var body syncCreatePrisonerContactRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	relationship, err := h.prisonerContactUC.CreatePrisonerContact(c.Request().Context(), usecase.NOMIS(body.CreatedBy), &usecase.CreatePrisonerContactInput{
		ContactID:    body.ContactID,
		Relationship: body.Relationship.toInput(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPrisonerContactResponse(relationship))
}

func (h *SyncHandler) UpdatePrisonerContact(c echo.Context) error {
	id, err := pathID(c, "prisonerContactId")
	if err != nil {
		return err
	}

	var body syncUpdatePrisonerContactRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	relationship, err := h.prisonerContactUC.UpdatePrisonerContact(c.Request().Context(), usecase.NOMIS(body.UpdatedBy), id, body.UpdatePrisonerContactRequest.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPrisonerContactResponse(relationship))
}

func (h *SyncHandler) DeletePrisonerContact(c echo.Context) error {
	req, err := syncCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "prisonerContactId")
	if err != nil {
		return err
	}

	if err := h.prisonerContactUC.DeletePrisonerContact(c.Request().Context(), req, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Prisoner contact restrictions

func (h *SyncHandler) GetPrisonerContactRestriction(c echo.Context) error {
	id, err := pathID(c, "prisonerContactRestrictionId")
	if err != nil {
		return err
	}

	restriction, err := h.restrictionUC.GetPrisonerContactRestriction(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPrisonerContactRestrictionResponse(restriction))
}

func (h *SyncHandler) CreatePrisonerContactRestriction(c echo.Context) error {
	var body syncCreatePrisonerContactRestrictionRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	restriction, err := h.restrictionUC.CreatePrisonerContactRestriction(c.Request().Context(), usecase.NOMIS(body.CreatedBy), body.PrisonerContactID, body.RestrictionRequest.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPrisonerContactRestrictionResponse(restriction))
}

func (h *SyncHandler) UpdatePrisonerContactRestriction(c echo.Context) error {
	id, err := pathID(c, "prisonerContactRestrictionId")
	if err != nil {
		return err
	}

	var body syncUpdateRestrictionRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	restriction, err := h.restrictionUC.UpdatePrisonerContactRestriction(c.Request().Context(), usecase.NOMIS(body.UpdatedBy), usecase.AnyContact, id, body.RestrictionRequest.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPrisonerContactRestrictionResponse(restriction))
}

func (h *SyncHandler) DeletePrisonerContactRestriction(c echo.Context) error {
	req, err := syncCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "prisonerContactRestrictionId")
	if err != nil {
		return err
	}

	if err := h.restrictionUC.DeletePrisonerContactRestriction(c.Request().Context(), req, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// Employments

func (h *SyncHandler) GetEmployment(c echo.Context) error {
	id, err := pathID(c, "employmentId")
	if err != nil {
		return err
	}

	employment, err := h.employmentUC.GetEmployment(c.Request().Context(), usecase.AnyContact, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toEmploymentResponse(employment))
}

func (h *SyncHandler) CreateEmployment(c echo.Context) error {
	var body syncCreateEmploymentRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	employment, err := h.employmentUC.CreateEmployment(c.Request().Context(), usecase.NOMIS(body.CreatedBy), body.ContactID, &usecase.EmploymentInput{
		OrganisationID: body.OrganisationID,
		IsActive:       body.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toEmploymentResponse(employment))
}

func (h *SyncHandler) UpdateEmployment(c echo.Context) error {
	id, err := pathID(c, "employmentId")
	if err != nil {
		return err
	}

	var body syncUpdateEmploymentRequest
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	employment, err := h.employmentUC.UpdateEmployment(c.Request().Context(), usecase.NOMIS(body.UpdatedBy), usecase.AnyContact, id, &usecase.EmploymentInput{
		OrganisationID: body.OrganisationID,
		IsActive:       body.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toEmploymentResponse(employment))
}

func (h *SyncHandler) DeleteEmployment(c echo.Context) error {
	req, err := syncCaller(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "employmentId")
	if err != nil {
		return err
	}

	if err := h.employmentUC.DeleteEmployment(c.Request().Context(), req, usecase.AnyContact, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
