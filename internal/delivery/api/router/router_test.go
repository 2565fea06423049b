package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/router/handler"
	"contacts/internal/delivery/api/validator"
	"contacts/internal/domain/constants"
	"contacts/internal/domain/entity"
	domainerrors "contacts/internal/domain/errors"
	"contacts/internal/domain/service"
	"contacts/internal/errors"
	mockservice "contacts/internal/mocks/service"
	mockusecase "contacts/internal/mocks/usecase"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testAPI struct {
	echo         *echo.Echo
	verifier     *mockservice.MockTokenVerifier
	contacts     *mockusecase.MockContactUsecase
	addresses    *mockusecase.MockAddressUsecase
	employments  *mockusecase.MockEmploymentUsecase
	relationship *mockusecase.MockPrisonerContactUsecase
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := &testAPI{
		echo:         echo.New(),
		verifier:     mockservice.NewMockTokenVerifier(t),
		contacts:     mockusecase.NewMockContactUsecase(t),
		addresses:    mockusecase.NewMockAddressUsecase(t),
		employments:  mockusecase.NewMockEmploymentUsecase(t),
		relationship: mockusecase.NewMockPrisonerContactUsecase(t),
	}
	api.echo.Validator = validator.New()
	api.echo.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	r := NewRouter(RouterParams{
		ContactHandler: handler.NewContactHandler(handler.ContactHandlerParams{ContactUC: api.contacts, Logger: logger}),
		AddressHandler: handler.NewAddressHandler(handler.AddressHandlerParams{AddressUC: api.addresses, Logger: logger}),
		DetailHandler:  handler.NewDetailHandler(handler.DetailHandlerParams{Logger: logger}),
		RestrictionHandler: handler.NewRestrictionHandler(handler.RestrictionHandlerParams{Logger: logger}),
		PrisonerContactHandler: handler.NewPrisonerContactHandler(handler.PrisonerContactHandlerParams{
			PrisonerContactUC: api.relationship,
			Logger:            logger,
		}),
		EmploymentHandler: handler.NewEmploymentHandler(handler.EmploymentHandlerParams{EmploymentUC: api.employments, Logger: logger}),
		SyncHandler: handler.NewSyncHandler(handler.SyncHandlerParams{
			ContactUC:    api.contacts,
			AddressUC:    api.addresses,
			EmploymentUC: api.employments,
			Logger:       logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(api.verifier),
	})
	r.RegisterRoutes(api.echo)

	return api
}

func (a *testAPI) as(token, username string, roles ...string) {
	a.verifier.EXPECT().Verify(token).Return(&service.Principal{Username: username, Roles: roles}, nil).Maybe()
}

func (a *testAPI) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	return rec
}

type errorBody struct {
	Error struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()

	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestHealth_IsPublic(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDomainRoutes_RequireToken(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(http.MethodGet, "/contact/1", "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "MISSING_TOKEN", decodeError(t, rec).Error.Code)
}

func TestDomainRoutes_RejectInvalidToken(t *testing.T) {
	api := newTestAPI(t)
	api.verifier.EXPECT().Verify("bad").Return(nil, errors.New("expired"))

	rec := api.do(http.MethodGet, "/contact/1", "bad", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, rec).Error.Code)
}

func TestDomainRoutes_RequireAdminRole(t *testing.T) {
	api := newTestAPI(t)
	api.as("migration", "SYNC_CLIENT", constants.RoleContactsMigration)

	rec := api.do(http.MethodGet, "/contact/1", "migration", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSyncRoutes_RequireMigrationRole(t *testing.T) {
	api := newTestAPI(t)
	api.as("admin", "JSMITH", constants.RoleContactsAdmin)

	rec := api.do(http.MethodGet, "/sync/contact/1", "admin", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateContact_PassesDomainRequesterAndParsedInput(t *testing.T) {
	api := newTestAPI(t)
	api.as("admin", "JSMITH", constants.RoleContactsAdmin)

	dob := time.Date(1980, 2, 1, 0, 0, 0, 0, time.UTC)
	api.contacts.EXPECT().
		CreateContact(mock.Anything, usecase.DPS("JSMITH"), mock.MatchedBy(func(in *usecase.CreateContactInput) bool {
			return in.LastName == "Smith" &&
				in.DateOfBirth != nil && in.DateOfBirth.Equal(dob) &&
				in.Relationship != nil && in.Relationship.PrisonerNumber == "A1234BC"
		})).
		Return(&usecase.CreateContactOutput{
			Contact:      &entity.Contact{ID: 7, LastName: "Smith", FirstName: "Jo", DateOfBirth: &dob},
			Relationship: &entity.PrisonerContact{ID: 3, ContactID: 7, PrisonerNumber: "A1234BC"},
		}, nil)

	rec := api.do(http.MethodPost, "/contact", "admin", `{
		"lastName": "Smith",
		"firstName": "Jo",
		"dateOfBirth": "1980-02-01",
		"relationship": {
			"prisonerNumber": "A1234BC",
			"relationshipType": "S",
			"relationshipToPrisoner": "FRI"
		}
	}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var body struct {
		Data handler.CreateContactResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.Data.Contact.ID)
	assert.Equal(t, "1980-02-01", *body.Data.Contact.DateOfBirth)
	assert.Equal(t, int64(3), body.Data.Relationship.PrisonerContactID)
}

func TestCreateContact_ValidationFailureListsFields(t *testing.T) {
	api := newTestAPI(t)
	api.as("admin", "JSMITH", constants.RoleContactsAdmin)

	rec := api.do(http.MethodPost, "/contact", "admin", `{
		"firstName": "Jo",
		"dateOfBirth": "01/02/1980",
		"relationship": {"prisonerNumber": "nope", "relationshipType": "S", "relationshipToPrisoner": "FRI"}
	}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), body.Error.Code)
	assert.Equal(t, "required", body.Error.Details["lastName"])
	assert.Equal(t, "datetime", body.Error.Details["dateOfBirth"])
	assert.Equal(t, "prisoner_number", body.Error.Details["prisonerNumber"])
}

func TestCreateContact_MalformedBody(t *testing.T) {
	api := newTestAPI(t)
	api.as("admin", "JSMITH", constants.RoleContactsAdmin)

	rec := api.do(http.MethodPost, "/contact", "admin", `{"lastName":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetContact_InvalidID(t *testing.T) {
	api := newTestAPI(t)
	api.as("admin", "JSMITH", constants.RoleContactsAdmin)

	rec := api.do(http.MethodGet, "/contact/abc", "admin", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetContact_NotFound(t *testing.T) {
	api := newTestAPI(t)
	api.as("admin", "JSMITH", constants.RoleContactsAdmin)
	api.contacts.EXPECT().GetContact(mock.Anything, int64(99)).
		Return(nil, errors.Wrap(domainerrors.NewNotFoundError("Contact", 99), "failed to load"))

	rec := api.do(http.MethodGet, "/contact/99", "admin", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.ErrNotFound.ErrorCode(), decodeError(t, rec).Error.Code)
}

func TestGetContact_UnexpectedErrorIsHidden(t *testing.T) {
	api := newTestAPI(t)
	api.as("admin", "JSMITH", constants.RoleContactsAdmin)
	api.contacts.EXPECT().GetContact(mock.Anything, int64(1)).Return(nil, errors.New("connection reset"))

	rec := api.do(http.MethodGet, "/contact/1", "admin", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestSearchContacts_DefaultsAndLimits(t *testing.T) {
	api := newTestAPI(t)
	api.as("admin", "JSMITH", constants.RoleContactsAdmin)
	api.contacts.EXPECT().
		SearchContacts(mock.Anything, &usecase.SearchContactsInput{LastName: "smi", Page: 0, Size: 10}).
		Return(&usecase.SearchContactsOutput{
			Items: []*entity.ContactSummary{{Contact: &entity.Contact{ID: 1, LastName: "Smith"}}},
			Total: 1,
			Size:  10,
		}, nil)

	rec := api.do(http.MethodGet, "/contact/search?lastName=smi", "admin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalElements":1`)

	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/contact/search", "admin", "").Code)
	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/contact/search?lastName=a&size=1000", "admin", "").Code)
}

func TestPatchEmployments_MapsBatch(t *testing.T) {
	api := newTestAPI(t)
	api.as("admin", "JSMITH", constants.RoleContactsAdmin)
	api.employments.EXPECT().
		PatchEmployments(mock.Anything, usecase.DPS("JSMITH"), int64(5), &usecase.PatchEmploymentsInput{
			Create: []usecase.EmploymentInput{{OrganisationID: 10, IsActive: true}},
			Update: []usecase.EmploymentUpdate{{EmploymentID: 2, OrganisationID: 11}},
			Delete: []int64{3},
		}).
		Return([]*entity.Employment{{ID: 2, ContactID: 5, OrganisationID: 11}}, nil)

	rec := api.do(http.MethodPatch, "/contact/5/employment", "admin", `{
		"createEmployments": [{"organisationId": 10, "isActive": true}],
		"updateEmployments": [{"employmentId": 2, "organisationId": 11, "isActive": false}],
		"deleteEmployments": [3]
	}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"employmentId":2`)
}

func TestPatchEmployments_RejectsBadDeleteID(t *testing.T) {
	api := newTestAPI(t)
	api.as("admin", "JSMITH", constants.RoleContactsAdmin)

	rec := api.do(http.MethodPatch, "/contact/5/employment", "admin", `{"deleteEmployments": [0]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPrisonerContacts_ValidatesPrisonerNumber(t *testing.T) {
	api := newTestAPI(t)
	api.as("admin", "JSMITH", constants.RoleContactsAdmin)
	api.relationship.EXPECT().ListPrisonerContacts(mock.Anything, "A1234BC").Return([]*usecase.PrisonerContactSummary{{
		Relationship: &entity.PrisonerContact{ID: 1, ContactID: 2, PrisonerNumber: "A1234BC"},
		Contact:      &entity.Contact{ID: 2, LastName: "Smith", FirstName: "Jo"},
	}}, nil)

	rec := api.do(http.MethodGet, "/prisoner/A1234BC/contact", "admin", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"lastName":"Smith"`)

	assert.Equal(t, http.StatusBadRequest, api.do(http.MethodGet, "/prisoner/bad/contact", "admin", "").Code)
}

func TestSyncCreateAddress_UsesBodyUserAndContact(t *testing.T) {
	api := newTestAPI(t)
	api.as("migration", "SYNC_CLIENT", constants.RoleContactsMigration)
	api.addresses.EXPECT().
		CreateAddress(mock.Anything, usecase.NOMIS("NOMIS_USER"), int64(4), mock.MatchedBy(func(in *usecase.AddressInput) bool {
			return in.PrimaryAddress && in.PostCode != nil && *in.PostCode == "S1 1AA"
		})).
		Return(&usecase.AddressDetails{Address: &entity.ContactAddress{ID: 8, ContactID: 4, PrimaryAddress: true}}, nil)

	rec := api.do(http.MethodPost, "/sync/contact-address", "migration", `{
		"contactId": 4,
		"primaryAddress": true,
		"postcode": "S1 1AA",
		"createdBy": "NOMIS_USER"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"contactAddressId":8`)
}

func TestSyncCreateAddress_RequiresCreatedBy(t *testing.T) {
	api := newTestAPI(t)
	api.as("migration", "SYNC_CLIENT", constants.RoleContactsMigration)

	rec := api.do(http.MethodPost, "/sync/contact-address", "migration", `{"contactId": 4}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "required", decodeError(t, rec).Error.Details["createdBy"])
}

func TestSyncDeleteEmployment_AddressesRowByID(t *testing.T) {
	api := newTestAPI(t)
	api.as("migration", "SYNC_CLIENT", constants.RoleContactsMigration)
	api.employments.EXPECT().DeleteEmployment(mock.Anything, usecase.NOMIS("SYNC_CLIENT"), usecase.AnyContact, int64(12)).Return(nil)

	rec := api.do(http.MethodDelete, "/sync/employment/12", "migration", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSyncUpdateContact_UsesUpdatedBy(t *testing.T) {
	api := newTestAPI(t)
	api.as("migration", "SYNC_CLIENT", constants.RoleContactsMigration)
	api.contacts.EXPECT().
		UpdateContact(mock.Anything, usecase.NOMIS("NOMIS_USER"), int64(3), mock.MatchedBy(func(in *usecase.UpdateContactInput) bool {
			return in.FirstName != nil && *in.FirstName == "Joanne" && in.LastName == nil
		})).
		Return(&entity.Contact{ID: 3, FirstName: "Joanne", LastName: "Smith"}, nil)

	rec := api.do(http.MethodPut, "/sync/contact/3", "migration", `{"firstName": "Joanne", "updatedBy": "NOMIS_USER"}`)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}
