// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"contacts/internal/delivery/api/middleware"
	"contacts/internal/delivery/api/router/handler"
	"contacts/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ContactHandler         *handler.ContactHandler
	AddressHandler         *handler.AddressHandler
	DetailHandler          *handler.DetailHandler
	RestrictionHandler     *handler.RestrictionHandler
	PrisonerContactHandler *handler.PrisonerContactHandler
	EmploymentHandler      *handler.EmploymentHandler
	SyncHandler            *handler.SyncHandler
	AuthMiddleware         *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	contactHandler         *handler.ContactHandler
	addressHandler         *handler.AddressHandler
	detailHandler          *handler.DetailHandler
	restrictionHandler     *handler.RestrictionHandler
	prisonerContactHandler *handler.PrisonerContactHandler
	employmentHandler      *handler.EmploymentHandler
	syncHandler            *handler.SyncHandler
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		contactHandler:         params.ContactHandler,
		addressHandler:         params.AddressHandler,
		detailHandler:          params.DetailHandler,
		restrictionHandler:     params.RestrictionHandler,
		prisonerContactHandler: params.PrisonerContactHandler,
		employmentHandler:      params.EmploymentHandler,
		syncHandler:            params.SyncHandler,
		authMiddleware:         params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Domain API, written as DPS
	domain := e.Group("")
	domain.Use(r.authMiddleware.Authenticate)
	domain.Use(r.authMiddleware.RequireRole(constants.RoleContactsAdmin))
	{
		domain.POST("/contact", r.contactHandler.CreateContact)
		domain.GET("/contact/search", r.contactHandler.SearchContacts)
		domain.GET("/contact/:contactId", r.contactHandler.GetContact)
		domain.PATCH("/contact/:contactId", r.contactHandler.UpdateContact)
	}

	contact := domain.Group("/contact/:contactId")
	{
		contact.POST("/address", r.addressHandler.CreateAddress)
		contact.GET("/address/:addressId", r.addressHandler.GetAddress)
		contact.PUT("/address/:addressId", r.addressHandler.UpdateAddress)
		contact.DELETE("/address/:addressId", r.addressHandler.DeleteAddress)
		contact.POST("/address/:addressId/phone", r.addressHandler.CreateAddressPhone)
		contact.GET("/address-phone/:addressPhoneId", r.addressHandler.GetAddressPhone)
		contact.PUT("/address-phone/:addressPhoneId", r.addressHandler.UpdateAddressPhone)
		contact.DELETE("/address-phone/:addressPhoneId", r.addressHandler.DeleteAddressPhone)

		contact.POST("/phone", r.addressHandler.CreatePhone)
		contact.GET("/phone/:phoneId", r.addressHandler.GetPhone)
		contact.PUT("/phone/:phoneId", r.addressHandler.UpdatePhone)
		contact.DELETE("/phone/:phoneId", r.addressHandler.DeletePhone)

		contact.POST("/email", r.detailHandler.CreateEmail)
		contact.GET("/email/:emailId", r.detailHandler.GetEmail)
		contact.PUT("/email/:emailId", r.detailHandler.UpdateEmail)
		contact.DELETE("/email/:emailId", r.detailHandler.DeleteEmail)

		contact.POST("/identity", r.detailHandler.CreateIdentity)
		contact.GET("/identity/:identityId", r.detailHandler.GetIdentity)
		contact.PUT("/identity/:identityId", r.detailHandler.UpdateIdentity)
		contact.DELETE("/identity/:identityId", r.detailHandler.DeleteIdentity)

		contact.POST("/restriction", r.restrictionHandler.CreateContactRestriction)
		contact.GET("/restriction", r.restrictionHandler.ListContactRestrictions)
		contact.PUT("/restriction/:restrictionId", r.restrictionHandler.UpdateContactRestriction)

		contact.POST("/employment", r.employmentHandler.CreateEmployment)
		contact.GET("/employment", r.employmentHandler.ListEmployments)
		contact.PATCH("/employment", r.employmentHandler.PatchEmployments)
		contact.GET("/employment/:employmentId", r.employmentHandler.GetEmployment)
		contact.PUT("/employment/:employmentId", r.employmentHandler.UpdateEmployment)
		contact.DELETE("/employment/:employmentId", r.employmentHandler.DeleteEmployment)
	}

	relationships := domain.Group("/prisoner-contact")
	{
		relationships.POST("", r.prisonerContactHandler.CreatePrisonerContact)
		relationships.GET("/:prisonerContactId", r.prisonerContactHandler.GetPrisonerContact)
		relationships.PATCH("/:prisonerContactId", r.prisonerContactHandler.UpdatePrisonerContact)
		relationships.POST("/:prisonerContactId/restriction", r.restrictionHandler.CreatePrisonerContactRestriction)
		relationships.GET("/:prisonerContactId/restriction", r.restrictionHandler.ListPrisonerContactRestrictions)
		relationships.PUT("/:prisonerContactId/restriction/:restrictionId", r.restrictionHandler.UpdatePrisonerContactRestriction)
	}

	domain.GET("/prisoner/:prisonerNumber/contact", r.prisonerContactHandler.ListPrisonerContacts)

	// Sync API, replaying NOMIS writes
	sync := e.Group("/sync")
	sync.Use(r.authMiddleware.Authenticate)
	sync.Use(r.authMiddleware.RequireRole(constants.RoleContactsMigration))
	{
		sync.GET("/contact/:contactId", r.syncHandler.GetContact)
		sync.POST("/contact", r.syncHandler.CreateContact)
		sync.PUT("/contact/:contactId", r.syncHandler.UpdateContact)
		sync.DELETE("/contact/:contactId", r.syncHandler.DeleteContact)

		sync.GET("/contact-address/:contactAddressId", r.syncHandler.GetAddress)
		sync.POST("/contact-address", r.syncHandler.CreateAddress)
		sync.PUT("/contact-address/:contactAddressId", r.syncHandler.UpdateAddress)
		sync.DELETE("/contact-address/:contactAddressId", r.syncHandler.DeleteAddress)

		sync.GET("/contact-phone/:contactPhoneId", r.syncHandler.GetPhone)
		sync.POST("/contact-phone", r.syncHandler.CreatePhone)
		sync.PUT("/contact-phone/:contactPhoneId", r.syncHandler.UpdatePhone)
		sync.DELETE("/contact-phone/:contactPhoneId", r.syncHandler.DeletePhone)

		sync.GET("/contact-address-phone/:contactAddressPhoneId", r.syncHandler.GetAddressPhone)
		sync.POST("/contact-address-phone", r.syncHandler.CreateAddressPhone)
		sync.PUT("/contact-address-phone/:contactAddressPhoneId", r.syncHandler.UpdateAddressPhone)
		sync.DELETE("/contact-address-phone/:contactAddressPhoneId", r.syncHandler.DeleteAddressPhone)

		sync.GET("/contact-email/:contactEmailId", r.syncHandler.GetEmail)
		sync.POST("/contact-email", r.syncHandler.CreateEmail)
		sync.PUT("/contact-email/:contactEmailId", r.syncHandler.UpdateEmail)
		sync.DELETE("/contact-email/:contactEmailId", r.syncHandler.DeleteEmail)

		sync.GET("/contact-identity/:contactIdentityId", r.syncHandler.GetIdentity)
		sync.POST("/contact-identity", r.syncHandler.CreateIdentity)
		sync.PUT("/contact-identity/:contactIdentityId", r.syncHandler.UpdateIdentity)
		sync.DELETE("/contact-identity/:contactIdentityId", r.syncHandler.DeleteIdentity)

		sync.GET("/contact-restriction/:contactRestrictionId", r.syncHandler.GetContactRestriction)
		sync.POST("/contact-restriction", r.syncHandler.CreateContactRestriction)
		sync.PUT("/contact-restriction/:contactRestrictionId", r.syncHandler.UpdateContactRestriction)
		sync.DELETE("/contact-restriction/:contactRestrictionId", r.syncHandler.DeleteContactRestriction)

		sync.GET("/prisoner-contact/:prisonerContactId", r.syncHandler.GetPrisonerContact)
		sync.POST("/prisoner-contact", r.syncHandler.CreatePrisonerContact)
		sync.PUT("/prisoner-contact/:prisonerContactId", r.syncHandler.UpdatePrisonerContact)
		sync.DELETE("/prisoner-contact/:prisonerContactId", r.syncHandler.DeletePrisonerContact)

		sync.GET("/prisoner-contact-restriction/:prisonerContactRestrictionId", r.syncHandler.GetPrisonerContactRestriction)
		sync.POST("/prisoner-contact-restriction", r.syncHandler.CreatePrisonerContactRestriction)
		sync.PUT("/prisoner-contact-restriction/:prisonerContactRestrictionId", r.syncHandler.UpdatePrisonerContactRestriction)
		sync.DELETE("/prisoner-contact-restriction/:prisonerContactRestrictionId", r.syncHandler.DeletePrisonerContactRestriction)

		sync.GET("/employment/:employmentId", r.syncHandler.GetEmployment)
		sync.POST("/employment", r.syncHandler.CreateEmployment)
		sync.PUT("/employment/:employmentId", r.syncHandler.UpdateEmployment)
		sync.DELETE("/employment/:employmentId", r.syncHandler.DeleteEmployment)
	}
}
