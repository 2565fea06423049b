package handler

import (
	"time"

	"contacts/internal/domain/entity"
	"contacts/internal/usecase"
)

const dateLayout = time.DateOnly

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)

	return &s
}

// parseDate reads an optional yyyy-mm-dd value. The validator has already checked the layout.
func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil
	}

	return &t
}

// AuditResponse is embedded in every entity response.
type AuditResponse struct {
	CreatedBy   string     `json:"createdBy"`
	CreatedTime time.Time  `json:"createdTime"`
	UpdatedBy   *string    `json:"updatedBy,omitempty"`
	UpdatedTime *time.Time `json:"updatedTime,omitempty"`
}

func toAuditResponse(a entity.Audit) AuditResponse {
	return AuditResponse{
		CreatedBy:   a.CreatedBy,
		CreatedTime: a.CreatedTime,
		UpdatedBy:   a.UpdatedBy,
		UpdatedTime: a.UpdatedTime,
	}
}

// ContactResponse is a contact without its owned rows.
type ContactResponse struct {
	ID                  int64   `json:"id"`
	TitleCode           *string `json:"titleCode,omitempty"`
	LastName            string  `json:"lastName"`
	FirstName           string  `json:"firstName"`
	MiddleNames         *string `json:"middleNames,omitempty"`
	DateOfBirth         *string `json:"dateOfBirth,omitempty"`
	LanguageCode        *string `json:"languageCode,omitempty"`
	InterpreterRequired bool    `json:"interpreterRequired"`
	GenderCode          *string `json:"genderCode,omitempty"`
	IsStaff             bool    `json:"isStaff"`
	AuditResponse
}

func toContactResponse(c *entity.Contact) *ContactResponse {
	if c == nil {
		return nil
	}

	return &ContactResponse{
		ID:                  c.ID,
		TitleCode:           c.TitleCode,
		LastName:            c.LastName,
		FirstName:           c.FirstName,
		MiddleNames:         c.MiddleNames,
		DateOfBirth:         formatDate(c.DateOfBirth),
		LanguageCode:        c.LanguageCode,
		InterpreterRequired: c.InterpreterRequired,
		GenderCode:          c.GenderCode,
		IsStaff:             c.IsStaff,
		AuditResponse:       toAuditResponse(c.Audit),
	}
}

// AddressResponse is a contact address.
type AddressResponse struct {
	ContactAddressID int64                   `json:"contactAddressId"`
	ContactID        int64                   `json:"contactId"`
	AddressType      *string                 `json:"addressType,omitempty"`
	PrimaryAddress   bool                    `json:"primaryAddress"`
	MailFlag         bool                    `json:"mailFlag"`
	FlatNumber       *string                 `json:"flat,omitempty"`
	Property         *string                 `json:"property,omitempty"`
	Street           *string                 `json:"street,omitempty"`
	Area             *string                 `json:"area,omitempty"`
	CityCode         *string                 `json:"cityCode,omitempty"`
	CountyCode       *string                 `json:"countyCode,omitempty"`
	PostCode         *string                 `json:"postcode,omitempty"`
	CountryCode      *string                 `json:"countryCode,omitempty"`
	NoFixedAddress   bool                    `json:"noFixedAddress"`
	StartDate        *string                 `json:"startDate,omitempty"`
	EndDate          *string                 `json:"endDate,omitempty"`
	Comments         *string                 `json:"comments,omitempty"`
	Verified         bool                    `json:"verified"`
	VerifiedBy       *string                 `json:"verifiedBy,omitempty"`
	VerifiedTime     *time.Time              `json:"verifiedTime,omitempty"`
	PhoneNumbers     []*AddressPhoneResponse `json:"phoneNumbers,omitempty"`
	AuditResponse
}

func toAddressResponse(a *entity.ContactAddress) *AddressResponse {
	if a == nil {
		return nil
	}

	return &AddressResponse{
		ContactAddressID: a.ID,
		ContactID:        a.ContactID,
		AddressType:      a.AddressType,
		PrimaryAddress:   a.PrimaryAddress,
		MailFlag:         a.MailFlag,
		FlatNumber:       a.FlatNumber,
		Property:         a.Property,
		Street:           a.Street,
		Area:             a.Area,
		CityCode:         a.CityCode,
		CountyCode:       a.CountyCode,
		PostCode:         a.PostCode,
		CountryCode:      a.CountryCode,
		NoFixedAddress:   a.NoFixedAddress,
		StartDate:        formatDate(a.StartDate),
		EndDate:          formatDate(a.EndDate),
		Comments:         a.Comments,
		Verified:         a.Verified,
		VerifiedBy:       a.VerifiedBy,
		VerifiedTime:     a.VerifiedTime,
		AuditResponse:    toAuditResponse(a.Audit),
	}
}

func toAddressDetailsResponse(d *usecase.AddressDetails) *AddressResponse {
	resp := toAddressResponse(d.Address)
	resp.PhoneNumbers = make([]*AddressPhoneResponse, 0, len(d.Phones))
	for _, p := range d.Phones {
		resp.PhoneNumbers = append(resp.PhoneNumbers, toAddressPhoneResponse(p))
	}

	return resp
}

// PhoneResponse is a contact phone.
type PhoneResponse struct {
	ContactPhoneID int64   `json:"contactPhoneId"`
	ContactID      int64   `json:"contactId"`
	PhoneType      string  `json:"phoneType"`
	PhoneNumber    string  `json:"phoneNumber"`
	ExtNumber      *string `json:"extNumber,omitempty"`
	AuditResponse
}

func toPhoneResponse(p *entity.ContactPhone) *PhoneResponse {
	return &PhoneResponse{
		ContactPhoneID: p.ID,
		ContactID:      p.ContactID,
		PhoneType:      p.PhoneType,
		PhoneNumber:    p.PhoneNumber,
		ExtNumber:      p.ExtNumber,
		AuditResponse:  toAuditResponse(p.Audit),
	}
}

// AddressPhoneResponse is a phone linked to an address.
type AddressPhoneResponse struct {
	ContactAddressPhoneID int64   `json:"contactAddressPhoneId"`
	ContactAddressID      int64   `json:"contactAddressId"`
	ContactPhoneID        int64   `json:"contactPhoneId"`
	ContactID             int64   `json:"contactId"`
	PhoneType             string  `json:"phoneType"`
	PhoneNumber           string  `json:"phoneNumber"`
	ExtNumber             *string `json:"extNumber,omitempty"`
	AuditResponse
}

func toAddressPhoneResponse(p *entity.AddressPhone) *AddressPhoneResponse {
	return &AddressPhoneResponse{
		ContactAddressPhoneID: p.Link.ID,
		ContactAddressID:      p.Link.ContactAddressID,
		ContactPhoneID:        p.Phone.ID,
		ContactID:             p.Link.ContactID,
		PhoneType:             p.Phone.PhoneType,
		PhoneNumber:           p.Phone.PhoneNumber,
		ExtNumber:             p.Phone.ExtNumber,
		AuditResponse:         toAuditResponse(p.Link.Audit),
	}
}

// EmailResponse is a contact email.
type EmailResponse struct {
	ContactEmailID int64  `json:"contactEmailId"`
	ContactID      int64  `json:"contactId"`
	EmailAddress   string `json:"emailAddress"`
	AuditResponse
}

func toEmailResponse(e *entity.ContactEmail) *EmailResponse {
	return &EmailResponse{
		ContactEmailID: e.ID,
		ContactID:      e.ContactID,
		EmailAddress:   e.EmailAddress,
		AuditResponse:  toAuditResponse(e.Audit),
	}
}

// IdentityResponse is a contact identity document.
type IdentityResponse struct {
	ContactIdentityID int64   `json:"contactIdentityId"`
	ContactID         int64   `json:"contactId"`
	IdentityType      string  `json:"identityType"`
	IdentityValue     string  `json:"identityValue"`
	IssuingAuthority  *string `json:"issuingAuthority,omitempty"`
	AuditResponse
}

func toIdentityResponse(i *entity.ContactIdentity) *IdentityResponse {
	return &IdentityResponse{
		ContactIdentityID: i.ID,
		ContactID:         i.ContactID,
		IdentityType:      i.IdentityType,
		IdentityValue:     i.IdentityValue,
		IssuingAuthority:  i.IssuingAuthority,
		AuditResponse:     toAuditResponse(i.Audit),
	}
}

// EmploymentResponse is an employment.
type EmploymentResponse struct {
	EmploymentID   int64 `json:"employmentId"`
	ContactID      int64 `json:"contactId"`
	OrganisationID int64 `json:"organisationId"`
	IsActive       bool  `json:"isActive"`
	AuditResponse
}

func toEmploymentResponse(e *entity.Employment) *EmploymentResponse {
	return &EmploymentResponse{
		EmploymentID:   e.ID,
		ContactID:      e.ContactID,
		OrganisationID: e.OrganisationID,
		IsActive:       e.IsActive,
		AuditResponse:  toAuditResponse(e.Audit),
	}
}

func toEmploymentResponses(employments []*entity.Employment) []*EmploymentResponse {
	out := make([]*EmploymentResponse, 0, len(employments))
	for _, e := range employments {
		out = append(out, toEmploymentResponse(e))
	}

	return out
}

// RestrictionResponse is a contact or relationship restriction.
type RestrictionResponse struct {
	RestrictionID        int64   `json:"restrictionId"`
	ContactID            *int64  `json:"contactId,omitempty"`
	PrisonerContactID    *int64  `json:"prisonerContactId,omitempty"`
	RestrictionType      string  `json:"restrictionType"`
	StartDate            *string `json:"startDate,omitempty"`
	ExpiryDate           *string `json:"expiryDate,omitempty"`
	Comments             *string `json:"comments,omitempty"`
	EnteredByDisplayName string  `json:"enteredByDisplayName,omitempty"`
	AuditResponse
}

func toContactRestrictionResponse(r *entity.ContactRestriction) *RestrictionResponse {
	contactID := r.ContactID

	return &RestrictionResponse{
		RestrictionID:   r.ID,
		ContactID:       &contactID,
		RestrictionType: r.RestrictionType,
		StartDate:       formatDate(r.StartDate),
		ExpiryDate:      formatDate(r.ExpiryDate),
		Comments:        r.Comments,
		AuditResponse:   toAuditResponse(r.Audit),
	}
}

func toPrisonerContactRestrictionResponse(r *entity.PrisonerContactRestriction) *RestrictionResponse {
	prisonerContactID := r.PrisonerContactID

	return &RestrictionResponse{
		RestrictionID:     r.ID,
		PrisonerContactID: &prisonerContactID,
		RestrictionType:   r.RestrictionType,
		StartDate:         formatDate(r.StartDate),
		ExpiryDate:        formatDate(r.ExpiryDate),
		Comments:          r.Comments,
		AuditResponse:     toAuditResponse(r.Audit),
	}
}

// PrisonerContactResponse is a relationship between a contact and a prisoner.
type PrisonerContactResponse struct {
	PrisonerContactID      int64   `json:"prisonerContactId"`
	ContactID              int64   `json:"contactId"`
	PrisonerNumber         string  `json:"prisonerNumber"`
	RelationshipType       string  `json:"relationshipType"`
	RelationshipToPrisoner string  `json:"relationshipToPrisoner"`
	NextOfKin              bool    `json:"isNextOfKin"`
	EmergencyContact       bool    `json:"isEmergencyContact"`
	ApprovedVisitor        bool    `json:"isApprovedVisitor"`
	Active                 bool    `json:"isActive"`
	CurrentTerm            bool    `json:"currentTerm"`
	Comments               *string `json:"comments,omitempty"`
	AuditResponse
}

func toPrisonerContactResponse(p *entity.PrisonerContact) *PrisonerContactResponse {
	if p == nil {
		return nil
	}

	return &PrisonerContactResponse{
		PrisonerContactID:      p.ID,
		ContactID:              p.ContactID,
		PrisonerNumber:         p.PrisonerNumber,
		RelationshipType:       p.RelationshipType,
		RelationshipToPrisoner: p.RelationshipToPrisoner,
		NextOfKin:              p.NextOfKin,
		EmergencyContact:       p.EmergencyContact,
		ApprovedVisitor:        p.ApprovedVisitor,
		Active:                 p.Active,
		CurrentTerm:            p.CurrentTerm,
		Comments:               p.Comments,
		AuditResponse:          toAuditResponse(p.Audit),
	}
}

// PhoneRequest is the body for phone writes.
type PhoneRequest struct {
	PhoneType   string  `json:"phoneType" validate:"required,max=12"`
	PhoneNumber string  `json:"phoneNumber" validate:"required,max=40"`
	ExtNumber   *string `json:"extNumber" validate:"omitempty,max=7"`
}

func (r *PhoneRequest) toInput() *usecase.PhoneInput {
	return &usecase.PhoneInput{PhoneType: r.PhoneType, PhoneNumber: r.PhoneNumber, ExtNumber: r.ExtNumber}
}

// AddressRequest is the body for address create and full update.
type AddressRequest struct {
	AddressType    *string        `json:"addressType" validate:"omitempty,max=12"`
	PrimaryAddress bool           `json:"primaryAddress"`
	MailFlag       bool           `json:"mailFlag"`
	FlatNumber     *string        `json:"flat" validate:"omitempty,max=30"`
	Property       *string        `json:"property" validate:"omitempty,max=130"`
	Street         *string        `json:"street" validate:"omitempty,max=160"`
	Area           *string        `json:"area" validate:"omitempty,max=70"`
	CityCode       *string        `json:"cityCode" validate:"omitempty,max=12"`
	CountyCode     *string        `json:"countyCode" validate:"omitempty,max=12"`
	PostCode       *string        `json:"postcode" validate:"omitempty,max=12"`
	CountryCode    *string        `json:"countryCode" validate:"omitempty,max=12"`
	NoFixedAddress bool           `json:"noFixedAddress"`
	StartDate      *string        `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate        *string        `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Comments       *string        `json:"comments" validate:"omitempty,max=240"`
	Verified       bool           `json:"verified"`
	PhoneNumbers   []PhoneRequest `json:"phoneNumbers" validate:"dive"`
}

func (r *AddressRequest) toInput() *usecase.AddressInput {
	phones := make([]usecase.PhoneInput, 0, len(r.PhoneNumbers))
	for i := range r.PhoneNumbers {
		phones = append(phones, *r.PhoneNumbers[i].toInput())
	}

	return &usecase.AddressInput{
		AddressType:    r.AddressType,
		PrimaryAddress: r.PrimaryAddress,
		MailFlag:       r.MailFlag,
		FlatNumber:     r.FlatNumber,
		Property:       r.Property,
		Street:         r.Street,
		Area:           r.Area,
		CityCode:       r.CityCode,
		CountyCode:     r.CountyCode,
		PostCode:       r.PostCode,
		CountryCode:    r.CountryCode,
		NoFixedAddress: r.NoFixedAddress,
		StartDate:      parseDate(r.StartDate),
		EndDate:        parseDate(r.EndDate),
		Comments:       r.Comments,
		Verified:       r.Verified,
		PhoneNumbers:   phones,
	}
}

// EmailRequest is the body for email writes.
type EmailRequest struct {
	EmailAddress string `json:"emailAddress" validate:"required,email,max=240"`
}

// IdentityRequest is the body for identity writes.
type IdentityRequest struct {
	IdentityType     string  `json:"identityType" validate:"required,max=12"`
	IdentityValue    string  `json:"identityValue" validate:"required,max=20"`
	IssuingAuthority *string `json:"issuingAuthority" validate:"omitempty,max=40"`
}

func (r *IdentityRequest) toInput() *usecase.IdentityInput {
	return &usecase.IdentityInput{IdentityType: r.IdentityType, IdentityValue: r.IdentityValue, IssuingAuthority: r.IssuingAuthority}
}

// RestrictionRequest is the body for restriction writes.
type RestrictionRequest struct {
	RestrictionType string  `json:"restrictionType" validate:"required,max=12"`
	StartDate       *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	ExpiryDate      *string `json:"expiryDate" validate:"omitempty,datetime=2006-01-02"`
	Comments        *string `json:"comments" validate:"omitempty,max=240"`
}

func (r *RestrictionRequest) toInput() *usecase.RestrictionInput {
	return &usecase.RestrictionInput{
		RestrictionType: r.RestrictionType,
		StartDate:       parseDate(r.StartDate),
		ExpiryDate:      parseDate(r.ExpiryDate),
		Comments:        r.Comments,
	}
}

// EmploymentRequest is the body for single employment writes.
type EmploymentRequest struct {
	OrganisationID int64 `json:"organisationId" validate:"required,gt=0"`
	IsActive       bool  `json:"isActive"`
}

// EmploymentUpdateRequest is one update within a batch.
type EmploymentUpdateRequest struct {
	EmploymentID   int64 `json:"employmentId" validate:"required,gt=0"`
	OrganisationID int64 `json:"organisationId" validate:"required,gt=0"`
	IsActive       bool  `json:"isActive"`
}

// PatchEmploymentsRequest is the batch body.
type PatchEmploymentsRequest struct {
	CreateEmployments []EmploymentRequest       `json:"createEmployments" validate:"dive"`
	UpdateEmployments []EmploymentUpdateRequest `json:"updateEmployments" validate:"dive"`
	DeleteEmployments []int64                   `json:"deleteEmployments" validate:"dive,gt=0"`
}

func (r *PatchEmploymentsRequest) toInput() *usecase.PatchEmploymentsInput {
	input := &usecase.PatchEmploymentsInput{Delete: r.DeleteEmployments}
	for _, c := range r.CreateEmployments {
		input.Create = append(input.Create, usecase.EmploymentInput{OrganisationID: c.OrganisationID, IsActive: c.IsActive})
	}
	for _, u := range r.UpdateEmployments {
		input.Update = append(input.Update, usecase.EmploymentUpdate{EmploymentID: u.EmploymentID, OrganisationID: u.OrganisationID, IsActive: u.IsActive})
	}

	return input
}

// RelationshipRequest describes a relationship to a prisoner.
type RelationshipRequest struct {
	PrisonerNumber         string  `json:"prisonerNumber" validate:"required,prisoner_number"`
	RelationshipType       string  `json:"relationshipType" validate:"required,oneof=S O"`
	RelationshipToPrisoner string  `json:"relationshipToPrisoner" validate:"required,max=12"`
	NextOfKin              bool    `json:"isNextOfKin"`
	EmergencyContact       bool    `json:"isEmergencyContact"`
	ApprovedVisitor        bool    `json:"isApprovedVisitor"`
	Comments               *string `json:"comments" validate:"omitempty,max=240"`
}

func (r *RelationshipRequest) toInput() usecase.RelationshipInput {
	return usecase.RelationshipInput{
		PrisonerNumber:         r.PrisonerNumber,
		RelationshipType:       r.RelationshipType,
		RelationshipToPrisoner: r.RelationshipToPrisoner,
		NextOfKin:              r.NextOfKin,
		EmergencyContact:       r.EmergencyContact,
		ApprovedVisitor:        r.ApprovedVisitor,
		Comments:               r.Comments,
	}
}

// CreateContactRequest is the body for contact creation.
type CreateContactRequest struct {
	TitleCode           *string              `json:"titleCode" validate:"omitempty,max=12"`
	LastName            string               `json:"lastName" validate:"required,max=35"`
	FirstName           string               `json:"firstName" validate:"required,max=35"`
	MiddleNames         *string              `json:"middleNames" validate:"omitempty,max=35"`
	DateOfBirth         *string              `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	LanguageCode        *string              `json:"languageCode" validate:"omitempty,max=12"`
	InterpreterRequired bool                 `json:"interpreterRequired"`
	GenderCode          *string              `json:"genderCode" validate:"omitempty,max=12"`
	IsStaff             bool                 `json:"isStaff"`
	Relationship        *RelationshipRequest `json:"relationship"`
}

func (r *CreateContactRequest) toInput() *usecase.CreateContactInput {
	input := &usecase.CreateContactInput{
		TitleCode:           r.TitleCode,
		LastName:            r.LastName,
		FirstName:           r.FirstName,
		MiddleNames:         r.MiddleNames,
		DateOfBirth:         parseDate(r.DateOfBirth),
		LanguageCode:        r.LanguageCode,
		InterpreterRequired: r.InterpreterRequired,
		GenderCode:          r.GenderCode,
		IsStaff:             r.IsStaff,
	}
	if r.Relationship != nil {
		relationship := r.Relationship.toInput()
		input.Relationship = &relationship
	}

	return input
}

// UpdateContactRequest patches a contact. Absent fields are unchanged.
type UpdateContactRequest struct {
	TitleCode           *string `json:"titleCode" validate:"omitempty,max=12"`
	LastName            *string `json:"lastName" validate:"omitempty,min=1,max=35"`
	FirstName           *string `json:"firstName" validate:"omitempty,min=1,max=35"`
	MiddleNames         *string `json:"middleNames" validate:"omitempty,max=35"`
	DateOfBirth         *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	LanguageCode        *string `json:"languageCode" validate:"omitempty,max=12"`
	InterpreterRequired *bool   `json:"interpreterRequired"`
	GenderCode          *string `json:"genderCode" validate:"omitempty,max=12"`
	IsStaff             *bool   `json:"isStaff"`
}

func (r *UpdateContactRequest) toInput() *usecase.UpdateContactInput {
	return &usecase.UpdateContactInput{
		TitleCode:           r.TitleCode,
		LastName:            r.LastName,
		FirstName:           r.FirstName,
		MiddleNames:         r.MiddleNames,
		DateOfBirth:         parseDate(r.DateOfBirth),
		LanguageCode:        r.LanguageCode,
		InterpreterRequired: r.InterpreterRequired,
		GenderCode:          r.GenderCode,
		IsStaff:             r.IsStaff,
	}
}

// UpdatePrisonerContactRequest patches a relationship. Absent fields are unchanged.
type UpdatePrisonerContactRequest struct {
	RelationshipType       *string `json:"relationshipType" validate:"omitempty,oneof=S O"`
	RelationshipToPrisoner *string `json:"relationshipToPrisoner" validate:"omitempty,max=12"`
	NextOfKin              *bool   `json:"isNextOfKin"`
	EmergencyContact       *bool   `json:"isEmergencyContact"`
	ApprovedVisitor        *bool   `json:"isApprovedVisitor"`
	Active                 *bool   `json:"isActive"`
	CurrentTerm            *bool   `json:"currentTerm"`
	Comments               *string `json:"comments" validate:"omitempty,max=240"`
}

func (r *UpdatePrisonerContactRequest) toInput() *usecase.UpdatePrisonerContactInput {
	return &usecase.UpdatePrisonerContactInput{
		RelationshipType:       r.RelationshipType,
		RelationshipToPrisoner: r.RelationshipToPrisoner,
		NextOfKin:              r.NextOfKin,
		EmergencyContact:       r.EmergencyContact,
		ApprovedVisitor:        r.ApprovedVisitor,
		Active:                 r.Active,
		CurrentTerm:            r.CurrentTerm,
		Comments:               r.Comments,
	}
}

// ContactDetailsResponse is a contact with everything it owns.
type ContactDetailsResponse struct {
	*ContactResponse
	Addresses           []*AddressResponse    `json:"addresses"`
	MostRelevantAddress *AddressResponse      `json:"mostRelevantAddress,omitempty"`
	PhoneNumbers        []*PhoneResponse      `json:"phoneNumbers"`
	EmailAddresses      []*EmailResponse      `json:"emailAddresses"`
	Identities          []*IdentityResponse   `json:"identities"`
	Employments         []*EmploymentResponse `json:"employments"`
}

func toContactDetailsResponse(d *usecase.ContactDetails) *ContactDetailsResponse {
	resp := &ContactDetailsResponse{
		ContactResponse:     toContactResponse(d.Contact),
		Addresses:           make([]*AddressResponse, 0, len(d.Addresses)),
		MostRelevantAddress: toAddressResponse(d.MostRelevantAddress),
		PhoneNumbers:        make([]*PhoneResponse, 0, len(d.Phones)),
		EmailAddresses:      make([]*EmailResponse, 0, len(d.Emails)),
		Identities:          make([]*IdentityResponse, 0, len(d.Identities)),
		Employments:         toEmploymentResponses(d.Employments),
	}
	for _, a := range d.Addresses {
		resp.Addresses = append(resp.Addresses, toAddressResponse(a))
	}
	for _, p := range d.Phones {
		resp.PhoneNumbers = append(resp.PhoneNumbers, toPhoneResponse(p))
	}
	for _, e := range d.Emails {
		resp.EmailAddresses = append(resp.EmailAddresses, toEmailResponse(e))
	}
	for _, i := range d.Identities {
		resp.Identities = append(resp.Identities, toIdentityResponse(i))
	}

	return resp
}

// CreateContactResponse is the created contact and its optional relationship.
type CreateContactResponse struct {
	Contact      *ContactResponse         `json:"contact"`
	Relationship *PrisonerContactResponse `json:"relationship,omitempty"`
}

// ContactSummaryResponse is one search result.
type ContactSummaryResponse struct {
	*ContactResponse
	Address *AddressResponse `json:"mostRelevantAddress,omitempty"`
}

// SearchContactsResponse is one page of search results.
type SearchContactsResponse struct {
	Content       []*ContactSummaryResponse `json:"content"`
	TotalElements int64                     `json:"totalElements"`
	Page          int                       `json:"page"`
	Size          int                       `json:"size"`
}

func toSearchContactsResponse(out *usecase.SearchContactsOutput) *SearchContactsResponse {
	resp := &SearchContactsResponse{
		Content:       make([]*ContactSummaryResponse, 0, len(out.Items)),
		TotalElements: out.Total,
		Page:          out.Page,
		Size:          out.Size,
	}
	for _, item := range out.Items {
		resp.Content = append(resp.Content, &ContactSummaryResponse{
			ContactResponse: toContactResponse(item.Contact),
			Address:         toAddressResponse(item.Address),
		})
	}

	return resp
}

// PrisonerContactSummaryResponse is one row of a prisoner's contact list.
type PrisonerContactSummaryResponse struct {
	*PrisonerContactResponse
	LastName    string           `json:"lastName"`
	FirstName   string           `json:"firstName"`
	MiddleNames *string          `json:"middleNames,omitempty"`
	DateOfBirth *string          `json:"dateOfBirth,omitempty"`
	Address     *AddressResponse `json:"mostRelevantAddress,omitempty"`
}

func toPrisonerContactSummaryResponses(items []*usecase.PrisonerContactSummary) []*PrisonerContactSummaryResponse {
	out := make([]*PrisonerContactSummaryResponse, 0, len(items))
	for _, item := range items {
		row := &PrisonerContactSummaryResponse{
			PrisonerContactResponse: toPrisonerContactResponse(item.Relationship),
			Address:                 toAddressResponse(item.Address),
		}
		if item.Contact != nil {
			row.LastName = item.Contact.LastName
			row.FirstName = item.Contact.FirstName
			row.MiddleNames = item.Contact.MiddleNames
			row.DateOfBirth = formatDate(item.Contact.DateOfBirth)
		}
		out = append(out, row)
	}

	return out
}
