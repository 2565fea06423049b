package entity

// ReferenceGroup names a family of coded values.
type ReferenceGroup string

// Reference code groups validated by the service.
const (
	GroupAddressType          ReferenceGroup = "ADDRESS_TYPE"
	GroupPhoneType            ReferenceGroup = "PHONE_TYPE"
	GroupRestriction          ReferenceGroup = "RESTRICTION"
	GroupIdentityType         ReferenceGroup = "ID_TYPE"
	GroupTitle                ReferenceGroup = "TITLE"
	GroupGender               ReferenceGroup = "GENDER"
	GroupLanguage             ReferenceGroup = "LANGUAGE"
	GroupSocialRelationship   ReferenceGroup = "SOCIAL_RELATIONSHIP"
	GroupOfficialRelationship ReferenceGroup = "OFFICIAL_RELATIONSHIP"
	GroupCity                 ReferenceGroup = "CITY"
	GroupCounty               ReferenceGroup = "COUNTY"
	GroupCountry              ReferenceGroup = "COUNTRY"
)

// ReferenceCode is one coded value within a group.
type ReferenceCode struct {
	ID           int64
	Group        ReferenceGroup
	Code         string
	Description  string
	DisplayOrder int
	IsActive     bool
}

// RelationshipGroup returns the reference group validating a relationship of the given type.
func RelationshipGroup(relationshipType string) ReferenceGroup {
	if relationshipType == RelationshipTypeOfficial {
		return GroupOfficialRelationship
	}

	return GroupSocialRelationship
}
