package entity

// Relationship types of a prisoner contact.
const (
	RelationshipTypeSocial   = "S"
	RelationshipTypeOfficial = "O"
)

// PrisonerContact links a contact to a prisoner identified by an external prisoner number.
type PrisonerContact struct {
	ID                     int64
	ContactID              int64
	PrisonerNumber         string
	RelationshipType       string
	RelationshipToPrisoner string
	NextOfKin              bool
	EmergencyContact       bool
	ApprovedVisitor        bool
	Active                 bool
	CurrentTerm            bool
	Comments               *string
	Audit
}
