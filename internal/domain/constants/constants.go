// Package constants holds configuration and authorization constants.
package constants

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
	PubSubProviderNone   = "none"
)

// Environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Roles carried in access tokens.
const (
	RoleContactsAdmin     = "ROLE_CONTACTS_ADMIN"
	RoleContactsMigration = "ROLE_CONTACTS_MIGRATION"
)
