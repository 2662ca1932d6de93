package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderAuthorization  = "Authorization"
	HeaderXRequestID     = "X-Request-ID"
	HeaderAcceptLanguage = "Accept-Language"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"
	ContextKeyLocale    = "locale"

	// Roles
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleGuest  = "guest"

	// Database table names
	TableAreas    = "areas"
	TableBoulders = "boulders"
	TableAudits   = "audits"

	// Auditable and associated type names
	AuditableBoulder = "Boulder"
	AssociatedImport = "Import"
)
