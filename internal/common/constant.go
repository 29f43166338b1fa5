package common

const (
	// APIBasePath is the backend REST prefix all operations share.
	APIBasePath = "/api/v1"

	// AuthorizationHeader carries the bearer token on outbound requests.
	AuthorizationHeader = "Authorization"

	// BearerScheme prefixes the token value in the Authorization header.
	BearerScheme = "Bearer "

	// RequestIDHeader carries a per-call correlation id.
	RequestIDHeader = "X-Request-Id"

	// MinUsernameLength is the shortest username accepted for sign-in.
	MinUsernameLength = 3
)

// Keys under which the session is persisted in the local metadata store.
const (
	SessionTokenKey = "token"
	SessionUserKey  = "user"
)
