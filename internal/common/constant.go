package common

const (
	// AuthorizationHeaderName is the HTTP header carrying the bearer token
	// on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName carries the client-generated request id, mirrored
	// into pipeline logs for correlation.
	RequestIDHeaderName = "X-Request-Id"
)
