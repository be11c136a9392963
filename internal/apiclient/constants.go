package apiclient

const (
	headerContentType = "Content-Type"
	headerAccept      = "Accept"
	headerRequestID   = "X-Request-ID"
	contentTypeJSON   = "application/json"

	// errorBodyLimit caps how much of a failed response body is kept on TransportError.
	errorBodyLimit = 512
)
