package llm

import "errors"

var (
	// network fault, timeout, or backend-side failure
	ErrBackendUnavailable = errors.New("generation backend unavailable")

	// backend refused the request (auth, quota, malformed request)
	ErrBackendRejected = errors.New("generation backend rejected request")

	// backend answered but the reply was empty or unparseable
	ErrBackendMalformedResponse = errors.New("generation backend returned malformed response")
)
