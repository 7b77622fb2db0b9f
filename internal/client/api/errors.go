package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/common"
)

// Kind classifies every failure the pipeline can surface. Callers never see
// a raw transport error: by the time an error crosses the package boundary it
// carries exactly one of these.
type Kind string

const (
	// KindValidation: rejected client-side, before any network call.
	KindValidation Kind = "validation"
	// KindUnauthorized: a 401 that could not be resolved by a refresh.
	KindUnauthorized Kind = "unauthorized"
	// KindBadRequest, KindNotFound, KindConflict: 4xx passed through with
	// the server-stated reason.
	KindBadRequest Kind = "bad_request"
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	// KindServer: 5xx, logged at pipeline level in addition to being surfaced.
	KindServer Kind = "server"
	// KindNetwork: no response received, transient retries exhausted.
	KindNetwork Kind = "network"
	// KindCanceled: the caller's context ended while waiting.
	KindCanceled Kind = "canceled"
)

// Error is the normalized failure envelope.
type Error struct {
	Kind    Kind
	Status  int    // HTTP status, 0 when no response was received
	Code    string // backend error code, if the server provided one
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("api: %s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("api: %s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Is lets errors.Is match the shared sentinels without callers depending on
// this package's Kind values.
func (e *Error) Is(target error) bool {
	switch target {
	case common.ErrorUnauthorized:
		return e.Kind == KindUnauthorized
	case common.ErrorNotFound:
		return e.Kind == KindNotFound
	case common.ErrorValidation:
		return e.Kind == KindValidation
	case common.ErrorInternal:
		return e.Kind == KindServer
	}
	return false
}

// serverFailure is the error body the backend returns alongside non-2xx
// statuses.
type serverFailure struct {
	Message string `json:"message"`
	Code    string `json:"code"`
}

// newStatusError classifies a server-returned status, carrying the server's
// message through when the body parses.
func newStatusError(status int, body []byte) *Error {
	var sf serverFailure
	_ = json.Unmarshal(body, &sf)
	if sf.Message == "" {
		sf.Message = http.StatusText(status)
	}

	kind := KindBadRequest
	switch {
	case status == http.StatusUnauthorized:
		kind = KindUnauthorized
	case status == http.StatusNotFound:
		kind = KindNotFound
	case status == http.StatusConflict:
		kind = KindConflict
	case status >= 500:
		kind = KindServer
	}
	return &Error{Kind: kind, Status: status, Code: sf.Code, Message: sf.Message}
}

func newNetworkError(err error) *Error {
	return &Error{Kind: KindNetwork, Message: err.Error(), cause: err}
}

func newCanceledError(err error) *Error {
	return &Error{Kind: KindCanceled, Message: "request canceled", cause: err}
}

// NewValidationError reports a caller-side rejection; nothing was sent.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}
