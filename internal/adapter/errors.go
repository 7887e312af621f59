package adapter

import "errors"

// Sentinel errors mapped from HTTP response statuses by mapHTTPError.
// Callers match them with [errors.Is]; the server-supplied message, when
// present, travels alongside in [*APIError].
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
)
