package view

import "errors"

var (
	// ErrBadRequest signals a malformed request. Handlers built on views may
	// return it (wrapped or not); the application error handler answers 400.
	ErrBadRequest = errors.New("bad request")

	// ErrForbidden signals a request the current identity may not perform.
	// The application error handler answers 403.
	ErrForbidden = errors.New("forbidden")

	// ErrNotImplemented is returned by a RedirectView without a GET handler.
	ErrNotImplemented = errors.New("view: GET handler not implemented")
)
