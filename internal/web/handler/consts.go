package handler

import "errors"

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path the route group.
	RootPath = "/"

	// RouterRootPath is the root of a route group registered with app.Route.
	RouterRootPath = "/"
)

// ErrNilACD is returned by Init if app, cfg or db is nil.
var ErrNilACD = errors.New("app, cfg or db is nil")
