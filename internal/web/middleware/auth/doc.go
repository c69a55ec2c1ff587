// Package auth provides the session loading middleware for the web application.
//
// The middleware reads the session cookie, loads the session data, reloads the
// account from the database on every request and exposes the current user and
// the session in fiber.Locals under view.LocalsIdentity
// and view.LocalsSession. It never redirects: whether a page needs a login or
// staff access is declared on the page's view.
//
// Usage:
//
//	app.Use(authmiddleware.New(db))
package auth
