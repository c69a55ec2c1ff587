// Package view provides the base building blocks for server-rendered pages.
//
// Three kinds of views are offered on top of Fiber:
//   - DirectTemplateView renders a template with an ExtraContext merged in
//   - TemplateView gates a page behind login and/or staff capability
//   - RedirectView is a gated view whose GET must be supplied by the caller
//
// Gating is decided by Decide, which is pure and independent of Fiber. When a
// login is needed, ResolveRedirectTarget computes the "next" value handed to
// the login page. If the login page is served by the same origin as the
// request, the target is reduced to a relative path; otherwise the absolute
// URL is kept so an external login flow can bounce the user back.
//
// The current identity and session are expected in fiber.Locals under
// LocalsIdentity and LocalsSession, as placed there by the auth middleware.
package view
