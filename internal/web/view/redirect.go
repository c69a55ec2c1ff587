package view

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// RedirectFieldName is the query parameter carrying the post-login target.
const RedirectFieldName = "next"

// ResolveRedirectTarget returns the URL the login page should send the user
// back to.
//
// A non-empty explicit path is returned unchanged. Otherwise the request's
// absolute URL is used, reduced to its full path when the login URL shares the
// request's scheme and host. An empty scheme or host on the login URL matches
// anything.
func ResolveRedirectTarget(loginURL string, req Request, explicit string) string {
	if explicit != "" {
		return explicit
	}

	path := req.AbsoluteURL

	loginScheme, loginHost := schemeAndHost(loginURL)
	currentScheme, currentHost := schemeAndHost(path)

	if (loginScheme == "" || loginScheme == currentScheme) &&
		(loginHost == "" || loginHost == currentHost) {
		path = req.FullPath
	}

	return path
}

// schemeAndHost returns the scheme and network location of raw. An unparsable
// value has neither.
func schemeAndHost(raw string) (scheme, host string) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", ""
	}

	return u.Scheme, u.Host
}

// LoginRedirectURL appends field=next to the query of loginURL. Existing query
// parameters of loginURL are kept. An empty field leaves loginURL untouched.
func LoginRedirectURL(loginURL, next, field string) (string, error) {
	u, err := url.Parse(loginURL)
	if err != nil {
		return "", err
	}

	if field != "" {
		q := u.Query()
		q.Set(field, next)
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

// RedirectToLogin answers with a 302 to the login page carrying the post-login
// target of the current request, or path when it is not empty.
func RedirectToLogin(c *fiber.Ctx, loginURL, path string) error {
	next := ResolveRedirectTarget(loginURL, RequestFromCtx(c), path)

	target, err := LoginRedirectURL(loginURL, next, RedirectFieldName)
	if err != nil {
		return err
	}

	return c.Redirect(target, fiber.StatusFound)
}
