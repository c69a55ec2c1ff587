package login

import (
	"net/url"
	"strings"

	"github.com/gojira/gojira/internal/web/handler/dashboard"
)

// SafeNext returns next if following it keeps the user on this site, and the
// dashboard path otherwise. Relative paths must start with a single slash;
// absolute URLs must use http(s) and the host of siteURL.
func SafeNext(next, siteURL string) string {
	if next == "" || strings.ContainsAny(next, "\\\r\n") {
		return dashboard.Path
	}

	u, err := url.Parse(next)
	if err != nil {
		return dashboard.Path
	}

	if u.Scheme == "" && u.Host == "" {
		if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
			return next
		}

		return dashboard.Path
	}

	site, err := url.Parse(siteURL)
	if err != nil || site.Host == "" {
		return dashboard.Path
	}

	if (u.Scheme == "http" || u.Scheme == "https") && strings.EqualFold(u.Host, site.Host) {
		return next
	}

	return dashboard.Path
}
