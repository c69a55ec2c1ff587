package view

import (
	"github.com/gofiber/fiber/v2"
)

const (
	// PremiumKey is the session key copied into every proceeding page context.
	PremiumKey = "premium"

	// StaffOnlyBody is the body of the 403 answered to non-staff identities.
	StaffOnlyBody = "Staff only!"
)

// Identity is the authenticated-user capability check.
type Identity interface {
	IsAuthenticated() bool
	IsStaff() bool
}

// Session is a read-only view of the per-user session store.
type Session interface {
	Get(key string) (any, bool)
}

// Anonymous is the identity of a request without a valid session.
type Anonymous struct{}

// IsAuthenticated always returns false.
func (Anonymous) IsAuthenticated() bool { return false }

// IsStaff always returns false.
func (Anonymous) IsStaff() bool { return false }

// EmptySession is a session without any values.
type EmptySession struct{}

// Get always reports a missing key.
func (EmptySession) Get(string) (any, bool) { return nil, false }

// Request carries everything dispatch needs to know about one request.
type Request struct {
	Identity Identity
	Session  Session
	// AbsoluteURL is scheme://host[:port]/path?query of the request.
	AbsoluteURL string
	// FullPath is /path?query of the request.
	FullPath string
}

// Outcome is the result of gating a request.
type Outcome int

const (
	// OutcomeProceed lets the page handler run.
	OutcomeProceed Outcome = iota
	// OutcomeRedirectToLogin sends the client to the login page.
	OutcomeRedirectToLogin
	// OutcomeForbidden answers 403 with StaffOnlyBody.
	OutcomeForbidden
)

// String returns the lower-case outcome name used in logs and metrics.
func (o Outcome) String() string {
	switch o {
	case OutcomeProceed:
		return "proceed"
	case OutcomeRedirectToLogin:
		return "redirect_to_login"
	case OutcomeForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// Decision is what Decide returns. Context is only set for OutcomeProceed.
type Decision struct {
	Outcome Outcome
	Context fiber.Map
}

// Decide gates req against cfg. The checks run in order and stop at the first
// failing one: login, then staff. A proceeding request gets the session's
// premium value in its context (nil if absent).
func Decide(cfg Config, req Request) Decision {
	id := req.Identity
	if id == nil {
		id = Anonymous{}
	}

	if cfg.EffectiveLoginRequired() && !id.IsAuthenticated() {
		return Decision{Outcome: OutcomeRedirectToLogin}
	}

	if cfg.StaffOnly && !id.IsStaff() {
		return Decision{Outcome: OutcomeForbidden}
	}

	sess := req.Session
	if sess == nil {
		sess = EmptySession{}
	}

	premium, _ := sess.Get(PremiumKey)

	return Decision{
		Outcome: OutcomeProceed,
		Context: fiber.Map{PremiumKey: premium},
	}
}
