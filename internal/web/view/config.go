package view

// Config holds the per-view access flags. It is set when the view is
// declared and read (never written) while dispatching.
type Config struct {
	// LoginRequired redirects anonymous requests to the login page.
	LoginRequired bool
	// StaffOnly answers 403 to authenticated non-staff identities.
	// It implies LoginRequired.
	StaffOnly bool
	// RequireFeatureAccess names a feature flag for views layered on top.
	// Decide ignores it.
	RequireFeatureAccess string
}

// EffectiveLoginRequired reports whether the login check applies.
func (c Config) EffectiveLoginRequired() bool {
	return c.LoginRequired || c.StaffOnly
}
