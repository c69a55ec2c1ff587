// Package auth authenticates local user accounts.
//
// Accounts live in the application database with Argon2id hashed passwords.
// Besides authentication the LocalProvider manages the two capabilities the
// views care about: staff membership (access to staff only pages) and the
// premium flag copied into the session at login.
//
// Example usage:
//
//	provider := auth.NewLocalProvider(db)
//	user, err := provider.Authenticate("alice", "secret")
//	if errors.Is(err, auth.ErrInvalidPassword) {
//	    // render the login form again
//	}
package auth
