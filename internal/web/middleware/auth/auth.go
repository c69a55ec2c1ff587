package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	localauth "github.com/gojira/gojira/internal/auth"
	"github.com/gojira/gojira/internal/web/session"
	"github.com/gojira/gojira/internal/web/view"
)

// LocalsSessionID is the fiber.Locals key of the current session ID.
const LocalsSessionID = "SessionID"

// New returns a middleware that loads the session named by the session cookie,
// reloads its account from db and stores the user and session data in
// fiber.Locals for the views. Unknown or disabled accounts stay anonymous.
// Gating is done by the views.
func New(db *gorm.DB) fiber.Handler {
	provider := localauth.NewLocalProvider(db)

	return func(c *fiber.Ctx) error {
		if strings.HasPrefix(strings.ToLower(c.Path()), "/static") {
			return c.Next()
		}

		sessionID := c.Cookies(session.CookieName)
		if sessionID == "" {
			return c.Next()
		}

		sessData := new(session.Data)
		if err := sessData.Read(sessionID); err != nil {
			log.Debug().Err(err).Msg("ignoring unreadable session")

			return c.Next()
		}

		user, err := provider.GetUserByID(sessData.UserID)
		switch {
		case errors.Is(err, localauth.ErrUserNotFound):
			log.Debug().Uint64("user_id", sessData.UserID).Msg("session account no longer exists")

			return c.Next()
		case err != nil:
			return err
		}

		if !user.IsAuthenticated() {
			return c.Next()
		}

		c.Locals(view.LocalsIdentity, user)
		c.Locals(view.LocalsSession, sessData)
		c.Locals(LocalsSessionID, sessionID)

		return c.Next()
	}
}

// CurrentSession returns the session data loaded by the middleware, if any.
func CurrentSession(c *fiber.Ctx) (*session.Data, bool) {
	d, ok := c.Locals(view.LocalsSession).(*session.Data)

	return d, ok && d != nil
}
