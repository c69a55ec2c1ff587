package view

import (
	"github.com/gofiber/fiber/v2"
)

const (
	// LocalsIdentity is the fiber.Locals key holding the request's Identity.
	LocalsIdentity = "CurrentUser"

	// LocalsSession is the fiber.Locals key holding the request's Session.
	LocalsSession = "Session"
)

// RequestFromCtx builds the dispatch Request for c. A missing or mistyped
// identity is Anonymous and a missing session is empty.
func RequestFromCtx(c *fiber.Ctx) Request {
	req := Request{
		Identity:    Anonymous{},
		Session:     EmptySession{},
		AbsoluteURL: c.BaseURL() + c.OriginalURL(),
		FullPath:    c.OriginalURL(),
	}

	if id, ok := c.Locals(LocalsIdentity).(Identity); ok && id != nil {
		req.Identity = id
	}

	if sess, ok := c.Locals(LocalsSession).(Session); ok && sess != nil {
		req.Session = sess
	}

	return req
}
