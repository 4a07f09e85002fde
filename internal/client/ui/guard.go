package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/certkeeper/internal/client/client"
)

// CheckSession checks the stored session once. On success the application
// shell opens at the dashboard; on any failure the login view stays.
func (c *Console) CheckSession(ctx context.Context) bool {
	user, err := c.auth.CheckSession(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			c.log.Info(ctx, "no active session")
		} else {
			c.log.Warn(ctx, "session check failed", "error", err)
		}
		return false
	}
	c.activate(ctx, user)
	return true
}

// Login authenticates and, on success, opens the application shell the same
// way a successful check does. The error carries the backend's message.
func (c *Console) Login(ctx context.Context, username string, password []byte) error {
	if err := c.auth.Login(ctx, username, password); err != nil {
		c.log.Info(ctx, "login rejected", "user", username, "error", err)
		return err
	}
	c.activate(ctx, username)
	return nil
}

func (c *Console) Register(ctx context.Context, username string, password []byte) error {
	if err := c.auth.Register(ctx, username, password); err != nil {
		c.log.Info(ctx, "registration rejected", "user", username, "error", err)
		return err
	}
	c.toasts.Notify(SeveritySuccess, "Registered! Now login.")
	return nil
}

func (c *Console) activate(ctx context.Context, user string) {
	c.session.Activate(user)
	c.log.Info(ctx, "session active", "user", user, "admin", c.session.IsAdmin())
	c.screen.Print(fmt.Sprintf("Logged in as %s.", user))

	c.router.ShowSection(ctx, SectionDashboard)
	c.CheckNotifications(ctx)
}

// Logout tells the backend, then discards all local state whatever the
// backend said.
func (c *Console) Logout(ctx context.Context) {
	if err := c.auth.Logout(ctx); err != nil {
		c.log.Warn(ctx, "logout", "error", err)
	}

	c.router.Reset(ctx)
	for _, ch := range c.session.Reset() {
		ch.Destroy()
	}
	c.toasts.Clear()
	c.screen.Reset()
	c.drawStatic()

	c.log.Info(ctx, "logged out")
}
