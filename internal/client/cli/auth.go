package cli

import (
	"context"

	"github.com/dmitrijs2005/certkeeper/internal/client/ui"
	"github.com/dmitrijs2005/certkeeper/internal/common"
)

// getSimpleText, getTextDefault, getPassword and confirm are indirections
// used to facilitate testing. They point to interactive input helpers and
// can be swapped in tests.
var (
	getSimpleText  = GetSimpleText
	getTextDefault = GetTextDefault
	getPassword    = GetPassword
	confirm        = Confirm
)

// Register prompts for a user name and password and creates the account.
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.console.Register(ctx, userName, password); err != nil {
		printlnFn(ui.Message(err, "Registration failed."))
		return err
	}
	return nil
}

// Login prompts for credentials and opens the application shell on success.
// A rejection is reported with the backend's own message.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter user name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.console.Login(ctx, userName, password); err != nil {
		printlnFn(ui.Message(err, "Invalid Login"))
		return err
	}
	return nil
}

// Logout ends the session on the backend and forgets it locally.
func (a *App) Logout(ctx context.Context) error {
	a.console.Logout(ctx)
	printlnFn("Logged out.")
	return nil
}
