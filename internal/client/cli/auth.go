package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/carswipe/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for email, display name and password and creates an
// account. The server generates the account's key pair.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	displayName, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.authService.Register(ctx, email, displayName, password); err != nil {
		return err
	}

	a.printf("Success! You can log in now.\n")
	return nil
}

// Login prompts for credentials, authenticates and unseals the key pair.
// A previous session is logged out first.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	sess, h, err := a.authService.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("login unsuccessful: %w", err)
	}

	a.Logout(ctx)

	a.mu.Lock()
	a.session, a.handle = sess, h
	a.mu.Unlock()

	a.setMode(ModeOnline)
	a.printf("Logged in as %s\n", sess.DisplayName)
	return nil
}

// Logout wipes the session key handle.
func (a *App) Logout(ctx context.Context) {
	a.mu.Lock()
	h := a.handle
	a.session, a.handle = nil, nil
	a.mu.Unlock()

	if h != nil {
		a.authService.Logout(ctx, h)
	}
}
