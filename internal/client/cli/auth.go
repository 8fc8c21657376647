package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/loomworks/loomctl/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and submits them. On a rejected submission
// the user gets a message matched to the failure kind (wrong password versus
// unreachable service) and the error is returned to the caller; profile
// resolution after an accepted login is handed to the session engine and
// never fails the command.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	inline, err := a.client.Login(ctx, userName, string(password))
	if err != nil {
		switch session.Classify(err) {
		case session.KindAuth:
			printlnFn("Invalid username or password.")
		case session.KindNetwork:
			printlnFn("Cannot reach the server. Check your connection and try again.")
		default:
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	if err := a.session.CompleteLogin(ctx, inline); err != nil {
		printlnFn("Login could not be completed:", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", a.store.Snapshot().User.DisplayName()))
	return nil
}

// Logout clears the session. Local state is cleared even when the server
// call fails, so this command never leaves the client stuck signed in.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	printlnFn("Signed out.")
	return nil
}

// WhoAmI prints the profile of the current session.
func (a *App) WhoAmI(ctx context.Context) error {
	snap := a.store.Snapshot()
	if !snap.Authenticated {
		printlnFn("Not signed in.")
		return nil
	}
	if snap.User == nil {
		printlnFn("Signed in, but the profile is not loaded yet. Try again shortly.")
		return nil
	}

	u := snap.User
	printlnFn("Name:        " + u.DisplayName())
	printlnFn("Username:    " + u.Username)
	if u.Email != "" {
		printlnFn("Email:       " + u.Email)
	}
	printlnFn(fmt.Sprintf("Credits:     %d", u.Credits))
	printlnFn("Member since " + u.CreatedAt.Format("2006-01-02"))
	if u.LastLogin != nil {
		printlnFn("Last login:  " + u.LastLogin.Format("2006-01-02 15:04"))
	}
	return nil
}

// Status prints the session state and last known connectivity.
func (a *App) Status(ctx context.Context) error {
	snap := a.store.Snapshot()
	switch {
	case snap.Loading:
		printlnFn("Session: checking...")
	case snap.Authenticated:
		printlnFn("Session: signed in as " + snap.User.DisplayName())
	default:
		printlnFn("Session: signed out")
	}
	printlnFn("Service: " + string(a.mode))
	return nil
}
