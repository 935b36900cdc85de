package cli

import (
	"context"
	"fmt"

	"github.com/tzpay/payconsole/internal/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and establishes a session. On failure the
// normalized message from the gateway is shown and any prior session is
// left as it was.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}

	user, err := a.session.Login(ctx, username, password)
	if err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Welcome back, %s!\n", user.Username)
	return nil
}

// Register walks the registration form: account fields, then the business
// profile. Field rules are checked locally first so invalid input never
// reaches the network; on success a session is established immediately.
func (a *App) Register(ctx context.Context) error {
	var req models.RegisterRequest
	var err error

	if req.Username, err = getSimpleText(a.reader, "Choose a username", a.out); err != nil {
		return err
	}
	if req.Email, err = getSimpleText(a.reader, "Account email", a.out); err != nil {
		return err
	}
	if req.Password, err = getPassword(a.out, "Choose a password"); err != nil {
		return err
	}
	confirm, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	if req.Business.Name, err = getSimpleText(a.reader, "Business name", a.out); err != nil {
		return err
	}
	if req.Business.Email, err = getSimpleText(a.reader, "Business email", a.out); err != nil {
		return err
	}
	if req.Business.Phone, err = getSimpleText(a.reader, "Business phone", a.out); err != nil {
		return err
	}
	if req.Business.Address, err = getSimpleText(a.reader, "Business address", a.out); err != nil {
		return err
	}
	if req.Business.BusinessRegNumber, err = getSimpleText(a.reader, "Business registration number", a.out); err != nil {
		return err
	}

	if err := validateRegistration(req, confirm); err != nil {
		fmt.Fprintf(a.out, "Invalid input: %s\n", err)
		return err
	}

	user, err := a.session.Register(ctx, req)
	if err != nil {
		fmt.Fprintf(a.out, "Registration failed: %s\n", err)
		return err
	}

	fmt.Fprintf(a.out, "Account created. Welcome, %s!\n", user.Username)
	return nil
}

// Logout drops the session locally. It cannot fail.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
