package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/photocards/internal/client/models"
	"github.com/dmitrijs2005/photocards/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

// Register prompts for the account fields, creates the account and signs
// the new user in.
func (a *App) Register(ctx context.Context) error {
	if _, err := a.nav.Go(ScreenRegister); err != nil {
		return err
	}

	var reg models.Registration
	var err error

	if reg.Username, err = getSimpleText(a.reader, "Enter username", a.out); err != nil {
		return err
	}
	if reg.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	reg.Password = string(password)

	if reg.Name, err = GetOptionalText(a.reader, "Enter first name (optional)", "", a.out); err != nil {
		return err
	}
	if reg.Surname, err = GetOptionalText(a.reader, "Enter surname (optional)", "", a.out); err != nil {
		return err
	}
	if reg.Bio, err = GetOptionalText(a.reader, "Tell us about yourself (optional)", "", a.out); err != nil {
		return err
	}
	if reg.Age, err = GetNumber(a.reader, "Enter age", 0, a.out); err != nil {
		return err
	}

	u, err := a.auth.Register(ctx, reg)
	if err != nil {
		return err
	}

	a.println(fmt.Sprintf("Welcome, %s! Your account has been created.", u.DisplayName()))
	return a.Listings(ctx)
}

// Login prompts for credentials, signs in and shows the listings.
func (a *App) Login(ctx context.Context) error {
	if err := a.login(ctx); err != nil {
		return err
	}
	return a.Listings(ctx)
}

func (a *App) login(ctx context.Context) error {
	if _, err := a.nav.Go(ScreenLogin); err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.auth.Login(ctx, models.Credentials{Email: email, Password: string(password)})
	if err != nil {
		return err
	}

	a.println("Logged in as", u.Username)
	return nil
}

// Logout clears the session. Protected screens are left by the navigator.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Not logged in.")
		return nil
	}
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.println("Logged out.")
	return nil
}

func (a *App) WhoAmI(context.Context) error {
	u, ok := a.sessions.CurrentUser()
	if !ok {
		a.println("Not logged in.")
		return nil
	}
	a.println(fmt.Sprintf("%s <%s> (id %d)", u.Username, u.Email, u.ID))
	return nil
}
