package cli

import (
	"context"
	"os"

	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/services"
)

// Register interactively collects account details and creates the account.
// On success the user is signed in immediately.
func (a *App) Register(ctx context.Context) error {
	userName, err := GetSimpleText(a.reader, "Choose a user name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := GetSimpleText(a.reader, "Email address", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout, "Choose a password")
	if err != nil {
		return err
	}

	user, err := a.session.Auth.Register(ctx, services.RegisterRequest{
		UserName: userName,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}
	printlnFn("Welcome, " + user.UserName)
	return nil
}

// Login interactively collects credentials and signs in.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Email address", os.Stdout)
	if err != nil {
		return err
	}
	password, err := GetPassword(os.Stdout, "Password")
	if err != nil {
		return err
	}

	user, err := a.session.Auth.Login(ctx, services.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}
	printlnFn("Signed in as " + user.UserName)
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	a.session.Auth.Logout(ctx)
	printlnFn("Signed out")
	return nil
}

// WhoAmI prints the locally cached identity without a network call.
func (a *App) WhoAmI(ctx context.Context) error {
	u, ok := a.session.Auth.CurrentUser(ctx)
	if !ok {
		printlnFn("not signed in")
		return nil
	}
	printlnFn(u.UserName + " <" + u.Email + ">")
	return nil
}
