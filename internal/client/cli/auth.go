package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

// Register runs the Register screen: username, password and confirmation.
// On success the user is logged in and the Home screen is shown.
func (a *App) Register(ctx context.Context) error {
	a.screen = ScreenRegister

	userName, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirm, err := getPassword(a.reader, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if err := a.authService.Register(ctx, userName, string(password), string(confirm)); err != nil {
		a.logger.Debug(ctx, "registration failed", "error", err)
		fmt.Fprintln(a.out, errorAlert(err, "Please enter all the fields."))
		return err
	}

	fmt.Fprintln(a.out, alert("Success", "Registration successful!"))
	return a.Home(ctx)
}

// Login runs the Login screen. On success the Home screen is shown.
func (a *App) Login(ctx context.Context) error {
	a.screen = ScreenLogin

	userName, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, "Password", a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Login(ctx, userName, string(password)); err != nil {
		a.logger.Debug(ctx, "login failed", "error", err)
		fmt.Fprintln(a.out, errorAlert(err, "Please enter both username and password"))
		return err
	}

	fmt.Fprintln(a.out, alert("Success", "Login successful"))
	return a.Home(ctx)
}

// Logout clears the session and returns to the Login screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, errorAlert(err, ""))
		return err
	}
	a.screen = ScreenLogin
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

// Home shows the Home screen for the current user, or the anonymous
// welcome when nobody is logged in.
func (a *App) Home(ctx context.Context) error {
	a.screen = ScreenHome

	user, ok := a.authService.CurrentUser()
	if !ok {
		fmt.Fprintln(a.out, "Welcome")
		fmt.Fprintln(a.out, "The main working screen")
		fmt.Fprintln(a.out, "Type 'login' to sign in.")
		return nil
	}

	fmt.Fprintf(a.out, "Welcome %s!\n", user)
	return nil
}

// Status prints the authentication state and where data is kept.
func (a *App) Status(ctx context.Context) error {
	id, err := a.authService.InstallationID(ctx)
	if err != nil {
		fmt.Fprintln(a.out, errorAlert(err, ""))
		return err
	}

	user, ok := a.authService.CurrentUser()
	if !ok {
		user = "-"
	}

	fmt.Fprintf(a.out, "State:        %s\n", a.authService.State())
	fmt.Fprintf(a.out, "User:         %s\n", user)
	fmt.Fprintf(a.out, "Database:     %s\n", a.config.DatabasePath)
	fmt.Fprintf(a.out, "Installation: %s\n", id)
	return nil
}
