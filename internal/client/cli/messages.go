package cli

import (
	"errors"

	"github.com/dmitrijs2005/gophauth/internal/common"
)

// alert formats a titled message the way the screens show them.
func alert(title, msg string) string {
	return title + ": " + msg
}

// errorAlert maps a flow error to the text shown to the user. requiredMsg
// differs between the login and register screens.
func errorAlert(err error, requiredMsg string) string {
	switch {
	case errors.Is(err, common.ErrRequiredField):
		return alert("Attention", requiredMsg)
	case errors.Is(err, common.ErrPasswordMismatch):
		return alert("Error", "Passwords do not match")
	case errors.Is(err, common.ErrUnknownUser):
		return alert("Error", "Username does not exist!")
	case errors.Is(err, common.ErrInvalidCredentials):
		return alert("Error", "Incorrect password")
	case errors.Is(err, common.ErrDuplicateUsername):
		return alert("Error", "Username already exists.")
	case errors.Is(err, common.ErrAlreadyAuthenticated):
		return alert("Attention", "You are already logged in. Log out first.")
	default:
		return alert("Error", "Something went wrong, please try again.")
	}
}
