package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/redmonkez12/courses-api/internal/user"
)

// UserInput holds the account fields collected from flags or the form.
type UserInput struct {
	FirstName    string
	LastName     string
	EmailAddress string
	Password     string
}

// Complete reports whether every field was given, so the form can be skipped.
func (in UserInput) Complete() bool {
	return in.FirstName != "" && in.LastName != "" && in.EmailAddress != "" && in.Password != ""
}

// Request converts the input into the body the API would receive.
func (in UserInput) Request() user.CreateRequest {
	trimmed := func(s string) *string {
		v := strings.TrimSpace(s)
		return &v
	}
	return user.CreateRequest{
		FirstName:    trimmed(in.FirstName),
		LastName:     trimmed(in.LastName),
		EmailAddress: trimmed(in.EmailAddress),
		Password:     &in.Password,
	}
}

func required(message string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(message)
		}
		return nil
	}
}

// RunUserForm asks for the missing account fields. Values already in in are
// used as defaults.
func RunUserForm(in UserInput) (UserInput, error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("First name").
				Value(&in.FirstName).
				Validate(required("A first name is required")),

			huh.NewInput().
				Title("Last name").
				Value(&in.LastName).
				Validate(required("A last name is required")),

			huh.NewInput().
				Title("Email address").
				Placeholder("joe@smith.com").
				Value(&in.EmailAddress).
				Validate(required("An email address is required")),

			huh.NewInput().
				Title("Password").
				EchoMode(huh.EchoModePassword).
				Value(&in.Password).
				Validate(required("A password is required")),
		),
	).WithTheme(huh.ThemeCatppuccin())

	if err := form.Run(); err != nil {
		return in, err
	}

	return in, nil
}
