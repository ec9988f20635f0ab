package commands

import (
	"errors"

	"cardmarket/internal/pkg/errs"
	"cardmarket/internal/pkg/guard"
)

var ErrLoginIntermediaryCommandIsNotConstructed = errors.New(
	"LoginIntermediaryCommand must be created via NewLoginIntermediaryCommand constructor",
)

// LoginIntermediaryCommand exchanges intermediary credentials for a bearer
// token.
type LoginIntermediaryCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginIntermediaryCommand creates a validated login command.
func NewLoginIntermediaryCommand(email, password string) (LoginIntermediaryCommand, error) {
	if email == "" {
		return LoginIntermediaryCommand{}, errs.NewValueIsRequiredError("email")
	}
	if password == "" {
		return LoginIntermediaryCommand{}, errs.NewValueIsRequiredError("password")
	}

	return LoginIntermediaryCommand{
		email:    email,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginIntermediaryCommand) Validate() error {
	return c.guard.Validate(ErrLoginIntermediaryCommandIsNotConstructed)
}

// Email returns the login address.
func (c LoginIntermediaryCommand) Email() string {
	return c.email
}

// Password returns the plaintext password for verification.
func (c LoginIntermediaryCommand) Password() string {
	return c.password
}
