package commands

import (
	"errors"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/errs"
	"cardmarket/internal/pkg/guard"
)

var ErrRegisterIntermediaryCommandIsNotConstructed = errors.New(
	"RegisterIntermediaryCommand must be created via NewRegisterIntermediaryCommand constructor",
)

const minPasswordLength = 8

// RegisterIntermediaryCommand creates an intermediary account. The plaintext
// password only lives inside the command; the handler stores a hash.
type RegisterIntermediaryCommand struct { //nolint:recvcheck //using for validation
	intermediaryID kernel.UUID
	name           string
	email          string
	city           string
	password       string

	guard guard.ConstructorGuard
}

// NewRegisterIntermediaryCommand creates a validated registration command.
func NewRegisterIntermediaryCommand(
	intermediaryID kernel.UUID,
	name, email, city, password string,
) (RegisterIntermediaryCommand, error) {
	if err := intermediaryID.Validate(); err != nil {
		return RegisterIntermediaryCommand{}, err
	}
	if name == "" {
		return RegisterIntermediaryCommand{}, errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return RegisterIntermediaryCommand{}, errs.NewValueIsRequiredError("email")
	}
	if len(password) < minPasswordLength {
		return RegisterIntermediaryCommand{}, errs.NewValueIsInvalidError("password")
	}

	return RegisterIntermediaryCommand{
		intermediaryID: intermediaryID,
		name:           name,
		email:          email,
		city:           city,
		password:       password,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterIntermediaryCommand) Validate() error {
	return c.guard.Validate(ErrRegisterIntermediaryCommandIsNotConstructed)
}

// IntermediaryID returns the identifier of the account to create.
func (c RegisterIntermediaryCommand) IntermediaryID() kernel.UUID {
	return c.intermediaryID
}

// Name returns the display name.
func (c RegisterIntermediaryCommand) Name() string {
	return c.name
}

// Email returns the login and notification address.
func (c RegisterIntermediaryCommand) Email() string {
	return c.email
}

// City returns the optional city.
func (c RegisterIntermediaryCommand) City() string {
	return c.city
}

// Password returns the plaintext password for hashing.
func (c RegisterIntermediaryCommand) Password() string {
	return c.password
}
