// Package intermediary contains the Intermediary aggregate: the logistics
// partner that consolidates shipments between sellers and buyers.
package intermediary

import (
	"errors"

	"cardmarket/internal/core/domain/model/kernel"
	"cardmarket/internal/pkg/errs"
)

// ErrIntermediaryIsNotConstructed is returned when an Intermediary instance
// was not created through NewIntermediary or RestoreIntermediary.
var ErrIntermediaryIsNotConstructed = errors.New(
	"Intermediary must be created via NewIntermediary or RestoreIntermediary")

// Intermediary is the logistics partner operating a collection point. It acts
// as origin or destination of shipments; removing one cascades over the
// shipments that reference it.
type Intermediary struct {
	id           kernel.UUID
	name         string
	email        string
	city         string
	passwordHash string

	isConstructed bool
}

// NewIntermediary creates a validated Intermediary. Name, email and the
// password hash are required; email is where activation and lifecycle
// notifications go. The hash is produced by the caller, the aggregate never
// sees a plaintext password.
func NewIntermediary(id kernel.UUID, name, email, city, passwordHash string) (*Intermediary, error) {
	i := &Intermediary{isConstructed: true}

	if err := errors.Join(
		i.setID(id),
		i.setName(name),
		i.setEmail(email),
		i.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	i.city = city
	return i, nil
}

// RestoreIntermediary reconstructs an Intermediary from persistence.
func RestoreIntermediary(id kernel.UUID, name, email, city, passwordHash string) (*Intermediary, error) {
	return NewIntermediary(id, name, email, city, passwordHash)
}

// Validate ensures the Intermediary was created via a constructor.
func (i *Intermediary) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrIntermediaryIsNotConstructed
	}
	return nil
}

// IsEqual compares two intermediaries by identity.
func (i *Intermediary) IsEqual(other *Intermediary) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the intermediary identifier.
func (i *Intermediary) ID() kernel.UUID {
	return i.id
}

// Name returns the display name of the collection point.
func (i *Intermediary) Name() string {
	return i.name
}

// Email returns the notification address.
func (i *Intermediary) Email() string {
	return i.email
}

// City returns the city the collection point operates in.
func (i *Intermediary) City() string {
	return i.city
}

// PasswordHash returns the stored credential hash for login verification.
func (i *Intermediary) PasswordHash() string {
	return i.passwordHash
}

func (i *Intermediary) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Intermediary) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Intermediary) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	i.email = email
	return nil
}

func (i *Intermediary) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	i.passwordHash = hash
	return nil
}
