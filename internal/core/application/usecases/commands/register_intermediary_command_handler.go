package commands

import (
	"context"

	"cardmarket/internal/core/domain/model/intermediary"
	"cardmarket/internal/core/ports"
)

// RegisterIntermediaryCommandHandler creates intermediary accounts. The
// password is hashed before the aggregate is built, so plaintext never
// reaches the domain or the store.
type RegisterIntermediaryCommandHandler struct {
	uowFactory IntermediaryUoWFactory
	hasher     ports.PasswordHasher
}

// NewRegisterIntermediaryCommandHandler creates a handler for registration.
func NewRegisterIntermediaryCommandHandler(uowFactory IntermediaryUoWFactory, hasher ports.PasswordHasher) RegisterIntermediaryCommandHandler {
	return RegisterIntermediaryCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the registration command.
func (h RegisterIntermediaryCommandHandler) Handle(ctx context.Context, cmd RegisterIntermediaryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	aggregate, err := intermediary.NewIntermediary(cmd.IntermediaryID(), cmd.Name(), cmd.Email(), cmd.City(), hash)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.IntermediaryRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
