package commands

import (
	"context"
	"errors"

	"cardmarket/internal/core/ports"
	"cardmarket/internal/pkg/errs"
)

// LoginIntermediaryCommandHandler verifies credentials and issues a bearer
// token. Unknown emails and wrong passwords both surface as
// errs.ErrUnauthorized so the response does not leak which part failed.
type LoginIntermediaryCommandHandler struct {
	uowFactory IntermediaryUoWFactory
	hasher     ports.PasswordHasher
	signer     ports.TokenSigner
}

// NewLoginIntermediaryCommandHandler creates a handler for intermediary login.
func NewLoginIntermediaryCommandHandler(
	uowFactory IntermediaryUoWFactory,
	hasher ports.PasswordHasher,
	signer ports.TokenSigner,
) LoginIntermediaryCommandHandler {
	return LoginIntermediaryCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		signer:     signer,
	}
}

// Handle processes the login command and returns the signed token.
func (h LoginIntermediaryCommandHandler) Handle(ctx context.Context, cmd LoginIntermediaryCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return "", err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	account, err := uow.IntermediaryRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return "", errs.NewUnauthorizedError("credentials")
	}
	if err != nil {
		return "", err
	}

	if err = uow.Commit(ctx); err != nil {
		return "", err
	}

	ok, err := h.hasher.Verify(cmd.Password(), account.PasswordHash())
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errs.NewUnauthorizedError("credentials")
	}

	return h.signer.Sign(account.ID())
}
