package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cardmarket/internal/core/domain/model/purchase"
	"cardmarket/internal/core/domain/model/shipment"
	"cardmarket/internal/pkg/errs"
)

// statusFor maps domain and application errors onto HTTP status codes.
// Conflicting state (illegal transitions, attachment rules, lost optimistic
// locks) is 409; bad input is 400; everything unclassified is 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrVersionIsInvalid),
		errors.Is(err, shipment.ErrInvalidTransition),
		errors.Is(err, shipment.ErrHasAttachedPurchases),
		errors.Is(err, purchase.ErrAlreadyAssigned),
		errors.Is(err, purchase.ErrNotAttached):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the uniform error body for err.
func respondError(ctx echo.Context, err error) error {
	code := statusFor(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}
