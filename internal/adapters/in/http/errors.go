package http

import (
	"errors"
	"log/slog"
	"net/http"

	"watertanker/internal/core/application/auth"
	"watertanker/internal/core/application/usecases/commands"
	"watertanker/internal/core/domain/model/order"
	"watertanker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps an application error to an HTTP status. Internal errors
// are logged and never leak details to the client.
func (s *Server) respondError(ctx echo.Context, err error) error {
	status := statusFor(err)

	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		return ctx.JSON(status, errorResponse{
			Code:    status,
			Message: "Internal server error",
		})
	}

	return ctx.JSON(status, errorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, commands.ErrOrderIsNotDelivered),
		errors.Is(err, order.ErrChargeIsNotSet):
		return http.StatusPreconditionFailed
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrDriverIsNotActive):
		return http.StatusBadRequest
	case errors.Is(err, commands.ErrOrderDoesNotBelongToCustomer):
		return http.StatusForbidden
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrTokenInvalid),
		errors.Is(err, auth.ErrTokenKindMismatch),
		errors.Is(err, auth.ErrTokenRevoked):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
