package http

import (
	"errors"
	"net/http"

	"scheduling/internal/core/domain/services"
	"scheduling/internal/generated/servers"
	"scheduling/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// fail writes the response for a handler error. Business errors keep their message; anything
// else is logged and reported as a bare 500.
func (s *Server) fail(ctx echo.Context, err error) error {
	var violation *services.PolicyViolationError
	if errors.As(err, &violation) {
		return ctx.JSON(http.StatusUnprocessableEntity, servers.PolicyViolation{
			Code:    http.StatusUnprocessableEntity,
			Kind:    string(errs.KindPolicyViolation),
			Message: err.Error(),
			Verdict: verdictToAPI(violation.Verdict),
		})
	}

	kind := errs.KindOf(err)
	status := statusOf(kind)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		return ctx.JSON(status, servers.Error{
			Code:    status,
			Kind:    kindPtr(errs.KindInternal),
			Message: "Internal server error",
		})
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Kind:    kindPtr(kind),
		Message: err.Error(),
	})
}

func statusOf(kind errs.Kind) int {
	switch kind {
	case errs.KindUnauthorized:
		return http.StatusForbidden
	case errs.KindNotFound:
		return http.StatusNotFound
	case errs.KindConflictingProposal, errs.KindInvalidTransition, errs.KindInvalidOrderState:
		return http.StatusConflict
	case errs.KindPolicyViolation:
		return http.StatusUnprocessableEntity
	case errs.KindValueIsRequired, errs.KindValueIsInvalid, errs.KindValueIsOutOfRange:
		return http.StatusBadRequest
	case errs.KindInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func kindPtr(kind errs.Kind) *string {
	s := string(kind)
	return &s
}
