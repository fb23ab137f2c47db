package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"marhaba_app_echo/internal/i18n"
	"marhaba_app_echo/internal/logger"
	"marhaba_app_echo/internal/services"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error    string            `json:"error,omitempty"`
	Message  string            `json:"message,omitempty"`
	Errors   map[string]string `json:"errors,omitempty"`
	Redirect string            `json:"redirect,omitempty"`
}

// NewErrorHandler returns an echo error handler that renders service and
// HTTP errors as JSON localized in the request language.
func NewErrorHandler(tr *i18n.Translator) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		lang := Lang(c)
		code, resp := classify(err)
		if !tr.Has(resp.Error) && resp.Errors == nil {
			resp.Error = defaultKey(code)
		}
		if resp.Errors != nil {
			localized := make(map[string]string, len(resp.Errors))
			for field, key := range resp.Errors {
				localized[field] = tr.T(lang, key, nil)
			}
			resp.Errors = localized
		} else {
			resp.Message = tr.T(lang, resp.Error, nil)
		}

		log := logger.FromEcho(c)
		if code >= http.StatusInternalServerError {
			log.Error("Request failed", zap.Int("status", code), zap.Error(err))
		} else {
			log.Debug("Request rejected", zap.Int("status", code), zap.Error(err))
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, resp)
		}
		if writeErr != nil {
			log.Error("Failed to write error response", zap.Error(writeErr))
		}
	}
}

func classify(err error) (int, ErrorResponse) {
	var verr *services.ValidationError
	var he *echo.HTTPError

	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, ErrorResponse{Errors: verr.Fields}
	case errors.Is(err, services.ErrAuthRequired):
		return http.StatusUnauthorized, ErrorResponse{Error: "loginToBook", Redirect: "/login"}
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: "notFound"}
	case errors.Is(err, services.ErrForbidden):
		return http.StatusForbidden, ErrorResponse{Error: "forbidden"}
	case errors.Is(err, services.ErrEmailExists):
		return http.StatusConflict, ErrorResponse{Error: "emailExists"}
	case errors.Is(err, services.ErrInvalidTransition):
		return http.StatusConflict, ErrorResponse{Error: "invalidTransition"}
	case errors.Is(err, services.ErrAlreadyAnswered):
		return http.StatusConflict, ErrorResponse{Error: "alreadyAnswered"}
	case errors.Is(err, services.ErrConfirmationRequired):
		return http.StatusBadRequest, ErrorResponse{Error: "confirmDeleteOffer"}
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout, ErrorResponse{Error: "serverError"}
	case errors.As(err, &he):
		key, ok := he.Message.(string)
		if !ok || key == "" {
			key = defaultKey(he.Code)
		}
		return he.Code, ErrorResponse{Error: key}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: "serverError"}
	}
}

func defaultKey(code int) string {
	switch code {
	case http.StatusNotFound:
		return "notFound"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusUnauthorized:
		return "loginRequired"
	}
	if code < http.StatusInternalServerError {
		return "badRequest"
	}
	return "serverError"
}
