package httputil

import (
	"context"
	"errors"
	"net/http"

	"trackerMobility/internal/shared/auth"
	"trackerMobility/internal/shared/outcome"
	"trackerMobility/internal/shared/validation"
)

// HTTPErrorInfo contains the HTTP status code and message for an error.
type HTTPErrorInfo struct {
	Status  int
	Message string
}

// ErrorMapping represents a single error to HTTP status/message mapping.
type ErrorMapping struct {
	Error   error
	Status  int
	Message string
}

// ErrorMapper maps errors raised before a use-case runs (binding, auth,
// command validation) to HTTP status codes and messages.
type ErrorMapper struct {
	mappings       []ErrorMapping
	defaultStatus  int
	defaultMessage string
}

func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{
		mappings:       make([]ErrorMapping, 0),
		defaultStatus:  http.StatusInternalServerError,
		defaultMessage: "Error interno",
	}
}

// DefaultErrorMapper knows the errors shared by every module.
func DefaultErrorMapper() *ErrorMapper {
	return NewErrorMapper().
		WithMapping(ErrMalformedBody, http.StatusBadRequest, "Cuerpo de la solicitud inválido").
		WithMapping(validation.ErrInvalidCommand, http.StatusBadRequest, "Datos inválidos").
		WithMapping(auth.ErrMissingToken, http.StatusUnauthorized, "Token requerido").
		WithMapping(auth.ErrInvalidToken, http.StatusUnauthorized, "Token inválido")
}

// WithMapping adds an error mapping to the mapper.
func (m *ErrorMapper) WithMapping(err error, status int, message string) *ErrorMapper {
	m.mappings = append(m.mappings, ErrorMapping{
		Error:   err,
		Status:  status,
		Message: message,
	})
	return m
}

// WithDefault sets the default status and message for unmatched errors.
func (m *ErrorMapper) WithDefault(status int, message string) *ErrorMapper {
	m.defaultStatus = status
	m.defaultMessage = message
	return m
}

// Map converts an error to HTTP status and message.
func (m *ErrorMapper) Map(err error) HTTPErrorInfo {
	if err == nil {
		return HTTPErrorInfo{Status: http.StatusOK}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return HTTPErrorInfo{Status: http.StatusGatewayTimeout, Message: "Tiempo de espera agotado"}
	}
	if errors.Is(err, context.Canceled) {
		return HTTPErrorInfo{Status: http.StatusServiceUnavailable, Message: "Solicitud cancelada"}
	}
	for _, mapping := range m.mappings {
		if errors.Is(err, mapping.Error) {
			return HTTPErrorInfo{Status: mapping.Status, Message: mapping.Message}
		}
	}
	return HTTPErrorInfo{Status: m.defaultStatus, Message: m.defaultMessage}
}

// StatusForCode picks the HTTP status that carries an outcome code.
func StatusForCode(code outcome.Code) int {
	switch code {
	case outcome.CodeSuccess, outcome.CodeDeleted:
		return http.StatusOK
	case outcome.CodeNotFound:
		return http.StatusNotFound
	case outcome.CodeInvalidParams:
		return http.StatusBadRequest
	case outcome.CodeHTTPError:
		return http.StatusUnprocessableEntity
	case outcome.CodeNetworkError, outcome.CodeServerError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
