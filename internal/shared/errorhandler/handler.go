package errorhandler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"trackerMobility/internal/shared/notification"
	"trackerMobility/internal/shared/outcome"
	"trackerMobility/internal/shared/transport"
)

const (
	defaultErrorDuration   = 5 * time.Second
	defaultWarningDuration = 4 * time.Second

	messageNotFound   = "No se encontró el recurso solicitado"
	messageServer     = "Error interno del servidor. Intente nuevamente más tarde."
	messageNetwork    = "No se pudo conectar con el servidor. Verifique su conexión a internet."
	messageUnexpected = "Ocurrió un error inesperado. Intente nuevamente."
	titleNotFound     = "No encontrado"
	titleServer       = "Error del servidor"
	titleHTTP         = "Error en la solicitud"
	titleNetwork      = "Error de conexión"
	titleUnexpected   = "Error inesperado"
)

// Handler classifies failures into outcome codes, notifies the user and logs
// a diagnostic entry carrying the action that failed.
type Handler struct {
	notifier        notification.Notifier
	logger          *slog.Logger
	errorDuration   time.Duration
	warningDuration time.Duration
}

// Option customizes a Handler.
type Option func(*Handler)

// WithDurations overrides how long error and warning toasts stay visible.
func WithDurations(errorDuration, warningDuration time.Duration) Option {
	return func(h *Handler) {
		if errorDuration > 0 {
			h.errorDuration = errorDuration
		}
		if warningDuration > 0 {
			h.warningDuration = warningDuration
		}
	}
}

func New(notifier notification.Notifier, logger *slog.Logger, opts ...Option) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	if notifier == nil {
		notifier = notification.LogNotifier{Logger: logger}
	}
	h := &Handler{
		notifier:        notifier,
		logger:          logger,
		errorDuration:   defaultErrorDuration,
		warningDuration: defaultWarningDuration,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle classifies err. action describes what was attempted, e.g.
// "obtener los reportes".
func (h *Handler) Handle(err error, action string) outcome.Result {
	var responseErr *transport.ResponseError
	var requestErr *transport.RequestError

	switch {
	case errors.As(err, &responseErr):
		return h.handleResponse(responseErr, action)
	case errors.As(err, &requestErr):
		h.logger.Error("upstream unreachable", slog.String("action", action), slog.String("method", requestErr.Method), slog.String("url", requestErr.URL), slog.Any("error", requestErr.Err))
		h.notifier.ShowError(messageNetwork, titleNetwork, h.errorDuration)
		return outcome.Result{Code: outcome.CodeNetworkError, Message: messageNetwork}
	default:
		h.logger.Error("unexpected use-case failure", slog.String("action", action), slog.Any("error", err))
		h.notifier.ShowError(messageUnexpected, titleUnexpected, h.errorDuration)
		return outcome.Result{Code: outcome.CodeUnknownError, Message: messageUnexpected}
	}
}

func (h *Handler) handleResponse(err *transport.ResponseError, action string) outcome.Result {
	switch {
	case err.Status == http.StatusNotFound:
		h.logger.Warn("upstream resource not found", slog.String("action", action), slog.String("url", err.URL))
		h.notifier.ShowWarning(messageNotFound, titleNotFound, h.warningDuration)
		return outcome.Result{Code: outcome.CodeNotFound, Message: messageNotFound}
	case err.Status >= http.StatusInternalServerError:
		message := serverMessage(err.Data)
		if message == "" {
			message = messageServer
		}
		h.logger.Error("upstream server error",
			slog.String("action", action),
			slog.Int("status", err.Status),
			slog.String("url", err.URL),
			slog.String("method", err.Method),
			slog.Any("payload", err.Payload),
			slog.Any("response", err.Data),
		)
		h.notifier.ShowError(message, titleServer, h.errorDuration)
		return outcome.Result{Code: outcome.CodeServerError, Message: message}
	default:
		message := serverMessage(err.Data)
		if message == "" {
			message = fmt.Sprintf("Error al %s", action)
		}
		h.logger.Warn("upstream rejected request", slog.String("action", action), slog.Int("status", err.Status), slog.String("url", err.URL), slog.String("message", message))
		h.notifier.ShowError(message, titleHTTP, h.errorDuration)
		return outcome.Result{Code: outcome.CodeHTTPError, Message: message}
	}
}

// serverMessage extracts a human message from an error body, checking
// "message" first and then "error".
func serverMessage(data any) string {
	body, ok := data.(map[string]any)
	if !ok {
		return ""
	}
	for _, key := range []string{"message", "error"} {
		switch value := body[key].(type) {
		case string:
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				return trimmed
			}
		case []any:
			parts := make([]string, 0, len(value))
			for _, item := range value {
				if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
					parts = append(parts, strings.TrimSpace(s))
				}
			}
			if len(parts) > 0 {
				return strings.Join(parts, "; ")
			}
		}
	}
	return ""
}

// Classifier is the contract use-cases depend on; *Handler implements it.
type Classifier interface {
	Handle(err error, action string) outcome.Result
}

var _ Classifier = (*Handler)(nil)

// Resolve turns err into a failed outcome. With a classifier the error is
// classified and notified; without one it degrades to code ERROR carrying
// err's message, or fallback when the error has none.
func Resolve[T any](h Classifier, err error, action, fallback string) outcome.Outcome[T] {
	if h != nil {
		return outcome.FromResult[T](h.Handle(err, action))
	}
	message := fallback
	if err != nil {
		if text := strings.TrimSpace(err.Error()); text != "" {
			message = text
		}
	}
	return outcome.Fail[T](outcome.CodeError, message)
}
