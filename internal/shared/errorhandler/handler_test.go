package errorhandler

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trackerMobility/internal/shared/notification"
	"trackerMobility/internal/shared/outcome"
	"trackerMobility/internal/shared/transport"
)

type toast struct {
	severity notification.Severity
	message  string
	title    string
	duration time.Duration
}

type fakeNotifier struct {
	toasts []toast
}

func (f *fakeNotifier) ShowError(message, title string, duration time.Duration) {
	f.toasts = append(f.toasts, toast{notification.SeverityError, message, title, duration})
}

func (f *fakeNotifier) ShowWarning(message, title string, duration time.Duration) {
	f.toasts = append(f.toasts, toast{notification.SeverityWarning, message, title, duration})
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandleClassification(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		code     outcome.Code
		message  string
		severity notification.Severity
	}{
		{
			name:     "not found",
			err:      &transport.ResponseError{Status: http.StatusNotFound},
			code:     outcome.CodeNotFound,
			message:  messageNotFound,
			severity: notification.SeverityWarning,
		},
		{
			name:     "server error with message",
			err:      &transport.ResponseError{Status: http.StatusInternalServerError, Data: map[string]any{"message": "db caída"}},
			code:     outcome.CodeServerError,
			message:  "db caída",
			severity: notification.SeverityError,
		},
		{
			name:     "server error falls back to error field",
			err:      &transport.ResponseError{Status: http.StatusBadGateway, Data: map[string]any{"error": "gateway"}},
			code:     outcome.CodeServerError,
			message:  "gateway",
			severity: notification.SeverityError,
		},
		{
			name:     "server error without body",
			err:      &transport.ResponseError{Status: http.StatusServiceUnavailable},
			code:     outcome.CodeServerError,
			message:  messageServer,
			severity: notification.SeverityError,
		},
		{
			name:     "client error with message list",
			err:      &transport.ResponseError{Status: http.StatusBadRequest, Data: map[string]any{"message": []any{"a", "b"}}},
			code:     outcome.CodeHTTPError,
			message:  "a; b",
			severity: notification.SeverityError,
		},
		{
			name:     "client error without message names the action",
			err:      &transport.ResponseError{Status: http.StatusConflict, Data: "conflict"},
			code:     outcome.CodeHTTPError,
			message:  "Error al actualizar el reporte",
			severity: notification.SeverityError,
		},
		{
			name:     "no response",
			err:      &transport.RequestError{Method: http.MethodGet, URL: "http://x", Err: errors.New("refused")},
			code:     outcome.CodeNetworkError,
			message:  messageNetwork,
			severity: notification.SeverityError,
		},
		{
			name:     "anything else",
			err:      errors.New("boom"),
			code:     outcome.CodeUnknownError,
			message:  messageUnexpected,
			severity: notification.SeverityError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			notifier := &fakeNotifier{}
			handler := New(notifier, quietLogger())

			result := handler.Handle(tc.err, "actualizar el reporte")

			assert.Equal(t, tc.code, result.Code)
			assert.Equal(t, tc.message, result.Message)
			if assert.Len(t, notifier.toasts, 1) {
				assert.Equal(t, tc.severity, notifier.toasts[0].severity)
				assert.Equal(t, tc.message, notifier.toasts[0].message)
			}
		})
	}
}

func TestHandleUsesConfiguredDurations(t *testing.T) {
	notifier := &fakeNotifier{}
	handler := New(notifier, quietLogger(), WithDurations(7*time.Second, 2*time.Second))

	handler.Handle(&transport.ResponseError{Status: http.StatusNotFound}, "obtener")
	handler.Handle(errors.New("x"), "obtener")

	assert.Equal(t, 2*time.Second, notifier.toasts[0].duration)
	assert.Equal(t, 7*time.Second, notifier.toasts[1].duration)
}

func TestResolveWithoutHandler(t *testing.T) {
	result := Resolve[int](nil, errors.New("tenantName es obligatorio"), "actualizar", "fallback")
	assert.False(t, result.Success)
	assert.Equal(t, outcome.CodeError, result.Code)
	assert.Equal(t, "tenantName es obligatorio", result.Message)

	empty := Resolve[int](nil, errors.New("  "), "actualizar", "fallback")
	assert.Equal(t, "fallback", empty.Message)
}

func TestResolveWithHandler(t *testing.T) {
	handler := New(&fakeNotifier{}, quietLogger())
	result := Resolve[string](handler, &transport.ResponseError{Status: http.StatusNotFound}, "obtener", "fallback")
	assert.Equal(t, outcome.CodeNotFound, result.Code)
	assert.False(t, result.Success)
}
