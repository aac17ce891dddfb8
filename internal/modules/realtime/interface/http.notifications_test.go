package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackerMobility/internal/modules/realtime/domain"
	"trackerMobility/internal/modules/realtime/infrastructure"
	"trackerMobility/internal/shared/auth"
)

const secret = "test-secret"

func newNotificationsServer(t *testing.T) (*httptest.Server, *infrastructure.Hub) {
	t.Helper()
	validator, err := auth.NewJWTValidator(secret, "")
	require.NoError(t, err)
	hub := infrastructure.NewHub()
	e := echo.New()
	e.GET("/ws/notifications", NewNotificationsWebsocketHandler(hub, validator))
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)
	return server, hub
}

func signedToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestNotificationsRejectsMissingToken(t *testing.T) {
	server, _ := newNotificationsServer(t)
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/notifications"

	_, res, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, res)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestNotificationsStreamsToastsAndRefreshTopics(t *testing.T) {
	server, hub := newNotificationsServer(t)
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/notifications?topics=orders"
	header := http.Header{"Authorization": []string{"Bearer " + signedToken(t)}}

	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var connected domain.Message
	require.NoError(t, conn.ReadJSON(&connected))
	assert.Equal(t, domain.TopicSystemConnected, connected.Topic)
	assert.Equal(t, "admin-1", connected.Metadata["userId"])

	hub.Broadcast(context.Background(), &domain.Message{Topic: "reports.updated"})
	hub.Broadcast(context.Background(), &domain.Message{Topic: "orders.updated"})
	hub.Broadcast(context.Background(), &domain.Message{Topic: "notifications.error"})

	var first, second domain.Message
	require.NoError(t, conn.ReadJSON(&first))
	require.NoError(t, conn.ReadJSON(&second))
	assert.Equal(t, "orders.updated", first.Topic)
	assert.Equal(t, "notifications.error", second.Topic)
}

func TestRequestedTopics(t *testing.T) {
	assert.Equal(t, []string{"orders.updated", "reports.updated"}, requestedTopics(" Orders , reports.updated,,"))
	assert.Equal(t, []string{"companies.updated", "order-requests.updated"}, requestedTopics("customer,order_request"))
	assert.Empty(t, requestedTopics(""))
}

func TestNotificationsFirehoseRequiresAdmin(t *testing.T) {
	server, hub := newNotificationsServer(t)
	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/notifications?all=true"
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		Roles: []string{"ADMIN"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin-2",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(url, http.Header{"Authorization": []string{"Bearer " + signed}})
	require.NoError(t, err)
	defer conn.Close()
	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var connected domain.Message
	require.NoError(t, conn.ReadJSON(&connected))

	hub.Broadcast(context.Background(), &domain.Message{Topic: "verifiers.updated"})
	var next domain.Message
	require.NoError(t, conn.ReadJSON(&next))
	assert.Equal(t, "verifiers.updated", next.Topic)
}
