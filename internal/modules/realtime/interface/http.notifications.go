package transport

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"trackerMobility/internal/modules/realtime/domain"
	"trackerMobility/internal/modules/realtime/infrastructure"
	"trackerMobility/internal/shared/auth"
)

const clientBuffer = 32

// firehoseRole may ask for every broadcast with ?all=true.
const firehoseRole = "admin"

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// NewNotificationsWebsocketHandler exposes /ws/notifications. The token is
// read from the Authorization header or the "token" query parameter.
// Clients receive every notification and may subscribe to
// "<entity>.updated" refresh topics, listed in the "topics" query parameter
// or sent later as subscribe commands. Admins may pass all=true to receive
// every topic.
func NewNotificationsWebsocketHandler(hub *infrastructure.Hub, validator auth.TokenValidator) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Response().Header().Get(echo.HeaderXRequestID)
		peerIP := c.RealIP()

		claims, err := validator.Validate(auth.ExtractToken(c.Request(), "token"))
		if err != nil {
			slog.Warn("notifications ws auth failed", slog.String("ip", peerIP), slog.Any("error", err))
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid or missing token")
		}

		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			slog.Error("notifications ws upgrade failed", slog.String("ip", peerIP), slog.String("reqID", requestID), slog.Any("error", err))
			return err
		}

		userID := claims.Subject
		sessionID := uuid.NewString()
		topics := requestedTopics(c.QueryParam("topics"))
		receiveAll := claims.HasRole(firehoseRole) && c.QueryParam("all") == "true"
		client := infrastructure.NewClient(hub, conn, userID, sessionID, clientBuffer, receiveAll)
		hub.Attach(client, append(topics, notificationTopics...))

		go client.WritePump()
		go client.ReadPump()

		client.SendDomainMessage(&domain.Message{
			ID:     uuid.NewString(),
			Topic:  domain.TopicSystemConnected,
			Entity: domain.SystemEntity,
			Action: domain.ActionConnected,
			Metadata: map[string]string{
				"sessionId": sessionID,
				"userId":    userID,
			},
			Data:      map[string]any{"topics": topics},
			Timestamp: time.Now().UTC(),
		})

		slog.Info("notifications ws connected", slog.String("userId", userID), slog.String("sessionId", sessionID), slog.String("ip", peerIP), slog.String("reqID", requestID))
		return nil
	}
}

var notificationTopics = []string{
	domain.NotificationTopic("error"),
	domain.NotificationTopic("warning"),
}

// requestedTopics turns "orders,reports.updated" into refresh topics.
func requestedTopics(raw string) []string {
	topics := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if topic := domain.RefreshTopic(part); topic != "" {
			topics = append(topics, topic)
		}
	}
	return topics
}
