package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trackerMobility/internal/modules/realtime/domain"
)

type captureBroadcaster struct{ messages []*domain.Message }

func (c *captureBroadcaster) Broadcast(_ context.Context, msg *domain.Message) {
	c.messages = append(c.messages, msg)
}

type notificationCounter map[string]int

func (c notificationCounter) IncNotification(kind string) { c[kind]++ }
func (c notificationCounter) IncBrokerEvent(string)        {}

func TestHubNotifierPublishesToasts(t *testing.T) {
	capture := &captureBroadcaster{}
	counts := notificationCounter{}
	notifier := NewHubNotifier(NewBroadcastUseCase(capture), counts)

	notifier.ShowError("Sin conexión", "Error de conexión", 5*time.Second)
	notifier.ShowWarning("No encontrado", "Aviso", 4*time.Second)

	require.Len(t, capture.messages, 2)
	assert.Equal(t, "notifications.error", capture.messages[0].Topic)
	assert.Equal(t, domain.Toast{Severity: "error", Title: "Error de conexión", Message: "Sin conexión", DurationMs: 5000}, capture.messages[0].Data)
	assert.Equal(t, "notifications.warning", capture.messages[1].Topic)
	assert.NotEqual(t, capture.messages[0].ID, capture.messages[1].ID)
	assert.Equal(t, notificationCounter{"error": 1, "warning": 1}, counts)
}

func TestBroadcastSkipsMessagesWithoutTopic(t *testing.T) {
	capture := &captureBroadcaster{}
	NewBroadcastUseCase(capture).Execute(context.Background(), &domain.Message{})
	NewBroadcastUseCase(capture).Execute(context.Background(), nil)
	assert.Empty(t, capture.messages)
}
