package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"trackerMobility/internal/modules/realtime/application/port"
	"trackerMobility/internal/modules/realtime/domain"
)

type BroadcastUseCase struct {
	broadcaster port.Broadcaster
	now         func() time.Time
}

func NewBroadcastUseCase(b port.Broadcaster) *BroadcastUseCase {
	return &BroadcastUseCase{broadcaster: b, now: time.Now}
}

// Execute stamps missing ids and timestamps before handing msg to the hub.
func (uc *BroadcastUseCase) Execute(ctx context.Context, msg *domain.Message) {
	if msg == nil || strings.TrimSpace(msg.Topic) == "" {
		return
	}
	if msg.ID == "" {
		msg.ID = uuid.NewString()
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = uc.now().UTC()
	}
	uc.broadcaster.Broadcast(ctx, msg)
}
