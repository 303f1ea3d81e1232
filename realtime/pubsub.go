package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// EventsChannel is the redis pub/sub channel the change feed rides on. Every
// API instance publishes here and every instance's hub subscribes, so events
// reach dashboards regardless of which instance handled the mutation.
const EventsChannel = "campusvoice:events"

// Broker publishes change events to redis and feeds subscribed events into a
// hub.
type Broker struct {
	Redis  *redis.Client
	Logger *zap.Logger
}

func NewBroker(rdb *redis.Client, logger *zap.Logger) *Broker {
	return &Broker{Redis: rdb, Logger: logger}
}

// Publish pushes one change event onto the feed. Publish failures are logged
// and swallowed: the mutation already committed, and dashboards recover on
// their next fetch.
func (b *Broker) Publish(ctx context.Context, ev ChangeEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		b.Logger.Error("failed to encode change event", zap.Error(err))
		return
	}
	if err := b.Redis.Publish(ctx, EventsChannel, payload).Err(); err != nil {
		b.Logger.Error("failed to publish change event",
			zap.String("entity", ev.Entity),
			zap.String("entity_id", ev.EntityID),
			zap.Error(err))
	}
}

// Listen subscribes to the feed and forwards events into the hub. Run it as
// a goroutine alongside hub.Run.
func (b *Broker) Listen(ctx context.Context, hub *Hub) {
	pubsub := b.Redis.Subscribe(ctx, EventsChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for msg := range ch {
		var ev ChangeEvent
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			b.Logger.Error("failed to decode change event", zap.Error(err))
			continue
		}
		hub.PubSubCh <- ev
	}
}
