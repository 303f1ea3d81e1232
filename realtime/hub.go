package realtime

import (
	"go.uber.org/zap"
)

// Hub fans change events out to every connected dashboard. A user may hold
// several connections (multiple tabs); each is tracked separately.
type Hub struct {
	Clients map[Client]bool

	RegisterCh   chan Client
	UnregisterCh chan Client

	// PubSubCh receives events from the redis listener (or, in tests,
	// directly).
	PubSubCh chan ChangeEvent

	logger *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		Clients:      make(map[Client]bool),
		RegisterCh:   make(chan Client),
		UnregisterCh: make(chan Client),
		PubSubCh:     make(chan ChangeEvent, 64),
		logger:       logger,
	}
}

// Run is the hub's dispatcher loop; start it once as a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.RegisterCh:
			h.Clients[client] = true
			h.logger.Info("realtime client registered",
				zap.Uint("user_id", client.GetUserID()),
				zap.Int("clients", len(h.Clients)))

		case client := <-h.UnregisterCh:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				client.Close()
				h.logger.Info("realtime client unregistered",
					zap.Uint("user_id", client.GetUserID()),
					zap.Int("clients", len(h.Clients)))
			}

		case ev := <-h.PubSubCh:
			h.dispatch(ev)
		}
	}
}

// dispatch delivers an event to the matching connections. Events are only
// invalidation hints, so a slow client is dropped rather than buffered
// without bound; it will reconnect and re-fetch.
func (h *Hub) dispatch(ev ChangeEvent) {
	for client := range h.Clients {
		if ev.UserID != 0 && client.GetUserID() != ev.UserID {
			continue
		}
		select {
		case client.GetSendChannel() <- ev:
		default:
			delete(h.Clients, client)
			client.Close()
			h.logger.Warn("dropped slow realtime client",
				zap.Uint("user_id", client.GetUserID()))
		}
	}
}
