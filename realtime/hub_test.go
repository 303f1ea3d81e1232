package realtime

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubClient struct {
	userID    uint
	send      chan ChangeEvent
	closeOnce sync.Once
	done      chan struct{}
}

func newStubClient(userID uint, buffer int) *stubClient {
	return &stubClient{
		userID: userID,
		send:   make(chan ChangeEvent, buffer),
		done:   make(chan struct{}),
	}
}

func (s *stubClient) GetUserID() uint                    { return s.userID }
func (s *stubClient) GetSendChannel() chan<- ChangeEvent { return s.send }
func (s *stubClient) Run()                               {}
func (s *stubClient) Close()                             { s.closeOnce.Do(func() { close(s.done) }) }

func (s *stubClient) receive(t *testing.T) ChangeEvent {
	t.Helper()
	select {
	case ev := <-s.send:
		return ev
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return ChangeEvent{}
	}
}

func (s *stubClient) assertNothing(t *testing.T) {
	t.Helper()
	select {
	case ev := <-s.send:
		t.Fatalf("unexpected event: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubBroadcast(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	a := newStubClient(1, 4)
	b := newStubClient(2, 4)
	hub.RegisterCh <- a
	hub.RegisterCh <- b

	hub.PubSubCh <- ChangeEvent{Entity: EntityComplaint, EntityID: "c-1", Kind: KindCreated}

	for _, client := range []*stubClient{a, b} {
		ev := client.receive(t)
		assert.Equal(t, EntityComplaint, ev.Entity)
		assert.Equal(t, "c-1", ev.EntityID)
		assert.Equal(t, KindCreated, ev.Kind)
	}
}

func TestHubTargetedEvent(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	target := newStubClient(1, 4)
	other := newStubClient(2, 4)
	hub.RegisterCh <- target
	hub.RegisterCh <- other

	hub.PubSubCh <- ChangeEvent{Entity: EntityNotification, EntityID: "7", Kind: KindNotified, UserID: 1}

	ev := target.receive(t)
	assert.Equal(t, uint(1), ev.UserID)
	other.assertNothing(t)
}

func TestHubDropsSlowClient(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	slow := newStubClient(1, 0)
	hub.RegisterCh <- slow

	hub.PubSubCh <- ChangeEvent{Entity: EntityComplaint, EntityID: "c-1", Kind: KindStatus}

	select {
	case <-slow.done:
	case <-time.After(time.Second):
		t.Fatal("slow client was not dropped")
	}
}

func TestHubUnregister(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	client := newStubClient(1, 4)
	hub.RegisterCh <- client
	hub.UnregisterCh <- client

	select {
	case <-client.done:
	case <-time.After(time.Second):
		t.Fatal("client was not closed on unregister")
	}

	hub.PubSubCh <- ChangeEvent{Entity: EntityComplaint, EntityID: "c-1", Kind: KindCreated}
	client.assertNothing(t)
}

func TestHubMultipleConnectionsPerUser(t *testing.T) {
	hub := NewHub(zap.NewNop())
	go hub.Run()

	tab1 := newStubClient(1, 4)
	tab2 := newStubClient(1, 4)
	hub.RegisterCh <- tab1
	hub.RegisterCh <- tab2

	hub.PubSubCh <- ChangeEvent{Entity: EntityNotification, EntityID: "3", Kind: KindNotified, UserID: 1}

	require.Equal(t, KindNotified, tab1.receive(t).Kind)
	require.Equal(t, KindNotified, tab2.receive(t).Kind)
}
