package realtime

// Client is one dashboard connection registered with the hub. The interface
// keeps the hub independent of the transport so tests can register stubs.
type Client interface {
	// GetUserID returns the authenticated user behind the connection.
	GetUserID() uint

	// GetSendChannel returns the channel the hub delivers events into.
	GetSendChannel() chan<- ChangeEvent

	// Run starts the connection's read and write pumps.
	Run()
	// Close shuts the connection down and releases its send channel.
	Close()
}
