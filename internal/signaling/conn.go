package signaling

import (
	"encoding/json"
	"sync"
)

// AnonymousName is the display name given to a connection whose join payload
// carries no userName and whose identity is unauthenticated.
const AnonymousName = "Anonymous"

// Transport is the subset of a websocket connection the signaling core uses.
// The routes layer adapts the real websocket; tests substitute an in-memory pipe.
type Transport interface {
	// ReadMessage blocks until one whole message arrives or the transport fails.
	ReadMessage() ([]byte, error)
	// WriteMessage sends one whole message.
	WriteMessage(data []byte) error
	Close() error
}

// Conn wraps one live websocket to a browser tab, tagged with the resolved
// display name and the authenticated identity. Exactly one goroutine reads
// from a Conn; relaying goroutines may write to it concurrently, so all
// writes go through a per-connection mutex.
type Conn struct {
	t        Transport
	identity Identity

	mu   sync.Mutex // serializes writes and guards name
	name string     // empty until the first join resolves it
}

// NewConn wraps an accepted transport. An authenticated identity seeds the
// display name; anonymous connections stay unnamed until their first join.
func NewConn(t Transport, identity Identity) *Conn {
	return &Conn{
		t:        t,
		identity: identity,
		name:     identity.Name,
	}
}

// Identity returns the principal resolved at upgrade time.
func (c *Conn) Identity() Identity {
	return c.identity
}

// Name returns the resolved display name, or "" before the first join.
func (c *Conn) Name() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.name
}

// resolveName sets the display name once. Later joins keep the original name.
func (c *Conn) resolveName(name string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.name == "" {
		if name == "" {
			name = AnonymousName
		}
		c.name = name
	}
	return c.name
}

// Send writes raw bytes to the transport, serialized against concurrent senders.
func (c *Conn) Send(data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t.WriteMessage(data)
}

// SendEnvelope marshals a server-authored envelope and writes it.
func (c *Conn) SendEnvelope(env Envelope) error {
	data, err := json.Marshal(env)
	if err != nil {
		return err
	}
	return c.Send(data)
}

// Close shuts the underlying transport down, unblocking the read loop.
func (c *Conn) Close() error {
	return c.t.Close()
}
