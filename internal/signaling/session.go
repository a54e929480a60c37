package signaling

import (
	"encoding/json"
	"log"
)

// RoomStore records durable room ownership. The dal layer implements it; the
// session only ever creates records. Deletion is an authorized HTTP operation
// and never happens from leave or disconnect handling.
type RoomStore interface {
	CreateRoomRecord(roomID string, creatorID int64) error
}

// Session drives the signaling state machine for one connection:
// connected-unjoined -> joined -> left/closed. It owns the blocking read
// loop; all registry operations are synchronous and in-memory.
type Session struct {
	conn  *Conn
	reg   *Registry
	store RoomStore // nil when durable bookkeeping is disabled
}

// NewSession prepares the state machine for an accepted connection.
func NewSession(conn *Conn, reg *Registry, store RoomStore) *Session {
	return &Session{conn: conn, reg: reg, store: store}
}

// Run reads messages until the transport fails or closes, then cleans up.
// A transport-level disconnect unregisters the connection from every room
// without broadcasting user-left: peers notice the departure through their
// own ICE connection state, not through a signaling message.
func (s *Session) Run() {
	defer func() {
		s.reg.Leave(s.conn)
		if err := s.conn.Close(); err != nil {
			log.Printf("error closing ws during defer: %v", err)
		}
	}()

	for {
		raw, err := s.conn.t.ReadMessage()
		if err != nil {
			log.Printf("error reading message from '%s': %v", s.conn.Name(), err)
			return
		}
		s.handle(raw)
	}
}

// handle dispatches one inbound message. Per-message faults are contained:
// malformed envelopes and unknown events are logged and dropped, and the
// connection stays open. The protocol has no error event to send back.
func (s *Session) handle(raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		log.Printf("error unmarshaling message from '%s': %v", s.conn.Name(), err)
		return
	}

	event, ok := ParseEvent(env.Event)
	if !ok {
		log.Printf("unknown event '%s' from '%s' for room %s", env.Event, s.conn.Name(), env.RoomID)
		return
	}

	switch event {
	case EventJoin:
		s.handleJoin(env)
	case EventLeave:
		s.handleLeave(env)
	case EventOffer, EventAnswer, EventICECandidate:
		Relay(s.reg, env.RoomID, s.conn, event, raw)
	case EventJoined, EventUserJoined, EventUserLeft:
		// server-originated tags have no meaning inbound
		log.Printf("ignoring server event '%s' sent by '%s'", event, s.conn.Name())
	}
}

// handleJoin registers the connection in the room and exchanges mutual
// presence announcements with every member already there. Reconnecting and
// re-sending join is the documented way for clients to refresh a stalled
// peer-name exchange. Join is the only event that can create a room.
func (s *Session) handleJoin(env Envelope) {
	name := s.conn.resolveName(displayName(env.Payload))

	existing, created := s.reg.Join(env.RoomID, s.conn)
	if created {
		log.Printf("new room created: %s", env.RoomID)
		if s.store != nil && s.conn.Identity().Authenticated() {
			if err := s.store.CreateRoomRecord(env.RoomID, s.conn.Identity().ID); err != nil {
				log.Printf("error recording room %s: %v", env.RoomID, err)
			}
		}
	}

	for _, member := range existing {
		Announce(member, EventUserJoined, env.RoomID, name)
		Announce(s.conn, EventUserJoined, env.RoomID, member.Name())
	}

	if err := s.conn.SendEnvelope(Envelope{Event: string(EventJoined), RoomID: env.RoomID}); err != nil {
		log.Printf("error sending join confirmation to '%s': %v", name, err)
	}
	log.Printf("user '%s' joined room %s, connections: %d", name, env.RoomID, s.reg.Count(env.RoomID))
	logRoomStatus(s.reg)
}

func logRoomStatus(reg *Registry) {
	log.Println("current room status:")
	for roomID, names := range reg.Status() {
		log.Printf("  room %s: %d connections - users: %v", roomID, len(names), names)
	}
}

// handleLeave is the clean, client-initiated departure: user-left goes to the
// other members before the connection is unregistered. Leaving a room the
// connection never joined is a no-op with nothing to notify.
func (s *Session) handleLeave(env Envelope) {
	if !s.reg.Member(env.RoomID, s.conn) {
		log.Printf("leave for room %s from '%s' who is not a member", env.RoomID, s.conn.Name())
		return
	}

	name := displayName(env.Payload)
	if name == "" {
		name = s.conn.Name()
	}
	log.Printf("user '%s' is leaving room %s", name, env.RoomID)

	Broadcast(s.reg.MembersExcept(env.RoomID, s.conn), EventUserLeft, env.RoomID, name)
	s.reg.Leave(s.conn)
}
