package signaling

import (
	"encoding/json"
	"log"
)

// Delivery is best-effort and at-most-once per recipient: a failed write is
// logged and never aborts delivery to the remaining members, and nothing is
// retried or buffered. Ordering holds per sender->recipient pair only.

// Relay forwards the exact inbound bytes of an offer/answer/ice-candidate
// envelope to every member of the room except the sender. The payload is
// never re-serialized, preserving SDP bytes exactly as the sender produced them.
func Relay(reg *Registry, roomID string, sender *Conn, event Event, raw []byte) {
	for _, c := range reg.MembersExcept(roomID, sender) {
		if err := c.Send(raw); err != nil {
			log.Printf("error relaying %s to '%s' in room %s: %v", event, c.Name(), roomID, err)
		}
	}
}

// Announce sends a server-authored presence envelope (user-joined/user-left)
// naming userName to a single recipient.
func Announce(recipient *Conn, event Event, roomID, userName string) {
	payload, _ := json.Marshal(NamePayload{UserName: userName})
	env := Envelope{
		Event:   string(event),
		RoomID:  roomID,
		Payload: payload,
	}
	if err := recipient.SendEnvelope(env); err != nil {
		log.Printf("error sending %s to '%s' in room %s: %v", event, recipient.Name(), roomID, err)
	}
}

// Broadcast announces a presence event to every listed recipient, constructed
// fresh per recipient.
func Broadcast(recipients []*Conn, event Event, roomID, userName string) {
	for _, c := range recipients {
		Announce(c, event, roomID, userName)
	}
}
