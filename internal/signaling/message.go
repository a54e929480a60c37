package signaling

import "encoding/json"

// Event tags every envelope exchanged over the signaling websocket.
type Event string

// Client-sent events.
const (
	EventJoin         Event = "join"
	EventLeave        Event = "leave"
	EventOffer        Event = "offer"
	EventAnswer       Event = "answer"
	EventICECandidate Event = "ice-candidate"
)

// Server-sent events.
const (
	EventJoined     Event = "joined"
	EventUserJoined Event = "user-joined"
	EventUserLeft   Event = "user-left"
)

// ParseEvent maps a wire tag to a known Event. Adding a new event here forces
// the session dispatch switch to handle it.
func ParseEvent(s string) (Event, bool) {
	switch ev := Event(s); ev {
	case EventJoin, EventLeave, EventOffer, EventAnswer, EventICECandidate,
		EventJoined, EventUserJoined, EventUserLeft:
		return ev, true
	default:
		return "", false
	}
}

// Envelope is the wire unit of the signaling protocol. Payload stays raw:
// it is only parsed for join/leave (to extract a display name) and is relayed
// byte-for-byte for offer/answer/ice-candidate so SDP fidelity is preserved.
type Envelope struct {
	Event   string          `json:"event"`
	RoomID  string          `json:"roomId"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NamePayload is the payload shape of join/leave and the presence events.
type NamePayload struct {
	UserName string `json:"userName"`
}

// displayName extracts the userName field from a join/leave payload,
// returning "" if the payload is absent or malformed.
func displayName(payload json.RawMessage) string {
	if len(payload) == 0 {
		return ""
	}
	var info NamePayload
	if err := json.Unmarshal(payload, &info); err != nil {
		return ""
	}
	return info.UserName
}
