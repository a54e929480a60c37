package routes

import (
	"database/sql"
	"log"

	"github.com/AshutoshKD/MonkeyChat/internal/dal"
	"github.com/AshutoshKD/MonkeyChat/internal/middleware"
	"github.com/AshutoshKD/MonkeyChat/internal/signaling"
	"golang.org/x/net/websocket"
)

// wsTransport adapts the x/net websocket to the transport the signaling core
// reads and writes. Outbound messages go out as text frames, which is what
// browser clients expect for JSON.
type wsTransport struct {
	ws *websocket.Conn
}

func (t wsTransport) ReadMessage() ([]byte, error) {
	var data []byte
	err := websocket.Message.Receive(t.ws, &data)
	return data, err
}

func (t wsTransport) WriteMessage(data []byte) error {
	return websocket.Message.Send(t.ws, string(data))
}

func (t wsTransport) Close() error {
	return t.ws.Close()
}

// dbRoomStore records durable room ownership through the dal layer.
type dbRoomStore struct {
	db *sql.DB
}

func (s dbRoomStore) CreateRoomRecord(roomID string, creatorID int64) error {
	return dal.CreateRoom(s.db, roomID, creatorID)
}

// SignalWS owns one client's whole signaling session: it wraps the upgraded
// websocket with the identity resolved by the auth middleware and runs the
// join/leave/relay state machine until the connection goes away. Anonymous
// clients are served too; they just never create durable room records.
func (h *RouteHandler) SignalWS(ws *websocket.Conn) {
	principal := middleware.GetPrincipalWS(ws)

	identity := signaling.Anonymous()
	if principal.UserID > 0 {
		identity = signaling.Identified(principal.Username, principal.UserID)
	}

	remote := ws.Request().RemoteAddr
	log.Printf("websocket connection established from %s (user '%s')", remote, principal.Username)

	conn := signaling.NewConn(wsTransport{ws}, identity)
	session := signaling.NewSession(conn, h.registry, dbRoomStore{h.db})
	session.Run()

	log.Printf("websocket connection from %s closed", remote)
}
