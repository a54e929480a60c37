package routes

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/AshutoshKD/MonkeyChat/configs"
	"github.com/AshutoshKD/MonkeyChat/internal/crypto"
	"github.com/AshutoshKD/MonkeyChat/internal/dal"
	"github.com/AshutoshKD/MonkeyChat/internal/middleware"
	"github.com/AshutoshKD/MonkeyChat/internal/schemas"
	"github.com/AshutoshKD/MonkeyChat/internal/schemas/public"
	"github.com/AshutoshKD/MonkeyChat/internal/validation"
)

func (h *RouteHandler) Register(w http.ResponseWriter, req *http.Request) {
	data := schemas.NewUserRequest{}
	if err := json.NewDecoder(req.Body).Decode(&data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	err, statusCode := validation.CheckRegistrationCredentials(h.db, data.InviteCode, data.Name, data.Password)
	if err != nil {
		http.Error(w, err.Error(), statusCode)
		return
	}

	hashedPassword, err := crypto.HashPassword(data.Password)
	if err != nil {
		log.Println(err.Error())
		err = errors.New("password error")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	userId, err := dal.CreateUser(h.db, data.Name, hashedPassword, data.InviteCode)
	if err != nil {
		log.Println(err.Error())
		err = errors.New("error creating new user")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	log.Printf("new user registered: %s (%d)", data.Name, userId)
	res := public.User{Name: data.Name}
	WriteJSON(w, &res)
}

// Rooms lists every durable room with its creator's public username.
func (h *RouteHandler) Rooms(w http.ResponseWriter, _ *http.Request) {
	dbRooms, err := dal.GetAllRooms(h.db)
	if err != nil {
		err = fmt.Errorf("error getting rooms: %w", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	rooms := []public.Room{}
	for _, dbRoom := range dbRooms {
		creator, err := dal.GetUserById(h.db, dbRoom.CreatedBy)
		if err != nil {
			log.Printf("error fetching creator of room %s: %v", dbRoom.Id, err)
			continue
		}
		rooms = append(rooms, public.Room{
			ID:        dbRoom.Id,
			CreatedBy: creator.Name,
			CreatedAt: dbRoom.CreatedAt,
		})
	}

	WriteJSON(w, &rooms)
}

// DeleteRoom removes a room from the durable store and the in-memory registry.
// Only the room's original creator may delete it. This is the single path that
// removes a room entry; emptying a room never does.
func (h *RouteHandler) DeleteRoom(w http.ResponseWriter, req *http.Request) {
	principal := middleware.GetPrincipal(req)

	data := schemas.DeleteRoomRequest{}
	if err := json.NewDecoder(req.Body).Decode(&data); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if data.RoomID == "" {
		http.Error(w, "room ID is required", http.StatusBadRequest)
		return
	}

	room, err := dal.GetRoomById(h.db, data.RoomID)
	if err != nil {
		log.Printf("error fetching room: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if room == nil {
		http.Error(w, "room not found", http.StatusNotFound)
		return
	}
	if room.CreatedBy != principal.UserID {
		http.Error(w, "only the room creator can delete the room", http.StatusForbidden)
		return
	}

	if err := dal.DeleteRoom(h.db, data.RoomID); err != nil {
		log.Printf("error deleting room: %v", err)
		http.Error(w, "error deleting room", http.StatusInternalServerError)
		return
	}
	h.registry.Delete(data.RoomID)

	log.Printf("room %s deleted by user %s (%d)", data.RoomID, principal.Username, principal.UserID)
	WriteJSON(w, map[string]string{"message": "room deleted successfully"})
}

// IceServers hands clients the STUN/TURN configuration to use when creating
// their peer connections.
func (h *RouteHandler) IceServers(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, configs.ICEServers())
}
