package schemas

// NewUserRequest is the request data to register a new client with the server.
type NewUserRequest struct {
	Name,
	Password,
	InviteCode string
}

// DeleteRoomRequest identifies the room a creator wants removed.
type DeleteRoomRequest struct {
	RoomID string `json:"roomId"`
}
