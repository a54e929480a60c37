package schemas

import (
	"time"

	"github.com/google/uuid"
)

// User stores information about a MonkeyChat client
type User struct {
	// numeric row id, used as the creator key on rooms. Not given to anyone
	Id int64

	// public username. unique across the users table
	Name string

	// hashed password
	Password string

	CreatedAt string
}

// Room is a durable room record. The id is the client-supplied room
// identifier (typically a UUID), decoupled from whoever is currently
// connected to the room in memory.
type Room struct {
	Id        string
	CreatedBy int64
	CreatedAt time.Time
}

type InviteCode struct {
	Id               uuid.UUID
	Code             string
	RegisteredUserId int64
	createdAt        time.Time
}
