package dal

import (
	"database/sql"
	"fmt"

	"github.com/AshutoshKD/MonkeyChat/internal/schemas"
)

// CreateRoom records a durable room owned by creatorId. Called exactly once
// per room, when its first member joins with an authenticated identity.
func CreateRoom(db *sql.DB, roomId string, creatorId int64) error {
	_, err := db.Exec(
		"INSERT INTO rooms (id, created_by) VALUES (?, ?)",
		roomId, creatorId,
	)
	if err != nil {
		return fmt.Errorf("error inserting room: %w", err)
	}
	return nil
}

// GetRoomById returns nil without error when the room does not exist, so the
// deletion endpoint can distinguish not-found from a query failure.
func GetRoomById(db *sql.DB, roomId string) (*schemas.Room, error) {
	var room schemas.Room

	query := "SELECT id, created_by, created_at FROM rooms WHERE id = ?"
	err := db.QueryRow(query, roomId).Scan(&room.Id, &room.CreatedBy, &room.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error querying room: %w", err)
	}
	return &room, nil
}

func GetAllRooms(db *sql.DB) ([]schemas.Room, error) {
	rows, err := db.Query("SELECT id, created_by, created_at FROM rooms")
	if err != nil {
		return nil, fmt.Errorf("error querying rooms: %w", err)
	}
	defer rows.Close()

	var rooms []schemas.Room
	for rows.Next() {
		var room schemas.Room
		if err := rows.Scan(&room.Id, &room.CreatedBy, &room.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning room row: %w", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating room rows: %w", err)
	}
	return rooms, nil
}

// DeleteRoom removes a durable room record. Only the authorized deletion
// endpoint calls this, never the signaling state machine.
func DeleteRoom(db *sql.DB, roomId string) error {
	_, err := db.Exec("DELETE FROM rooms WHERE id = ?", roomId)
	if err != nil {
		return fmt.Errorf("error deleting room: %w", err)
	}
	return nil
}
