// package dal is the data access layer. It contains functions that perform SQL queries and logic
// that cannot be decoupled from the queries. Files correspond to SQL tables
package dal

import (
	"database/sql"
	"fmt"

	"github.com/AshutoshKD/MonkeyChat/internal/schemas"
)

// CreateUser adds a user to the database and associates them with their invite code.
func CreateUser(db *sql.DB, username, hashedPassword, inviteCode string) (int64, error) {
	// Basic transaction pattern
	tx, tErr := db.Begin()
	if tErr != nil {
		return 0, tErr
	}
	defer tx.Rollback()

	var userId int64
	err := tx.QueryRow(
		"INSERT INTO users (username, password) VALUES (?, ?) RETURNING id",
		username,
		hashedPassword,
	).Scan(&userId)
	if err != nil {
		return 0, fmt.Errorf("error inserting user: %w", err)
	}

	// update invite code
	result, err := tx.Exec(
		"UPDATE invite_codes SET registered_user_id = ? WHERE code = ? AND registered_user_id IS NULL",
		userId, inviteCode,
	)
	if err != nil {
		return 0, fmt.Errorf("error updating invite code: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return 0, fmt.Errorf("invite code not found or already used")
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return userId, nil
}

func GetUserByUsername(db *sql.DB, username string) (*schemas.User, error) {
	var user schemas.User

	query := "SELECT id, username, password, created_at FROM users WHERE username = ?"
	err := db.QueryRow(query, username).Scan(&user.Id, &user.Name, &user.Password, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found: %s", username)
		}
		return nil, fmt.Errorf("error querying user: %w", err)
	}
	return &user, nil
}

func GetUserById(db *sql.DB, id int64) (*schemas.User, error) {
	var user schemas.User

	query := "SELECT id, username, password, created_at FROM users WHERE id = ?"
	err := db.QueryRow(query, id).Scan(&user.Id, &user.Name, &user.Password, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user not found: %d", id)
		}
		return nil, fmt.Errorf("error querying user: %w", err)
	}
	return &user, nil
}
