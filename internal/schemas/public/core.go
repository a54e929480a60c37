// package public contains structs that can be sent to the MonkeyChat client.
// These structs do not contain private information such as passwords, or
// internal info such as numeric row ids. Structs used to represent database
// records and other server-specific objects should embed these public structs.
package public

import "time"

// User stores information about the user of a MonkeyChat client
type User struct {
	// public username
	Name string
}

// Room represents a durable room as shown to clients: the opaque identifier
// peers share to find each other, plus who created it and when.
type Room struct {
	ID        string    `json:"id"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}
