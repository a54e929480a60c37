package signaling

// Identity is the authenticated principal behind a websocket connection,
// resolved by the HTTP layer before the upgrade. The zero value is anonymous.
type Identity struct {
	// public username, unique per the users table
	Name string

	// numeric row id from the users table. 0 for anonymous connections
	ID int64
}

// Anonymous returns the identity of an unauthenticated connection.
func Anonymous() Identity {
	return Identity{}
}

// Identified returns the identity of a connection backed by a users-table row.
func Identified(name string, id int64) Identity {
	return Identity{Name: name, ID: id}
}

// Authenticated reports whether the identity is backed by a real user record.
// Durable room creation is gated on this.
func (i Identity) Authenticated() bool {
	return i.ID > 0 && i.Name != ""
}
