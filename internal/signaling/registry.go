package signaling

import "sync"

// Registry tracks which connections are present in which room. It is
// constructed once at startup and injected into every connection handler.
//
// One coarse RWMutex guards the whole map. Hold times are bounded to the
// in-memory mutation or snapshot copy; callers perform network writes only
// after the lock is released, so a stalled client can never block joins and
// leaves of everyone else.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string][]*Conn
}

// NewRegistry creates an empty room registry.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string][]*Conn)}
}

// Join adds conn to the room, creating the room entry if absent. It returns
// a snapshot of the other members present and whether the room entry was
// created. Snapshot and insertion are atomic, so two clients joining
// concurrently each see the other in exactly one of the two snapshots and
// the mutual presence announcement happens exactly once. A conn already in
// the room is not inserted again: re-joining refreshes the presence exchange
// without duplicating the membership entry.
func (r *Registry) Join(roomID string, conn *Conn) (existing []*Conn, created bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.rooms[roomID]
	existing = make([]*Conn, 0, len(members))
	rejoining := false
	for _, c := range members {
		if c == conn {
			rejoining = true
			continue
		}
		existing = append(existing, c)
	}

	if !rejoining {
		r.rooms[roomID] = append(members, conn)
	}
	return existing, !ok
}

// Leave removes conn from every room it appears in. Room entries are kept
// even when their member list empties: a room's durable existence is
// decoupled from transient emptiness, and only Delete removes an entry.
func (r *Registry) Leave(conn *Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for roomID, members := range r.rooms {
		kept := members[:0]
		for _, c := range members {
			if c != conn {
				kept = append(kept, c)
			}
		}
		r.rooms[roomID] = kept
	}
}

// Member reports whether conn is currently registered in the room.
func (r *Registry) Member(roomID string, conn *Conn) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.rooms[roomID] {
		if c == conn {
			return true
		}
	}
	return false
}

// MembersExcept returns a snapshot of the room's members excluding sender.
// Fan-out writes happen against the snapshot, after the lock is released.
func (r *Registry) MembersExcept(roomID string, sender *Conn) []*Conn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.rooms[roomID]
	if !ok {
		return nil
	}
	recipients := make([]*Conn, 0, len(members))
	for _, c := range members {
		if c != sender {
			recipients = append(recipients, c)
		}
	}
	return recipients
}

// Count returns the number of members currently in the room.
func (r *Registry) Count(roomID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rooms[roomID])
}

// Has reports whether the room entry exists, regardless of member count.
func (r *Registry) Has(roomID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rooms[roomID]
	return ok
}

// Delete removes the room entry entirely. This is the only path that removes
// a room, reached solely through the authorized deletion endpoint.
func (r *Registry) Delete(roomID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rooms, roomID)
}

// Status returns a room -> member display names snapshot for debug logging.
func (r *Registry) Status() map[string][]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	status := make(map[string][]string, len(r.rooms))
	for roomID, members := range r.rooms {
		names := make([]string, len(members))
		for i, c := range members {
			names[i] = c.Name()
		}
		status[roomID] = names
	}
	return status
}
