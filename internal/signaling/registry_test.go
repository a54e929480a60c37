package signaling

import (
	"fmt"
	"sync"
	"testing"
)

func newTestConn(name string) *Conn {
	c := NewConn(newFakeTransport(), Anonymous())
	c.resolveName(name)
	return c
}

func TestRegistry_JoinCreatesRoomOnce(t *testing.T) {
	reg := NewRegistry()
	c1 := newTestConn("alice")
	c2 := newTestConn("bob")

	existing, created := reg.Join("r1", c1)
	if !created {
		t.Fatalf("expected first join to create the room")
	}
	if len(existing) != 0 {
		t.Fatalf("expected no prior members, got %d", len(existing))
	}

	existing, created = reg.Join("r1", c2)
	if created {
		t.Fatalf("expected second join to reuse the room")
	}
	if len(existing) != 1 || existing[0] != c1 {
		t.Fatalf("expected snapshot [c1], got %v", existing)
	}
	if reg.Count("r1") != 2 {
		t.Fatalf("expected 2 members, got %d", reg.Count("r1"))
	}
}

func TestRegistry_MembersExcept(t *testing.T) {
	reg := NewRegistry()
	c1 := newTestConn("alice")
	c2 := newTestConn("bob")
	c3 := newTestConn("carol")
	reg.Join("r1", c1)
	reg.Join("r1", c2)
	reg.Join("r2", c3)

	got := reg.MembersExcept("r1", c1)
	if len(got) != 1 || got[0] != c2 {
		t.Fatalf("expected [c2], got %v", got)
	}

	// a member of only r2 never shows up in r1 fan-out
	for _, c := range reg.MembersExcept("r1", c2) {
		if c == c3 {
			t.Fatalf("room isolation violated: c3 returned for r1")
		}
	}

	if got := reg.MembersExcept("missing", c1); got != nil {
		t.Fatalf("expected nil for unknown room, got %v", got)
	}
}

func TestRegistry_LeaveKeepsEmptyRoom(t *testing.T) {
	reg := NewRegistry()
	c1 := newTestConn("alice")
	reg.Join("r1", c1)

	reg.Leave(c1)

	if !reg.Has("r1") {
		t.Fatalf("expected empty room to remain registered")
	}
	if reg.Count("r1") != 0 {
		t.Fatalf("expected 0 members, got %d", reg.Count("r1"))
	}

	// a new member can still join the empty room
	c2 := newTestConn("bob")
	existing, created := reg.Join("r1", c2)
	if created {
		t.Fatalf("expected the surviving room entry to be reused")
	}
	if len(existing) != 0 || reg.Count("r1") != 1 {
		t.Fatalf("expected c2 to be the sole member")
	}
}

func TestRegistry_RejoinKeepsSingleMembership(t *testing.T) {
	reg := NewRegistry()
	c1 := newTestConn("alice")
	c2 := newTestConn("bob")
	reg.Join("r1", c1)
	reg.Join("r1", c2)

	existing, created := reg.Join("r1", c1) // refresh, not a second entry
	if created {
		t.Fatalf("re-join must not report a created room")
	}
	if len(existing) != 1 || existing[0] != c2 {
		t.Fatalf("re-join snapshot must hold only the other members, got %v", existing)
	}
	if reg.Count("r1") != 2 {
		t.Fatalf("expected 2 members after re-join, got %d", reg.Count("r1"))
	}

	reg.Leave(c1)
	if reg.Member("r1", c1) {
		t.Fatalf("leaver still a member after re-join")
	}
	if got := reg.MembersExcept("r1", c2); len(got) != 0 {
		t.Fatalf("leaver still in fan-out after re-join: %v", got)
	}
}

func TestRegistry_LeaveRemovesDuplicateEntries(t *testing.T) {
	reg := NewRegistry()
	c1 := newTestConn("alice")
	c2 := newTestConn("bob")

	// duplicates cannot arise through Join anymore; Leave must still clear
	// them all if they ever exist
	reg.mu.Lock()
	reg.rooms["r1"] = []*Conn{c1, c2, c1}
	reg.mu.Unlock()

	reg.Leave(c1)

	if reg.Member("r1", c1) {
		t.Fatalf("expected every entry for c1 removed")
	}
	if reg.Count("r1") != 1 {
		t.Fatalf("expected only c2 left, got %d members", reg.Count("r1"))
	}
}

func TestRegistry_LeaveRemovesFromAllRooms(t *testing.T) {
	reg := NewRegistry()
	c1 := newTestConn("alice")
	c2 := newTestConn("bob")
	reg.Join("r1", c1)
	reg.Join("r2", c1)
	reg.Join("r1", c2)

	reg.Leave(c1)

	if reg.Member("r1", c1) || reg.Member("r2", c1) {
		t.Fatalf("expected c1 removed from every room")
	}
	if !reg.Member("r1", c2) {
		t.Fatalf("expected c2 to stay registered")
	}
}

func TestRegistry_DeleteRemovesEntry(t *testing.T) {
	reg := NewRegistry()
	reg.Join("r1", newTestConn("alice"))

	reg.Delete("r1")

	if reg.Has("r1") {
		t.Fatalf("expected room entry removed")
	}
}

func TestRegistry_ConcurrentJoins(t *testing.T) {
	reg := NewRegistry()
	const n = 50

	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		c := newTestConn(fmt.Sprintf("user-%d", i))
		wg.Add(1)
		go func() {
			defer wg.Done()
			reg.Join("r1", c)
		}()
	}
	wg.Wait()

	if reg.Count("r1") != n {
		t.Fatalf("expected %d members after concurrent joins, got %d", n, reg.Count("r1"))
	}
}

func TestRegistry_Status(t *testing.T) {
	reg := NewRegistry()
	reg.Join("r1", newTestConn("alice"))
	reg.Join("r1", newTestConn("bob"))

	status := reg.Status()
	if len(status["r1"]) != 2 {
		t.Fatalf("expected 2 names for r1, got %v", status["r1"])
	}
}
