package session

import "github.com/avoronov/codenames-tui/internal/game"

// SnapshotStore holds the single most recent authoritative snapshot.
// Arrival of a new snapshot discards the previous one wholesale; the
// client never merges or diffs, so an out-of-order pair costs at most a
// moment of staleness until the next push.
type SnapshotStore struct {
	snap *game.Snapshot
}

// Replace installs a new snapshot, superseding the previous one.
func (s *SnapshotStore) Replace(snap *game.Snapshot) {
	s.snap = snap
}

// Current returns the held snapshot, or nil before the first push.
func (s *SnapshotStore) Current() *game.Snapshot {
	return s.snap
}

// Clear drops the held snapshot, used when leaving a room.
func (s *SnapshotStore) Clear() {
	s.snap = nil
}
