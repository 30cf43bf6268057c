package session

import (
	"testing"

	"github.com/avoronov/codenames-tui/internal/game"
)

func TestSnapshotStoreReplace(t *testing.T) {
	var s SnapshotStore

	if s.Current() != nil {
		t.Fatal("fresh store holds a snapshot")
	}

	first := &game.Snapshot{Team: game.TeamRed}
	s.Replace(first)
	if s.Current() != first {
		t.Error("stored snapshot is not the one installed")
	}

	second := &game.Snapshot{Team: game.TeamBlue}
	s.Replace(second)
	if s.Current() != second {
		t.Error("newer snapshot did not supersede the previous one")
	}

	s.Clear()
	if s.Current() != nil {
		t.Error("snapshot survived Clear")
	}
}
