package input

import (
	"slices"
	"testing"

	"github.com/Carmen-Shannon/oxy-freelook/common"
)

func TestTracker_FirstSampleIsBaseline(t *testing.T) {
	tr := NewTracker()
	tr.MouseMove(400, 300)
	s := tr.Snapshot()
	if s.MouseDX != 0 || s.MouseDY != 0 {
		t.Errorf("first sample delta != (0,0) (got (%v,%v))", s.MouseDX, s.MouseDY)
	}
}

func TestTracker_MouseDelta(t *testing.T) {
	tests := []struct {
		Moves  [][2]float64
		DX, DY float32
	}{
		{[][2]float64{{0, 0}, {10, 0}}, 10, 0},
		{[][2]float64{{0, 0}, {0, 10}}, 0, -10},
		{[][2]float64{{100, 100}, {90, 80}}, -10, 20},
		{[][2]float64{{0, 0}, {5, 5}, {12, -3}}, 12, 3},
	}

	for _, tc := range tests {
		tr := NewTracker()
		for _, m := range tc.Moves {
			tr.MouseMove(m[0], m[1])
		}
		s := tr.Snapshot()
		if s.MouseDX != tc.DX || s.MouseDY != tc.DY {
			t.Errorf("moves %v delta != (%v,%v) (got (%v,%v))", tc.Moves, tc.DX, tc.DY, s.MouseDX, s.MouseDY)
		}
	}
}

func TestTracker_SnapshotDrainsDeltas(t *testing.T) {
	tr := NewTracker()
	tr.MouseMove(0, 0)
	tr.MouseMove(3, 4)
	tr.Scroll(1)
	tr.Scroll(0.5)
	tr.KeyDown(common.KeyW)

	first := tr.Snapshot()
	if first.ScrollDY != 1.5 {
		t.Errorf("ScrollDY != 1.5 (got %v)", first.ScrollDY)
	}

	second := tr.Snapshot()
	if second.MouseDX != 0 || second.MouseDY != 0 || second.ScrollDY != 0 {
		t.Errorf("deltas not drained (got %+v)", second)
	}
	if !second.Held(common.KeyW) {
		t.Errorf("held key lost between snapshots")
	}

	// The baseline survives a snapshot; the next move is a real delta.
	tr.MouseMove(4, 4)
	if s := tr.Snapshot(); s.MouseDX != 1 || s.MouseDY != 0 {
		t.Errorf("delta after drain != (1,0) (got (%v,%v))", s.MouseDX, s.MouseDY)
	}
}

func TestTracker_Keys(t *testing.T) {
	tr := NewTracker()
	tr.KeyDown(common.KeyW)
	tr.KeyDown(common.KeyA)
	tr.KeyUp(common.KeyW)
	tr.KeyDown(common.MaxKeyCode)
	tr.KeyDown(common.MaxKeyCode + 7)

	s := tr.Snapshot()
	if got := s.HeldKeys(); !slices.Equal(got, []uint32{common.KeyA}) {
		t.Errorf("HeldKeys() != [%d] (got %v)", common.KeyA, got)
	}
}

func TestTracker_SnapshotIsIndependent(t *testing.T) {
	tr := NewTracker()
	tr.KeyDown(common.KeyD)
	s := tr.Snapshot()
	tr.KeyUp(common.KeyD)
	tr.KeyDown(common.KeyS)

	if !s.Held(common.KeyD) || s.Held(common.KeyS) {
		t.Errorf("snapshot mutated by later callbacks (held %v)", s.HeldKeys())
	}
}

func TestTracker_ResetBaseline(t *testing.T) {
	tr := NewTracker()
	tr.MouseMove(0, 0)
	tr.MouseMove(10, 10)
	tr.ResetBaseline()
	tr.MouseMove(500, 500)

	s := tr.Snapshot()
	if s.MouseDX != 0 || s.MouseDY != 0 {
		t.Errorf("delta after ResetBaseline != (0,0) (got (%v,%v))", s.MouseDX, s.MouseDY)
	}
}

func TestTracker_ReleaseAll(t *testing.T) {
	tr := NewTracker()
	tr.KeyDown(common.KeyW)
	tr.KeyDown(common.KeyR)
	tr.ReleaseAll()
	if s := tr.Snapshot(); !s.Empty() {
		t.Errorf("snapshot not empty after ReleaseAll (held %v)", s.HeldKeys())
	}
}

func TestSnapshot(t *testing.T) {
	s := NewSnapshot(1, 2, 3, common.KeyD, common.KeyA, common.KeyD)
	if got := s.HeldKeys(); !slices.Equal(got, []uint32{common.KeyA, common.KeyD}) {
		t.Errorf("HeldKeys() != [A D] (got %v)", got)
	}
	if s.Empty() {
		t.Errorf("Empty() == true for a populated snapshot")
	}
	if !(Snapshot{}).Empty() {
		t.Errorf("zero Snapshot not Empty()")
	}
	if (Snapshot{}).Held(common.KeyW) {
		t.Errorf("zero Snapshot reports a held key")
	}
}
