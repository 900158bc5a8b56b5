package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActorMove(t *testing.T) {
	tests := []struct {
		name  string
		id    PlayerID
		start Vec2
		in    Snapshot
		want  Vec2
	}{
		{"A wasd up", PlayerA, Vec2{}, SnapshotOf(MoveUpA), Vec2{Y: 0.01}},
		{"A wasd ignores border", PlayerA, Vec2{X: 0.95}, SnapshotOf(MoveRightA), Vec2{X: 0.96}},
		{"A wasd may leave the square", PlayerA, Vec2{X: 1.2}, SnapshotOf(MoveRightA), Vec2{X: 1.21}},
		{"A arrows inside guard", PlayerA, Vec2{X: 0.85}, SnapshotOf(AltRightA), Vec2{X: 0.86}},
		{"A arrows blocked at guard", PlayerA, Vec2{X: 0.95}, SnapshotOf(AltRightA), Vec2{X: 0.95}},
		{"A arrows blocked low edge", PlayerA, Vec2{Y: -0.95}, SnapshotOf(AltDownA), Vec2{Y: -0.95}},
		{"A arrows move back inward", PlayerA, Vec2{X: 1.5}, SnapshotOf(AltLeftA), Vec2{X: 1.49}},
		{"A both sets stack", PlayerA, Vec2{}, SnapshotOf(MoveUpA, AltUpA), Vec2{Y: 0.02}},
		{"B guarded right", PlayerB, Vec2{X: 0.95}, SnapshotOf(MoveRightB), Vec2{X: 0.95}},
		{"B guarded left allowed", PlayerB, Vec2{X: 0.95}, SnapshotOf(MoveLeftB), Vec2{X: 0.94}},
		{"B ignores A keys", PlayerB, Vec2{}, SnapshotOf(MoveUpA, AltUpA), Vec2{}},
		{"opposites cancel", PlayerB, Vec2{}, SnapshotOf(MoveUpB, MoveDownB), Vec2{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewActor(tt.id)
			a.Pos = tt.start
			a.Move(tt.in)
			assert.InDelta(t, tt.want.X, a.Pos.X, 1e-9)
			assert.InDelta(t, tt.want.Y, a.Pos.Y, 1e-9)
		})
	}
}

func TestNewActorSpawns(t *testing.T) {
	assert.Equal(t, Vec2{}, NewActor(PlayerA).Pos)
	assert.Equal(t, Vec2{X: 0.5, Y: 0.5}, NewActor(PlayerB).Pos)
	assert.Len(t, NewActor(PlayerA).Bindings, 2)
	assert.Len(t, NewActor(PlayerB).Bindings, 1)
}
