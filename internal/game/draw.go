package game

// VisualID names what a draw request looks like. Frontends own the mapping
// from visual to pixels or glyphs.
type VisualID uint8

const (
	VisualBackground VisualID = iota
	VisualPlayerA
	VisualPlayerB
	VisualEnemy0
	VisualEnemy1
	VisualEnemy2
	VisualBullet
	VisualAxe
	VisualCount
)

var visualNames = [VisualCount]string{
	VisualBackground: "background",
	VisualPlayerA:    "playerA",
	VisualPlayerB:    "playerB",
	VisualEnemy0:     "enemy0",
	VisualEnemy1:     "enemy1",
	VisualEnemy2:     "enemy2",
	VisualBullet:     "bullet",
	VisualAxe:        "axe",
}

func (v VisualID) String() string {
	if v < VisualCount {
		return visualNames[v]
	}
	return "unknown"
}

// DrawRequest asks the renderer to draw one visual at a position offset.
type DrawRequest struct {
	Offset Vec2
	Visual VisualID
}

// Frame is what one tick hands back to the frontend. Draws is reused by
// the next Tick; copy it to keep it.
type Frame struct {
	Draws []DrawRequest
	Score int
	Over  bool
	// Result is only meaningful when Over is set.
	Result Result
}
