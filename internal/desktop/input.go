package desktop

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"mysticbrawl/internal/game"
)

type binding struct {
	key    glfw.Key
	action game.Action
}

// keymap is the physical layout. Player A moves with WASD or the arrows
// and fires with Z (forward) and X (reverse); player B moves with IJKL and
// fires with P (left) and O (right).
var keymap = []binding{
	{glfw.KeyW, game.MoveUpA},
	{glfw.KeyS, game.MoveDownA},
	{glfw.KeyA, game.MoveLeftA},
	{glfw.KeyD, game.MoveRightA},
	{glfw.KeyUp, game.AltUpA},
	{glfw.KeyDown, game.AltDownA},
	{glfw.KeyLeft, game.AltLeftA},
	{glfw.KeyRight, game.AltRightA},
	{glfw.KeyI, game.MoveUpB},
	{glfw.KeyK, game.MoveDownB},
	{glfw.KeyJ, game.MoveLeftB},
	{glfw.KeyL, game.MoveRightB},
	{glfw.KeyZ, game.FireForwardA},
	{glfw.KeyX, game.FireReverseA},
	{glfw.KeyP, game.FireLeftB},
	{glfw.KeyO, game.FireRightB},
	{glfw.KeyEscape, game.Quit},
}

// pollInput samples the held state of every bound key. Edge detection
// lives in the core's fire latches, so this only reports levels.
func pollInput(window *glfw.Window) game.Snapshot {
	var in game.Snapshot
	for _, b := range keymap {
		if window.GetKey(b.key) == glfw.Press {
			in = in.With(b.action)
		}
	}
	if window.ShouldClose() {
		in = in.With(game.Quit)
	}
	return in
}
