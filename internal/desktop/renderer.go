package desktop

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"mysticbrawl/internal/game"
	"mysticbrawl/internal/palette"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Renderer draws a frame's draw requests as styled quads.
type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uOffset int32
	uScale  int32
	uShake  int32
	uColor  int32
	uAccent int32
	uShape  int32
	uTime   int32

	styles *palette.Table
}

func NewRenderer(styles *palette.Table) (*Renderer, error) {
	prog, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}
	r := &Renderer{prog: prog, styles: styles}

	// Unit quad (6 vertices, 2 triangles) spanning -1..1.
	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	quadVerts := [12]float32{
		-1, -1, 1, -1, 1, 1,
		-1, -1, 1, 1, -1, 1,
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVerts)*4, gl.Ptr(&quadVerts[0]), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, glOffset(0))

	gl.UseProgram(prog)
	r.uOffset = gl.GetUniformLocation(prog, gl.Str("uOffset\x00"))
	r.uScale = gl.GetUniformLocation(prog, gl.Str("uScale\x00"))
	r.uShake = gl.GetUniformLocation(prog, gl.Str("uShake\x00"))
	r.uColor = gl.GetUniformLocation(prog, gl.Str("uColor\x00"))
	r.uAccent = gl.GetUniformLocation(prog, gl.Str("uAccent\x00"))
	r.uShape = gl.GetUniformLocation(prog, gl.Str("uShape\x00"))
	r.uTime = gl.GetUniformLocation(prog, gl.Str("uTime\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
}

// BeginFrame clears to the background accent so shake never shows a gap.
func (r *Renderer) BeginFrame(fbW, fbH int, now float64, cam *Camera) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb := r.styles.For(game.VisualBackground).Accent.Floats()
	gl.ClearColor(cr, cg, cb, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.Uniform1f(r.uTime, float32(now))
	gl.Uniform2f(r.uShake, float32(cam.ShakeX), float32(cam.ShakeY))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// Draw renders the requests in order; later requests paint over earlier ones.
func (r *Renderer) Draw(draws []game.DrawRequest) {
	for _, d := range draws {
		s := r.styles.For(d.Visual)
		cr, cg, cb := s.Color.Floats()
		ar, ag, ab := s.Accent.Floats()
		gl.Uniform2f(r.uOffset, float32(d.Offset.X), float32(d.Offset.Y))
		gl.Uniform1f(r.uScale, float32(s.Size))
		gl.Uniform3f(r.uColor, cr, cg, cb)
		gl.Uniform3f(r.uAccent, ar, ag, ab)
		gl.Uniform1i(r.uShape, int32(s.Shape))
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}
}

func (r *Renderer) EndFrame() {
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(0)
}
