//go:build !android

package game

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

const (
	// Streaming buffer limits (vertices per draw call).
	MaxPrimVerts    = 1 << 18
	MaxSpriteRender = 1 << 16
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

type Renderer struct {
	// Primitive program: triangles, lines, strips.
	primProg uint32
	primVAO  uint32
	primVBO  uint32

	pUCamera     int32
	pUZoom       int32
	pUResolution int32

	// Point-sprite program.
	spriteProg uint32
	spriteVAO  uint32
	spriteVBO  uint32

	spUCamera     int32
	spUZoom       int32
	spUResolution int32

	// Glow (radial light) program — uses spriteVAO, additive blend only.
	glowProg        uint32
	glowUCamera     int32
	glowUZoom       int32
	glowUResolution int32
}

func NewRenderer() (*Renderer, error) {
	primProg, err := linkProgram(primVertSrc, primFragSrc)
	if err != nil {
		return nil, fmt.Errorf("prim program: %w", err)
	}
	spriteProg, err := linkProgram(spriteVertSrc, spriteFragSrc)
	if err != nil {
		gl.DeleteProgram(primProg)
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	glowProg, err := linkProgram(spriteVertSrc, glowFragSrc)
	if err != nil {
		gl.DeleteProgram(primProg)
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("glow program: %w", err)
	}

	r := &Renderer{
		primProg:   primProg,
		spriteProg: spriteProg,
		glowProg:   glowProg,
	}

	// Primitive VAO/VBO: streaming buffer of (x, y, r, g, b, a) vertices.
	var pVAO, pVBO uint32
	gl.GenVertexArrays(1, &pVAO)
	gl.GenBuffers(1, &pVBO)
	gl.BindVertexArray(pVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, pVBO)

	primStride := int32(6 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxPrimVerts*int(primStride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, primStride, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, primStride, glOffset(2*4))
	r.primVAO = pVAO
	r.primVBO = pVBO

	gl.UseProgram(primProg)
	r.pUCamera = gl.GetUniformLocation(primProg, gl.Str("uCamera\x00"))
	r.pUZoom = gl.GetUniformLocation(primProg, gl.Str("uZoom\x00"))
	r.pUResolution = gl.GetUniformLocation(primProg, gl.Str("uResolution\x00"))

	// Sprite VAO/VBO: streaming buffer for point sprites.
	// Each sprite: 7 floats (x, y, size, r, g, b, a).
	var sVAO, sVBO uint32
	gl.GenVertexArrays(1, &sVAO)
	gl.GenBuffers(1, &sVBO)
	gl.BindVertexArray(sVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, sVBO)

	stride := int32(7 * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxSpriteRender*int(stride), nil, gl.STREAM_DRAW)
	// aWorldPos (vec2)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	// aSize (float)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, stride, glOffset(2*4))
	// aColor (vec4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(3*4))
	r.spriteVAO = sVAO
	r.spriteVBO = sVBO

	gl.UseProgram(spriteProg)
	r.spUCamera = gl.GetUniformLocation(spriteProg, gl.Str("uCamera\x00"))
	r.spUZoom = gl.GetUniformLocation(spriteProg, gl.Str("uZoom\x00"))
	r.spUResolution = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))

	gl.UseProgram(glowProg)
	r.glowUCamera = gl.GetUniformLocation(glowProg, gl.Str("uCamera\x00"))
	r.glowUZoom = gl.GetUniformLocation(glowProg, gl.Str("uZoom\x00"))
	r.glowUResolution = gl.GetUniformLocation(glowProg, gl.Str("uResolution\x00"))

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	for _, id := range []uint32{r.primVBO, r.spriteVBO} {
		if id != 0 {
			gl.DeleteBuffers(1, &id)
		}
	}
	for _, id := range []uint32{r.primVAO, r.spriteVAO} {
		if id != 0 {
			gl.DeleteVertexArrays(1, &id)
		}
	}
	for _, id := range []uint32{r.primProg, r.spriteProg, r.glowProg} {
		if id != 0 {
			gl.DeleteProgram(id)
		}
	}
}

func (r *Renderer) BeginFrame(cam Camera, fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.primProg)
	gl.Uniform2f(r.pUCamera, cam.X, cam.Y)
	gl.Uniform1f(r.pUZoom, cam.Zoom)
	gl.Uniform2f(r.pUResolution, float32(fbW), float32(fbH))
}

// drawPrim streams colored vertices and draws them with the given mode.
// buf format: [x, y, r, g, b, a] * N (6 floats per vertex).
func (r *Renderer) drawPrim(buf []float32, cam Camera, fbW, fbH int, mode uint32) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 6
	if count > MaxPrimVerts {
		count = MaxPrimVerts
	}

	gl.UseProgram(r.primProg)
	gl.BindVertexArray(r.primVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.primVBO)

	gl.Uniform2f(r.pUCamera, cam.X, cam.Y)
	gl.Uniform1f(r.pUZoom, cam.Zoom)
	gl.Uniform2f(r.pUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferData(gl.ARRAY_BUFFER, count*6*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawTrianglesBlend renders alpha-blended filled triangles.
func (r *Renderer) DrawTrianglesBlend(buf []float32, cam Camera, fbW, fbH int) {
	r.drawPrim(buf, cam, fbW, fbH, gl.TRIANGLES)
}

// DrawLines renders independent line segments (two vertices each).
func (r *Renderer) DrawLines(buf []float32, cam Camera, fbW, fbH int) {
	r.drawPrim(buf, cam, fbW, fbH, gl.LINES)
}

// DrawStrip renders a triangle strip (ocean and floor bands).
func (r *Renderer) DrawStrip(buf []float32, cam Camera, fbW, fbH int) {
	r.drawPrim(buf, cam, fbW, fbH, gl.TRIANGLE_STRIP)
}

// DrawSprites renders an array of point sprites using the sprite program.
// buf format: [x, y, size, r, g, b, a] * N (7 floats per sprite).
// additive: true = additive blend, false = standard alpha blend.
func (r *Renderer) DrawSprites(buf []float32, cam Camera, fbW, fbH int, additive bool) {
	if len(buf) == 0 {
		return
	}

	count := len(buf) / 7
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.spUCamera, cam.X, cam.Y)
	gl.Uniform1f(r.spUZoom, cam.Zoom)
	gl.Uniform2f(r.spUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	if additive {
		gl.BlendFunc(gl.ONE, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}

	gl.BufferData(gl.ARRAY_BUFFER, count*7*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}

// DrawGlowSprites renders light sprites with additive blending and radial falloff.
// buf format: same as DrawSprites — [x, y, size, r, g, b, a] * N.
// RGB values should be pre-multiplied by desired brightness.
func (r *Renderer) DrawGlowSprites(buf []float32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}
	count := len(buf) / 7
	if count > MaxSpriteRender {
		count = MaxSpriteRender
	}
	gl.UseProgram(r.glowProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)
	gl.Uniform2f(r.glowUCamera, cam.X, cam.Y)
	gl.Uniform1f(r.glowUZoom, cam.Zoom)
	gl.Uniform2f(r.glowUResolution, float32(fbW), float32(fbH))
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE)
	gl.BufferData(gl.ARRAY_BUFFER, count*7*4, gl.Ptr(buf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(count))
	gl.Disable(gl.BLEND)
}
