//go:build !android

package game

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Input struct {
	prevMouse map[glfw.MouseButton]bool
	prevKeys  map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
		prevKeys:  make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func (in *Input) JustClicked(window *glfw.Window, btn glfw.MouseButton) bool {
	down := window.GetMouseButton(btn) == glfw.Press
	jp := down && !in.prevMouse[btn]
	in.prevMouse[btn] = down
	return jp
}

// CursorWorldPos converts cursor position to world coordinates. The world
// y axis points up while window y grows downward.
func CursorWorldPos(window *glfw.Window, cam Camera, fbW, fbH int) vec2 {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 {
		return vec2{cam.X, cam.Y}
	}
	scaleX := float64(fbW) / float64(winW)
	scaleY := float64(fbH) / float64(winH)
	fx := float32(cx * scaleX)
	fy := float32(cy * scaleY)
	wx := cam.X + (fx-float32(fbW)*0.5)/cam.Zoom
	wy := cam.Y - (fy-float32(fbH)*0.5)/cam.Zoom
	return vec2{wx, wy}
}

// toolForKey maps number row keys to tools, two banks toggled by shift.
func toolForKey(window *glfw.Window, key glfw.Key) (Tool, bool) {
	shift := window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		window.GetKey(glfw.KeyRightShift) == glfw.Press
	base := map[glfw.Key]Tool{
		glfw.Key1: ToolDestroy,
		glfw.Key2: ToolRepair,
		glfw.Key3: ToolSaw,
		glfw.Key4: ToolHeatBlaster,
		glfw.Key5: ToolChillBlaster,
		glfw.Key6: ToolAttract,
		glfw.Key7: ToolSwirl,
		glfw.Key8: ToolFlood,
		glfw.Key9: ToolScrub,
		glfw.Key0: ToolSpark,
	}
	shifted := map[glfw.Key]Tool{
		glfw.Key1: ToolWaveMaker,
		glfw.Key2: ToolImpactBomb,
		glfw.Key3: ToolTimerBomb,
		glfw.Key4: ToolRCBomb,
		glfw.Key5: ToolAntiMatterBomb,
		glfw.Key6: ToolPhysicsProbe,
	}
	if shift {
		t, ok := shifted[key]
		return t, ok
	}
	t, ok := base[key]
	return t, ok
}

// HandleToolSelection updates the armed tool from the keyboard.
func HandleToolSelection(window *glfw.Window, in *Input, session *GameSession) {
	for key := glfw.Key0; key <= glfw.Key9; key++ {
		if in.JustPressed(window, key) {
			if t, ok := toolForKey(window, key); ok {
				session.Tool = t
				PlaySoundWithGain(SoundSwitch, 0.5)
			}
		}
	}
}

// ApplyTool runs the armed tool against the world. held is true while the
// primary button stays down; justClicked marks the press edge.
func ApplyTool(world *World, session *GameSession, pos vec2, held, justClicked bool) {
	if !held {
		session.EndStroke()
		if session.waveEngaged {
			world.AdjustOceanSurfaceTo(nil)
			session.waveEngaged = false
		}
		return
	}

	params := world.Params()
	switch session.Tool {
	case ToolDestroy:
		world.DestroyAt(pos, params.DestroyRadius)
	case ToolRepair:
		world.RepairAt(pos, params.RepairRadius)
	case ToolSaw:
		prev, continuing := session.BeginStroke(pos)
		if continuing {
			world.SawThrough(prev, pos)
		}
	case ToolHeatBlaster:
		world.ApplyHeatBlasterAt(pos, params.HeatBlasterRadius, params.HeatBlasterHeatFlow)
	case ToolChillBlaster:
		world.ApplyHeatBlasterAt(pos, params.HeatBlasterRadius, -params.HeatBlasterHeatFlow)
	case ToolAttract:
		world.DrawTo(pos, 40.0)
	case ToolSwirl:
		world.SwirlAt(pos, 40.0)
	case ToolFlood:
		world.FloodAt(pos, 2.5, params.InjectPressureQuantity)
	case ToolScrub:
		prev, continuing := session.BeginStroke(pos)
		if continuing {
			world.ScrubThrough(prev, pos, 1.5)
		}
	case ToolSpark:
		world.ApplySparkAt(pos, justClicked)
	case ToolWaveMaker:
		world.AdjustOceanSurfaceTo(&pos)
		session.waveEngaged = true
	case ToolImpactBomb:
		if justClicked {
			world.ToggleImpactBombAt(pos)
		}
	case ToolTimerBomb:
		if justClicked {
			world.ToggleTimerBombAt(pos)
		}
	case ToolRCBomb:
		if justClicked {
			world.ToggleRCBombAt(pos)
		}
	case ToolAntiMatterBomb:
		if justClicked {
			world.ToggleAntiMatterBombAt(pos)
		}
	case ToolPhysicsProbe:
		if justClicked {
			world.TogglePhysicsProbeAt(pos)
		}
	}
}

// UpdateCameraPanZoom handles WASD panning and E/R zoom.
func UpdateCameraPanZoom(cam *Camera, window *glfw.Window, dt float32, fbW, fbH int) {
	panSpeed := 400.0 / cam.Zoom
	if window.GetKey(glfw.KeyA) == glfw.Press {
		cam.X -= panSpeed * dt
	}
	if window.GetKey(glfw.KeyD) == glfw.Press {
		cam.X += panSpeed * dt
	}
	if window.GetKey(glfw.KeyW) == glfw.Press {
		cam.Y += panSpeed * dt
	}
	if window.GetKey(glfw.KeyS) == glfw.Press {
		cam.Y -= panSpeed * dt
	}
	zoomRate := float32(1.4)
	if window.GetKey(glfw.KeyE) == glfw.Press {
		cam.Zoom *= expF(zoomRate * dt)
	}
	if window.GetKey(glfw.KeyR) == glfw.Press {
		cam.Zoom *= expF(-zoomRate * dt)
	}
	cam.Clamp(fbW, fbH)
}
