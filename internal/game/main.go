//go:build !android

package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		panic(fmt.Errorf("gl init: %w", err))
	}

	params := NewParameters()
	eventBus := NewEventBus()

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	} else {
		WireAudio(eventBus, params)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SHIPSIM_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	// GL state.
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.PROGRAM_POINT_SIZE)

	world := NewWorld(params, eventBus, seed)
	world.AddShip(DefaultShipDefinition(vec2{-13, 2}))

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	session := NewGameSession()
	input := NewInput()
	frameRng := NewRand(splitmix64(seed))

	cam := Camera{
		X:    0,
		Y:    10,
		Zoom: DefaultZoom,
	}
	// Detonations rattle the camera a little.
	eventBus.Subscribe(EventBombDetonated, func(ev Event) {
		cam.AddShake(0.6, 0.4)
	})
	// Blasts near the waterline kick up a surface disturbance.
	eventBus.Subscribe(EventExplosion, func(ev Event) {
		radius := float32(ev.Data)
		if ev.Y > -radius && ev.Y < radius {
			world.DisplaceOceanSurfaceAt(ev.X, radius*0.5)
		}
	})

	// Reusable render buffers.
	var triBuf, springBuf, oceanBuf, floorBuf, sampleBuf, rainBuf, sparkBuf []float32
	var spriteBuf, glowBuf, gadgetBuf []float32
	var gadgetVisuals []GadgetVisual

	var accumulator float32
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		frameDt := float32(now - last)
		last = now
		if frameDt > 0.1 {
			frameDt = 0.1
		}

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
			continue
		}

		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}

		HandleToolSelection(window, input, session)
		if input.JustPressed(window, glfw.KeySpace) {
			session.Paused = !session.Paused
		}
		if input.JustPressed(window, glfw.KeyT) {
			world.TriggerTsunami()
		}
		if input.JustPressed(window, glfw.KeyG) {
			world.TriggerRogueWave()
		}
		if input.JustPressed(window, glfw.KeyB) {
			world.TriggerStorm()
		}
		if input.JustPressed(window, glfw.KeyX) {
			world.DetonateRCBombs()
		}
		if input.JustPressed(window, glfw.KeyZ) {
			world.DetonateAntiMatterBombs()
		}
		UpdateCameraPanZoom(&cam, window, frameDt, fbW, fbH)

		cursor := CursorWorldPos(window, cam, fbW, fbH)
		held := window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press
		justClicked := input.JustClicked(window, glfw.MouseButtonLeft)

		if input.JustPressed(window, glfw.KeyN) {
			world.ApplyThanosSnapAt(cursor[0])
		}
		if input.JustPressed(window, glfw.KeyLeft) {
			world.NudgeShipAt(cursor, NudgeRadius, vec2{-NudgeImpulse, 0})
		}
		if input.JustPressed(window, glfw.KeyRight) {
			world.NudgeShipAt(cursor, NudgeRadius, vec2{NudgeImpulse, 0})
		}
		if input.JustPressed(window, glfw.KeyUp) {
			world.NudgeShipAt(cursor, NudgeRadius, vec2{0, NudgeImpulse})
		}

		// Fixed-step simulation: the tool applies once per step so stroke
		// tools cut at simulation rate, not frame rate.
		if !session.Paused {
			accumulator += frameDt
			for accumulator >= float32(SimulationStepDuration) {
				ApplyTool(world, session, cursor, held, justClicked)
				justClicked = false
				world.Update()
				accumulator -= float32(SimulationStepDuration)
			}
		} else {
			ApplyTool(world, session, cursor, held, justClicked)
		}

		cam.UpdateShake(frameDt, seed^uint64(now*1000))
		renderCam := cam
		renderCam.X, renderCam.Y = cam.EffectivePos()

		skyR, skyG, skyB := SkyClearColor(world.Storm())
		gl.ClearColor(skyR, skyG, skyB, 1.0)
		rend.BeginFrame(renderCam, fbW, fbH)

		halfW := float32(fbW) / (2 * renderCam.Zoom)
		startX := renderCam.X - halfW
		endX := renderCam.X + halfW
		bottomY := renderCam.Y - float32(fbH)/(2*renderCam.Zoom) - 10

		// Background: stars, clouds, ocean, floor.
		glowBuf = StarSprites(world.Stars(), glowBuf)
		rend.DrawGlowSprites(glowBuf, renderCam, fbW, fbH)
		spriteBuf = CloudSprites(world.Clouds(), spriteBuf)
		rend.DrawSprites(spriteBuf, renderCam, fbW, fbH, false)

		sampleBuf, oceanBuf = OceanStripVerts(world.OceanSurface(), startX, endX, bottomY, sampleBuf, oceanBuf)
		rend.DrawStrip(oceanBuf, renderCam, fbW, fbH)
		floorBuf = FloorStripVerts(world.OceanFloor(), startX, endX, bottomY, floorBuf)
		rend.DrawStrip(floorBuf, renderCam, fbW, fbH)

		spriteBuf = FishSprites(world.Fishes(), spriteBuf)
		rend.DrawSprites(spriteBuf, renderCam, fbW, fbH, false)

		// Ships, back to front in add order.
		for _, s := range world.Ships() {
			triBuf = s.TriangleVerts(triBuf)
			rend.DrawTrianglesBlend(triBuf, renderCam, fbW, fbH)
			springBuf = s.SpringVerts(springBuf)
			rend.DrawLines(springBuf, renderCam, fbW, fbH)
			spriteBuf = s.LoosePointSprites(spriteBuf)
			rend.DrawSprites(spriteBuf, renderCam, fbW, fbH, false)

			glowBuf = s.LampGlowSprites(glowBuf)
			rend.DrawGlowSprites(glowBuf, renderCam, fbW, fbH)
			glowBuf = s.FireGlowSprites(glowBuf)
			rend.DrawGlowSprites(glowBuf, renderCam, fbW, fbH)

			sparkBuf = s.SparkVerts(sparkBuf)
			rend.DrawLines(sparkBuf, renderCam, fbW, fbH)

			gadgetVisuals = s.Gadgets.VisualStates(s.Points, gadgetVisuals)
			flash := float32(now*2) - float32(int(now*2))
			gadgetBuf = s.GadgetSprites(gadgetVisuals, flash, gadgetBuf)
			rend.DrawSprites(gadgetBuf, renderCam, fbW, fbH, false)

			spriteBuf = EphemeraSprites(s.ephemera, spriteBuf)
			rend.DrawSprites(spriteBuf, renderCam, fbW, fbH, false)
		}

		// Weather overlay.
		rainBuf = RainVerts(world.Storm(), world.Wind(), renderCam, fbW, fbH, frameRng, rainBuf)
		rend.DrawLines(rainBuf, renderCam, fbW, fbH)

		window.SwapBuffers()
	}
}
