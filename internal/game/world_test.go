package game

import "testing"

func newTestWorld() *World {
	params := NewParameters()
	// Keep random weather out of deterministic assertions.
	params.TsunamiRate = 0
	params.RogueWaveRate = 0
	params.StormRate = 0
	return NewWorld(params, NewEventBus(), 99)
}

func TestWorldUpdateAdvancesClock(t *testing.T) {
	w := newTestWorld()
	w.AddShip(DefaultShipDefinition(vec2{-13, 2}))

	const steps = LowFrequencyPeriod + 1 // cover every low-frequency slot
	for i := 0; i < steps; i++ {
		w.Update()
	}
	want := float32(steps) * float32(SimulationStepDuration)
	if !approxEq(w.CurrentSimTime(), want, 1e-4) {
		t.Errorf("sim time = %v, want %v", w.CurrentSimTime(), want)
	}

	// The ship neither exploded numerically nor left the world.
	ship := w.Ships()[0]
	for i := 0; i < ship.Points.Count(); i++ {
		p := ship.Points.Position[i]
		if p[0] != p[0] || p[1] != p[1] {
			t.Fatalf("point %d position is NaN", i)
		}
		if absF(p[0]) > HalfWorldWidth || absF(p[1]) > MaxWorldHeight/2 {
			t.Fatalf("point %d escaped the world: %v", i, p)
		}
	}
}

func TestWorldShipIDsAreStable(t *testing.T) {
	w := newTestWorld()
	a := w.AddShip(DefaultShipDefinition(vec2{-13, 2}))
	b := w.AddShip(DefaultShipDefinition(vec2{-13, 2}))
	if a.ID != 0 || b.ID != 1 {
		t.Fatalf("ship IDs = %d, %d, want 0, 1", a.ID, b.ID)
	}
}

func TestWorldSingleTargetToolsPreferTopShip(t *testing.T) {
	w := newTestWorld()
	w.AddShip(DefaultShipDefinition(vec2{-13, 2}))
	top := w.AddShip(DefaultShipDefinition(vec2{-13, 2}))

	pos := top.Points.Position[0]
	if !w.ToggleRCBombAt(pos) {
		t.Fatal("toggle hit neither ship")
	}
	if n := len(top.Gadgets.VisualStates(top.Points, nil)); n != 1 {
		t.Errorf("top ship gadget count = %d, want 1", n)
	}
	bottom := w.Ships()[0]
	if n := len(bottom.Gadgets.VisualStates(bottom.Points, nil)); n != 0 {
		t.Errorf("bottom ship gadget count = %d, want 0", n)
	}

	shipID, point := w.QueryNearestPointAt(pos, 1.0)
	if shipID != top.ID || point == NoneIndex {
		t.Errorf("nearest query hit ship %d point %d, want top ship %d", shipID, point, top.ID)
	}
}

func TestWorldAreaToolsHitAllShips(t *testing.T) {
	w := newTestWorld()
	a := w.AddShip(DefaultShipDefinition(vec2{-13, 2}))
	b := w.AddShip(DefaultShipDefinition(vec2{-13, 2}))

	w.DestroyAt(a.Points.Position[0], 0.5)
	if a.Points.IsActive[0] || b.Points.IsActive[0] {
		t.Fatal("area destroy skipped an overlapping ship")
	}
}

func TestWorldNudgeShipAt(t *testing.T) {
	w := newTestWorld()
	ship := w.AddShip(DefaultShipDefinition(vec2{-13, 2}))

	if w.NudgeShipAt(vec2{5000, 5000}, NudgeRadius, vec2{NudgeImpulse, 0}) {
		t.Fatal("nudge reported a hit far from any ship")
	}

	target := ship.Points.Position[0]
	before := ship.Points.Velocity[0]
	if !w.NudgeShipAt(target, NudgeRadius, vec2{NudgeImpulse, 0}) {
		t.Fatal("nudge missed the ship")
	}
	if got := ship.Points.Velocity[0][0] - before[0]; !approxEq(got, NudgeImpulse, 1e-4) {
		t.Errorf("velocity delta = %v, want %v", got, float32(NudgeImpulse))
	}
}

func TestWorldWaveMakerRoundTrip(t *testing.T) {
	w := newTestWorld()
	pos := vec2{100, 30}
	w.AdjustOceanSurfaceTo(&pos)
	if w.OceanSurface().interactiveWave == nil {
		t.Fatal("no interactive wave after engage")
	}
	w.AdjustOceanSurfaceTo(nil)
	if w.OceanSurface().interactiveWave.phase != wavePhaseFall {
		t.Fatal("release did not switch the wave to its fall phase")
	}
}

func TestWorldTriggerStorm(t *testing.T) {
	params := NewParameters()
	params.TsunamiRate = 0
	params.RogueWaveRate = 0
	params.StormRate = 0
	w := NewWorld(params, NewEventBus(), 99)

	w.TriggerStorm()
	// Build phase: rain climbs from zero over the first half minute.
	for i := 0; i < 64*10; i++ {
		w.Update()
	}
	if d := w.Storm().RainDensity(); d <= 0 || d > 1 {
		t.Errorf("rain density %v after 10s of a building storm, want (0,1]", d)
	}
	// The storm boosts the gust-free wind above its configured base.
	if got := w.Wind().BaseSpeedMagnitude(); got <= params.WindSpeedBase {
		t.Errorf("base wind %v not boosted above %v during storm", got, params.WindSpeedBase)
	}
}
