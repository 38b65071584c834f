package game

import "testing"

func TestFloodAtSkipsHull(t *testing.T) {
	ship := newTestShip(t)
	points := ship.Points

	// Flood the whole ship footprint.
	if !ship.FloodAt(vec2{12, 6}, 30, 2.0) {
		t.Fatal("flood touched nothing")
	}
	for i := int32(0); i < int32(points.Count()); i++ {
		if points.Material[i].IsHull {
			if points.Water[i] != 0 {
				t.Fatalf("hull point %d took water: %v", i, points.Water[i])
			}
		} else if points.Water[i] != 2.0 {
			t.Fatalf("interior point %d water = %v, want 2", i, points.Water[i])
		}
	}

	// Water adds inertia.
	for i := int32(0); i < int32(points.Count()); i++ {
		if points.Material[i].IsHull {
			continue
		}
		if points.AugmentedMass[i] <= points.Mass[i] {
			t.Fatalf("point %d augmented mass %v not above dry mass %v",
				i, points.AugmentedMass[i], points.Mass[i])
		}
	}

	// Draining clamps at empty.
	ship.FloodAt(vec2{12, 6}, 30, -5.0)
	for i := int32(0); i < int32(points.Count()); i++ {
		if points.Water[i] != 0 {
			t.Fatalf("point %d water = %v after draining, want 0", i, points.Water[i])
		}
	}
}

func TestWaterDiffusionConserves(t *testing.T) {
	params := NewParameters()
	ship := newTestShip(t)
	points := ship.Points

	var wet int32 = NoneIndex
	for i := int32(0); i < int32(points.Count()); i++ {
		if !points.Material[i].IsHull {
			wet = i
			break
		}
	}
	points.Water[wet] = 3.0
	var before float32
	for i := range points.Water {
		before += points.Water[i]
	}

	for step := 0; step < 64; step++ {
		ship.updateWaterVelocities(params, float32(SimulationStepDuration))
	}

	var after float32
	spread := 0
	for i := range points.Water {
		after += points.Water[i]
		if points.Water[i] > 0 {
			spread++
		}
	}
	if !approxEq(after, before, 1e-2) {
		t.Errorf("total water %v, want %v (diffusion must conserve)", after, before)
	}
	if spread < 2 {
		t.Error("water never left its starting particle")
	}
	for i := range points.Water {
		if points.Water[i] < 0 {
			t.Fatalf("point %d water went negative: %v", i, points.Water[i])
		}
	}
}

func TestSinkingHysteresis(t *testing.T) {
	ship := newTestShip(t)
	points := ship.Points

	began, ended := 0, 0
	ship.eventBus.Subscribe(EventSinkingBegin, func(Event) { began++ })
	ship.eventBus.Subscribe(EventSinkingEnd, func(Event) { ended++ })

	// Wet just under the high watermark: still not sinking.
	n := points.Count()
	limit := int(SinkingWetPointsHighWatermark*float32(n)) - 1
	for i := 0; i < limit; i++ {
		points.Water[i] = WetThreshold
	}
	ship.updateSinking()
	if ship.isSinking {
		t.Fatal("sinking below the high watermark")
	}

	// Over the watermark: sinking begins, once.
	for i := 0; i < n*4/10; i++ {
		points.Water[i] = WetThreshold
	}
	ship.updateSinking()
	ship.updateSinking()
	if !ship.isSinking || began != 1 {
		t.Fatalf("sinking=%v beginEvents=%d, want true and 1", ship.isSinking, began)
	}

	// Drying to between the watermarks keeps the sinking state (hysteresis).
	for i := range points.Water {
		points.Water[i] = 0
	}
	for i := 0; i < n*2/10; i++ {
		points.Water[i] = WetThreshold
	}
	ship.updateSinking()
	if !ship.isSinking {
		t.Fatal("sinking dropped between the watermarks")
	}

	// Below the low watermark: recovery.
	for i := range points.Water {
		points.Water[i] = 0
	}
	ship.updateSinking()
	if ship.isSinking || ended != 1 {
		t.Fatalf("sinking=%v endEvents=%d, want false and 1", ship.isSinking, ended)
	}
}

func TestScrubRestoresDecay(t *testing.T) {
	ship := newTestShip(t)
	points := ship.Points
	points.Decay[0] = 0.3
	pos := points.Position[0]

	if !ship.ScrubThrough(pos.Sub(vec2{1, 0}), pos.Add(vec2{1, 0}), 0.5) {
		t.Fatal("scrub touched nothing")
	}
	if points.Decay[0] != 1.0 {
		t.Errorf("decay = %v after scrub, want 1", points.Decay[0])
	}
	// Scrubbing clean structure reports no work.
	if ship.ScrubThrough(pos.Sub(vec2{1, 0}), pos.Add(vec2{1, 0}), 0.5) {
		t.Error("scrub reported work on clean structure")
	}
}

func TestDistanceToSegment(t *testing.T) {
	cases := []struct {
		p, a, b vec2
		want    float32
	}{
		{vec2{0, 1}, vec2{-1, 0}, vec2{1, 0}, 1},   // above the middle
		{vec2{3, 0}, vec2{-1, 0}, vec2{1, 0}, 2},   // past the end
		{vec2{0, 0}, vec2{0, 0}, vec2{0, 0}, 0},    // degenerate segment
		{vec2{-2, 2}, vec2{-1, 0}, vec2{1, 0}, sqrtF(5)}, // past the start
	}
	for i, c := range cases {
		if got := distanceToSegment(c.p, c.a, c.b); !approxEq(got, c.want, 1e-5) {
			t.Errorf("case %d: distance = %v, want %v", i, got, c.want)
		}
	}
}
