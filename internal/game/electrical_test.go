package game

import "testing"

var diffusePointPositions = vec2s{
	{1, 2},
	{2, 4},
	{10, 5},
	{3, 4},
}

var diffusePointPlanes = []int32{1, 1, 2, 3}

func TestDiffuseLightSingleLamp(t *testing.T) {
	lampPositions := vec2s{{4, 2}}
	lampPlanes := []int32{3}
	lampCoeffs := []float32{0.1}
	lampSpreads := []float32{4.0}

	out := make([]float32, 4)
	DiffuseLight(diffusePointPositions, diffusePointPlanes, 4,
		lampPositions, lampPlanes, lampCoeffs, lampSpreads, 1, out)

	want := []float32{0.1, 0.1171573, 0.0, 0.17639320225}
	for i := range want {
		if !approxEq(out[i], want[i], 0.001) {
			t.Errorf("point %d light = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestDiffuseLightMultiLamp(t *testing.T) {
	// Three lamps: one occluded everywhere (plane below every point), one
	// close and bright (clamps point 1 to full), and the single-lamp one.
	lampPositions := vec2s{{4, 2}, {1, 2}, {2, 4}}
	lampPlanes := []int32{3, 0, 2}
	lampCoeffs := []float32{0.1, 1.0, 0.2}
	lampSpreads := []float32{4.0, 10.0, 6.0}

	out := make([]float32, 4)
	DiffuseLight(diffusePointPositions, diffusePointPlanes, 4,
		lampPositions, lampPlanes, lampCoeffs, lampSpreads, 3, out)

	want := []float32{
		0.7527864,     // lamp 2 beats lamp 0; lamp 1 occluded
		1.0,           // lamp 2 at zero distance, clamped
		0.0,           // every reachable lamp too far
		0.17639320225, // only lamp 0 on a high enough plane
	}
	for i := range want {
		if !approxEq(out[i], want[i], 0.001) {
			t.Errorf("point %d light = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestDiffuseLightNoLampsClears(t *testing.T) {
	ship := BuildShip(DefaultShipDefinition(vec2{0, 0}), 0, NewParameters(), NewEventBus(), NewRand(1))
	points := ship.Points
	for i := range points.Light {
		points.Light[i] = 0.5
	}
	// Fresh elements have zero intensity, so no lamp qualifies yet.
	ship.Electrical.DiffuseLightOnto(points)
	for i := range points.Light {
		if points.Light[i] != 0 {
			t.Fatalf("point %d light = %v, want 0 with no lit lamps", i, points.Light[i])
		}
	}
}

func TestElectricalPowerFlood(t *testing.T) {
	params := NewParameters()
	ship := BuildShip(DefaultShipDefinition(vec2{0, 0}), 0, params, NewEventBus(), NewRand(1))
	elec := ship.Electrical

	var lamps, generators int
	for i := 0; i < elec.Count(); i++ {
		switch elec.Material[i].Kind {
		case ElectricalLamp:
			lamps++
		case ElectricalGenerator:
			generators++
		}
	}
	if lamps == 0 || generators == 0 {
		t.Fatalf("default ship has %d lamps and %d generators, want both > 0", lamps, generators)
	}

	// Cables connect every lamp to the generator, so all of them power up.
	elec.Update(ship, params, ship.rng, false)
	for i := 0; i < elec.Count(); i++ {
		if elec.Material[i].Kind == ElectricalLamp && !elec.IsPowered[i] {
			t.Errorf("lamp %d on host %d unpowered on an intact ship", i, elec.HostPoint[i])
		}
	}

	// Intensity eases toward full over repeated updates.
	for step := 0; step < 200; step++ {
		elec.Update(ship, params, ship.rng, false)
	}
	for i := 0; i < elec.Count(); i++ {
		if elec.Material[i].Kind == ElectricalLamp && elec.Intensity[i] < 0.95 {
			t.Errorf("lamp %d intensity = %v after settling, want near 1", i, elec.Intensity[i])
		}
	}
}

func TestElectricalFailedGeneratorCutsPower(t *testing.T) {
	params := NewParameters()
	ship := BuildShip(DefaultShipDefinition(vec2{0, 0}), 0, params, NewEventBus(), NewRand(1))
	elec := ship.Electrical

	for i := 0; i < elec.Count(); i++ {
		if elec.Material[i].Kind == ElectricalGenerator {
			elec.IsFailed[i] = true
		}
	}
	elec.Update(ship, params, ship.rng, false)
	for i := 0; i < elec.Count(); i++ {
		if elec.Material[i].Kind == ElectricalLamp && elec.IsPowered[i] {
			t.Errorf("lamp %d still powered with every generator failed", i)
		}
	}
}
