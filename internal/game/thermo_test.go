package game

import "testing"

func TestAddHeatRaisesTemperature(t *testing.T) {
	ship := newTestShip(t)
	points := ship.Points
	before := points.Temperature[0]
	points.AddHeat(0, 1000)
	want := before + 1000/(points.Material[0].SpecificHeat*points.Mass[0])
	if !approxEq(points.Temperature[0], want, 1e-3) {
		t.Errorf("temperature = %v, want %v", points.Temperature[0], want)
	}
}

func TestPropagateHeatFlowsDownGradient(t *testing.T) {
	params := NewParameters()
	ship := newTestShip(t)
	points := ship.Points

	// An iron particle, so a single step moves a measurable amount of heat.
	hot := NoneIndex
	for i := int32(0); i < int32(points.Count()); i++ {
		if points.Material[i].ThermalConductivity > 1 {
			hot = i
			break
		}
	}
	if hot == NoneIndex {
		t.Fatal("default ship has no conductive particle")
	}
	points.Temperature[hot] = 800
	cold := ship.Springs.OtherEndpoint(points.ConnectedSprings[hot][0], hot)
	coldBefore := points.Temperature[cold]
	hotBefore := points.Temperature[hot]

	ship.propagateHeat(params, float32(SimulationStepDuration))

	if points.Temperature[hot] >= hotBefore {
		t.Errorf("hot endpoint did not cool: %v -> %v", hotBefore, points.Temperature[hot])
	}
	if points.Temperature[cold] <= coldBefore {
		t.Errorf("cold endpoint did not warm: %v -> %v", coldBefore, points.Temperature[cold])
	}
	// The flux cap forbids overshooting past the mean.
	if points.Temperature[cold] > (hotBefore+coldBefore)/2 {
		t.Errorf("conduction overshot equilibrium: cold now %v", points.Temperature[cold])
	}
}

func TestHeatBlasterHeatsAndChills(t *testing.T) {
	ship := newTestShip(t)
	target := ship.Points.Position[0]
	before := ship.Points.Temperature[0]

	if !ship.ApplyHeatBlasterAt(target, 1.0, 2000, 0.1) {
		t.Fatal("heat blaster hit nothing")
	}
	heated := ship.Points.Temperature[0]
	if heated <= before {
		t.Errorf("temperature %v not raised from %v", heated, before)
	}

	if !ship.ApplyHeatBlasterAt(target, 1.0, -2000, 0.1) {
		t.Fatal("chill blaster hit nothing")
	}
	if got := ship.Points.Temperature[0]; got >= heated {
		t.Errorf("temperature %v not lowered from %v", got, heated)
	}

	if ship.ApplyHeatBlasterAt(vec2{500, 500}, 1.0, 2000, 0.1) {
		t.Error("blaster reported a hit far from the ship")
	}
}

func TestCombustionLifecycle(t *testing.T) {
	params := NewParameters()
	ship := newTestShip(t)
	points := ship.Points

	// Find a wooden particle and push it past ignition.
	wood := NoneIndex
	for i := int32(0); i < int32(points.Count()); i++ {
		if points.Material[i].CombustionType == CombustionBurn {
			wood = i
			break
		}
	}
	if wood == NoneIndex {
		t.Fatal("default ship has no combustible particle")
	}
	points.Temperature[wood] = points.Material[wood].IgnitionTemperature + 200

	began := 0
	ship.eventBus.Subscribe(EventPointCombustionBegin, func(Event) { began++ })

	for pass := 0; pass < 4; pass++ {
		ship.updateCombustionSlow(pass, params)
	}
	if points.Combustion[wood] != CombustionStateDeveloping {
		t.Fatalf("combustion state = %d, want developing", points.Combustion[wood])
	}
	if began != 1 {
		t.Fatalf("combustion-begin fired %d times, want 1", began)
	}

	// The fast pass develops the flame into full burn.
	decayBefore := points.Decay[wood]
	for step := 0; step < 128 && points.Combustion[wood] != CombustionStateBurning; step++ {
		ship.updateCombustionFast(params, float32(SimulationStepDuration))
	}
	if points.Combustion[wood] != CombustionStateBurning {
		t.Fatal("flame never developed into burning")
	}
	for step := 0; step < 64; step++ {
		ship.updateCombustionFast(params, float32(SimulationStepDuration))
	}
	if points.Decay[wood] >= decayBefore {
		t.Errorf("fire did not consume the structure: decay %v", points.Decay[wood])
	}

	// Dousing the particle extinguishes it on the next slow pass.
	points.Water[wood] = WetThreshold + 0.1
	for pass := 0; pass < 4; pass++ {
		ship.updateCombustionSlow(pass, params)
	}
	if points.Combustion[wood] != CombustionStateExtinguishing {
		t.Fatalf("wet flame state = %d, want extinguishing", points.Combustion[wood])
	}
}

func TestBurningParticleBudget(t *testing.T) {
	params := NewParameters()
	params.MaxBurningParticles = 0
	ship := newTestShip(t)
	points := ship.Points
	for i := int32(0); i < int32(points.Count()); i++ {
		points.Temperature[i] = 5000
	}
	for pass := 0; pass < 4; pass++ {
		ship.updateCombustionSlow(pass, params)
	}
	for i := int32(0); i < int32(points.Count()); i++ {
		if points.Combustion[i] != CombustionStateNot {
			t.Fatalf("point %d ignited with a zero burning budget", i)
		}
	}
}

func TestCheckMeltingBreaksSprings(t *testing.T) {
	ship := newTestShip(t)
	points := ship.Points
	spring := int32(0)
	a := ship.Springs.PointA[spring]
	points.Temperature[a] = points.Material[a].MeltingTemperature + 100

	ship.checkMelting()
	if !ship.Springs.Deleted[spring] {
		t.Fatal("spring with a molten endpoint not broken")
	}
}
