package game

import "testing"

func TestCalculateVectorDirsAndReciprocalLengths(t *testing.T) {
	positions := vec2s{
		{1, 2},
		{2, 4},
		{10, 5},
		{3, 4},
	}
	endpointA := []int32{0, 1, 0, 2}
	endpointB := []int32{1, 2, 3, 3}

	dirs := make(vec2s, 4)
	recips := make([]float32, 4)
	CalculateVectorDirsAndReciprocalLengths(positions, endpointA, endpointB, dirs, recips, 4)

	wantRecips := []float32{
		0.4472136,  // 1/sqrt(5)
		0.12403473, // 1/sqrt(65)
		0.35355339, // 1/sqrt(8)
		0.14142136, // 1/sqrt(50)
	}
	wantDirs := vec2s{
		{0.4472136, 0.8944272},
		{0.99227786, 0.12403473},
		{0.70710678, 0.70710678},
		{-0.98994949, -0.14142136},
	}
	for i := range wantRecips {
		if !approxEq(recips[i], wantRecips[i], 0.001) {
			t.Errorf("spring %d reciprocal length = %v, want %v", i, recips[i], wantRecips[i])
		}
		if !approxEq(dirs[i][0], wantDirs[i][0], 0.001) || !approxEq(dirs[i][1], wantDirs[i][1], 0.001) {
			t.Errorf("spring %d dir = %v, want %v", i, dirs[i], wantDirs[i])
		}
	}
}

func TestCalculateVectorDirsZeroLength(t *testing.T) {
	positions := vec2s{{3, 3}, {3, 3}}
	dirs := make(vec2s, 1)
	recips := []float32{999}
	CalculateVectorDirsAndReciprocalLengths(positions, []int32{0}, []int32{1}, dirs, recips, 1)
	if recips[0] != 0 {
		t.Errorf("coincident endpoints: reciprocal length = %v, want 0", recips[0])
	}
	if dirs[0] != (vec2{}) {
		t.Errorf("coincident endpoints: dir = %v, want zero", dirs[0])
	}
}

func TestGlobalDampingCoefficientIterationInvariance(t *testing.T) {
	// The survivor fraction per full step must not depend on how many
	// relaxation passes the step is split into.
	params := NewParameters()
	perStep := func(iters int) float32 {
		c := globalDampingCoefficient(iters, params)
		total := float32(1)
		for i := 0; i < iters; i++ {
			total *= c
		}
		return total
	}
	base := perStep(12)
	for _, iters := range []int{6, 12, 24, 30} {
		if got := perStep(iters); !approxEq(got, base, 1e-4) {
			t.Errorf("%d iterations: per-step damping %v, want %v", iters, got, base)
		}
	}
}

func TestSegmentsIntersect(t *testing.T) {
	cases := []struct {
		p, q, a, b vec2
		want       bool
	}{
		{vec2{0, 0}, vec2{2, 2}, vec2{0, 2}, vec2{2, 0}, true},
		{vec2{0, 0}, vec2{1, 0}, vec2{0, 1}, vec2{1, 1}, false},
		{vec2{0, 0}, vec2{0, 10}, vec2{-1, 5}, vec2{1, 5}, true},
		{vec2{0, 0}, vec2{0, 10}, vec2{1, 5}, vec2{2, 5}, false},
	}
	for i, c := range cases {
		if got := segmentsIntersect(c.p, c.q, c.a, c.b); got != c.want {
			t.Errorf("case %d: segmentsIntersect = %v, want %v", i, got, c.want)
		}
	}
}

func TestTrimForWorldBounds(t *testing.T) {
	ship := BuildShip(DefaultShipDefinition(vec2{0, 0}), 0, NewParameters(), NewEventBus(), NewRand(1))
	points := ship.Points
	points.Position[0] = vec2{HalfWorldWidth + 50, 0}
	points.Velocity[0] = vec2{400, 0}
	ship.trimForWorldBounds()
	if points.Position[0][0] != HalfWorldWidth {
		t.Errorf("point not clamped to world edge: x = %v", points.Position[0][0])
	}
	if points.Velocity[0][0] >= 0 {
		t.Errorf("velocity not reflected inward: vx = %v", points.Velocity[0][0])
	}
	if v := points.Velocity[0].Len(); v > MaxBounceVelocity+1e-3 {
		t.Errorf("bounce velocity %v exceeds cap %v", v, float32(MaxBounceVelocity))
	}
}
