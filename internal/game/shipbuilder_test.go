package game

import "testing"

func TestBuildShipQuad(t *testing.T) {
	def := ShipDefinition{
		Name:     "quad",
		Grid:     []string{"II", "II"},
		Origin:   vec2{0, 0},
		CellSize: 1.0,
	}
	ship := BuildShip(def, 0, NewParameters(), NewEventBus(), NewRand(1))

	if n := ship.Points.Count(); n != 4 {
		t.Fatalf("point count = %d, want 4", n)
	}
	// 2 horizontal, 2 vertical, 2 diagonals.
	if n := ship.Springs.Count(); n != 6 {
		t.Fatalf("spring count = %d, want 6", n)
	}
	if n := ship.Triangles.Count(); n != 2 {
		t.Fatalf("triangle count = %d, want 2", n)
	}

	// The shared diagonal edge covers both faces; the other diagonal none.
	coveredTwice, coveredNever := 0, 0
	for i := 0; i < ship.Springs.Count(); i++ {
		switch len(ship.Springs.CoveringTriangles[i]) {
		case 2:
			coveredTwice++
		case 0:
			coveredNever++
		}
	}
	if coveredTwice != 1 || coveredNever != 1 {
		t.Errorf("diagonal coverage: %d double, %d uncovered, want 1 and 1", coveredTwice, coveredNever)
	}

	// One piece, one plane.
	for i := 0; i < 4; i++ {
		if ship.Points.ConnectedComponentID[i] != ship.Points.ConnectedComponentID[0] {
			t.Errorf("point %d in component %d, want %d", i,
				ship.Points.ConnectedComponentID[i], ship.Points.ConnectedComponentID[0])
		}
	}

	// Each face is half a unit cell.
	for tri := int32(0); tri < int32(ship.Triangles.Count()); tri++ {
		if a := absF(ship.Triangles.Area(tri, ship.Points)); !approxEq(a, 0.5, 1e-5) {
			t.Errorf("triangle %d area = %v, want 0.5", tri, a)
		}
	}
}

func TestBuildDefaultShip(t *testing.T) {
	ship := BuildShip(DefaultShipDefinition(vec2{-13, 2}), 0, NewParameters(), NewEventBus(), NewRand(1))

	if n := ship.Points.Count(); n != 75 {
		t.Errorf("point count = %d, want 75", n)
	}
	if n := ship.Electrical.Count(); n != 17 {
		t.Errorf("electrical element count = %d, want 17", n)
	}

	// Spring rest lengths come out of the grid geometry: cell or diagonal.
	const cell = 2.0
	diag := cell * sqrtF(2)
	for i := 0; i < ship.Springs.Count(); i++ {
		r := ship.Springs.RestLength[i]
		if !approxEq(r, cell, 1e-4) && !approxEq(r, diag, 1e-4) {
			t.Fatalf("spring %d rest length %v matches neither cell nor diagonal", i, r)
		}
	}

	// Everything starts as one connected component.
	for i := 0; i < ship.Points.Count(); i++ {
		if !ship.Points.IsActive[i] {
			t.Fatalf("point %d inactive after build", i)
		}
		if ship.Points.ConnectedComponentID[i] != ship.Points.ConnectedComponentID[0] {
			t.Fatalf("point %d not in the hull component", i)
		}
	}
}

func TestSawThroughSplitsComponents(t *testing.T) {
	ship := BuildShip(DefaultShipDefinition(vec2{0, 0}), 0, NewParameters(), NewEventBus(), NewRand(1))

	// A vertical cut between two particle columns severs the ship in two.
	cut := ship.SawThrough(vec2{9, -5}, vec2{9, 20})
	if cut == 0 {
		t.Fatal("saw cut no springs")
	}
	ship.runConnectivityVisit()

	leftID := ship.Points.ConnectedComponentID[pointAt(t, ship, vec2{0, 0})]
	rightID := ship.Points.ConnectedComponentID[pointAt(t, ship, vec2{24, 0})]
	if leftID == rightID {
		t.Fatal("halves still share a connected component after the cut")
	}
	// Plane IDs track components.
	for i := 0; i < ship.Points.Count(); i++ {
		if !ship.Points.IsActive[i] {
			continue
		}
		if ship.Points.PlaneID[i] != ship.Points.ConnectedComponentID[i] {
			t.Fatalf("point %d plane %d != component %d", i,
				ship.Points.PlaneID[i], ship.Points.ConnectedComponentID[i])
		}
	}
}

func TestDestroyDetachesOrphans(t *testing.T) {
	ship := BuildShip(DefaultShipDefinition(vec2{0, 0}), 0, NewParameters(), NewEventBus(), NewRand(1))
	target := ship.Points.Position[0]

	if !ship.DestroyAt(target, 0.5) {
		t.Fatal("destroy hit nothing")
	}
	if ship.Points.IsActive[0] {
		t.Fatal("fully disconnected particle still active")
	}
	// Global invariant: zero springs means detached, everywhere.
	for i := 0; i < ship.Points.Count(); i++ {
		if len(ship.Points.ConnectedSprings[i]) == 0 && ship.Points.IsActive[i] {
			t.Fatalf("point %d has no springs but is still active", i)
		}
	}
}

func TestRepairRestoresStructure(t *testing.T) {
	ship := BuildShip(DefaultShipDefinition(vec2{0, 0}), 0, NewParameters(), NewEventBus(), NewRand(1))
	target := ship.Points.Position[0]

	ship.DestroyAt(target, 0.5)
	if !ship.RepairAt(target, 2.5) {
		t.Fatal("repair fixed nothing")
	}
	if !ship.Points.IsActive[0] {
		t.Fatal("repaired particle still inactive")
	}
	if len(ship.Points.ConnectedSprings[0]) == 0 {
		t.Fatal("repaired particle has no springs")
	}
	for i := 0; i < ship.Springs.Count(); i++ {
		if ship.Springs.Deleted[i] {
			t.Fatalf("spring %d still broken after repair", i)
		}
	}

	// Repairing intact structure is a no-op.
	if ship.RepairAt(target, 2.5) {
		t.Fatal("repair reported work on an intact ship")
	}
}

func TestThanosSnapVaporizesHalf(t *testing.T) {
	ship := BuildShip(DefaultShipDefinition(vec2{0, 0}), 0, NewParameters(), NewEventBus(), NewRand(7))
	farRight := pointAt(t, ship, vec2{24, 0})

	if !ship.ApplyThanosSnapAt(12, true) {
		t.Fatal("snap broke nothing")
	}
	// Everything well right of the line lost all its springs and detached.
	if ship.Points.IsActive[farRight] {
		t.Fatal("far-right particle survived the snap")
	}
	// The left half keeps its structure.
	left := pointAt(t, ship, vec2{0, 0})
	if len(ship.Points.ConnectedSprings[left]) == 0 {
		t.Fatal("far-left particle lost its springs")
	}
}

func TestMoveByTargetsOneComponent(t *testing.T) {
	ship := BuildShip(DefaultShipDefinition(vec2{0, 0}), 0, NewParameters(), NewEventBus(), NewRand(1))
	if ship.SawThrough(vec2{9, -5}, vec2{9, 20}) == 0 {
		t.Fatal("saw cut no springs")
	}
	ship.runConnectivityVisit()

	left := pointAt(t, ship, vec2{0, 0})
	right := pointAt(t, ship, vec2{24, 0})
	kick := vec2{0, 5}

	before := ship.Points.Velocity[right]
	ship.MoveBy(ship.Points.ConnectedComponentID[left], kick)
	if got := ship.Points.Velocity[left]; !approxEq(got[1], kick[1], 1e-5) {
		t.Errorf("left half velocity = %v, want +%v", got, kick[1])
	}
	if got := ship.Points.Velocity[right]; got != before {
		t.Errorf("right half velocity changed to %v", got)
	}

	// NoneIndex moves everything.
	ship.MoveBy(NoneIndex, kick)
	if got := ship.Points.Velocity[right]; !approxEq(got[1]-before[1], kick[1], 1e-5) {
		t.Errorf("whole-ship move left right half at %v", got)
	}
}

// pointAt locates the particle nearest to a world position, failing the
// test when nothing is within two metres.
func pointAt(t *testing.T, ship *Ship, pos vec2) int32 {
	t.Helper()
	p := ship.QueryNearestPointAt(pos, 2.0)
	if p == NoneIndex {
		t.Fatalf("no particle near %v", pos)
	}
	return p
}
