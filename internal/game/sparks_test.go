package game

import "testing"

func TestApplySparkAtOutOfRange(t *testing.T) {
	ship := newTestShip(t)
	if ship.Sparks.ApplySparkAt(vec2{200, 200}, 0, ship.Points, ship.Springs, ship.rng) {
		t.Fatal("spark found a particle far from the ship")
	}
}

func TestApplySparkAtArcs(t *testing.T) {
	ship := newTestShip(t)
	sparks := ship.Sparks
	pos := ship.Points.Position[0]

	if !sparks.ApplySparkAt(pos, 0, ship.Points, ship.Springs, ship.rng) {
		t.Fatal("spark missed the seed particle")
	}
	if len(sparks.Segments) < SparkStartingArcsMin {
		t.Fatalf("segment count = %d, want at least %d", len(sparks.Segments), SparkStartingArcsMin)
	}
	for i, seg := range sparks.Segments {
		if seg.Size <= 0 || seg.Size > 1 {
			t.Errorf("segment %d size %v outside (0,1]", i, seg.Size)
		}
		if seg.Start == seg.End {
			t.Errorf("segment %d is degenerate", i)
		}
	}

	// Consecutive interactions reach further.
	short := len(sparks.Segments)
	if !sparks.ApplySparkAt(pos, 10, ship.Points, ship.Springs, ship.rng) {
		t.Fatal("continuation spark missed")
	}
	if len(sparks.Segments) <= short {
		t.Errorf("longer interaction produced %d segments, first produced %d",
			len(sparks.Segments), short)
	}
}

func TestSparkSegmentsFadeOut(t *testing.T) {
	ship := newTestShip(t)
	sparks := ship.Sparks
	sparks.ApplySparkAt(ship.Points.Position[0], 0, ship.Points, ship.Springs, ship.rng)

	for i := 0; i < 8 && len(sparks.Segments) > 0; i++ {
		sparks.Update()
	}
	if n := len(sparks.Segments); n != 0 {
		t.Fatalf("%d segments survived the fadeout", n)
	}
}
