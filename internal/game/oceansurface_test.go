package game

import "testing"

func newTestOcean() *OceanSurface {
	return NewOceanSurface(NewEventBus(), NewRand(7))
}

func TestDampingBoundaryConditions(t *testing.T) {
	o := newTestOcean()
	for i := 0; i < SWEBoundaryConditionsSamples; i++ {
		o.heightField[i] = SWEHeightFieldOffset + 5
		o.velocityField[i] = 3
		j := SWETotalSamples - 1 - i
		o.heightField[j] = SWEHeightFieldOffset - 5
		o.velocityField[j] = -3
	}

	o.applyDampingBoundaryConditions()

	// The outermost cell must sit exactly at rest so nothing reflects.
	if o.heightField[0] != SWEHeightFieldOffset || o.velocityField[0] != 0 {
		t.Errorf("left outermost cell not at rest: h=%v v=%v",
			o.heightField[0], o.velocityField[0])
	}
	last := SWETotalSamples - 1
	if o.heightField[last] != SWEHeightFieldOffset || o.velocityField[last] != 0 {
		t.Errorf("right outermost cell not at rest: h=%v v=%v",
			o.heightField[last], o.velocityField[last])
	}

	// Damping grades inward: each cell keeps more than the one outside it.
	for i := 1; i < SWEBoundaryConditionsSamples; i++ {
		outer := absF(o.heightField[i-1] - SWEHeightFieldOffset)
		inner := absF(o.heightField[i] - SWEHeightFieldOffset)
		if inner <= outer {
			t.Errorf("damping not graded at cell %d: outer %v, inner %v", i, outer, inner)
		}
	}
}

func TestGetHeightAtInterpolates(t *testing.T) {
	o := newTestOcean()
	o.samples[0] = 1
	o.samples[1] = 3
	x := float32(-HalfWorldWidth + 0.5*Dx)
	if h := o.GetHeightAt(x); !approxEq(h, 2, 1e-4) {
		t.Errorf("midpoint height = %v, want 2", h)
	}
	if h := o.GetHeightAt(-HalfWorldWidth); !approxEq(h, 1, 1e-4) {
		t.Errorf("sample-aligned height = %v, want 1", h)
	}
}

func TestDisplaceSmoothingKernel(t *testing.T) {
	o := newTestOcean()
	o.DisplaceAt(0, 10)
	center := SWEOuterLayerSamples + sampleIndexAt(0)
	o.smoothDeltaBufferIntoHeightField()

	const half = DeltaHeightSmoothing / 2
	peak := o.heightField[center] - SWEHeightFieldOffset
	if peak <= 0 {
		t.Fatalf("no displacement landed at the injection cell: %v", peak)
	}
	// Triangular falloff: strictly decreasing away from the centre, symmetric,
	// and zero outside the kernel support.
	for l := 1; l <= half; l++ {
		left := o.heightField[center-l] - SWEHeightFieldOffset
		right := o.heightField[center+l] - SWEHeightFieldOffset
		if !approxEq(left, right, 1e-6) {
			t.Errorf("kernel asymmetric at offset %d: %v vs %v", l, left, right)
		}
		if left <= 0 || left >= peak {
			t.Errorf("kernel not decreasing at offset %d: %v vs peak %v", l, left, peak)
		}
	}
	for _, idx := range []int{center - half - 1, center + half + 1} {
		if o.heightField[idx] != SWEHeightFieldOffset {
			t.Errorf("displacement leaked outside the kernel at %d", idx)
		}
	}

	// And the buffer is consumed.
	for i, d := range o.deltaHeightBuffer {
		if d != 0 {
			t.Fatalf("delta buffer not cleared at %d: %v", i, d)
		}
	}
}

func TestOceanUpdateStaysFinite(t *testing.T) {
	o := newTestOcean()
	params := NewParameters()
	params.TsunamiRate = 0
	params.RogueWaveRate = 0
	wind := NewWind(NewRand(7))

	var simTime float32
	o.DisplaceAt(0, 25)
	for step := 0; step < 512; step++ {
		simTime += float32(SimulationStepDuration)
		wind.Update(params, float32(SimulationStepDuration))
		o.Update(simTime, wind, params)
	}
	for i := 0; i <= SamplesCount; i += 64 {
		h := o.samples[i]
		if h != h || absF(h) > 1000 {
			t.Fatalf("surface sample %d diverged: %v", i, h)
		}
	}
}

func TestTriggerTsunamiEmitsEvent(t *testing.T) {
	eb := NewEventBus()
	o := NewOceanSurface(eb, NewRand(7))
	got := 0
	eb.Subscribe(EventTsunami, func(e Event) {
		got++
		if e.X < -HalfWorldWidth || e.X > HalfWorldWidth {
			t.Errorf("tsunami locus %v outside the world", e.X)
		}
	})
	o.TriggerTsunami(10)
	if got != 1 {
		t.Fatalf("tsunami event fired %d times, want 1", got)
	}
	if o.tsunamiWave == nil {
		t.Fatal("no tsunami machine installed")
	}
}
