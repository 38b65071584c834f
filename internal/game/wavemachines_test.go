package game

import "testing"

func TestInteractiveWaveRiseReachesTarget(t *testing.T) {
	const start = SWEHeightFieldOffset
	const target = SWEHeightFieldOffset + 1.5
	m := newInteractiveWaveStateMachine(100, start, target, 0)

	h, alive := m.Update(0)
	if !alive {
		t.Fatal("machine died at creation")
	}
	if !approxEq(h, start, 1e-4) {
		t.Errorf("height at t=0 is %v, want start %v", h, float32(start))
	}

	h, alive = m.Update(m.riseDuration + 0.1)
	if !alive {
		t.Fatal("machine died while still rising")
	}
	if !approxEq(h, target, 1e-4) {
		t.Errorf("height after full rise is %v, want target %v", h, float32(target))
	}
}

func TestInteractiveWaveRestartContinuity(t *testing.T) {
	const start = SWEHeightFieldOffset
	const target = SWEHeightFieldOffset + 2.0
	m := newInteractiveWaveStateMachine(100, start, target, 0)

	// Halfway up, retarget; the imposed height must not jump.
	now := m.riseDuration * 0.5
	before, _ := m.Update(now)
	m.Restart(SWEHeightFieldOffset+3.5, now)
	after, alive := m.Update(now)
	if !alive {
		t.Fatal("machine died on restart")
	}
	if !approxEq(after, before, 1e-3) {
		t.Errorf("restart jumped the surface: %v -> %v", before, after)
	}
}

func TestInteractiveWaveReleaseDecaysToRest(t *testing.T) {
	start := float32(SWEHeightFieldOffset)
	target := float32(SWEHeightFieldOffset + 2.0)
	m := newInteractiveWaveStateMachine(100, start, target, 0)
	m.Update(m.riseDuration + 1)
	m.Release(m.riseDuration + 1)

	alive := true
	var h float32
	for i := 0; i < 10000 && alive; i++ {
		h, alive = m.Update(0) // fall phase ignores the clock
	}
	if alive {
		t.Fatal("released machine never expired")
	}
	if !approxEq(h, SWEHeightFieldOffset, 0.01) {
		t.Errorf("final height %v, want rest %v", h, float32(SWEHeightFieldOffset))
	}
}

func TestAbnormalWaveLifecycle(t *testing.T) {
	const low = SWEHeightFieldOffset
	const high = SWEHeightFieldOffset + TsunamiHeight
	m := newAbnormalWaveStateMachine(500, low, high, 2.0, 1.0, 0)

	var peak float32
	alive := true
	steps := 0
	dt := float32(SimulationStepDuration)
	for alive {
		var h float32
		h, alive = m.Update(float32(steps) * dt)
		if h > peak {
			peak = h
		}
		steps++
		if steps > 10000 {
			t.Fatal("abnormal wave never completed")
		}
	}
	if !approxEq(peak, high, 1e-3) {
		t.Errorf("crest %v, want %v", peak, float32(high))
	}
	elapsed := float32(steps) * dt
	if elapsed < 3.0 || elapsed > 3.2 {
		t.Errorf("lifecycle took %vs, want about rise+fall = 3s", elapsed)
	}
	if !approxEq(m.currentHeight, low, 1e-3) {
		t.Errorf("final height %v, want rest %v", m.currentHeight, float32(low))
	}
}
