package game

// Water dynamics: intake through leaking particles, diffusion along the
// spring lattice, sinking detection, and slow rot of wet structure.

// updateWaterInflow exchanges water between the sea and leaking particles.
// Flow velocity follows Bernoulli from the head difference between the
// outside water column and the particle's internal water height; the small
// magic offset keeps near-empty flotsam from oscillating at the surface.
func (s *Ship) updateWaterInflow(ocean *OceanSurface, params *Parameters, dt float32) {
	points := s.Points
	for i := int32(0); i < int32(points.Count()); i++ {
		if !points.IsActive[i] || !points.IsLeaking[i] {
			continue
		}
		mat := points.Material[i]
		if mat.WaterIntake == 0 {
			continue
		}
		pos := points.Position[i]
		externalHead := ocean.GetHeightAt(pos[0]) - pos[1]
		internalHead := points.Water[i] - WaterInflowMagicOffset
		deltaHead := externalHead - internalHead
		if deltaHead == 0 {
			continue
		}
		speed := sqrtF(2.0 * GravityMagnitude * absF(deltaHead))
		if deltaHead < 0 {
			speed = -speed
		}
		dw := speed * mat.WaterIntake * params.WaterIntakeAdjustment * dt
		newWater := points.Water[i] + dw
		if newWater < 0 {
			newWater = 0
		}
		if dw > 0 {
			points.CumulatedIntakenWater[i] += dw
			// Air escapes where water gets in.
			if externalHead > 0 && s.rng.Bool(0.05) {
				s.ephemera.SpawnAirBubble(pos, s.rng)
			}
		}
		points.Water[i] = newWater
		points.UpdateAugmentedMass(i)
	}
}

// updateWaterVelocities diffuses water along surviving springs toward the
// lower-pressure endpoint. The crazyness parameter overdrives the flow for
// livelier (and less stable) flooding.
func (s *Ship) updateWaterVelocities(params *Parameters, dt float32) {
	points := s.Points
	springs := s.Springs
	alpha := params.WaterDiffusionSpeedAdjustment * (1.0 + params.WaterCrazyness)
	n := springs.Count()
	for i := 0; i < n; i++ {
		if springs.Deleted[i] {
			continue
		}
		a := springs.PointA[i]
		b := springs.PointB[i]
		wa := points.Water[a]
		wb := points.Water[b]
		if wa == 0 && wb == 0 {
			continue
		}
		// Pressure head includes the geometric height difference.
		headA := wa + points.Position[a][1]
		headB := wb + points.Position[b][1]
		delta := (headA - headB) * alpha * dt
		if delta > 0 {
			// The freer the target, the faster it accepts water.
			delta *= expF(-wb * 10.0)
			if delta > wa {
				delta = wa
			}
		} else {
			delta *= expF(-wa * 10.0)
			if -delta > wb {
				delta = -wb
			}
		}
		points.Water[a] = wa - delta
		points.Water[b] = wb + delta
	}

	for i := int32(0); i < int32(points.Count()); i++ {
		points.UpdateAugmentedMass(i)
	}
}

// updateSinking maintains the wet-point watermark state machine: sinking
// begins when 3/10 of the particles are wet and ends when fewer than 1/10
// remain wet (hysteresis so borderline flooding doesn't flap).
func (s *Ship) updateSinking() {
	points := s.Points
	wet := 0
	total := 0
	for i := 0; i < points.Count(); i++ {
		if !points.IsActive[i] {
			continue
		}
		total++
		if points.Water[i] >= WetThreshold {
			wet++
		}
	}
	if total == 0 {
		return
	}
	frac := float32(wet) / float32(total)
	if !s.isSinking && frac >= SinkingWetPointsHighWatermark {
		s.isSinking = true
		s.eventBus.Emit(Event{Type: EventSinkingBegin, Data: s.ID})
	} else if s.isSinking && frac <= SinkingWetPointsLowWatermark {
		s.isSinking = false
		s.eventBus.Emit(Event{Type: EventSinkingEnd, Data: s.ID})
	}
}

// rotPoints advances structural rot for one partition of the particles.
// The partition index walks round-robin so every particle rots at the same
// long-run rate regardless of ship size.
func (s *Ship) rotPoints(ocean *OceanSurface) {
	points := s.Points
	n := points.Count()
	if n == 0 {
		return
	}
	const partitions = 10
	start := s.rotPartition * n / partitions
	end := (s.rotPartition + 1) * n / partitions
	s.rotPartition = (s.rotPartition + 1) % partitions

	// Per-visit decay factor for a 15-minute half-life at the slow cadence.
	alpha := float32(powF(0.5, float32(1.0/RotHalfLifeSteps)))

	for i := start; i < end; i++ {
		if !points.IsActive[i] {
			continue
		}
		wet := points.Water[i] >= WetThreshold
		underwater := points.Position[i][1] < ocean.GetHeightAt(points.Position[i][0])
		if !wet && !underwater {
			continue
		}
		a := alpha
		if points.IsLeaking[i] {
			a *= LeakingRotFactor
		}
		if underwater {
			a *= 1.0 - UnderwaterRotExtra*(1.0-a)
		}
		d := points.Decay[i] * a
		if d < ZeroDecay {
			d = 0
		}
		points.Decay[i] = d
	}
}

// ScrubThrough removes rot (restores decay) along the segment between the
// two positions; returns whether any particle was scrubbed.
func (s *Ship) ScrubThrough(start, end vec2, radius float32) bool {
	points := s.Points
	any := false
	for i := int32(0); i < int32(points.Count()); i++ {
		if !points.IsActive[i] {
			continue
		}
		if distanceToSegment(points.Position[i], start, end) > radius {
			continue
		}
		if points.Decay[i] < 1.0 {
			points.Decay[i] = 1.0
			any = true
		}
	}
	return any
}

// FloodAt adds (or drains, when quantity is negative) water directly into
// non-hull particles within the radius.
func (s *Ship) FloodAt(center vec2, radius, quantity float32) bool {
	points := s.Points
	radiusSq := radius * radius
	any := false
	for i := int32(0); i < int32(points.Count()); i++ {
		if !points.IsActive[i] || points.Material[i].IsHull {
			continue
		}
		d := points.Position[i].Sub(center)
		if d[0]*d[0]+d[1]*d[1] > radiusSq {
			continue
		}
		w := points.Water[i] + quantity
		if w < 0 {
			w = 0
		}
		points.Water[i] = w
		points.UpdateAugmentedMass(i)
		any = true
	}
	return any
}

// distanceToSegment returns the distance from p to segment ab.
func distanceToSegment(p, a, b vec2) float32 {
	ab := b.Sub(a)
	lenSq := ab[0]*ab[0] + ab[1]*ab[1]
	if lenSq == 0 {
		return p.Sub(a).Len()
	}
	t := clampF((p.Sub(a).Dot(ab))/lenSq, 0, 1)
	return p.Sub(a.Add(ab.Mul(t))).Len()
}
