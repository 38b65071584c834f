package game

// Mass-spring mechanics: force accumulation and explicit integration with
// numerical damping. Everything here runs over flat arrays; the per-spring
// hot loop consumes direction vectors and reciprocal lengths precomputed
// in a single pass to keep sqrt out of the force kernel.

// CalculateVectorDirsAndReciprocalLengths fills, for each spring i in
// [0,count), the unit vector from endpoint A to endpoint B and the
// reciprocal of the endpoint distance.
func CalculateVectorDirsAndReciprocalLengths(
	positions vec2s,
	endpointA, endpointB []int32,
	outDirs vec2s,
	outReciprocalLengths []float32,
	count int,
) {
	for i := 0; i < count; i++ {
		d := positions[endpointB[i]].Sub(positions[endpointA[i]])
		lenSq := d[0]*d[0] + d[1]*d[1]
		if lenSq == 0 {
			outDirs[i] = vec2{}
			outReciprocalLengths[i] = 0
			continue
		}
		r := 1.0 / sqrtF(lenSq)
		outReciprocalLengths[i] = r
		outDirs[i] = normalizeRecip(d, r)
	}
}

// globalDampingCoefficient returns the fraction of velocity surviving one
// relaxation pass, derived so the total per-step damping is invariant under
// the iteration-count slider.
func globalDampingCoefficient(numIterations int, params *Parameters) float32 {
	damping := 1.0 - powF(1.0-GlobalDampingBase, 12.0/float32(numIterations))
	return 1.0 - (1.0-damping)*params.GlobalDampingAdjustment
}

// applySpringForces accumulates Hooke plus damper forces into per-worker
// buffers, then folds them into the shared spring-force array. Per-worker
// buffers avoid write races on points shared between spring spans.
func (s *Ship) applySpringForces() {
	springs := s.Springs
	points := s.Points
	n := springs.Count()

	CalculateVectorDirsAndReciprocalLengths(
		points.Position, springs.PointA, springs.PointB,
		springs.Dir, springs.ReciprocalLength, n)

	for w := range s.springForceBuffers {
		buf := s.springForceBuffers[w]
		for i := range buf {
			buf[i] = vec2{}
		}
	}

	s.pool.run(n, func(worker, start, end int) {
		buf := s.springForceBuffers[worker]
		for i := start; i < end; i++ {
			if springs.Deleted[i] {
				continue
			}
			a := springs.PointA[i]
			b := springs.PointB[i]
			dir := springs.Dir[i]
			recip := springs.ReciprocalLength[i]
			if recip == 0 {
				continue
			}

			length := 1.0 / recip
			hooke := (length - springs.RestLength[i]) * springs.StiffnessCoefficient[i]

			relVel := points.Velocity[b].Sub(points.Velocity[a])
			damper := (relVel[0]*dir[0] + relVel[1]*dir[1]) * springs.DampingCoefficient[i]

			f := hooke + damper
			fx := dir[0] * f
			fy := dir[1] * f
			buf[a] = buf[a].Add(vec2{fx, fy})
			buf[b] = buf[b].Sub(vec2{fx, fy})
		}
	})

	np := points.Count()
	s.pool.run(np, func(_, start, end int) {
		for i := start; i < end; i++ {
			acc := points.SpringForce[i]
			for w := range s.springForceBuffers {
				acc = acc.Add(s.springForceBuffers[w][i])
			}
			points.SpringForce[i] = acc
		}
	})
}

// integrateAndResetSpringForces advances positions and velocities one
// relaxation pass and clears the spring-force accumulator.
func (s *Ship) integrateAndResetSpringForces(dtFraction, velocityFactor float32) {
	points := s.Points
	s.pool.run(points.Count(), func(_, start, end int) {
		for i := start; i < end; i++ {
			if !points.IsActive[i] {
				continue
			}
			integrationFactor := dtFraction * dtFraction / points.AugmentedMass[i]
			f := points.SpringForce[i].Add(points.NonSpringForce[i])
			dx := points.Velocity[i][0]*dtFraction + f[0]*integrationFactor
			dy := points.Velocity[i][1]*dtFraction + f[1]*integrationFactor
			points.Position[i] = points.Position[i].Add(vec2{dx, dy})
			points.Velocity[i] = vec2{dx * velocityFactor, dy * velocityFactor}
			points.SpringForce[i] = vec2{}
		}
	})
}

// updateNonSpringForces computes gravity, buoyancy, drag, and wind once per
// step into the non-spring accumulator.
func (s *Ship) updateNonSpringForces(ocean *OceanSurface, windSpeed vec2, params *Parameters) {
	points := s.Points
	waterDensity := WaterMass * params.WaterDensityAdjustment
	dragCoeff := params.WaterDragAdjustment * 0.8
	// Wind pressure: speed is in km/h, convert to m/s before squaring.
	windMag := windSpeed.Len()
	windPressure := windMag * windMag * (1000.0 / 3600.0) * (1000.0 / 3600.0) * 0.5 * AirMass
	var windDir vec2
	if windMag > 0 {
		windDir = windSpeed.Mul(1.0 / windMag)
	}

	s.pool.run(points.Count(), func(_, start, end int) {
		for i := start; i < end; i++ {
			if !points.IsActive[i] {
				points.NonSpringForce[i] = vec2{}
				continue
			}
			pos := points.Position[i]
			oceanY := ocean.GetHeightAt(pos[0])
			depth := oceanY - pos[1]

			// Gravity.
			f := GravityDir.Mul(GravityMagnitude * points.AugmentedMass[i])

			if depth > 0 {
				// Buoyancy: displaced volume grows with thermal expansion
				// and tapers off linearly across the top metre, so points
				// straddling the surface do not flip-flop.
				volume := points.BuoyancyCoeff1[i] + points.BuoyancyCoeff2[i]*points.Temperature[i]
				f[1] += volume * waterDensity * GravityMagnitude * minF(depth, 1.0)

				// Linear water friction drag.
				f = f.Sub(points.Velocity[i].Mul(dragCoeff * points.AugmentedMass[i]))
			} else if windPressure > 0 {
				r := points.Material[i].WindReceptivity
				if r > 0 {
					f = f.Add(windDir.Mul(windPressure * r))
				}
			}

			points.NonSpringForce[i] = f
		}
	})
}

// handleCollisionsWithSeaFloor bounces points off the static bathymetry,
// splitting the response into an elastic normal component and a friction
// tangential component.
func (s *Ship) handleCollisionsWithSeaFloor(floor *OceanFloor) {
	points := s.Points
	for i := 0; i < points.Count(); i++ {
		if !points.IsActive[i] {
			continue
		}
		pos := points.Position[i]
		floorY := floor.GetHeightAt(pos[0])
		if pos[1] >= floorY {
			continue
		}
		normal := floor.GetNormalAt(pos[0])
		v := points.Velocity[i]
		vn := v[0]*normal[0] + v[1]*normal[1]
		normalVel := normal.Mul(vn)
		tangentVel := v.Sub(normalVel)
		// Reflect the normal component, dampen both.
		points.Velocity[i] = tangentVel.Mul(1.0 - SeaFloorFriction).
			Sub(normalVel.Mul(SeaFloorElasticity))
		points.Position[i] = vec2{pos[0], floorY}
	}
}

// trimForWorldBounds keeps every point inside the world, reflecting the
// velocity with a hard cap so a runaway integration cannot eject a ship.
func (s *Ship) trimForWorldBounds() {
	points := s.Points
	for i := 0; i < points.Count(); i++ {
		pos := points.Position[i]
		v := points.Velocity[i]
		bounced := false
		if pos[0] < -HalfWorldWidth {
			pos[0] = -HalfWorldWidth
			v[0] = absF(v[0])
			bounced = true
		} else if pos[0] > HalfWorldWidth {
			pos[0] = HalfWorldWidth
			v[0] = -absF(v[0])
			bounced = true
		}
		if pos[1] < -MaxWorldHeight/2 {
			pos[1] = -MaxWorldHeight / 2
			v[1] = absF(v[1])
			bounced = true
		} else if pos[1] > MaxWorldHeight/2 {
			pos[1] = MaxWorldHeight / 2
			v[1] = -absF(v[1])
			bounced = true
		}
		if bounced {
			mag := v.Len()
			if mag > MaxBounceVelocity {
				v = v.Mul(MaxBounceVelocity / mag)
			}
			points.Position[i] = pos
			points.Velocity[i] = v
		}
	}
}

// checkSpringsForBreakage snaps springs whose strain exceeds the material
// threshold, detaching fully disconnected endpoints into debris.
func (s *Ship) checkSpringsForBreakage(params *Parameters) {
	springs := s.Springs
	points := s.Points
	n := springs.Count()
	for i := int32(0); i < int32(n); i++ {
		if springs.Deleted[i] {
			continue
		}
		recip := springs.ReciprocalLength[i]
		if recip == 0 {
			continue
		}
		length := 1.0 / recip
		rest := springs.RestLength[i]
		strain := absF(length-rest) / rest
		// Decayed endpoints weaken the bond.
		a := springs.PointA[i]
		b := springs.PointB[i]
		decay := minF(points.Decay[a], points.Decay[b])
		if strain > springs.Strength[i]*params.SpringStrengthAdjustment*decay {
			s.breakSpring(i)
		}
	}
}

// breakSpring performs the full break protocol: flag, disconnect, leak,
// detach orphans, notify.
func (s *Ship) breakSpring(spring int32) {
	springs := s.Springs
	points := s.Points
	a := springs.PointA[spring]
	b := springs.PointB[spring]

	orphanA, orphanB := springs.Break(spring, points)

	// Every covering face is gone with the spring.
	for _, tri := range springs.CoveringTriangles[spring] {
		s.Triangles.Delete(tri, points)
	}

	// A fracture opens both endpoints to the sea.
	if !points.Material[a].IsHull {
		points.IsLeaking[a] = true
	}
	if !points.Material[b].IsHull {
		points.IsLeaking[b] = true
	}

	if orphanA {
		s.detachPoint(a)
	}
	if orphanB {
		s.detachPoint(b)
	}

	mid := points.Position[a].Add(points.Position[b]).Mul(0.5)
	s.Gadgets.OnSpringDestroyed(mid, points)
	s.eventBus.Emit(Event{Type: EventSpringBroken, X: mid[0], Y: mid[1], Data: s.ID})
	s.ephemera.SpawnDebris(mid, points.Velocity[a], s.rng)
	s.structureDirty = true
}

// detachPoint culls a fully disconnected particle.
func (s *Ship) detachPoint(point int32) {
	points := s.Points
	if g := points.AttachedGadget[point]; g != NoneIndex {
		s.Gadgets.OnPointDetached(point)
	}
	points.Detach(point)
}

// ApplyBlastAt injects an explosion: radial force with linear falloff,
// heat, and forced breakage in the inner half of the radius.
func (s *Ship) ApplyBlastAt(center vec2, radius, strength, heat float32) {
	points := s.Points
	radiusSq := radius * radius
	for i := int32(0); i < int32(points.Count()); i++ {
		if !points.IsActive[i] {
			continue
		}
		d := points.Position[i].Sub(center)
		distSq := d[0]*d[0] + d[1]*d[1]
		if distSq > radiusSq {
			continue
		}
		dist := sqrtF(distSq)
		falloff := 1.0 - dist/radius
		var dir vec2
		if dist > 0 {
			dir = d.Mul(1.0 / dist)
		} else {
			dir = vec2{0, 1}
		}
		points.NonSpringForce[i] = points.NonSpringForce[i].Add(dir.Mul(strength * falloff * points.AugmentedMass[i]))
		points.AddHeat(i, heat*falloff)
	}

	// Shatter structure close to the blast centre.
	inner := radius * 0.5
	springs := s.Springs
	for i := int32(0); i < int32(springs.Count()); i++ {
		if springs.Deleted[i] {
			continue
		}
		mid := points.Position[springs.PointA[i]].Add(points.Position[springs.PointB[i]]).Mul(0.5)
		dd := mid.Sub(center)
		if dd[0]*dd[0]+dd[1]*dd[1] <= inner*inner {
			s.breakSpring(i)
		}
	}

	s.eventBus.Emit(Event{Type: EventExplosion, X: center[0], Y: center[1], Data: int(radius)})
}

// DrawTo applies a radial attraction (strength > 0) or repulsion
// (strength < 0) toward the given centre.
func (s *Ship) DrawTo(center vec2, strength float32) {
	points := s.Points
	for i := 0; i < points.Count(); i++ {
		if !points.IsActive[i] {
			continue
		}
		d := center.Sub(points.Position[i])
		dist := d.Len()
		if dist < 0.1 {
			continue
		}
		// Inverse-distance falloff with a soft core.
		f := strength / (0.2*dist + 0.7)
		points.NonSpringForce[i] = points.NonSpringForce[i].Add(d.Mul(f / dist * points.AugmentedMass[i]))
	}
}

// SwirlAt applies a tangential vortex force around the given centre.
func (s *Ship) SwirlAt(center vec2, strength float32) {
	points := s.Points
	for i := 0; i < points.Count(); i++ {
		if !points.IsActive[i] {
			continue
		}
		d := points.Position[i].Sub(center)
		dist := d.Len()
		if dist < 0.1 {
			continue
		}
		tangent := perpendicular(d.Mul(1.0 / dist))
		f := strength / (0.2*dist + 0.7)
		points.NonSpringForce[i] = points.NonSpringForce[i].Add(tangent.Mul(f * points.AugmentedMass[i]))
	}
}

// runMechanicalDynamics is one full step of the solver: iterated spring
// relaxation over the forces accumulated for this step.
func (s *Ship) runMechanicalDynamics(params *Parameters) {
	numIterations := params.NumMechanicalIterations()
	dtFraction := float32(SimulationStepDuration) / float32(numIterations)
	velocityFactor := globalDampingCoefficient(numIterations, params) / dtFraction

	for iter := 0; iter < numIterations; iter++ {
		s.applySpringForces()
		s.integrateAndResetSpringForces(dtFraction, velocityFactor)
	}

	// Breakage uses the dirs/lengths of the final pass.
	s.checkSpringsForBreakage(params)

	// Non-spring forces were consumed by all passes of this step.
	points := s.Points
	for i := range points.NonSpringForce {
		points.NonSpringForce[i] = vec2{}
	}
}
