package game

// Heat conduction, convective dissipation, and the per-point combustion
// state machine. The fast paths run every step; ignition/extinction checks
// run in four slow passes spread over the low-frequency period, each
// covering a quarter of the particles.

const (
	combustionHeatGeneration = 12000.0 // KJ/s fed into a burning point
	ignitionDecayThreshold   = 0.5     // rotten points don't catch fire
	smokeEmissionInterval    = 0.25    // seconds between smoke puffs
)

// propagateHeat moves heat along surviving springs. Flux follows the
// temperature gradient scaled by the weaker endpoint's conductivity and
// the spring length.
func (s *Ship) propagateHeat(params *Parameters, dt float32) {
	points := s.Points
	springs := s.Springs
	n := springs.Count()
	for i := 0; i < n; i++ {
		if springs.Deleted[i] {
			continue
		}
		a := springs.PointA[i]
		b := springs.PointB[i]
		deltaT := points.Temperature[a] - points.Temperature[b]
		if deltaT == 0 {
			continue
		}
		k := minF(points.Material[a].ThermalConductivity, points.Material[b].ThermalConductivity)
		q := k * deltaT * dt / springs.RestLength[i] * params.ThermalConductivityAdjustment
		// Cap the flux so a single step can never overshoot equilibrium.
		maxQ := absF(deltaT) * 0.5 * minF(
			points.Material[a].SpecificHeat*points.Mass[a],
			points.Material[b].SpecificHeat*points.Mass[b])
		if absF(q) > maxQ {
			if q > 0 {
				q = maxQ
			} else {
				q = -maxQ
			}
		}
		points.AddHeat(a, -q)
		points.AddHeat(b, q)
	}
}

// dissipateHeat bleeds every particle toward the ambient temperature of
// its surrounding medium. Water convects far better than air, and rain
// adds to the air-side coefficient.
func (s *Ship) dissipateHeat(ocean *OceanSurface, rainDensity float32, params *Parameters, dt float32) {
	points := s.Points
	airCoeff := 5.0 * params.HeatDissipationAdjustment
	waterCoeff := airCoeff * 2.0
	rainCoeff := powF(rainDensity, 0.3) * waterCoeff

	s.pool.run(points.Count(), func(_, start, end int) {
		for i := start; i < end; i++ {
			if !points.IsActive[i] {
				continue
			}
			var ambient, coeff float32
			if points.Position[i][1] < ocean.GetHeightAt(points.Position[i][0]) {
				ambient = WaterTemperature
				coeff = waterCoeff
			} else {
				ambient = AirTemperature
				coeff = airCoeff + rainCoeff
			}
			q := coeff * (points.Temperature[i] - ambient) * dt
			points.AddHeat(int32(i), -q)
		}
	})
}

// updateCombustionSlow runs one of the four ignition/extinction passes,
// covering points [pass*N/4, (pass+1)*N/4).
func (s *Ship) updateCombustionSlow(pass int, params *Parameters) {
	points := s.Points
	n := points.Count()
	start := pass * n / 4
	end := (pass + 1) * n / 4

	for i := start; i < end; i++ {
		if !points.IsActive[i] {
			continue
		}
		mat := points.Material[i]
		switch points.Combustion[i] {
		case CombustionStateNot:
			if mat.CombustionType == CombustionNone {
				continue
			}
			if points.Water[i] >= WetThreshold || points.Decay[i] < ignitionDecayThreshold {
				continue
			}
			if s.burningPoints >= params.MaxBurningParticles {
				continue
			}
			if points.Temperature[i] > mat.IgnitionTemperature*params.IgnitionTemperatureAdjustment {
				points.Combustion[i] = CombustionStateDeveloping
				points.CombustionProgress[i] = 0
				s.burningPoints++
				pos := points.Position[i]
				s.eventBus.Emit(Event{Type: EventPointCombustionBegin, X: pos[0], Y: pos[1], Data: s.ID})
			}

		case CombustionStateDeveloping, CombustionStateBurning:
			// Water or submersion smothers the flame.
			if points.Water[i] >= WetThreshold ||
				points.Temperature[i] < mat.IgnitionTemperature*params.IgnitionTemperatureAdjustment*0.75 {
				points.Combustion[i] = CombustionStateExtinguishing
			}

		case CombustionStateExtinguishing:
			// Handled in the fast pass; nothing to do here.
		}
	}
}

// updateCombustionFast advances burning points every step: progress, heat
// generation, structural damage, and smoke.
func (s *Ship) updateCombustionFast(params *Parameters, dt float32) {
	points := s.Points
	speed := params.CombustionSpeedAdjustment * 0.05

	s.smokeTimer -= dt

	for i := int32(0); i < int32(points.Count()); i++ {
		switch points.Combustion[i] {
		case CombustionStateDeveloping:
			points.CombustionProgress[i] += speed * 4.0 * dt
			if points.CombustionProgress[i] >= 0.25 {
				points.Combustion[i] = CombustionStateBurning
			}
			points.AddHeat(i, combustionHeatGeneration*0.5*dt)

		case CombustionStateBurning:
			points.CombustionProgress[i] += speed * dt
			points.AddHeat(i, combustionHeatGeneration*dt)
			// Fire consumes the structure.
			points.Decay[i] *= 1.0 - 0.02*speed*dt*60.0
			if s.smokeTimer <= 0 {
				s.ephemera.SpawnSmoke(points.Position[i], s.rng)
			}
			if points.CombustionProgress[i] >= 1.0 {
				points.Combustion[i] = CombustionStateExtinguishing
			}

		case CombustionStateExtinguishing:
			points.CombustionProgress[i] -= speed * 8.0 * dt
			if points.CombustionProgress[i] <= 0 {
				points.Combustion[i] = CombustionStateNot
				points.CombustionProgress[i] = 0
				if s.burningPoints > 0 {
					s.burningPoints--
				}
				pos := points.Position[i]
				s.eventBus.Emit(Event{Type: EventPointCombustionEnd, X: pos[0], Y: pos[1], Data: s.ID})
			}
		}
	}

	if s.smokeTimer <= 0 {
		s.smokeTimer = smokeEmissionInterval
	}
}

// checkMelting snaps springs whose endpoints have passed their material's
// melting temperature. Runs on the decay low-frequency offset.
func (s *Ship) checkMelting() {
	points := s.Points
	springs := s.Springs
	for i := int32(0); i < int32(springs.Count()); i++ {
		if springs.Deleted[i] {
			continue
		}
		a := springs.PointA[i]
		b := springs.PointB[i]
		if points.Temperature[a] > points.Material[a].MeltingTemperature ||
			points.Temperature[b] > points.Material[b].MeltingTemperature {
			s.breakSpring(i)
		}
	}
}

// ApplyHeatBlasterAt injects (or removes, when flow is negative) heat into
// every particle within the radius. Returns whether anything was touched.
func (s *Ship) ApplyHeatBlasterAt(center vec2, radius, flow float32, dt float32) bool {
	points := s.Points
	radiusSq := radius * radius
	any := false
	for i := int32(0); i < int32(points.Count()); i++ {
		if !points.IsActive[i] {
			continue
		}
		d := points.Position[i].Sub(center)
		if d[0]*d[0]+d[1]*d[1] > radiusSq {
			continue
		}
		points.AddHeat(i, flow*dt)
		any = true
	}
	return any
}
