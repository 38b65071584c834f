package game

// Electrical network: generators feed current through cable particles to
// lamps and engines over the surviving spring graph. Light diffusion onto
// the hull runs as a flat-array pass over all lit lamps.

type ElectricalElements struct {
	HostPoint []int32
	Material  []*ElectricalMaterial

	// Automaton state.
	IsPowered []bool
	IsFailed  []bool
	SwitchOn  []bool

	// Lamp light intensity [0..1], eased toward the powered state.
	Intensity []float32

	// Scratch for the per-step power flood fill.
	electrified []bool
	visitQueue  []int32
}

func NewElectricalElements() *ElectricalElements {
	return &ElectricalElements{}
}

func (e *ElectricalElements) Count() int { return len(e.HostPoint) }

func (e *ElectricalElements) Add(hostPoint int32, mat *ElectricalMaterial) int32 {
	idx := int32(len(e.HostPoint))
	e.HostPoint = append(e.HostPoint, hostPoint)
	e.Material = append(e.Material, mat)
	e.IsPowered = append(e.IsPowered, false)
	e.IsFailed = append(e.IsFailed, false)
	e.SwitchOn = append(e.SwitchOn, true)
	e.Intensity = append(e.Intensity, 0)
	return idx
}

// elementAtPoint returns the element hosted on a point, or NoneIndex.
func (e *ElectricalElements) elementAtPoint(point int32) int32 {
	for i, h := range e.HostPoint {
		if h == point {
			return int32(i)
		}
	}
	return NoneIndex
}

// Update recomputes the powered set by flooding current from live
// generators along springs whose both endpoints host conductive elements,
// then advances lamp intensities and wet-failure rolls.
func (e *ElectricalElements) Update(ship *Ship, params *Parameters, rng *Rand, slowStep bool) {
	points := ship.Points
	springs := ship.Springs
	n := e.Count()
	if n == 0 {
		return
	}

	if cap(e.electrified) < points.Count() {
		e.electrified = make([]bool, points.Count())
	}
	e.electrified = e.electrified[:points.Count()]
	for i := range e.electrified {
		e.electrified[i] = false
	}

	// Wet failure: submerged elements may give out for good.
	if slowStep {
		for i := 0; i < n; i++ {
			if e.IsFailed[i] {
				continue
			}
			host := e.HostPoint[i]
			if points.Water[host] >= WetThreshold && rng.Bool(e.Material[i].WetFailureRate) {
				e.IsFailed[i] = true
			}
		}
	}

	// Flood from generators.
	conductive := func(point int32) bool {
		el := e.elementAtPoint(point)
		return el != NoneIndex && !e.IsFailed[el]
	}
	e.visitQueue = e.visitQueue[:0]
	for i := 0; i < n; i++ {
		if e.Material[i].Kind == ElectricalGenerator && !e.IsFailed[i] && e.SwitchOn[i] {
			host := e.HostPoint[i]
			if points.IsActive[host] && !e.electrified[host] {
				e.electrified[host] = true
				e.visitQueue = append(e.visitQueue, host)
			}
		}
	}
	for len(e.visitQueue) > 0 {
		p := e.visitQueue[len(e.visitQueue)-1]
		e.visitQueue = e.visitQueue[:len(e.visitQueue)-1]
		for _, spring := range points.ConnectedSprings[p] {
			if springs.Deleted[spring] {
				continue
			}
			other := springs.OtherEndpoint(spring, p)
			if !e.electrified[other] && conductive(other) {
				e.electrified[other] = true
				e.visitQueue = append(e.visitQueue, other)
			}
		}
	}

	// Drive element state from the powered set.
	for i := 0; i < n; i++ {
		host := e.HostPoint[i]
		powered := !e.IsFailed[i] && points.IsActive[host] &&
			(e.electrified[host] || e.Material[i].SelfPowered && e.SwitchOn[i])
		e.IsPowered[i] = powered

		switch e.Material[i].Kind {
		case ElectricalLamp:
			target := float32(0)
			if powered {
				target = 1
			}
			// Ease so flicker on marginal connections reads as dimming.
			e.Intensity[i] += (target - e.Intensity[i]) * 0.2

		case ElectricalEngine:
			if powered {
				// Thrust along the ship-local right direction.
				points.NonSpringForce[host] = points.NonSpringForce[host].
					Add(vec2{e.Material[i].EnginePower, 0})
			}
		}
	}
}

// DiffuseLightOnto fills the points' light buffer from the lit lamps.
func (e *ElectricalElements) DiffuseLightOnto(points *Points) {
	lampCount := 0
	for i := 0; i < e.Count(); i++ {
		if e.Material[i].Kind == ElectricalLamp && e.Intensity[i] > 0.01 {
			lampCount++
		}
	}
	if lampCount == 0 {
		for i := range points.Light {
			points.Light[i] = 0
		}
		return
	}

	lampPositions := make(vec2s, 0, lampCount)
	lampPlaneIDs := make([]int32, 0, lampCount)
	lampCoeffs := make([]float32, 0, lampCount)
	lampSpreads := make([]float32, 0, lampCount)
	for i := 0; i < e.Count(); i++ {
		if e.Material[i].Kind != ElectricalLamp || e.Intensity[i] <= 0.01 {
			continue
		}
		host := e.HostPoint[i]
		lampPositions = append(lampPositions, points.Position[host])
		lampPlaneIDs = append(lampPlaneIDs, points.PlaneID[host])
		lampCoeffs = append(lampCoeffs, e.Material[i].Luminiscence*e.Intensity[i])
		lampSpreads = append(lampSpreads, e.Material[i].LightSpread)
	}

	DiffuseLight(
		points.Position, points.PlaneID, points.Count(),
		lampPositions, lampPlaneIDs, lampCoeffs, lampSpreads, lampCount,
		points.Light)
}

// DiffuseLight computes, for each point, the brightest contribution among
// all lamps on the point's plane or above it: coeff*(spread-distance),
// clamped to [0,1]. Lamps on a lower plane are occluded and contribute
// nothing.
func DiffuseLight(
	pointPositions vec2s,
	pointPlaneIDs []int32,
	pointCount int,
	lampPositions vec2s,
	lampPlaneIDs []int32,
	lampDistanceCoeffs []float32,
	lampSpreadMaxDistances []float32,
	lampCount int,
	outLight []float32,
) {
	for p := 0; p < pointCount; p++ {
		best := float32(0)
		pos := pointPositions[p]
		plane := pointPlaneIDs[p]
		for l := 0; l < lampCount; l++ {
			if lampPlaneIDs[l] < plane {
				continue
			}
			d := pos.Sub(lampPositions[l]).Len()
			light := lampDistanceCoeffs[l] * (lampSpreadMaxDistances[l] - d)
			if light > best {
				best = light
			}
		}
		if best > 1 {
			best = 1
		}
		outLight[p] = best
	}
}
