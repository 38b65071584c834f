package game

// Ship: one floating structure. Owns its element containers and fans the
// per-step passes out in a fixed order; expensive upkeep runs on the
// low-frequency schedule.

type Ship struct {
	ID   int
	Name string

	Points    *Points
	Springs   *Springs
	Triangles *Triangles
	Electrical *ElectricalElements
	Gadgets   *Gadgets
	Sparks    *ElectricSparks

	pool               *workerPool
	springForceBuffers [][]vec2

	eventBus *EventBus
	rng      *Rand
	ephemera *Ephemera

	stepCount int
	isSinking bool

	burningPoints int
	smokeTimer    float32
	rotPartition  int

	// Set by breakage; triggers a connectivity/plane-ID rebuild and a
	// coefficient refresh on the next update.
	structureDirty bool

	// Lazily rebuilt spatial index for the interaction tools; valid for
	// the step it was built in.
	pickTree     *QuadNode
	pickTreeStep int
	pickScratch  []int32

	// Parameter snapshot for detecting coefficient-relevant changes.
	lastStiffnessAdjust float32
	lastIterationsAdjust float32
}

func NewShip(
	id int,
	points *Points,
	springs *Springs,
	triangles *Triangles,
	elec *ElectricalElements,
	params *Parameters,
	eb *EventBus,
	rng *Rand,
) *Ship {
	s := &Ship{
		ID:         id,
		Points:     points,
		Springs:    springs,
		Triangles:  triangles,
		Electrical: elec,
		Gadgets:    NewGadgets(),
		Sparks:     NewElectricSparks(springs.Count()),
		eventBus:   eb,
		rng:        rng,
		ephemera:   NewEphemera(MaxEphemera),
		pool:       newWorkerPool(),
	}
	s.springForceBuffers = make([][]vec2, s.pool.workers)
	for w := range s.springForceBuffers {
		s.springForceBuffers[w] = make([]vec2, points.Count())
	}

	s.wireCoveringTriangles()
	springs.UpdateCoefficients(points, params, float32(SimulationStepDuration)/float32(params.NumMechanicalIterations()))
	s.lastStiffnessAdjust = params.SpringStiffnessAdjustment
	s.lastIterationsAdjust = params.NumMechanicalDynamicsIterationsAdjustment
	s.runConnectivityVisit()
	return s
}

// wireCoveringTriangles links each spring to the triangles using it as an
// edge, so breakage can take the faces down with the spring.
func (s *Ship) wireCoveringTriangles() {
	type edge struct{ a, b int32 }
	springOf := make(map[edge]int32, s.Springs.Count())
	norm := func(a, b int32) edge {
		if a > b {
			a, b = b, a
		}
		return edge{a, b}
	}
	for i := int32(0); i < int32(s.Springs.Count()); i++ {
		springOf[norm(s.Springs.PointA[i], s.Springs.PointB[i])] = i
	}
	for t := int32(0); t < int32(s.Triangles.Count()); t++ {
		pa := s.Triangles.PointA[t]
		pb := s.Triangles.PointB[t]
		pc := s.Triangles.PointC[t]
		for _, e := range [3]edge{norm(pa, pb), norm(pb, pc), norm(pa, pc)} {
			if spring, ok := springOf[e]; ok {
				s.Springs.CoveringTriangles[spring] =
					append(s.Springs.CoveringTriangles[spring], t)
			}
		}
	}
}

// runConnectivityVisit reassigns connected-component and plane IDs. Points
// are seeded in reverse index order so freshly broken-off pieces (which
// tend to contain high-index repairs and debris) land on higher planes and
// render in front.
func (s *Ship) runConnectivityVisit() {
	points := s.Points
	springs := s.Springs
	n := points.Count()
	for i := 0; i < n; i++ {
		points.ConnectedComponentID[i] = NoneIndex
	}
	var queue []int32
	nextComponent := int32(0)
	for seed := int32(n) - 1; seed >= 0; seed-- {
		if !points.IsActive[seed] || points.ConnectedComponentID[seed] != NoneIndex {
			continue
		}
		component := nextComponent
		nextComponent++
		points.ConnectedComponentID[seed] = component
		points.PlaneID[seed] = component
		queue = append(queue[:0], seed)
		for len(queue) > 0 {
			p := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			for _, spring := range points.ConnectedSprings[p] {
				if springs.Deleted[spring] {
					continue
				}
				other := springs.OtherEndpoint(spring, p)
				if points.ConnectedComponentID[other] == NoneIndex {
					points.ConnectedComponentID[other] = component
					points.PlaneID[other] = component
					queue = append(queue, other)
				}
			}
		}
	}
}

// Update advances the ship one fixed step. currentSimTime is the world's
// monotonic simulation clock.
func (s *Ship) Update(
	currentSimTime float32,
	params *Parameters,
	ocean *OceanSurface,
	floor *OceanFloor,
	wind *Wind,
	storm *Storm,
) {
	s.stepCount++
	lowFreqStep := s.stepCount % LowFrequencyPeriod
	dt := float32(SimulationStepDuration)

	// Coefficients track the sliders.
	if params.SpringStiffnessAdjustment != s.lastStiffnessAdjust ||
		params.NumMechanicalDynamicsIterationsAdjustment != s.lastIterationsAdjust {
		s.Springs.UpdateCoefficients(s.Points, params,
			dt/float32(params.NumMechanicalIterations()))
		s.lastStiffnessAdjust = params.SpringStiffnessAdjustment
		s.lastIterationsAdjust = params.NumMechanicalDynamicsIterationsAdjustment
	}

	// Electrical first: engine thrust lands in the non-spring forces that
	// the mechanics pass below will consume.
	s.Electrical.Update(s, params, s.rng, lowFreqStep == LowFrequencyDecay)

	s.updateNonSpringForces(ocean, wind.CurrentSpeed(), params)
	s.runMechanicalDynamics(params)
	s.handleCollisionsWithSeaFloor(floor)
	s.trimForWorldBounds()

	// Water.
	s.updateWaterInflow(ocean, params, dt)
	s.updateWaterVelocities(params, dt)

	// Heat.
	s.propagateHeat(params, dt)
	s.dissipateHeat(ocean, storm.RainDensity(), params, dt)
	s.updateCombustionFast(params, dt)

	// Low-frequency upkeep.
	switch lowFreqStep {
	case LowFrequencyUpdateSinking:
		s.updateSinking()
	case LowFrequencyCombustionSlow1:
		s.updateCombustionSlow(0, params)
	case LowFrequencyRotPoints:
		s.rotPoints(ocean)
	case LowFrequencyCombustionSlow2:
		s.updateCombustionSlow(1, params)
	case LowFrequencyDecay:
		s.checkMelting()
	case LowFrequencyCombustionSlow3:
		s.updateCombustionSlow(2, params)
	case LowFrequencyCombustionSlow4:
		s.updateCombustionSlow(3, params)
	}

	if s.structureDirty {
		s.runConnectivityVisit()
		s.structureDirty = false
	}

	s.Electrical.DiffuseLightOnto(s.Points)
	s.Sparks.Update()
	s.Gadgets.Update(s, params)
	s.ephemera.Update(ocean, dt)
}

// --- Interaction surface ---

// spatialIndex returns a quadtree over the active particles, rebuilt at
// most once per simulation step.
func (s *Ship) spatialIndex() *QuadNode {
	if s.pickTree != nil && s.pickTreeStep == s.stepCount {
		return s.pickTree
	}
	root := NewQuadNode(RectF{
		X0: -HalfWorldWidth, Y0: -MaxWorldHeight / 2,
		X1: HalfWorldWidth, Y1: MaxWorldHeight / 2,
	}, 0)
	points := s.Points
	for i := int32(0); i < int32(points.Count()); i++ {
		if points.IsActive[i] {
			root.Insert(i, points.Position[i])
		}
	}
	s.pickTree = root
	s.pickTreeStep = s.stepCount
	return root
}

// pointsNear returns the active particles within the radius.
func (s *Ship) pointsNear(position vec2, radius float32) []int32 {
	s.pickScratch = s.pickScratch[:0]
	s.spatialIndex().Query(RectF{
		X0: position[0] - radius, Y0: position[1] - radius,
		X1: position[0] + radius, Y1: position[1] + radius,
	}, &s.pickScratch)
	radiusSq := radius * radius
	kept := s.pickScratch[:0]
	for _, p := range s.pickScratch {
		d := s.Points.Position[p].Sub(position)
		if d[0]*d[0]+d[1]*d[1] <= radiusSq {
			kept = append(kept, p)
		}
	}
	s.pickScratch = kept
	return s.pickScratch
}

// QueryNearestPointAt returns the nearest active particle within the
// radius, or NoneIndex.
func (s *Ship) QueryNearestPointAt(position vec2, radius float32) int32 {
	points := s.Points
	best := NoneIndex
	bestSq := radius * radius
	for _, i := range s.pointsNear(position, radius) {
		d := points.Position[i].Sub(position)
		sq := d[0]*d[0] + d[1]*d[1]
		if sq < bestSq {
			bestSq = sq
			best = i
		}
	}
	return best
}

// DestroyAt breaks every spring touching a particle within the radius.
// Returns whether anything was destroyed.
func (s *Ship) DestroyAt(position vec2, radius float32) bool {
	points := s.Points
	springs := s.Springs
	any := false
	near := append([]int32(nil), s.pointsNear(position, radius)...)
	for _, i := range near {
		// Copy: breakSpring mutates the connected list.
		attached := append([]int32(nil), points.ConnectedSprings[i]...)
		for _, spring := range attached {
			if !springs.Deleted[spring] {
				s.breakSpring(spring)
				any = true
			}
		}
	}
	return any
}

// RepairAt restores broken springs and deleted triangles whose endpoints
// lie within the radius. Repairing an undamaged region is a no-op.
func (s *Ship) RepairAt(position vec2, radius float32) bool {
	points := s.Points
	springs := s.Springs
	radiusSq := radius * radius
	near := func(p int32) bool {
		d := points.Position[p].Sub(position)
		return d[0]*d[0]+d[1]*d[1] <= radiusSq
	}
	any := false
	for i := int32(0); i < int32(springs.Count()); i++ {
		if !springs.Deleted[i] {
			continue
		}
		if near(springs.PointA[i]) || near(springs.PointB[i]) {
			springs.Restore(i, points)
			any = true
		}
	}
	tris := s.Triangles
	for t := int32(0); t < int32(tris.Count()); t++ {
		if !tris.Deleted[t] {
			continue
		}
		if near(tris.PointA[t]) || near(tris.PointB[t]) || near(tris.PointC[t]) {
			// Only faces whose three edges survive again.
			tris.Restore(t, points)
			any = true
		}
	}
	if any {
		s.structureDirty = true
	}
	return any
}

// SawThrough breaks every spring crossing the segment. Returns the number
// of springs cut.
func (s *Ship) SawThrough(start, end vec2) int {
	points := s.Points
	springs := s.Springs
	cut := 0
	for i := int32(0); i < int32(springs.Count()); i++ {
		if springs.Deleted[i] {
			continue
		}
		a := points.Position[springs.PointA[i]]
		b := points.Position[springs.PointB[i]]
		if segmentsIntersect(start, end, a, b) {
			s.breakSpring(i)
			cut++
		}
	}
	return cut
}

// ApplySparkAt routes a spark interaction to the propagation engine.
func (s *Ship) ApplySparkAt(position vec2, counter uint64) bool {
	ok := s.Sparks.ApplySparkAt(position, counter, s.Points, s.Springs, s.rng)
	if ok {
		s.eventBus.Emit(Event{Type: EventSparkApplied, X: position[0], Y: position[1], Data: s.ID})
	}
	return ok
}

// MoveBy adds a velocity offset to the whole ship (or one connected
// component when componentID >= 0).
func (s *Ship) MoveBy(componentID int32, deltaVelocity vec2) {
	points := s.Points
	for i := int32(0); i < int32(points.Count()); i++ {
		if !points.IsActive[i] {
			continue
		}
		if componentID >= 0 && points.ConnectedComponentID[i] != componentID {
			continue
		}
		points.Velocity[i] = points.Velocity[i].Add(deltaVelocity)
	}
}

// ApplyThanosSnapAt vaporizes the half of the ship on one side of the
// vertical line through x, with a slight ragged edge.
func (s *Ship) ApplyThanosSnapAt(x float32, rightSide bool) bool {
	points := s.Points
	springs := s.Springs
	any := false
	for i := int32(0); i < int32(springs.Count()); i++ {
		if springs.Deleted[i] {
			continue
		}
		mid := points.Position[springs.PointA[i]].Add(points.Position[springs.PointB[i]]).Mul(0.5)
		edge := x + s.rng.RangeF(-1.5, 1.5)
		if (rightSide && mid[0] > edge) || (!rightSide && mid[0] < edge) {
			s.breakSpring(i)
			any = true
		}
	}
	return any
}

// segmentsIntersect reports proper intersection of segments pq and ab.
func segmentsIntersect(p, q, a, b vec2) bool {
	d1 := cross2(q.Sub(p), a.Sub(p))
	d2 := cross2(q.Sub(p), b.Sub(p))
	d3 := cross2(b.Sub(a), p.Sub(a))
	d4 := cross2(b.Sub(a), q.Sub(a))
	return ((d1 > 0) != (d2 > 0)) && ((d3 > 0) != (d4 > 0))
}

func cross2(a, b vec2) float32 {
	return a[0]*b[1] - a[1]*b[0]
}
