package game

// Springs is the structure-of-arrays connection container of one ship.
// Broken springs keep their slot (index stability for spark history and
// repair); they are skipped by force accumulation via the Deleted flag.
type Springs struct {
	PointA []int32
	PointB []int32

	RestLength []float32

	// Material-derived break threshold: a spring snaps when its strain
	// |len-rest|/rest exceeds Strength times the user adjustment.
	Strength  []float32
	Stiffness []float32

	// Per-step derived coefficients, refreshed when parameters change.
	StiffnessCoefficient []float32
	DampingCoefficient   []float32

	// Per-step cache filled by CalculateVectorDirsAndReciprocalLengths.
	Dir             vec2s
	ReciprocalLength []float32

	Deleted []bool

	// Triangles that reference this spring as one of their edges.
	CoveringTriangles [][]int32
}

func NewSprings(capacity int) *Springs {
	s := &Springs{}
	s.PointA = make([]int32, 0, capacity)
	s.PointB = make([]int32, 0, capacity)
	s.RestLength = make([]float32, 0, capacity)
	s.Strength = make([]float32, 0, capacity)
	s.Stiffness = make([]float32, 0, capacity)
	s.StiffnessCoefficient = make([]float32, 0, capacity)
	s.DampingCoefficient = make([]float32, 0, capacity)
	s.Dir = make(vec2s, 0, capacity)
	s.ReciprocalLength = make([]float32, 0, capacity)
	s.Deleted = make([]bool, 0, capacity)
	s.CoveringTriangles = make([][]int32, 0, capacity)
	return s
}

func (s *Springs) Count() int { return len(s.PointA) }

// Add appends a spring between two points and returns its index. The rest
// length is the current distance between the endpoints.
func (s *Springs) Add(points *Points, a, b int32) int32 {
	idx := int32(len(s.PointA))
	s.PointA = append(s.PointA, a)
	s.PointB = append(s.PointB, b)
	rest := points.Position[b].Sub(points.Position[a]).Len()
	s.RestLength = append(s.RestLength, rest)
	// The weaker endpoint governs breakage and stiffness.
	ma := points.Material[a]
	mb := points.Material[b]
	s.Strength = append(s.Strength, minF(ma.Strength, mb.Strength))
	s.Stiffness = append(s.Stiffness, minF(ma.Stiffness, mb.Stiffness))
	s.StiffnessCoefficient = append(s.StiffnessCoefficient, 0)
	s.DampingCoefficient = append(s.DampingCoefficient, 0)
	s.Dir = append(s.Dir, vec2{})
	s.ReciprocalLength = append(s.ReciprocalLength, 0)
	s.Deleted = append(s.Deleted, false)
	s.CoveringTriangles = append(s.CoveringTriangles, nil)
	points.ConnectSpring(a, idx)
	points.ConnectSpring(b, idx)
	return idx
}

// OtherEndpoint returns the endpoint of spring s that is not p.
func (s *Springs) OtherEndpoint(spring, p int32) int32 {
	if s.PointA[spring] == p {
		return s.PointB[spring]
	}
	return s.PointA[spring]
}

// UpdateCoefficients derives the per-spring force coefficients from the
// current parameters and timestep. Must run whenever the stiffness or
// iteration-count sliders move.
func (s *Springs) UpdateCoefficients(points *Points, params *Parameters, dt float32) {
	// Spring forces only close half the residual displacement per pass;
	// full correction makes neighbouring springs fight and diverge.
	const reductionFraction = 0.5

	n := s.Count()
	for i := 0; i < n; i++ {
		a := s.PointA[i]
		b := s.PointB[i]
		ma := points.AugmentedMass[a]
		mb := points.AugmentedMass[b]
		effMass := ma * mb / (ma + mb)
		k := reductionFraction * effMass / (dt * dt) *
			s.Stiffness[i] * params.SpringStiffnessAdjustment
		s.StiffnessCoefficient[i] = k
		s.DampingCoefficient[i] = 2.0 * 0.5 * sqrtF(k*effMass)
	}
}

// Break marks a spring broken, disconnects it from its endpoints, and
// reports which endpoints became fully disconnected.
func (s *Springs) Break(spring int32, points *Points) (orphanA, orphanB bool) {
	if s.Deleted[spring] {
		return false, false
	}
	s.Deleted[spring] = true
	a := s.PointA[spring]
	b := s.PointB[spring]
	points.DisconnectSpring(a, spring)
	points.DisconnectSpring(b, spring)
	return len(points.ConnectedSprings[a]) == 0, len(points.ConnectedSprings[b]) == 0
}

// Restore re-adds a previously broken spring (repair tool).
func (s *Springs) Restore(spring int32, points *Points) {
	if !s.Deleted[spring] {
		return
	}
	s.Deleted[spring] = false
	a := s.PointA[spring]
	b := s.PointB[spring]
	points.ConnectSpring(a, spring)
	points.ConnectSpring(b, spring)
	points.IsActive[a] = true
	points.IsActive[b] = true
}
