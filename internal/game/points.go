package game

// NoneIndex marks "no element" in any index slot.
const NoneIndex = int32(-1)

// CombustionState tracks a point through its burn lifecycle.
type CombustionState uint8

const (
	CombustionStateNot CombustionState = iota
	CombustionStateDeveloping
	CombustionStateBurning
	CombustionStateExtinguishing
)

// Points is the structure-of-arrays particle container of one ship.
// Slots are append-only; a detached particle keeps its index forever and is
// flagged inactive instead of being removed, so spring endpoints and gadget
// attachments stay valid for the whole session.
type Points struct {
	Position vec2s
	Velocity vec2s

	// Per-step force accumulators. Spring forces are kept apart from the
	// rest because the integrator folds them in once per relaxation pass.
	SpringForce    vec2s
	NonSpringForce vec2s

	Mass          []float32 // structural mass, constant
	AugmentedMass []float32 // structural mass + absorbed water mass

	Material []*StructuralMaterial

	// Buoyancy: volume displaced = coeff1 + coeff2 * temperature.
	BuoyancyCoeff1 []float32
	BuoyancyCoeff2 []float32

	Temperature []float32
	Water       []float32
	IsLeaking   []bool
	CumulatedIntakenWater []float32

	Decay []float32 // structural integrity [0..1], rots toward 0

	Combustion         []CombustionState
	CombustionProgress []float32

	Light []float32

	PlaneID              []int32
	ConnectedComponentID []int32

	ConnectedSprings   [][]int32
	ConnectedTriangles [][]int32

	AttachedGadget []int32 // gadget id or NoneIndex

	// False once the particle has fully detached and been culled from the
	// simulation (zero springs and marked destroyed).
	IsActive []bool
}

// vec2s is a flat slice of 2D vectors.
type vec2s []vec2

func NewPoints(capacity int) *Points {
	p := &Points{}
	p.Position = make(vec2s, 0, capacity)
	p.Velocity = make(vec2s, 0, capacity)
	p.SpringForce = make(vec2s, 0, capacity)
	p.NonSpringForce = make(vec2s, 0, capacity)
	p.Mass = make([]float32, 0, capacity)
	p.AugmentedMass = make([]float32, 0, capacity)
	p.Material = make([]*StructuralMaterial, 0, capacity)
	p.BuoyancyCoeff1 = make([]float32, 0, capacity)
	p.BuoyancyCoeff2 = make([]float32, 0, capacity)
	p.Temperature = make([]float32, 0, capacity)
	p.Water = make([]float32, 0, capacity)
	p.IsLeaking = make([]bool, 0, capacity)
	p.CumulatedIntakenWater = make([]float32, 0, capacity)
	p.Decay = make([]float32, 0, capacity)
	p.Combustion = make([]CombustionState, 0, capacity)
	p.CombustionProgress = make([]float32, 0, capacity)
	p.Light = make([]float32, 0, capacity)
	p.PlaneID = make([]int32, 0, capacity)
	p.ConnectedComponentID = make([]int32, 0, capacity)
	p.ConnectedSprings = make([][]int32, 0, capacity)
	p.ConnectedTriangles = make([][]int32, 0, capacity)
	p.AttachedGadget = make([]int32, 0, capacity)
	p.IsActive = make([]bool, 0, capacity)
	return p
}

func (p *Points) Count() int { return len(p.Position) }

// Add appends a particle and returns its index.
func (p *Points) Add(pos vec2, mat *StructuralMaterial, buoyancyAdjust float32) int32 {
	idx := int32(len(p.Position))
	p.Position = append(p.Position, pos)
	p.Velocity = append(p.Velocity, vec2{})
	p.SpringForce = append(p.SpringForce, vec2{})
	p.NonSpringForce = append(p.NonSpringForce, vec2{})
	p.Mass = append(p.Mass, mat.Mass)
	p.AugmentedMass = append(p.AugmentedMass, mat.Mass)
	p.Material = append(p.Material, mat)
	fill := mat.BuoyancyVolumeFill * buoyancyAdjust
	p.BuoyancyCoeff1 = append(p.BuoyancyCoeff1,
		fill*(1.0-mat.ThermalExpansionCoefficient*AirTemperature))
	p.BuoyancyCoeff2 = append(p.BuoyancyCoeff2,
		fill*mat.ThermalExpansionCoefficient)
	p.Temperature = append(p.Temperature, AirTemperature)
	p.Water = append(p.Water, 0)
	p.IsLeaking = append(p.IsLeaking, false)
	p.CumulatedIntakenWater = append(p.CumulatedIntakenWater, 0)
	p.Decay = append(p.Decay, 1.0)
	p.Combustion = append(p.Combustion, CombustionStateNot)
	p.CombustionProgress = append(p.CombustionProgress, 0)
	p.Light = append(p.Light, 0)
	p.PlaneID = append(p.PlaneID, 0)
	p.ConnectedComponentID = append(p.ConnectedComponentID, NoneIndex)
	p.ConnectedSprings = append(p.ConnectedSprings, nil)
	p.ConnectedTriangles = append(p.ConnectedTriangles, nil)
	p.AttachedGadget = append(p.AttachedGadget, NoneIndex)
	p.IsActive = append(p.IsActive, true)
	return idx
}

func (p *Points) ConnectSpring(point, spring int32) {
	p.ConnectedSprings[point] = append(p.ConnectedSprings[point], spring)
}

func (p *Points) DisconnectSpring(point, spring int32) {
	cs := p.ConnectedSprings[point]
	for i, s := range cs {
		if s == spring {
			cs[i] = cs[len(cs)-1]
			p.ConnectedSprings[point] = cs[:len(cs)-1]
			return
		}
	}
}

func (p *Points) ConnectTriangle(point, triangle int32) {
	p.ConnectedTriangles[point] = append(p.ConnectedTriangles[point], triangle)
}

func (p *Points) DisconnectTriangle(point, triangle int32) {
	ct := p.ConnectedTriangles[point]
	for i, t := range ct {
		if t == triangle {
			ct[i] = ct[len(ct)-1]
			p.ConnectedTriangles[point] = ct[:len(ct)-1]
			return
		}
	}
}

// Detach culls a fully disconnected particle from the simulation. It stays
// addressable but no longer accumulates forces or hosts gadgets.
func (p *Points) Detach(point int32) {
	p.IsActive[point] = false
	p.Velocity[point] = vec2{}
	p.SpringForce[point] = vec2{}
	p.NonSpringForce[point] = vec2{}
	p.Combustion[point] = CombustionStateNot
	p.AttachedGadget[point] = NoneIndex
}

// AddWaterMass folds absorbed water into the inertial mass.
func (p *Points) UpdateAugmentedMass(point int32) {
	p.AugmentedMass[point] = p.Mass[point] + p.Water[point]*p.Material[point].WaterRetention*WaterMass
}

// AddHeat injects q joules into the particle.
func (p *Points) AddHeat(point int32, q float32) {
	t := p.Temperature[point] + q/(p.Material[point].SpecificHeat*p.Mass[point])
	if t < 0 {
		t = 0
	}
	p.Temperature[point] = t
}
