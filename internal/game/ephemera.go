package game

type EphemeraKind uint8

const (
	EphemeraAirBubble EphemeraKind = iota
	EphemeraDebris
	EphemeraSmoke
	EphemeraSpray
)

type Ephemeron struct {
	Pos vec2
	Vel vec2

	Size float32

	Life    float32
	MaxLife float32

	Kind EphemeraKind
}

// Ephemera is a fixed-capacity pool of short-lived visual particles: air
// bubbles escaping flooded compartments, debris from snapped springs,
// smoke over fires. When full, the oldest slots are overwritten
// circularly.
type Ephemera struct {
	Max    int
	P      []Ephemeron
	ovrIdx int // circular overwrite index when full
}

func NewEphemera(max int) *Ephemera {
	if max <= 0 {
		max = MaxEphemera
	}
	return &Ephemera{
		Max: max,
		P:   make([]Ephemeron, 0, max),
	}
}

func (e *Ephemera) Clear() {
	e.P = e.P[:0]
	e.ovrIdx = 0
}

func (e *Ephemera) Add(p Ephemeron) {
	if len(e.P) < e.Max {
		e.P = append(e.P, p)
		return
	}
	if e.ovrIdx >= e.Max {
		e.ovrIdx = 0
	}
	e.P[e.ovrIdx] = p
	e.ovrIdx++
}

func (e *Ephemera) SpawnAirBubble(pos vec2, rng *Rand) {
	e.Add(Ephemeron{
		Pos:     pos,
		Vel:     vec2{rng.RangeF(-0.3, 0.3), rng.RangeF(1.0, 3.0)},
		Size:    rng.RangeF(0.1, 0.4),
		MaxLife: rng.RangeF(2.0, 6.0),
		Kind:    EphemeraAirBubble,
	})
}

func (e *Ephemera) SpawnDebris(pos, baseVel vec2, rng *Rand) {
	n := rng.Range(2, 5)
	for i := 0; i < n; i++ {
		e.Add(Ephemeron{
			Pos: pos,
			Vel: baseVel.Add(vec2{
				rng.RangeF(-4, 4),
				rng.RangeF(1, 6),
			}),
			Size:    rng.RangeF(0.1, 0.3),
			MaxLife: rng.RangeF(1.5, 4.0),
			Kind:    EphemeraDebris,
		})
	}
}

func (e *Ephemera) SpawnSmoke(pos vec2, rng *Rand) {
	e.Add(Ephemeron{
		Pos:     pos,
		Vel:     vec2{rng.RangeF(-0.5, 0.5), rng.RangeF(0.8, 2.0)},
		Size:    rng.RangeF(0.5, 1.2),
		MaxLife: rng.RangeF(2.0, 5.0),
		Kind:    EphemeraSmoke,
	})
}

func (e *Ephemera) SpawnSpray(pos vec2, rng *Rand) {
	e.Add(Ephemeron{
		Pos:     pos,
		Vel:     vec2{rng.RangeF(-2, 2), rng.RangeF(2, 7)},
		Size:    rng.RangeF(0.1, 0.25),
		MaxLife: rng.RangeF(0.5, 1.5),
		Kind:    EphemeraSpray,
	})
}

func (e *Ephemera) Update(ocean *OceanSurface, dt float32) {
	out := e.P[:0]
	for _, p := range e.P {
		p.Life += dt
		if p.Life >= p.MaxLife {
			continue
		}
		switch p.Kind {
		case EphemeraAirBubble:
			// Bubbles rise and pop at the surface.
			p.Vel[1] += 2.0 * dt
			p.Vel[0] *= 1.0 - 0.5*dt
			if p.Pos[1] >= ocean.GetHeightAt(p.Pos[0]) {
				continue
			}
		case EphemeraDebris, EphemeraSpray:
			if p.Pos[1] < ocean.GetHeightAt(p.Pos[0]) {
				// Waterlogged: sink slowly.
				p.Vel = p.Vel.Mul(1.0 - 2.0*dt)
				p.Vel[1] -= 1.0 * dt
			} else {
				p.Vel[1] -= GravityMagnitude * dt
			}
		case EphemeraSmoke:
			p.Vel[1] += 0.5 * dt
			p.Size += 0.4 * dt
		}
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))
		out = append(out, p)
	}
	e.P = out
	if e.ovrIdx > len(e.P) {
		e.ovrIdx = 0
	}
}

// RenderData packs live ephemera as [x, y, size, kind, ageFraction] * N.
func (e *Ephemera) RenderData(buf []float32) []float32 {
	buf = buf[:0]
	for _, p := range e.P {
		t := p.Life / p.MaxLife
		buf = append(buf, p.Pos[0], p.Pos[1], p.Size, float32(p.Kind), t)
	}
	return buf
}
