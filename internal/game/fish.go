package game

// Fish: small shoals wandering between the ocean surface and the floor.
// Disturbances (blasts, splashes) scatter nearby fish.

type Fish struct {
	Pos vec2
	Vel vec2

	shoalTarget vec2
	panicTime   float32
}

const (
	fishCount        = 40
	fishCruiseSpeed  = 3.0
	fishPanicSpeed   = 14.0
	fishPanicSeconds = 2.5
)

type Fishes struct {
	fish []Fish
	rng  *Rand
}

func NewFishes(rng *Rand) *Fishes {
	f := &Fishes{rng: rng}
	f.fish = make([]Fish, fishCount)
	for i := range f.fish {
		f.fish[i] = Fish{
			Pos: vec2{rng.RangeF(-400, 400), rng.RangeF(-120, -15)},
		}
		f.fish[i].shoalTarget = f.fish[i].Pos
	}
	return f
}

// DisturbAt panics fish within the radius away from the source.
func (f *Fishes) DisturbAt(center vec2, radius float32) {
	radiusSq := radius * radius
	for i := range f.fish {
		fi := &f.fish[i]
		d := fi.Pos.Sub(center)
		distSq := d[0]*d[0] + d[1]*d[1]
		if distSq > radiusSq || distSq == 0 {
			continue
		}
		dist := sqrtF(distSq)
		fi.Vel = d.Mul(fishPanicSpeed / dist)
		fi.panicTime = fishPanicSeconds
	}
}

func (f *Fishes) Update(ocean *OceanSurface, floor *OceanFloor, dt float32) {
	for i := range f.fish {
		fi := &f.fish[i]

		if fi.panicTime > 0 {
			fi.panicTime -= dt
		} else {
			// Wander toward the shoal target, re-rolled when reached.
			d := fi.shoalTarget.Sub(fi.Pos)
			if d.Len() < 2.0 {
				fi.shoalTarget = vec2{
					fi.Pos[0] + f.rng.RangeF(-60, 60),
					f.rng.RangeF(-150, -10),
				}
				d = fi.shoalTarget.Sub(fi.Pos)
			}
			target := d.Mul(fishCruiseSpeed / maxF(d.Len(), 0.01))
			fi.Vel = fi.Vel.Add(target.Sub(fi.Vel).Mul(clampF(0.8*dt, 0, 1)))
		}

		fi.Pos = fi.Pos.Add(fi.Vel.Mul(dt))

		// Keep fish in the water column.
		surface := ocean.GetHeightAt(fi.Pos[0]) - 2.0
		bottom := floor.GetHeightAt(fi.Pos[0]) + 2.0
		if fi.Pos[1] > surface {
			fi.Pos[1] = surface
			fi.Vel[1] = -absF(fi.Vel[1])
		} else if fi.Pos[1] < bottom {
			fi.Pos[1] = bottom
			fi.Vel[1] = absF(fi.Vel[1])
		}
	}
}

// Visuals returns the render snapshot.
func (f *Fishes) Visuals() []Fish { return f.fish }
