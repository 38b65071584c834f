package game

// Stars: a fixed twinkle buffer above the horizon. First in the world's
// update order; nothing depends on it, but keeping the slot makes the
// ordering uniform.

type Star struct {
	X, Y       float32
	Brightness float32
	phase      float32
}

const starCount = 120

type Stars struct {
	stars []Star
}

func NewStars(rng *Rand) *Stars {
	s := &Stars{stars: make([]Star, starCount)}
	for i := range s.stars {
		s.stars[i] = Star{
			X:     rng.RangeF(-HalfWorldWidth, HalfWorldWidth),
			Y:     rng.RangeF(200, MaxWorldHeight/2),
			phase: rng.RangeF(0, 2*Pi32),
		}
	}
	return s
}

// Update advances the twinkle phases. With the daylight cycle on, a slow
// day factor fades the whole field out toward midday and back in at night.
func (s *Stars) Update(currentSimTime float32, params *Parameters) {
	day := float32(1.0)
	if params.DoDayLightCycle {
		day = 0.5 - 0.5*sinF(currentSimTime*(2*Pi32/DayLightCycleDuration))
		day = clampF(day*1.5, 0, 1)
	}
	for i := range s.stars {
		s.stars[i].Brightness = day * (0.55 + 0.45*sinF(currentSimTime*1.3+s.stars[i].phase))
	}
}

// Visuals returns the render snapshot.
func (s *Stars) Visuals() []Star { return s.stars }
