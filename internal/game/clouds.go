package game

// Clouds: purely visual drifters advected by the wind, darkening with the
// storm. They consume the wind state computed earlier in the same step.

type Cloud struct {
	X, Y  float32
	Scale float32
	Dark  float32 // 0 white .. 1 storm-black
}

const cloudCount = 30

type Clouds struct {
	clouds []Cloud
	rng    *Rand
}

func NewClouds(rng *Rand) *Clouds {
	c := &Clouds{rng: rng}
	c.clouds = make([]Cloud, cloudCount)
	for i := range c.clouds {
		c.clouds[i] = Cloud{
			X:     rng.RangeF(-HalfWorldWidth, HalfWorldWidth),
			Y:     rng.RangeF(600, 1800),
			Scale: rng.RangeF(0.5, 1.8),
		}
	}
	return c
}

func (c *Clouds) Update(wind *Wind, storm *Storm, dt float32) {
	// Clouds drift at a fraction of the wind, converted km/h → m/s.
	drift := wind.CurrentSpeed()[0] * (1000.0 / 3600.0) * 3.0
	dark := storm.RainDensity()
	for i := range c.clouds {
		cl := &c.clouds[i]
		cl.X += drift * dt * cl.Scale
		if cl.X > HalfWorldWidth+200 {
			cl.X = -HalfWorldWidth - 200
		} else if cl.X < -HalfWorldWidth-200 {
			cl.X = HalfWorldWidth + 200
		}
		cl.Dark += (dark - cl.Dark) * clampF(0.2*dt, 0, 1)
	}
}

// Visuals returns the render snapshot.
func (c *Clouds) Visuals() []Cloud { return c.clouds }
