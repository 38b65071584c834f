package game

// OceanFloor is the static bathymetry: a coarse height profile sampled by
// sea-floor collision handling. Generated once from layered sinusoids
// around the configured sea depth.
type OceanFloor struct {
	samples []float32 // world Y of the floor, one per coarse sample
	dx      float32
}

const oceanFloorSamples = 512

func NewOceanFloor(seaDepth float32, rng *Rand) *OceanFloor {
	f := &OceanFloor{
		samples: make([]float32, oceanFloorSamples+1),
		dx:      MaxWorldWidth / oceanFloorSamples,
	}
	phase1 := rng.RangeF(0, 2*Pi32)
	phase2 := rng.RangeF(0, 2*Pi32)
	phase3 := rng.RangeF(0, 2*Pi32)
	for i := 0; i <= oceanFloorSamples; i++ {
		x := float32(i)*f.dx - HalfWorldWidth
		h := -seaDepth +
			seaDepth*0.10*sinF(x*0.0009+phase1) +
			seaDepth*0.05*sinF(x*0.0037+phase2) +
			seaDepth*0.02*sinF(x*0.0131+phase3)
		f.samples[i] = h
	}
	return f
}

// GetHeightAt returns the floor's world Y at the given X.
func (f *OceanFloor) GetHeightAt(x float32) float32 {
	fx := (x + HalfWorldWidth) / f.dx
	if fx < 0 {
		fx = 0
	}
	i := int(fx)
	if i >= oceanFloorSamples {
		i = oceanFloorSamples - 1
		fx = float32(i)
	}
	t := fx - float32(i)
	return f.samples[i] + (f.samples[i+1]-f.samples[i])*t
}

// GetNormalAt returns the floor's unit surface normal at the given X.
func (f *OceanFloor) GetNormalAt(x float32) vec2 {
	slope := (f.GetHeightAt(x+f.dx) - f.GetHeightAt(x-f.dx)) / (2 * f.dx)
	n := vec2{-slope, 1}
	return n.Mul(1.0 / n.Len())
}

// Update is a no-op; the floor is static. Kept so the world's fixed
// subsystem order reads uniformly.
func (f *OceanFloor) Update() {}
