package game

// Wind: a base speed (km/h, along X) modulated by gust fronts. Storms
// raise the base; gust state feeds the ocean's ripple synthesis.

const (
	windGustMinDuration = 0.5
	windGustMaxDuration = 3.0
	windLullMinDuration = 1.0
	windLullMaxDuration = 8.0
	// Gusts peak at this multiple of the base speed.
	windMaxGustFactor = 2.5
)

type Wind struct {
	rng *Rand

	baseMagnitude float32 // current base incl. storm contribution
	gustDelta     float32 // current gust on top of the base
	stormBoost    float32

	inGust        bool
	phaseTimeLeft float32
	gustTarget    float32
}

func NewWind(rng *Rand) *Wind {
	return &Wind{rng: rng}
}

// CurrentSpeed returns the wind velocity vector in km/h.
func (w *Wind) CurrentSpeed() vec2 {
	return vec2{w.baseMagnitude + w.gustDelta, 0}
}

// BaseSpeedMagnitude is the gust-free wind speed.
func (w *Wind) BaseSpeedMagnitude() float32 {
	return w.baseMagnitude
}

// MaxGustDelta is the largest gust excursion possible right now, used to
// normalize gust incisiveness.
func (w *Wind) MaxGustDelta() float32 {
	return w.baseMagnitude * (windMaxGustFactor - 1.0)
}

// SetStormBoost lets the storm raise the base wind while it blows.
func (w *Wind) SetStormBoost(boost float32) {
	w.stormBoost = boost
}

func (w *Wind) Update(params *Parameters, dt float32) {
	w.baseMagnitude = params.WindSpeedBase + w.stormBoost

	if !params.DoGusts {
		w.gustDelta = 0
		return
	}

	w.phaseTimeLeft -= dt
	if w.phaseTimeLeft <= 0 {
		if w.inGust {
			w.inGust = false
			w.phaseTimeLeft = w.rng.RangeF(windLullMinDuration, windLullMaxDuration)
			w.gustTarget = 0
		} else {
			w.inGust = true
			w.phaseTimeLeft = w.rng.RangeF(windGustMinDuration, windGustMaxDuration)
			w.gustTarget = w.MaxGustDelta() * w.rng.RangeF(0.3, 1.0)
		}
	}

	// Ease toward the phase target; gust fronts hit faster than they die.
	rate := float32(2.0)
	if w.gustTarget > w.gustDelta {
		rate = 6.0
	}
	w.gustDelta += (w.gustTarget - w.gustDelta) * clampF(rate*dt, 0, 1)
}
