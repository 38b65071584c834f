package game

// Storm: a slow weather state machine modulating wind and rain. Rain
// density feeds ship heat dissipation and douses deck fires indirectly.

type stormPhase uint8

const (
	stormPhaseCalm stormPhase = iota
	stormPhaseBuilding
	stormPhaseRaging
	stormPhaseWaning
)

const (
	stormBuildDuration = 30.0
	stormRageDuration  = 60.0
	stormWaneDuration  = 45.0
	stormWindBoost     = 35.0 // km/h at full rage
)

type Storm struct {
	rng *Rand

	phase     stormPhase
	phaseTime float32

	intensity float32 // 0..1
	nextStormTimestamp float32

	eventBus *EventBus
}

func NewStorm(eb *EventBus, rng *Rand) *Storm {
	return &Storm{rng: rng, eventBus: eb, nextStormTimestamp: -1}
}

// RainDensity is the current rainfall intensity in [0..1].
func (s *Storm) RainDensity() float32 {
	return s.intensity
}

// TriggerStorm starts a storm immediately.
func (s *Storm) TriggerStorm() {
	if s.phase == stormPhaseCalm {
		s.phase = stormPhaseBuilding
		s.phaseTime = 0
		s.eventBus.Emit(Event{Type: EventStormBegin})
	}
}

func (s *Storm) Update(currentSimTime float32, wind *Wind, params *Parameters, dt float32) {
	if s.nextStormTimestamp < 0 {
		s.nextStormTimestamp = s.schedule(currentSimTime, params)
	}

	switch s.phase {
	case stormPhaseCalm:
		if params.StormRate > 0 && currentSimTime >= s.nextStormTimestamp {
			s.TriggerStorm()
			s.nextStormTimestamp = s.schedule(currentSimTime, params)
		}

	case stormPhaseBuilding:
		s.phaseTime += dt
		s.intensity = smoothStep(0, stormBuildDuration, s.phaseTime)
		if s.phaseTime >= stormBuildDuration {
			s.phase = stormPhaseRaging
			s.phaseTime = 0
		}

	case stormPhaseRaging:
		s.phaseTime += dt
		s.intensity = 1.0
		if s.phaseTime >= stormRageDuration {
			s.phase = stormPhaseWaning
			s.phaseTime = 0
		}

	case stormPhaseWaning:
		s.phaseTime += dt
		s.intensity = 1.0 - smoothStep(0, stormWaneDuration, s.phaseTime)
		if s.phaseTime >= stormWaneDuration {
			s.phase = stormPhaseCalm
			s.intensity = 0
			s.eventBus.Emit(Event{Type: EventStormEnd})
		}
	}

	wind.SetStormBoost(stormWindBoost * s.intensity)
}

func (s *Storm) schedule(now float32, params *Parameters) float32 {
	if params.StormRate <= 0 {
		return float32(1 << 30)
	}
	return now + s.rng.Exponential(params.StormRate*60.0)
}
