package game

// Wave state machines writing into the SWE height field. Heights here are
// in raw field units (around SWEHeightFieldOffset); the ocean surface maps
// them to world metres via the amplification factor.

type wavePhase uint8

const (
	wavePhaseRise wavePhase = iota
	wavePhaseFall
)

// interactiveWaveStateMachine tracks one user-driven surface pull. Rise
// eases from the grabbed height toward the target over an
// amplitude-dependent duration; release decays the displacement
// exponentially and the machine dies once it is spent.
type interactiveWaveStateMachine struct {
	centerIndex int

	phase wavePhase

	startHeight   float32
	targetHeight  float32
	currentHeight float32
	startTime     float32
	riseDuration  float32

	fallDecayCoefficient float32
}

// riseDurationFor maps displacement magnitude to rise time: bigger pulls
// take longer, saturating around 2.5 s. Empirical fit.
func riseDurationFor(deltaHeight float32) float32 {
	d := 2.53079 - 2.572298*expF(-9.031207*absF(deltaHeight))
	if d < 0 {
		d = 0
	}
	return d
}

func newInteractiveWaveStateMachine(
	centerIndex int,
	startHeight, targetHeight float32,
	currentSimTime float32,
) *interactiveWaveStateMachine {
	return &interactiveWaveStateMachine{
		centerIndex:   centerIndex,
		phase:         wavePhaseRise,
		startHeight:   startHeight,
		targetHeight:  targetHeight,
		currentHeight: startHeight,
		startTime:     currentSimTime,
		riseDuration:  riseDurationFor(targetHeight - startHeight),
	}
}

// Update returns the height to impose this step and whether the machine is
// still alive.
func (m *interactiveWaveStateMachine) Update(currentSimTime float32) (float32, bool) {
	switch m.phase {
	case wavePhaseRise:
		var progress float32 = 1
		if m.riseDuration > 0 {
			progress = clampF((currentSimTime-m.startTime)/m.riseDuration, 0, 1)
		}
		m.currentHeight = m.startHeight +
			(m.targetHeight-m.startHeight)*smoothStep(0, 1, progress)
		return m.currentHeight, true

	default: // wavePhaseFall
		displacement := m.currentHeight - SWEHeightFieldOffset
		displacement *= m.fallDecayCoefficient
		m.currentHeight = SWEHeightFieldOffset + displacement
		if absF(displacement) < 0.001 {
			return m.currentHeight, false
		}
		return m.currentHeight, true
	}
}

// MayBeOverridden reports whether a new interaction at a different locus
// may silently replace this machine: only while falling and already close
// to its resting height.
func (m *interactiveWaveStateMachine) MayBeOverridden() bool {
	return m.phase == wavePhaseFall &&
		absF(m.currentHeight-SWEHeightFieldOffset) < 0.2
}

// Restart retargets a machine that is still rising without any height
// discontinuity: the current value, slope, and elapsed-time fraction are
// preserved by re-deriving a fictitious start height and start time for
// the new target.
func (m *interactiveWaveStateMachine) Restart(targetHeight, currentSimTime float32) {
	if m.phase != wavePhaseRise {
		// Falling: begin a fresh rise from wherever we are.
		m.phase = wavePhaseRise
		m.startHeight = m.currentHeight
		m.targetHeight = targetHeight
		m.startTime = currentSimTime
		m.riseDuration = riseDurationFor(targetHeight - m.currentHeight)
		return
	}

	var progressFraction float32 = 1
	if m.riseDuration > 0 {
		progressFraction = (currentSimTime - m.startTime) / m.riseDuration
	}
	if progressFraction > 0.9 {
		progressFraction = 0.9
	}
	valueFraction := smoothStep(0, 1, progressFraction)

	// Solve start' so that start' + (target-start')*valueFraction equals
	// the current height.
	fictitiousStart := (m.currentHeight - targetHeight*valueFraction) / (1.0 - valueFraction)

	m.startHeight = fictitiousStart
	m.targetHeight = targetHeight
	m.riseDuration = riseDurationFor(targetHeight - fictitiousStart)
	m.startTime = currentSimTime - progressFraction*m.riseDuration
}

// Release switches to the fall phase. Small displacements decay faster so
// a light touch leaves no lingering ripple.
func (m *interactiveWaveStateMachine) Release(currentSimTime float32) {
	if m.phase == wavePhaseFall {
		return
	}
	m.phase = wavePhaseFall
	displacement := absF(m.currentHeight - SWEHeightFieldOffset)
	decay := 0.65 - (0.65-0.025)*smoothStep(0, 0.1, displacement)
	m.fallDecayCoefficient = 1.0 - decay
}

// abnormalWaveStateMachine drives a tsunami or rogue wave: a smooth rise
// from rest to the crest height over riseDelay, a smooth fall back over
// fallDelay, then removal.
type abnormalWaveStateMachine struct {
	centerIndex int

	phase wavePhase

	lowHeight  float32
	highHeight float32
	riseDelay  float32
	fallDelay  float32

	startTime      float32
	fallStartTime  float32
	currentHeight  float32
}

func newAbnormalWaveStateMachine(
	centerIndex int,
	lowHeight, highHeight float32,
	riseDelay, fallDelay float32,
	currentSimTime float32,
) *abnormalWaveStateMachine {
	return &abnormalWaveStateMachine{
		centerIndex:   centerIndex,
		phase:         wavePhaseRise,
		lowHeight:     lowHeight,
		highHeight:    highHeight,
		riseDelay:     riseDelay,
		fallDelay:     fallDelay,
		startTime:     currentSimTime,
		currentHeight: lowHeight,
	}
}

func (m *abnormalWaveStateMachine) Update(currentSimTime float32) (float32, bool) {
	switch m.phase {
	case wavePhaseRise:
		progress := clampF((currentSimTime-m.startTime)/m.riseDelay, 0, 1)
		m.currentHeight = m.lowHeight +
			(m.highHeight-m.lowHeight)*smoothStep(0, 1, progress)
		if progress >= 1 {
			m.phase = wavePhaseFall
			m.fallStartTime = currentSimTime
		}
		return m.currentHeight, true

	default: // wavePhaseFall
		progress := clampF((currentSimTime-m.fallStartTime)/m.fallDelay, 0, 1)
		m.currentHeight = m.highHeight -
			(m.highHeight-m.lowHeight)*smoothStep(0, 1, progress)
		return m.currentHeight, progress < 1
	}
}
