package game

// Ocean surface: a 1D shallow-water-equation grid spanning the world
// width, with hidden margin samples for wave generation and open-boundary
// damping, plus superposed analytic basal waves and wind ripples. The
// combined surface is resampled once per step into a flat array that every
// buoyancy/drag/tool query interpolates.

type OceanSurface struct {
	heightField   []float32 // SWE water column height, around SWEHeightFieldOffset
	velocityField []float32

	// Externally injected disturbances, folded into the height field
	// through the triangular smoothing kernel before each SWE step.
	deltaHeightBuffer []float32

	// Combined renderable surface: SWE + basal + ripples, one sample per
	// grid cell across the world width.
	samples []float32

	// Wave state machines; at most one of each kind.
	interactiveWave *interactiveWaveStateMachine
	tsunamiWave     *abnormalWaveStateMachine
	rogueWave       *abnormalWaveStateMachine

	nextTsunamiTimestamp   float32
	nextRogueWaveTimestamp float32

	// Basal wave coefficients, recomputed only when the driving
	// parameters change.
	basalAmplitude1      float32
	basalWaveNumber1     float32
	basalAngularVelocity1 float32
	basalAmplitude2      float32
	basalWaveNumber2     float32
	basalAngularVelocity2 float32
	rippleWaveNumber     float32
	rippleAngularVelocity float32

	lastWindSpeedMagnitude float32
	lastWaveHeightAdjust   float32
	lastWaveLengthAdjust   float32
	lastWaveSpeedAdjust    float32
	lastTsunamiRate        float32
	lastRogueWaveRate      float32
	coefficientsDirty      bool

	// Smoothed gust "incisiveness" driving ripple amplitude.
	windIncisivenessRunningAverage float32

	eventBus *EventBus
	rng      *Rand
}

func NewOceanSurface(eb *EventBus, rng *Rand) *OceanSurface {
	o := &OceanSurface{
		heightField:       make([]float32, SWETotalSamples),
		velocityField:     make([]float32, SWETotalSamples),
		deltaHeightBuffer: make([]float32, SWETotalSamples),
		samples:           make([]float32, SamplesCount+1),
		eventBus:          eb,
		rng:               rng,
		coefficientsDirty: true,
	}
	for i := range o.heightField {
		o.heightField[i] = SWEHeightFieldOffset
	}
	return o
}

// sampleIndexAt maps a world X to the index of the grid cell containing it.
func sampleIndexAt(x float32) int {
	i := int((x + HalfWorldWidth) / Dx)
	return clamp(i, 0, SamplesCount-1)
}

// GetHeightAt returns the surface height at a world X, interpolating the
// combined sample array.
func (o *OceanSurface) GetHeightAt(x float32) float32 {
	fx := (x + HalfWorldWidth) / Dx
	if fx < 0 {
		fx = 0
	}
	i := int(fx)
	if i >= SamplesCount {
		i = SamplesCount - 1
		fx = float32(i)
	}
	t := fx - float32(i)
	return o.samples[i] + (o.samples[i+1]-o.samples[i])*t
}

// IsUnderwater reports whether a world position is below the surface.
func (o *OceanSurface) IsUnderwater(pos vec2) bool {
	return pos[1] < o.GetHeightAt(pos[0])
}

// GetDepth returns how far below the surface a position sits (negative
// when airborne).
func (o *OceanSurface) GetDepth(pos vec2) float32 {
	return o.GetHeightAt(pos[0]) - pos[1]
}

// DisplaceAt accumulates an external height disturbance (explosion, snap,
// splash) at a world X; it enters the fluid on the next update through the
// smoothing kernel.
func (o *OceanSurface) DisplaceAt(x float32, displacement float32) {
	idx := SWEOuterLayerSamples + sampleIndexAt(x)
	o.deltaHeightBuffer[idx] += displacement / SWEHeightFieldAmplification
}

// AdjustTo drives the interactive wave machine: a non-nil position pulls
// the surface toward the given height; nil releases the current pull.
func (o *OceanSurface) AdjustTo(position *vec2, currentSimTime float32) {
	if position == nil {
		if o.interactiveWave != nil {
			o.interactiveWave.Release(currentSimTime)
		}
		return
	}
	centerIndex := SWEOuterLayerSamples + sampleIndexAt(position[0])
	targetRelative := clampF(position[1]/SWEHeightFieldAmplification, -2.0, 4.0)
	targetHeight := SWEHeightFieldOffset + targetRelative

	switch {
	case o.interactiveWave == nil:
		o.interactiveWave = newInteractiveWaveStateMachine(
			centerIndex, o.heightField[centerIndex], targetHeight, currentSimTime)
	case o.interactiveWave.centerIndex == centerIndex:
		o.interactiveWave.Restart(targetHeight, currentSimTime)
	case o.interactiveWave.MayBeOverridden():
		o.interactiveWave = newInteractiveWaveStateMachine(
			centerIndex, o.heightField[centerIndex], targetHeight, currentSimTime)
	default:
		// Still busy elsewhere; retarget in place to avoid a visible jump.
		o.interactiveWave.Restart(targetHeight, currentSimTime)
	}
}

// TriggerTsunami forces a tsunami now, at a random locus.
func (o *OceanSurface) TriggerTsunami(currentSimTime float32) {
	centerIndex := SWEOuterLayerSamples + o.rng.Intn(SamplesCount)
	height := TsunamiHeight * o.rng.RangeF(0.96, 1.04)
	o.tsunamiWave = newAbnormalWaveStateMachine(
		centerIndex,
		SWEHeightFieldOffset,
		SWEHeightFieldOffset+height,
		TsunamiRiseDelay, TsunamiFallDelay,
		currentSimTime)
	x := float32(centerIndex-SWEOuterLayerSamples)*Dx - HalfWorldWidth
	o.eventBus.Emit(Event{Type: EventTsunami, X: x})
}

// TriggerRogueWave forces a rogue wave now, at a random locus.
func (o *OceanSurface) TriggerRogueWave(currentSimTime float32) {
	centerIndex := SWEOuterLayerSamples + o.rng.Intn(SamplesCount)
	height := MaxRogueWaveHeight * o.rng.RangeF(0.35, 1.0)
	delay := o.rng.RangeF(0.7, 2.0)
	o.rogueWave = newAbnormalWaveStateMachine(
		centerIndex,
		SWEHeightFieldOffset,
		SWEHeightFieldOffset+height,
		delay, delay,
		currentSimTime)
	x := float32(centerIndex-SWEOuterLayerSamples)*Dx - HalfWorldWidth
	o.eventBus.Emit(Event{Type: EventRogueWave, X: x})
}

// Update advances the surface one simulation step.
func (o *OceanSurface) Update(currentSimTime float32, wind *Wind, params *Parameters) {
	windSpeed := wind.CurrentSpeed()
	windMagnitude := windSpeed.Len()

	// 1. Coefficients, only when the drivers moved.
	if o.coefficientsDirty ||
		windMagnitude != o.lastWindSpeedMagnitude ||
		params.BasalWaveHeightAdjustment != o.lastWaveHeightAdjust ||
		params.BasalWaveLengthAdjustment != o.lastWaveLengthAdjust ||
		params.BasalWaveSpeedAdjustment != o.lastWaveSpeedAdjust {
		o.recalculateWaveCoefficients(windSpeed, params)
		o.lastWindSpeedMagnitude = windMagnitude
		o.lastWaveHeightAdjust = params.BasalWaveHeightAdjustment
		o.lastWaveLengthAdjust = params.BasalWaveLengthAdjustment
		o.lastWaveSpeedAdjust = params.BasalWaveSpeedAdjustment
	}
	if o.coefficientsDirty ||
		params.TsunamiRate != o.lastTsunamiRate ||
		params.RogueWaveRate != o.lastRogueWaveRate {
		o.nextTsunamiTimestamp = o.scheduleAbnormalWave(currentSimTime, params.TsunamiRate)
		o.nextRogueWaveTimestamp = o.scheduleAbnormalWave(currentSimTime, params.RogueWaveRate)
		o.lastTsunamiRate = params.TsunamiRate
		o.lastRogueWaveRate = params.RogueWaveRate
	}
	o.coefficientsDirty = false

	// 2. Wave state machines.
	if o.interactiveWave != nil {
		if h, alive := o.interactiveWave.Update(currentSimTime); alive {
			o.setSWEWaveHeight(o.interactiveWave.centerIndex, h)
		} else {
			o.interactiveWave = nil
		}
	}
	if o.tsunamiWave != nil {
		if h, alive := o.tsunamiWave.Update(currentSimTime); alive {
			o.setSWEWaveHeight(o.tsunamiWave.centerIndex, h)
		} else {
			o.tsunamiWave = nil
		}
	}
	if o.rogueWave != nil {
		if h, alive := o.rogueWave.Update(currentSimTime); alive {
			o.setSWEWaveHeight(o.rogueWave.centerIndex, h)
		} else {
			o.rogueWave = nil
		}
	}

	// 3. Scheduled abnormal waves.
	if o.tsunamiWave == nil && params.TsunamiRate > 0 && currentSimTime >= o.nextTsunamiTimestamp {
		o.TriggerTsunami(currentSimTime)
		o.nextTsunamiTimestamp = o.scheduleAbnormalWave(currentSimTime, params.TsunamiRate)
	}
	if o.rogueWave == nil && params.RogueWaveRate > 0 && currentSimTime >= o.nextRogueWaveTimestamp {
		o.TriggerRogueWave(currentSimTime)
		o.nextRogueWaveTimestamp = o.scheduleAbnormalWave(currentSimTime, params.RogueWaveRate)
	}

	// 4–6. Fluid integration.
	o.smoothDeltaBufferIntoHeightField()
	o.applyDampingBoundaryConditions()
	o.updateFields()

	// 7. Renderable surface synthesis.
	o.recalculateSamples(currentSimTime, windSpeed, wind, params)
}

// scheduleAbnormalWave draws the next occurrence timestamp: a fixed grace
// period plus an exponential inter-arrival draw.
func (o *OceanSurface) scheduleAbnormalWave(now, rateSeconds float32) float32 {
	if rateSeconds <= 0 {
		return float32(1 << 30)
	}
	return now + AbnormalWaveGraceDelay + o.rng.Exponential(rateSeconds)
}

// recalculateWaveCoefficients rebuilds the basal/ripple wave parameters
// from the wind. The wind speed → amplitude → wavelength → period mappings
// are empirical curve fits; the constants are load-bearing.
func (o *OceanSurface) recalculateWaveCoefficients(windSpeed vec2, params *Parameters) {
	windSpeedMagnitude := windSpeed.Len() // km/h

	// Dramatize low winds so a calm day still shows a readable sea.
	x := windSpeedMagnitude
	if x < 60.0 {
		x += 63.09401 - 63.09401*expF(-0.05025263*x)
	}

	amplitude := (0.002481548*x*x - 0.08155357*x + 1.039702) *
		params.BasalWaveHeightAdjustment
	if amplitude < 0 {
		amplitude = 0
	}

	wavelength := (-738512.1 + 738525.2*expF(0.00001895026*x)) *
		params.BasalWaveLengthAdjustment
	if wavelength < 1.0 {
		wavelength = 1.0
	}

	period := (17.91851 - 15.52928*expF(-0.006572834*x)) /
		params.BasalWaveSpeedAdjustment

	o.basalAmplitude1 = amplitude
	o.basalWaveNumber1 = 2.0 * Pi32 / wavelength
	o.basalAngularVelocity1 = 2.0 * Pi32 / period

	o.basalAmplitude2 = BasalWave2AmplitudeFactor * amplitude
	o.basalWaveNumber2 = BasalWave2WaveNumberFactor * o.basalWaveNumber1
	o.basalAngularVelocity2 = BasalWave2AngularVelocityFactor * o.basalAngularVelocity1

	o.rippleWaveNumber = WindRippleWaveNumber
	// Ripples travel with the wind.
	if windSpeed[0] >= 0 {
		o.rippleAngularVelocity = -128.0
	} else {
		o.rippleAngularVelocity = 128.0
	}
}

// setSWEWaveHeight writes a wave machine's height around its centre,
// tapering linearly across the perturbed samples.
func (o *OceanSurface) setSWEWaveHeight(centerIndex int, height float32) {
	const half = SWEWaveStateMachinePerturbedSamplesCount / 2
	for l := -half; l <= half; l++ {
		idx := centerIndex + l
		if idx < 0 || idx >= SWETotalSamples {
			continue
		}
		t := 1.0 - float32(absInt(l))/float32(half+1)
		o.heightField[idx] = o.heightField[idx] + (height-o.heightField[idx])*t
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// applyDampingBoundaryConditions pulls the outer boundary cells toward
// rest, with the damping factor grading linearly from 0 (outermost cell is
// exactly at rest) to 1 (innermost boundary cell untouched). This keeps
// waves from reflecting back off the world edges.
func (o *OceanSurface) applyDampingBoundaryConditions() {
	for i := 0; i < SWEBoundaryConditionsSamples; i++ {
		factor := float32(i) / float32(SWEBoundaryConditionsSamples)

		// Left side.
		o.heightField[i] = (o.heightField[i]-SWEHeightFieldOffset)*factor + SWEHeightFieldOffset
		o.velocityField[i] *= factor

		// Right side, mirrored.
		j := SWETotalSamples - 1 - i
		o.heightField[j] = (o.heightField[j]-SWEHeightFieldOffset)*factor + SWEHeightFieldOffset
		o.velocityField[j] *= factor
	}
}

// smoothDeltaBufferIntoHeightField folds the externally-accumulated delta
// heights into the height field through a triangular kernel (equivalent to
// two box passes), then clears the buffer. The smoothing is what lets an
// explosion punch the surface without blowing up the explicit SWE step.
func (o *OceanSurface) smoothDeltaBufferIntoHeightField() {
	const d = DeltaHeightSmoothing
	const half = d / 2
	for i := half; i < SWETotalSamples-half; i++ {
		acc := float32(0)
		for l := -half; l <= half; l++ {
			weight := float32(half + 1 - absInt(l))
			acc += o.deltaHeightBuffer[i+l] * weight
		}
		o.heightField[i] += acc * (1.0 / d) * (1.0 / d)
	}
	for i := range o.deltaHeightBuffer {
		o.deltaHeightBuffer[i] = 0
	}
}

// updateFields advances the SWE height/velocity fields one explicit step.
// Field layout: heightField[i] is the column at cell i, velocityField[i]
// the flux velocity at the cell's left edge.
func (o *OceanSurface) updateFields() {
	const factorH = float32(SimulationStepDuration / Dx)
	const factorV = factorH * GravityMagnitude

	// H[0] has no left flux; it only drains into its right edge.
	o.heightField[0] -= o.heightField[0] * o.velocityField[0] * factorH

	for i := 1; i < SWETotalSamples-1; i++ {
		o.heightField[i] -= o.heightField[i] * (o.velocityField[i+1] - o.velocityField[i]) * factorH
		o.velocityField[i] += (o.heightField[i-1] - o.heightField[i]) * factorV
	}
	last := SWETotalSamples - 1
	o.velocityField[last] += (o.heightField[last-1] - o.heightField[last]) * factorV
}

// recalculateSamples rebuilds the combined render/query surface: SWE
// contribution plus two basal sinusoids plus wind ripples.
func (o *OceanSurface) recalculateSamples(currentSimTime float32, windSpeed vec2, wind *Wind, params *Parameters) {
	// Gust incisiveness: how far the current wind exceeds its base,
	// normalized by the max gust amplitude, smoothed by a running average.
	instantaneous := float32(0)
	if maxDelta := wind.MaxGustDelta(); maxDelta > 0 {
		instantaneous = clampF((windSpeed.Len()-wind.BaseSpeedMagnitude())/maxDelta, 0, 1)
	}
	o.windIncisivenessRunningAverage +=
		(instantaneous - o.windIncisivenessRunningAverage) * 0.025
	rippleHeight := WindRippleWaveHeight * (0.35 + 0.65*o.windIncisivenessRunningAverage)

	// Secondary basal wave drifts in and out of phase over a slow cycle.
	phase2 := Pi32 * sinF(currentSimTime)

	t := currentSimTime
	for i := 0; i <= SamplesCount; i++ {
		x := float32(i)*Dx - HalfWorldWidth
		sweIdx := SWEOuterLayerSamples + i
		if sweIdx > SWETotalSamples-1 {
			sweIdx = SWETotalSamples - 1
		}
		swe := (o.heightField[sweIdx] - SWEHeightFieldOffset) * SWEHeightFieldAmplification

		h := swe +
			o.basalAmplitude1*sinF(o.basalWaveNumber1*x-o.basalAngularVelocity1*t) +
			o.basalAmplitude2*sinF(o.basalWaveNumber2*x+o.basalAngularVelocity2*t+phase2) +
			rippleHeight*sinF(o.rippleWaveNumber*x-o.rippleAngularVelocity*t)
		o.samples[i] = h
	}
}

// UploadRenderSamples emits (x, height) pairs covering [startX, endX].
// Zoomed out, the visible range spans more grid samples than the slice
// budget and we interpolate down to exactly RenderSlices; zoomed in, raw
// per-sample values go out and the consumer's rasterizer interpolates.
func (o *OceanSurface) UploadRenderSamples(startX, endX float32, out []float32) []float32 {
	out = out[:0]
	startX = clampF(startX, -HalfWorldWidth, HalfWorldWidth)
	endX = clampF(endX, -HalfWorldWidth, HalfWorldWidth)
	if endX <= startX {
		return out
	}
	firstSample := sampleIndexAt(startX)
	lastSample := sampleIndexAt(endX)
	visibleSamples := lastSample - firstSample + 1

	if visibleSamples > RenderSlices {
		dx := (endX - startX) / float32(RenderSlices)
		for s := 0; s <= RenderSlices; s++ {
			x := startX + float32(s)*dx
			out = append(out, x, o.GetHeightAt(x))
		}
		return out
	}
	for i := firstSample; i <= lastSample; i++ {
		x := float32(i)*Dx - HalfWorldWidth
		out = append(out, x, o.samples[i])
	}
	return out
}
