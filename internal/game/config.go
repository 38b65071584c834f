package game

import "math"

// World dimensions (metres). The ocean spans the full width; ships live
// anywhere inside the bounds and are bounced back at the edges.
const (
	MaxWorldWidth  = 10000.0
	MaxWorldHeight = 4500.0
	HalfWorldWidth = MaxWorldWidth / 2
)

// Window defaults.
const (
	WindowWidth  = 1024
	WindowHeight = 768
	DefaultZoom  = 12.0
	MinZoom      = 1.0
	MaxZoom      = 60.0
)

// Simulation stepping.
const (
	SimulationStepDuration = 1.0 / 64.0
	// Low-frequency work is spread over this many steps; each concern runs
	// at a fixed offset inside the period so no single step pays for all.
	LowFrequencyPeriod          = 49
	LowFrequencyUpdateSinking   = 6
	LowFrequencyCombustionSlow1 = 13
	LowFrequencyRotPoints       = 20
	LowFrequencyCombustionSlow2 = 27
	LowFrequencyDecay           = 34
	LowFrequencyCombustionSlow3 = 41
	LowFrequencyCombustionSlow4 = 48
)

// Physical constants.
const (
	GravityMagnitude   = 9.80665
	AirMass            = 1.2754 // kg/m3
	WaterMass          = 1000.0 // kg/m3
	AirTemperature     = 298.15 // K
	WaterTemperature   = 288.15 // K
	Celsius0           = 273.15 // K
	MaxBounceVelocity  = 150.0  // m/s cap at world bounds
	SeaFloorElasticity = 0.75
	SeaFloorFriction   = 0.25
)

// Mechanics solver.
const (
	// Base fraction of velocity surviving 12 iterations of damping; the
	// per-iteration coefficient is derived from this and the iteration count.
	GlobalDampingBase   = 0.99899
	NumMechanicalPasses = 12
)

// Ocean surface SWE grid.
const (
	// Samples across the world width, plus hidden margin samples on each
	// side used for wave generation and open-boundary damping.
	SamplesCount                 = 8192
	SWEWaveGenerationSamples     = 1
	SWEBoundaryConditionsSamples = 3
	SWEOuterLayerSamples         = SWEWaveGenerationSamples + SWEBoundaryConditionsSamples
	SWETotalSamples              = SamplesCount + 2*SWEOuterLayerSamples

	Dx = MaxWorldWidth / SamplesCount

	// The SWE runs on a tall column of virtual water so surface deltas stay
	// small relative to the field; heights are mapped back by amplification.
	SWEHeightFieldOffset        = 100.0
	SWEHeightFieldAmplification = 50.0

	// Two-pass triangular smoothing kernel half-width for externally
	// injected height deltas.
	DeltaHeightSmoothing = 5 // must be odd

	SWEWaveStateMachinePerturbedSamplesCount = 5

	RenderSlices = 500
)

// Basal and wind-ripple wave synthesis.
const (
	WindRippleWaveNumber = 2.0
	WindRippleWaveHeight = 0.125

	BasalWave2AmplitudeFactor       = 0.75
	BasalWave2WaveNumberFactor      = 0.66
	BasalWave2AngularVelocityFactor = 0.75

	MidPlaneDamp         = 0.8
	BackPlaneDamp        = 0.45
	DetailXOffsetSamples = 2
)

// Abnormal wave tuning.
const (
	TsunamiHeight          = 250.0 / SWEHeightFieldAmplification
	TsunamiRiseDelay       = 7.0 // seconds
	TsunamiFallDelay       = 5.0
	MaxRogueWaveHeight     = 50.0 / SWEHeightFieldAmplification
	AbnormalWaveGraceDelay = 120.0 // floor before the next scheduled event
)

// Spark propagation.
const (
	SparkSearchRadiusSquared = 1.5
	SparkStartingArcsMin     = 2
	SparkStartingArcsMax     = 4
	SparkMaxPathLength       = 25.0
)

// Gadgets.
const (
	BombsTemperatureTrigger         = Celsius0 + 100.0 + 127.0 // K
	BombBlastHeat                   = 44000.0                  // KJ
	ExplosionFadeoutStepsCount      = 20
	GadgetSearchRadius              = 3.0
	GadgetNeighborhoodRadius        = 3.5
	TimerBombFuseSteps              = 8 * 64 // eight seconds of slow fuse
	RCBombPingSteps                 = 32
	AntiMatterBombPreimplosionSteps = 64
)

// Water dynamics.
const (
	WaterInflowMagicOffset        = 0.1 // keeps flotsam slightly buoyant
	SinkingWetPointsHighWatermark = 3.0 / 10.0
	SinkingWetPointsLowWatermark  = 1.0 / 10.0
	WetThreshold                  = 0.5
)

// Rot and decay.
const (
	ZeroDecay          = 1e-10
	RotHalfLifeSteps   = 15.0 * 60.0 * 50.0 / float64(LowFrequencyPeriod) * 10.0
	LeakingRotFactor   = 0.995
	UnderwaterRotExtra = 0.175
)

// Ephemera (visual particles).
const (
	MaxEphemera = 4096
)

// Pick queries.
const (
	QuadCapacity = 16
	QuadMaxDepth = 8
)

// Nudge tool.
const (
	NudgeRadius  = 5.0
	NudgeImpulse = 12.0 // m/s per tap
)

// Full day/night cycle length in simulation seconds.
const DayLightCycleDuration = 240.0

// GravityDir is the constant downward gravity vector.
var GravityDir = vec2{0, -1}

const Pi32 = float32(math.Pi)
