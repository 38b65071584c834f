package game

// Parameters bundles every user-facing tunable. A single instance is owned
// by the World and passed by pointer into every update call. All fields are
// clamped to their documented bounds by the setters in the UI layer; the
// simulation assumes in-range values.
type Parameters struct {
	// Mechanics. [0.5 .. 5]
	NumMechanicalDynamicsIterationsAdjustment float32
	// [0.1 .. 10]
	SpringStiffnessAdjustment float32
	// [0.1 .. 10]
	SpringStrengthAdjustment float32
	// [0 .. 1]
	GlobalDampingAdjustment float32
	// [0.5 .. 1.5]
	BuoyancyAdjustment float32
	// [0 .. 4]
	WaterDragAdjustment float32

	// Thermodynamics. [0.1 .. 10]
	ThermalConductivityAdjustment float32
	// [0.1 .. 10]
	HeatDissipationAdjustment float32
	// [0.1 .. 10]
	IgnitionTemperatureAdjustment float32
	// [0.1 .. 10]
	CombustionSpeedAdjustment float32
	// Max number of simultaneously burning points per ship. [0 .. 5000]
	MaxBurningParticles int

	// Water dynamics. [0 .. 10]
	WaterIntakeAdjustment float32
	// [0.001 .. 1]
	WaterDiffusionSpeedAdjustment float32
	// [0 .. 10]
	WaterCrazyness float32

	// Ocean. [0 .. 100] km/h
	WindSpeedBase float32
	// Whether gusts modulate the base wind.
	DoGusts bool
	// [0 .. 2.5]
	BasalWaveHeightAdjustment float32
	// [0.1 .. 10]
	BasalWaveLengthAdjustment float32
	// [0.1 .. 2]
	BasalWaveSpeedAdjustment float32
	// Mean seconds between tsunamis; 0 disables. [0 .. 3600]
	TsunamiRate float32
	// Mean seconds between rogue waves; 0 disables. [0 .. 3600]
	RogueWaveRate float32
	// [1 .. 10000] kg/m3
	WaterDensityAdjustment float32
	// Ocean depth used for floor placement. [10 .. 10000]
	SeaDepth float32

	// Blast / gadgets. [0.1 .. 20]
	BombBlastForceAdjustment float32
	// [0.1 .. 10]
	BombBlastRadius float32
	// [0.1 .. 20]
	BombBlastHeatAdjustment float32
	IsUltraViolentMode bool

	// Tools.
	DestroyRadius     float32
	RepairRadius      float32
	HeatBlasterRadius float32
	// KJ/s injected (or removed) by the heat blaster.
	HeatBlasterHeatFlow float32
	InjectPressureQuantity float32

	// Storm.
	DoDayLightCycle bool
	StormRate       float32 // mean minutes between storms; 0 disables
}

// NewParameters returns the defaults every session starts from.
func NewParameters() *Parameters {
	return &Parameters{
		NumMechanicalDynamicsIterationsAdjustment: 1.0,
		SpringStiffnessAdjustment:                 1.0,
		SpringStrengthAdjustment:                  1.0,
		GlobalDampingAdjustment:                   1.0,
		BuoyancyAdjustment:                        1.0,
		WaterDragAdjustment:                       1.0,

		ThermalConductivityAdjustment: 1.0,
		HeatDissipationAdjustment:     1.0,
		IgnitionTemperatureAdjustment: 1.0,
		CombustionSpeedAdjustment:     1.0,
		MaxBurningParticles:           224,

		WaterIntakeAdjustment:         1.0,
		WaterDiffusionSpeedAdjustment: 0.5,
		WaterCrazyness:                1.0,

		WindSpeedBase:             20.0,
		DoGusts:                   true,
		BasalWaveHeightAdjustment: 1.0,
		BasalWaveLengthAdjustment: 1.0,
		BasalWaveSpeedAdjustment:  1.0,
		TsunamiRate:               20 * 60,
		RogueWaveRate:             2 * 60,
		WaterDensityAdjustment:    1.0,
		SeaDepth:                  300.0,

		BombBlastForceAdjustment: 1.0,
		BombBlastRadius:          2.0,
		BombBlastHeatAdjustment:  1.0,

		DestroyRadius:          0.75,
		RepairRadius:           2.0,
		HeatBlasterRadius:      2.0,
		HeatBlasterHeatFlow:    2000.0,
		InjectPressureQuantity: 1.0,

		StormRate: 60,
	}
}

// NumMechanicalIterations is the per-step spring relaxation pass count.
func (p *Parameters) NumMechanicalIterations() int {
	n := int(float32(NumMechanicalPasses) * p.NumMechanicalDynamicsIterationsAdjustment)
	if n < 1 {
		n = 1
	}
	return n
}
