package game

// CombustionKind classifies how a material reacts past its ignition point.
type CombustionKind uint8

const (
	CombustionNone CombustionKind = iota
	CombustionBurn
	CombustionExplode
)

// StructuralMaterial holds the per-material physical coefficients applied
// to every point/spring built from it.
type StructuralMaterial struct {
	Name string

	Mass      float32 // kg per particle
	Strength  float32 // stress fraction at which springs snap
	Stiffness float32

	// Share of a unit volume displacing water (0 = sinks like a rock).
	BuoyancyVolumeFill float32

	IsHull            bool // hull particles take no water in
	WaterIntake       float32
	WaterDiffusionSpeed float32
	WaterRetention    float32

	// Thermodynamics.
	SpecificHeat        float32 // J/(kg K)
	ThermalConductivity float32 // W/(m K)
	ThermalExpansionCoefficient float32
	IgnitionTemperature float32 // K
	MeltingTemperature  float32 // K
	CombustionType      CombustionKind

	// Drag.
	WindReceptivity float32

	RenderColor [3]float32
}

// ElectricalKind classifies electrical elements hosted on particles.
type ElectricalKind uint8

const (
	ElectricalNone ElectricalKind = iota
	ElectricalCable
	ElectricalGenerator
	ElectricalLamp
	ElectricalEngine
	ElectricalSwitch
)

type ElectricalMaterial struct {
	Name string
	Kind ElectricalKind

	// Lamps.
	Luminiscence     float32 // distance coefficient for light diffusion
	LightSpread      float32 // max world distance the light reaches
	SelfPowered      bool
	WetFailureRate   float32 // probability per slow step of failing when wet

	// Engines.
	EnginePower float32 // N of thrust when powered
}

// The built-in material set. Ship builders reference these by rune in the
// structural grid.
var (
	MatIronHull = &StructuralMaterial{
		Name: "iron hull", Mass: 780.0, Strength: 0.055, Stiffness: 1.0,
		BuoyancyVolumeFill: 1.0, IsHull: true,
		WaterIntake: 0.0, WaterDiffusionSpeed: 0.5, WaterRetention: 0.05,
		SpecificHeat: 449.0, ThermalConductivity: 80.2,
		ThermalExpansionCoefficient: 0.0000120,
		IgnitionTemperature: 2273.15, MeltingTemperature: 1811.15,
		CombustionType:  CombustionNone,
		WindReceptivity: 0.0,
		RenderColor:     [3]float32{0.42, 0.44, 0.48},
	}

	MatIron = &StructuralMaterial{
		Name: "iron", Mass: 780.0, Strength: 0.055, Stiffness: 1.0,
		BuoyancyVolumeFill: 1.0,
		WaterIntake: 1.0, WaterDiffusionSpeed: 0.5, WaterRetention: 0.05,
		SpecificHeat: 449.0, ThermalConductivity: 80.2,
		ThermalExpansionCoefficient: 0.0000120,
		IgnitionTemperature: 2273.15, MeltingTemperature: 1811.15,
		CombustionType:  CombustionNone,
		WindReceptivity: 0.0,
		RenderColor:     [3]float32{0.55, 0.56, 0.60},
	}

	MatWood = &StructuralMaterial{
		Name: "wood", Mass: 400.0, Strength: 0.035, Stiffness: 1.0,
		BuoyancyVolumeFill: 1.0,
		WaterIntake: 1.0, WaterDiffusionSpeed: 0.5, WaterRetention: 0.1,
		SpecificHeat: 1700.0, ThermalConductivity: 0.12,
		ThermalExpansionCoefficient: 0.0000034,
		IgnitionTemperature: 433.15, MeltingTemperature: 6000.0,
		CombustionType:  CombustionBurn,
		WindReceptivity: 0.4,
		RenderColor:     [3]float32{0.65, 0.48, 0.27},
	}

	MatGlass = &StructuralMaterial{
		Name: "glass", Mass: 2500.0, Strength: 0.01, Stiffness: 1.0,
		BuoyancyVolumeFill: 1.0,
		WaterIntake: 0.0, WaterDiffusionSpeed: 0.5, WaterRetention: 0.0,
		SpecificHeat: 840.0, ThermalConductivity: 0.8,
		ThermalExpansionCoefficient: 0.0000085,
		IgnitionTemperature: 6000.0, MeltingTemperature: 1973.15,
		CombustionType:  CombustionNone,
		WindReceptivity: 0.0,
		RenderColor:     [3]float32{0.65, 0.80, 0.90},
	}

	MatRubber = &StructuralMaterial{
		Name: "rubber", Mass: 1100.0, Strength: 0.2, Stiffness: 0.25,
		BuoyancyVolumeFill: 1.0,
		WaterIntake: 0.0, WaterDiffusionSpeed: 0.5, WaterRetention: 0.0,
		SpecificHeat: 2005.0, ThermalConductivity: 0.16,
		ThermalExpansionCoefficient: 0.0000770,
		IgnitionTemperature: 553.15, MeltingTemperature: 453.15,
		CombustionType:  CombustionBurn,
		WindReceptivity: 0.2,
		RenderColor:     [3]float32{0.15, 0.15, 0.17},
	}

	ElecCable = &ElectricalMaterial{
		Name: "cable", Kind: ElectricalCable,
	}

	ElecGenerator = &ElectricalMaterial{
		Name: "generator", Kind: ElectricalGenerator, SelfPowered: true,
		WetFailureRate: 0.2,
	}

	ElecLamp = &ElectricalMaterial{
		Name: "lamp", Kind: ElectricalLamp,
		Luminiscence: 1.0, LightSpread: 4.25, WetFailureRate: 0.4,
	}

	ElecEngine = &ElectricalMaterial{
		Name: "engine", Kind: ElectricalEngine, EnginePower: 20000.0,
		WetFailureRate: 0.3,
	}
)

// materialForRune maps structural-grid runes to materials.
func materialForRune(r rune) *StructuralMaterial {
	switch r {
	case 'H':
		return MatIronHull
	case 'I':
		return MatIron
	case 'W':
		return MatWood
	case 'G':
		return MatGlass
	case 'R':
		return MatRubber
	case 'L', 'P', 'E', 'C':
		// Electrical elements sit on iron backing.
		return MatIron
	}
	return nil
}

// electricalForRune maps grid runes to electrical materials; most cells
// carry none.
func electricalForRune(r rune) *ElectricalMaterial {
	switch r {
	case 'L':
		return ElecLamp
	case 'P':
		return ElecGenerator
	case 'E':
		return ElecEngine
	case 'C':
		return ElecCable
	}
	return nil
}
