package game

// Tool is the currently armed interaction.
type Tool int

const (
	ToolDestroy Tool = iota
	ToolRepair
	ToolSaw
	ToolHeatBlaster
	ToolChillBlaster
	ToolAttract
	ToolSwirl
	ToolFlood
	ToolScrub
	ToolSpark
	ToolWaveMaker
	ToolImpactBomb
	ToolTimerBomb
	ToolRCBomb
	ToolAntiMatterBomb
	ToolPhysicsProbe
)

func (t Tool) String() string {
	switch t {
	case ToolDestroy:
		return "destroy"
	case ToolRepair:
		return "repair"
	case ToolSaw:
		return "saw"
	case ToolHeatBlaster:
		return "heat blaster"
	case ToolChillBlaster:
		return "chill blaster"
	case ToolAttract:
		return "attract"
	case ToolSwirl:
		return "swirl"
	case ToolFlood:
		return "flood"
	case ToolScrub:
		return "scrub"
	case ToolSpark:
		return "spark"
	case ToolWaveMaker:
		return "wave maker"
	case ToolImpactBomb:
		return "impact bomb"
	case ToolTimerBomb:
		return "timer bomb"
	case ToolRCBomb:
		return "rc bomb"
	case ToolAntiMatterBomb:
		return "antimatter bomb"
	case ToolPhysicsProbe:
		return "physics probe"
	}
	return "unknown"
}

// GameSession holds the interactive state around the simulation: armed
// tool, pause flag, and the drag continuity the stroke tools need.
type GameSession struct {
	Tool   Tool
	Paused bool

	// Stroke continuity for saw/scrub/spark.
	strokeActive bool
	lastStroke   vec2

	// Interactive wave engagement.
	waveEngaged bool
}

func NewGameSession() *GameSession {
	return &GameSession{Tool: ToolDestroy}
}

// BeginStroke records the anchor of a new drag; returns the previous
// anchor and whether a stroke was already in flight.
func (s *GameSession) BeginStroke(pos vec2) (prev vec2, continuing bool) {
	prev, continuing = s.lastStroke, s.strokeActive
	s.strokeActive = true
	s.lastStroke = pos
	return prev, continuing
}

func (s *GameSession) EndStroke() {
	s.strokeActive = false
}
