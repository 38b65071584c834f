package game

type EventType int

const (
	EventExplosion EventType = iota
	EventGadgetPlaced
	EventGadgetRemoved
	EventBombDetonated
	EventTsunami
	EventRogueWave
	EventSparkApplied
	EventPointCombustionBegin
	EventPointCombustionEnd
	EventSinkingBegin
	EventSinkingEnd
	EventSpringBroken
	EventStormBegin
	EventStormEnd
)

type Event struct {
	Type EventType
	X, Y float32
	Data int // Generic payload (e.g. gadget type, ship id).
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
