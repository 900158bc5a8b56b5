package game

type EventType int

const (
	EventShotFired   EventType = iota // a player slot launched
	EventEnemyThrew                   // an enemy slot launched
	EventEnemyKilled                  // a player shot scored; Pos is the respawn point
	EventGameOver
)

type Event struct {
	Type   EventType
	Pos    Vec2
	Owner  Owner
	Enemy  EnemyID
	Score  int
	Reason EndReason
}

type EventHandler func(Event)

// EventBus delivers events synchronously, inside the tick that raised them.
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
