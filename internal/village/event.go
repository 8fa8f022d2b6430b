package village

// EventKind names something that happened during a turn.
type EventKind string

const (
	EventWounded   EventKind = "wounded"
	EventHealed    EventKind = "healed"
	EventConverted EventKind = "converted"
	EventKilled    EventKind = "killed"
)

// Event describes one state change made by a behavior.
//
// Actor is the agent whose turn it was. Victim is the agent that was changed,
// which is the actor itself for healing and starvation. Amount is the health
// requested by the rule (before clamping) for wounded and healed events.
type Event struct {
	Turn   int
	Kind   EventKind
	Actor  int
	Victim int
	Amount int
	Cause  KillCause
	Into   Kind
}

// EventSink receives events as they happen.
type EventSink func(Event)

// Fields flattens the event for structured logging.
func (e Event) Fields() map[string]any {
	f := map[string]any{
		"turn":   e.Turn,
		"event":  string(e.Kind),
		"actor":  e.Actor,
		"victim": e.Victim,
	}
	switch e.Kind {
	case EventWounded:
		f["amount"] = e.Amount
		f["cause"] = e.Cause.String()
	case EventHealed:
		f["amount"] = e.Amount
	case EventKilled:
		f["cause"] = e.Cause.String()
	case EventConverted:
		f["into"] = e.Into.String()
	}
	return f
}
