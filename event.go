package bistro

import "fmt"

type EventKind string

const (
	EventPreparingDish   EventKind = "preparing_dish"
	EventAttempt         EventKind = "attempt"
	EventPrepared        EventKind = "prepared"
	EventInsufficient    EventKind = "insufficient"
	EventReplenished     EventKind = "replenished"
	EventReplenishFailed EventKind = "replenish_failed"
	EventNotAvailable    EventKind = "not_available"
	EventNotPrepared     EventKind = "not_prepared"
	EventPassComplete    EventKind = "pass_complete"
)

// Event is one step of a processing pass. String renders the operator console line.
type Event struct {
	Kind    EventKind `map:"kind"`
	Station string    `map:"station,omitempty"`
	Dish    string    `map:"dish,omitempty"`
	PassId  string    `map:"passId,omitempty"`
}

func (e Event) String() string {
	switch e.Kind {
	case EventPreparingDish:
		return "PREPARING DISH: " + e.Dish
	case EventAttempt:
		return fmt.Sprintf("%s attempting to prepare %s...", e.Station, e.Dish)
	case EventPrepared:
		return fmt.Sprintf("%s: Successfully prepared %s.", e.Station, e.Dish)
	case EventInsufficient:
		return e.Station + ": Insufficient ingredients. Replenishing ingredients..."
	case EventReplenished:
		return e.Station + ": Ingredients replenished."
	case EventReplenishFailed:
		return fmt.Sprintf("%s: Unable to replenish ingredients. Failed to prepare %s.", e.Station, e.Dish)
	case EventNotAvailable:
		return e.Station + ": Dish not available. Moving to next station..."
	case EventNotPrepared:
		return e.Dish + " was not prepared."
	case EventPassComplete:
		return "All dishes have been processed."
	}
	return string(e.Kind)
}

// IsFailure reports events that end an attempt or a dish without preparing it.
func (e Event) IsFailure() bool {
	return e.Kind == EventReplenishFailed || e.Kind == EventNotPrepared
}
