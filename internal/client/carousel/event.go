package carousel

// EventKind names the operation that changed the controller.
type EventKind string

const (
	EventInitialized EventKind = "initialized"
	EventFetchFailed EventKind = "fetch_failed"
	EventNavigated   EventKind = "navigated"
	EventSettled     EventKind = "settled"
	EventToggled     EventKind = "toggled"
)

// Event is a snapshot taken right after a state change.
type Event struct {
	Kind      EventKind
	Index     int
	Selection Selection
}
