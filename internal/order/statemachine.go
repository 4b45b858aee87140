package order

// transitions maps each status to the statuses it may move to.
// Production advances one step at a time; cancellation is allowed from
// any non-terminal state. Terminal states have no outgoing edges, and a
// no-op transition to the current status is not listed either.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:          {StatusInProduction, StatusCancelled},
	StatusInProduction:     {StatusReadyForShipping, StatusCancelled},
	StatusReadyForShipping: {StatusCompleted, StatusCancelled},
	StatusCompleted:        {},
	StatusCancelled:        {},
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable from the given one.
// The order detail screen uses this to render action buttons.
func AllowedTransitions(from OrderStatus) []OrderStatus {
	allowed := transitions[from]
	out := make([]OrderStatus, len(allowed))
	copy(out, allowed)
	return out
}

// IsTerminal reports whether no further transitions are possible.
func IsTerminal(s OrderStatus) bool {
	return len(transitions[s]) == 0 && validStatus(s)
}

func validStatus(s OrderStatus) bool {
	_, ok := transitions[s]
	return ok
}
