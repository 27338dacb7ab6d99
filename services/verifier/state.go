package verifier

type State string

const (
	StateUnverified   State = "unverified"
	StatePendingWrite State = "pending_write"
	StateConfirmed    State = "confirmed"
	StateVerified     State = "verified"
	StateFailed       State = "failed"
)

var transitions = map[State][]State{
	StateUnverified:   {StatePendingWrite, StateFailed},
	StatePendingWrite: {StateConfirmed, StateFailed},
	StateConfirmed:    {StateVerified, StateFailed},
}

func (s State) canMoveTo(next State) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsFinal reports whether no further transition is possible.
func (s State) IsFinal() bool {
	return s == StateVerified || s == StateFailed
}
