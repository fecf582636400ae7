package quiz

// ChangeKind names the mutation that produced a Change.
type ChangeKind string

const (
	ChangeLoaded    ChangeKind = "loaded"
	ChangeFailed    ChangeKind = "failed"
	ChangeSelected  ChangeKind = "selected"
	ChangeAdvanced  ChangeKind = "advanced"
	ChangeRetreated ChangeKind = "retreated"
	ChangeSubmitted ChangeKind = "submitted"
	ChangeRestarted ChangeKind = "restarted"
)

// Change describes a session mutation. Listeners re-read whatever derived
// state they need from the session itself.
type Change struct {
	Kind      ChangeKind
	Phase     Phase
	Cursor    int
	Selection string
}

type listener struct {
	id int
	fn func(Change)
}

// Subscribe registers fn to run synchronously after every mutation, in
// subscription order. The returned func removes the listener.
func (s *Session) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := s.nextID
	s.nextID++
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		for i, l := range s.listeners {
			if l.id == id {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Session) notify(kind ChangeKind) {
	if len(s.listeners) == 0 {
		return
	}
	c := Change{
		Kind:      kind,
		Phase:     s.phase,
		Cursor:    s.cursor,
		Selection: s.selection,
	}
	for _, l := range s.listeners {
		l.fn(c)
	}
}
