package input

// Queue buffers raw events between host polls and controller frames. Hosts
// push every tick; the controller drains once per frame.
type Queue struct {
	events []Event
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Len reports the number of pending events.
func (q *Queue) Len() int { return len(q.events) }

// Drain returns every pending event in arrival order and empties the queue.
func (q *Queue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	for i := range q.events {
		q.events[i] = Event{}
	}
	q.events = q.events[:0]
	return out
}
