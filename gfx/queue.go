package gfx

// eventQueue is a single-producer single-consumer ring buffer with a fixed
// capacity. The slice holds capacity+1 slots so head == tail means empty and
// (head+1) % len == tail means full without a separate count.
//
// Overflow policy: when full, the oldest event is evicted FIFO to make room,
// except that a queued Close event is never evicted. A duplicate Close
// arriving while the oldest is Close is dropped silently; any other new
// event dropped in favour of a queued Close still counts as overflow.
type eventQueue struct {
	slots    []Event
	head     int // producer index: next write
	tail     int // consumer index: next read
	overflow uint32
}

func newEventQueue(capacity int) *eventQueue {
	if capacity < 1 {
		capacity = DefaultQueueSize
	}
	return &eventQueue{slots: make([]Event, capacity+1)}
}

func (q *eventQueue) empty() bool { return q.head == q.tail }

func (q *eventQueue) full() bool { return (q.head+1)%len(q.slots) == q.tail }

func (q *eventQueue) len() int {
	n := q.head - q.tail
	if n < 0 {
		n += len(q.slots)
	}
	return n
}

// enqueue adds an event, applying the overflow policy when full.
func (q *eventQueue) enqueue(ev Event) {
	if q.full() {
		oldest := q.slots[q.tail]
		if oldest.Type == EventClose {
			// A queued Close is never evicted: drop the new event instead.
			if ev.Type != EventClose {
				q.overflow++
			}
			return
		}
		q.tail = (q.tail + 1) % len(q.slots)
		q.overflow++
	}
	q.slots[q.head] = ev
	q.head = (q.head + 1) % len(q.slots)
}

// dequeue removes and returns the oldest event.
func (q *eventQueue) dequeue() (Event, bool) {
	if q.empty() {
		return Event{}, false
	}
	ev := q.slots[q.tail]
	q.tail = (q.tail + 1) % len(q.slots)
	return ev, true
}

// peek returns the oldest event without removing it.
func (q *eventQueue) peek() (Event, bool) {
	if q.empty() {
		return Event{}, false
	}
	return q.slots[q.tail], true
}

func (q *eventQueue) flush() {
	q.head = 0
	q.tail = 0
}

// overflowCount returns the overflow counter and resets it.
func (q *eventQueue) overflowCount() uint32 {
	n := q.overflow
	q.overflow = 0
	return n
}
