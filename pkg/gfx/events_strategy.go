package gfx

// EventPoller waits up to timeoutMs for one event. ok is false on timeout.
type EventPoller func(timeoutMs int) (event Event, ok bool)

type EventsConsumerStrategy interface {
	// Consume handles the events available within timeoutMs and returns how
	// many were handled.
	Consume(poll EventPoller, handle func(Event), timeoutMs int) int
}

// drainStrategy waits for the first event, then takes whatever is already
// queued without waiting, up to max events (max <= 0 means no limit).
type drainStrategy struct {
	max int
}

func (s drainStrategy) Consume(poll EventPoller, handle func(Event), timeoutMs int) int {
	count := 0
	event, ok := poll(timeoutMs)
	for ok {
		handle(event)
		count++
		if s.max > 0 && count >= s.max {
			break
		}
		event, ok = poll(0)
	}
	return count
}

func DrainAll() EventsConsumerStrategy {
	return drainStrategy{}
}

func DrainMax(max int) EventsConsumerStrategy {
	if max <= 0 {
		max = 1
	}
	return drainStrategy{max: max}
}
