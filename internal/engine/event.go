package engine

// EventWithArg is a multicast event carrying one argument.
// Listeners run synchronously in subscription order. Changes made while the
// event fires take effect from the next Invoke.
type EventWithArg[T any] struct {
	nextID    int
	listeners []listener[T]
}

type listener[T any] struct {
	id int
	fn func(T)
}

// AddListener subscribes callback and returns a function that unsubscribes it.
func (e *EventWithArg[T]) AddListener(callback func(T)) (remove func()) {
	if callback == nil {
		return func() {}
	}
	e.nextID++
	id := e.nextID
	e.listeners = append(e.listeners, listener[T]{id: id, fn: callback})
	return func() { e.remove(id) }
}

func (e *EventWithArg[T]) remove(id int) {
	kept := make([]listener[T], 0, len(e.listeners))
	for _, l := range e.listeners {
		if l.id != id {
			kept = append(kept, l)
		}
	}
	e.listeners = kept
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}
