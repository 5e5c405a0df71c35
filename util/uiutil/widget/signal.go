package widget

type SlotID int

// List of observers, called synchronously in connection order.
type Signal struct {
	slots  []signalSlot
	lastID SlotID
}

type signalSlot struct {
	id SlotID
	fn func()
}

func (s *Signal) Connect(fn func()) SlotID {
	s.lastID++
	s.slots = append(s.slots, signalSlot{s.lastID, fn})
	return s.lastID
}

func (s *Signal) Disconnect(id SlotID) {
	for i, sl := range s.slots {
		if sl.id == id {
			s.slots = append(s.slots[:i:i], s.slots[i+1:]...)
			return
		}
	}
}

func (s *Signal) Emit() {
	// observers can connect/disconnect while being called
	slots := s.slots
	for _, sl := range slots {
		sl.fn()
	}
}

func (s *Signal) Len() int {
	return len(s.slots)
}

//----------

// Same as Signal but carries a value.
type ValueSignal[T any] struct {
	slots  []valueSlot[T]
	lastID SlotID
}

type valueSlot[T any] struct {
	id SlotID
	fn func(T)
}

func (s *ValueSignal[T]) Connect(fn func(T)) SlotID {
	s.lastID++
	s.slots = append(s.slots, valueSlot[T]{s.lastID, fn})
	return s.lastID
}

func (s *ValueSignal[T]) Disconnect(id SlotID) {
	for i, sl := range s.slots {
		if sl.id == id {
			s.slots = append(s.slots[:i:i], s.slots[i+1:]...)
			return
		}
	}
}

func (s *ValueSignal[T]) Emit(v T) {
	slots := s.slots
	for _, sl := range slots {
		sl.fn(v)
	}
}

func (s *ValueSignal[T]) Len() int {
	return len(s.slots)
}
