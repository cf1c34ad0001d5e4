package board

type entry[T any] struct {
	value  T
	status Status
}

// store is an insertion-ordered collection keyed by id.
type store[T any] struct {
	id    func(T) int
	byID  map[int]*entry[T]
	order []int
}

func newStore[T any](id func(T) int) *store[T] {
	return &store[T]{
		id:   id,
		byID: make(map[int]*entry[T]),
	}
}

// replace discards every entry, pending ones included, and loads items as
// clean. A repeated id keeps its first position and its last value.
func (s *store[T]) replace(items []T) {
	s.byID = make(map[int]*entry[T], len(items))
	s.order = s.order[:0]
	for _, item := range items {
		s.put(item, StatusClean)
	}
}

// put inserts or overwrites an entry.
func (s *store[T]) put(item T, status Status) {
	id := s.id(item)
	if e, ok := s.byID[id]; ok {
		e.value = item
		e.status = status
		return
	}
	s.byID[id] = &entry[T]{value: item, status: status}
	s.order = append(s.order, id)
}

// rekey moves the entry stored under old to item's id, keeping its position.
// It reports false if old is unknown or the new id is already taken.
func (s *store[T]) rekey(old int, item T, status Status) bool {
	id := s.id(item)
	e, ok := s.byID[old]
	if !ok {
		return false
	}
	if _, taken := s.byID[id]; taken && id != old {
		return false
	}
	delete(s.byID, old)
	e.value = item
	e.status = status
	s.byID[id] = e
	for i, o := range s.order {
		if o == old {
			s.order[i] = id
			break
		}
	}
	return true
}

func (s *store[T]) get(id int) (T, Status, bool) {
	e, ok := s.byID[id]
	if !ok {
		var zero T
		return zero, StatusClean, false
	}
	return e.value, e.status, true
}

func (s *store[T]) all() []T {
	return s.filter(func(T, Status) bool { return true })
}

func (s *store[T]) dirty() []T {
	return s.filter(func(_ T, st Status) bool { return st.Dirty() })
}

func (s *store[T]) hasDirty() bool {
	for _, e := range s.byID {
		if e.status.Dirty() {
			return true
		}
	}
	return false
}

// filter returns matching values in insertion order. The result is never nil.
func (s *store[T]) filter(keep func(T, Status) bool) []T {
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		e := s.byID[id]
		if keep(e.value, e.status) {
			out = append(out, e.value)
		}
	}
	return out
}

func (s *store[T]) len() int { return len(s.order) }

