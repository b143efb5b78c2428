package order

// orderedSet keeps insertion order and rejects duplicates.
type orderedSet[K comparable] struct {
	items []K
	index map[K]struct{}
}

func newOrderedSet[K comparable](items ...K) orderedSet[K] {
	s := orderedSet[K]{index: make(map[K]struct{}, len(items))}
	for _, item := range items {
		s.add(item)
	}
	return s
}

func (s *orderedSet[K]) add(item K) bool {
	if s.index == nil {
		s.index = make(map[K]struct{})
	}
	if _, ok := s.index[item]; ok {
		return false
	}
	s.index[item] = struct{}{}
	s.items = append(s.items, item)
	return true
}

func (s *orderedSet[K]) remove(item K) bool {
	if _, ok := s.index[item]; !ok {
		return false
	}
	delete(s.index, item)
	for i, existing := range s.items {
		if existing == item {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return true
}

func (s *orderedSet[K]) has(item K) bool {
	_, ok := s.index[item]
	return ok
}

func (s *orderedSet[K]) len() int {
	return len(s.items)
}

func (s *orderedSet[K]) clear() {
	s.items = nil
	s.index = make(map[K]struct{})
}

// values returns a copy so callers cannot reorder the set.
func (s *orderedSet[K]) values() []K {
	out := make([]K, len(s.items))
	copy(out, s.items)
	return out
}
