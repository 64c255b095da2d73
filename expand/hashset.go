package expand

// hashSet is a set whose equality and hashing are supplied by the caller,
// for element types that are not usable as map keys by content.
type hashSet[T any] struct {
	hash    func(T) uint64
	equal   func(a, b T) bool
	buckets map[uint64][]T
	n       int
}

func newHashSet[T any](capacity int, hash func(T) uint64, equal func(a, b T) bool) *hashSet[T] {
	return &hashSet[T]{
		hash:    hash,
		equal:   equal,
		buckets: make(map[uint64][]T, capacity),
	}
}

// Insert adds v and reports whether it was absent.
func (s *hashSet[T]) Insert(v T) bool {
	h := s.hash(v)
	for _, x := range s.buckets[h] {
		if s.equal(x, v) {
			return false
		}
	}
	s.buckets[h] = append(s.buckets[h], v)
	s.n++

	return true
}

// Contains reports whether an element equal to v is present.
func (s *hashSet[T]) Contains(v T) bool {
	for _, x := range s.buckets[s.hash(v)] {
		if s.equal(x, v) {
			return true
		}
	}

	return false
}

// Erase removes the element equal to v, if any, and reports whether it did.
func (s *hashSet[T]) Erase(v T) bool {
	h := s.hash(v)
	bucket := s.buckets[h]
	for i, x := range bucket {
		if !s.equal(x, v) {
			continue
		}
		var zero T
		bucket[i] = bucket[len(bucket)-1]
		bucket[len(bucket)-1] = zero // drop the reference
		if len(bucket) == 1 {
			delete(s.buckets, h)
		} else {
			s.buckets[h] = bucket[:len(bucket)-1]
		}
		s.n--

		return true
	}

	return false
}

// Len returns the number of elements.
func (s *hashSet[T]) Len() int { return s.n }
