package granary

import (
	"testing"
)

func TestStorageInsertGet(t *testing.T) {
	tests := []struct {
		name   string
		insert map[EntityID]Position
	}{
		{"Single", map[EntityID]Position{3: {1, 2, 3}}},
		{"Several", map[EntityID]Position{0: {1, 0, 0}, 5: {0, 5, 0}, 9: {0, 0, 9}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FactoryNewStorage[Position](16)
			for id, v := range tt.insert {
				s.Insert(id, v)
			}
			if s.Count() != len(tt.insert) {
				t.Fatalf("Count() = %d, want %d", s.Count(), len(tt.insert))
			}
			for id, want := range tt.insert {
				if got := *s.Get(id); got != want {
					t.Errorf("Get(%d) = %v, want %v", id, got, want)
				}
			}
		})
	}
}

func TestStorageGetIsMutable(t *testing.T) {
	s := FactoryNewStorage[Position](8)
	s.Insert(2, Position{1, 1, 1})

	s.Get(2).X = 42

	if got := s.Get(2).X; got != 42 {
		t.Errorf("in-place mutation lost: X = %v, want 42", got)
	}
}

func TestStorageDuplicateInsert(t *testing.T) {
	s := FactoryNewStorage[Position](8)
	s.Insert(1, Position{})

	recovered := expectPanic(t, func() { s.Insert(1, Position{9, 9, 9}) })
	if _, ok := recovered.(ComponentExistsError); !ok {
		t.Errorf("recovered %T, want ComponentExistsError", recovered)
	}
}

func TestStorageMissingAccess(t *testing.T) {
	s := FactoryNewStorage[Position](8)
	s.Insert(1, Position{})

	tests := []struct {
		name string
		fn   func()
	}{
		{"Get absent", func() { s.Get(2) }},
		{"Remove absent", func() { s.Remove(2) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recovered := expectPanic(t, tt.fn)
			if _, ok := recovered.(ComponentNotFoundError); !ok {
				t.Errorf("recovered %T, want ComponentNotFoundError", recovered)
			}
		})
	}
}

func TestStorageRemoveThenReAdd(t *testing.T) {
	s := FactoryNewStorage[Position](8)
	s.Insert(1, Position{1, 1, 1})
	s.Remove(1)

	if s.Has(1) {
		t.Fatal("Has(1) after Remove = true, want false")
	}

	s.Insert(1, Position{2, 2, 2})
	if got := *s.Get(1); got != (Position{2, 2, 2}) {
		t.Errorf("Get after re-add = %v, want {2 2 2}", got)
	}
}

// TestStorageSwapRemoval checks the index-map fixup: removing any entity's
// value leaves every other still-present value retrievable and unchanged.
func TestStorageSwapRemoval(t *testing.T) {
	tests := []struct {
		name   string
		remove EntityID
	}{
		{"Remove first inserted", 0},
		{"Remove middle", 4},
		{"Remove last inserted", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := FactoryNewStorage[Position](16)
			for i := EntityID(0); i < 10; i++ {
				s.Insert(i, Position{X: float64(i)})
			}

			s.Remove(tt.remove)

			if s.Count() != 9 {
				t.Fatalf("Count() = %d, want 9", s.Count())
			}
			for i := EntityID(0); i < 10; i++ {
				if i == tt.remove {
					if s.Has(i) {
						t.Errorf("Has(%d) = true after removal", i)
					}
					continue
				}
				if got := s.Get(i).X; got != float64(i) {
					t.Errorf("Get(%d).X = %v, want %v", i, got, float64(i))
				}
			}
		})
	}
}

func TestStorageEntityDestroyedIdempotent(t *testing.T) {
	s := FactoryNewStorage[Position](8)
	s.Insert(3, Position{3, 0, 0})

	s.EntityDestroyed(3)
	s.EntityDestroyed(3) // no-op the second time
	s.EntityDestroyed(7) // never had a value

	if s.Count() != 0 {
		t.Errorf("Count() = %d, want 0", s.Count())
	}
}

func TestStorageClear(t *testing.T) {
	s := FactoryNewStorage[Position](8)
	for i := EntityID(0); i < 5; i++ {
		s.Insert(i, Position{X: float64(i)})
	}

	s.Clear()

	if s.Count() != 0 {
		t.Fatalf("Count() after Clear = %d, want 0", s.Count())
	}
	for i := EntityID(0); i < 8; i++ {
		if s.Has(i) {
			t.Errorf("Has(%d) after Clear = true, want false", i)
		}
	}

	// Storage is immediately reusable.
	s.Insert(2, Position{2, 0, 0})
	if got := s.Get(2).X; got != 2 {
		t.Errorf("Get(2).X after Clear+Insert = %v, want 2", got)
	}
}

func TestStorageAllPacked(t *testing.T) {
	s := FactoryNewStorage[Position](16)
	for i := EntityID(0); i < 6; i++ {
		s.Insert(i, Position{X: float64(i)})
	}
	s.Remove(2)

	seen := make(map[EntityID]float64)
	for id, pos := range s.All() {
		seen[id] = pos.X
	}

	if len(seen) != 5 {
		t.Fatalf("All() yielded %d pairs, want 5", len(seen))
	}
	for id, x := range seen {
		if x != float64(id) {
			t.Errorf("All() yielded %d -> %v, want %v", id, x, float64(id))
		}
	}
	if _, ok := seen[2]; ok {
		t.Error("All() yielded removed entity 2")
	}
}

func TestStorageOutOfRange(t *testing.T) {
	s := FactoryNewStorage[Position](4)

	recovered := expectPanic(t, func() { s.Insert(4, Position{}) })
	if _, ok := recovered.(RangeError); !ok {
		t.Errorf("recovered %T, want RangeError", recovered)
	}
}
