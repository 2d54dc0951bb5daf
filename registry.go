package granary

// Registry issues and reclaims entity identifiers, stores each entity's
// signature, and tracks the active-entity set. All state is plainly owned;
// access is single-threaded.
type Registry struct {
	capacity   int
	free       idRing
	signatures []Signature
	active     []EntityID
	live       int
}

// idRing is a fixed-capacity FIFO queue over the id range. Released ids are
// reissued in release order, which bounds churn on any single id but does not
// keep ids low; iteration order is the active list, never the id value.
type idRing struct {
	ids  []EntityID
	head int
	size int
}

func newIDRing(capacity int) idRing {
	r := idRing{ids: make([]EntityID, capacity)}
	r.reset()
	return r
}

func (r *idRing) reset() {
	for i := range r.ids {
		r.ids[i] = EntityID(i)
	}
	r.head = 0
	r.size = len(r.ids)
}

func (r *idRing) pop() EntityID {
	id := r.ids[r.head]
	r.head = (r.head + 1) % len(r.ids)
	r.size--
	return id
}

func (r *idRing) push(id EntityID) {
	r.ids[(r.head+r.size)%len(r.ids)] = id
	r.size++
}

func newRegistry(capacity int) *Registry {
	return &Registry{
		capacity:   capacity,
		free:       newIDRing(capacity),
		signatures: make([]Signature, capacity),
		active:     make([]EntityID, 0, capacity),
	}
}

func (r *Registry) checkRange(id EntityID) {
	if int(id) >= r.capacity {
		panic(RangeError{ID: id, Limit: r.capacity})
	}
}

// Create pops the next free id, appends it to the active list, and returns it
// with an empty signature. Panics with CapacityError once every id is live.
func (r *Registry) Create() EntityID {
	if r.live == r.capacity {
		panic(CapacityError{Limit: r.capacity})
	}
	id := r.free.pop()
	r.live++
	r.active = append(r.active, id)
	return id
}

// Destroy reclaims a live id: its signature is reset, the id returns to the
// free pool, and it is removed from the active list preserving the relative
// order of the remaining entries. The id must be live; destroying an id twice
// corrupts the free pool.
func (r *Registry) Destroy(id EntityID) {
	r.checkRange(id)
	var empty Signature
	r.signatures[id] = empty
	r.free.push(id)
	r.live--
	for i, e := range r.active {
		if e == id {
			copy(r.active[i:], r.active[i+1:])
			r.active = r.active[:len(r.active)-1]
			break
		}
	}
}

// SetSignature overwrites the signature stored for id.
func (r *Registry) SetSignature(id EntityID, sig Signature) {
	r.checkRange(id)
	r.signatures[id] = sig
}

// GetSignature returns the signature stored for id.
func (r *Registry) GetSignature(id EntityID) Signature {
	r.checkRange(id)
	return r.signatures[id]
}

// Live returns the number of currently-active entities.
func (r *Registry) Live() int {
	return r.live
}

// Capacity returns the fixed id range bound.
func (r *Registry) Capacity() int {
	return r.capacity
}

// ActiveEntities returns a snapshot copy of the active list in creation
// order. Mutating the registry afterward does not affect the returned slice,
// so the snapshot is the safe thing to iterate while destroying.
func (r *Registry) ActiveEntities() []EntityID {
	snapshot := make([]EntityID, len(r.active))
	copy(snapshot, r.active)
	return snapshot
}

// DestroyAll resets every signature, refills the free pool with the full id
// range in ascending order, and clears the active list. Component storages
// are not touched; callers pair this with Directory.ClearAll (Context does).
func (r *Registry) DestroyAll() {
	for i := range r.signatures {
		var empty Signature
		r.signatures[i] = empty
	}
	r.free.reset()
	r.active = r.active[:0]
	r.live = 0
}

// DestroyWhere destroys every active entity matching pred and reports how
// many were destroyed. Matches are collected in a first pass over a snapshot
// and destroyed in a second, so pred may inspect registry state freely and
// the active list is never mutated mid-iteration.
func (r *Registry) DestroyWhere(pred func(EntityID) bool) int {
	matched := r.collect(pred)
	for _, id := range matched {
		r.Destroy(id)
	}
	return len(matched)
}

func (r *Registry) collect(pred func(EntityID) bool) []EntityID {
	var matched []EntityID
	for _, id := range r.ActiveEntities() {
		if pred(id) {
			matched = append(matched, id)
		}
	}
	return matched
}

// Matching returns the active entities whose signature contains every bit of
// sig, in active-list order. This is the per-frame "for every entity, check
// signature" walk systems are built on.
func (r *Registry) Matching(sig Signature) []EntityID {
	var matched []EntityID
	for _, id := range r.active {
		if r.signatures[id].ContainsAll(sig) {
			matched = append(matched, id)
		}
	}
	return matched
}
