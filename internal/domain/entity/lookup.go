package entity

// LookupStatus tags the outcome of a detail lookup.
type LookupStatus int

const (
	// LookupFound means the entity was returned.
	LookupFound LookupStatus = iota
	// LookupNotFound means the upstream answered without an entity.
	LookupNotFound
	// LookupFailed means a transport or protocol failure prevented the answer.
	LookupFailed
)

func (s LookupStatus) String() string {
	switch s {
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not_found"
	case LookupFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Lookup is the tagged result of a detail lookup. Err is only set for LookupFailed.
type Lookup[T any] struct {
	Status LookupStatus
	Entity *T
	Err    error
}

// Found wraps a present entity.
func Found[T any](v *T) Lookup[T] {
	if v == nil {
		return NotFound[T]()
	}
	return Lookup[T]{Status: LookupFound, Entity: v}
}

// NotFound is the lookup of an entity that does not exist.
func NotFound[T any]() Lookup[T] {
	return Lookup[T]{Status: LookupNotFound}
}

// Failed classifies err: not-found errors become LookupNotFound, everything else LookupFailed.
func Failed[T any](err error) Lookup[T] {
	if IsNotFound(err) {
		return NotFound[T]()
	}
	return Lookup[T]{Status: LookupFailed, Err: err}
}

// Value collapses the lookup to the entity or nil, discarding why it is absent.
func (l Lookup[T]) Value() *T {
	if l.Status != LookupFound {
		return nil
	}
	return l.Entity
}
