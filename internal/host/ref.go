package host

// Ref is a typed weak reference to a host object. It never owns the referent and is not
// guaranteed to resolve: the object may have been destroyed since the Ref was taken.
type Ref[T Object] struct {
	id ObjectID
}

// RefOf takes a weak reference to obj.
func RefOf[T Object](obj T) Ref[T] {
	return Ref[T]{id: obj.ID()}
}

// NewRef wraps a raw ID, e.g. one loaded from storage.
func NewRef[T Object](id ObjectID) Ref[T] {
	return Ref[T]{id: id}
}

func (r Ref[T]) ID() ObjectID { return r.id }

// Resolve looks the referent up in the current world state. It returns false when the
// object no longer exists or is no longer of type T.
func (r Ref[T]) Resolve(g Game) (T, bool) {
	var zero T
	if r.id == "" {
		return zero, false
	}
	obj, ok := g.GetObjectByID(r.id)
	if !ok {
		return zero, false
	}
	t, ok := obj.(T)
	if !ok {
		return zero, false
	}
	return t, true
}
