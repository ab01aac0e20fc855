package object

// ID is the stable identity of an engine object. ID 0 is reserved and
// always invalid. Identities are never reused within one Runtime.
type ID uint64

// Object is implemented by all engine-backed object types. Base types embed
// Base or Refcounted; user-defined base types embed one of those. The
// interface is sealed to types rooted in this package.
type Object interface {
	// ObjectID returns the engine identity backing this object.
	ObjectID() ID

	// Runtime returns the object table that owns this object.
	Runtime() *Runtime

	root() *Base
}

// Instantiable marks base types that support default instantiation and can
// therefore be used with the zero-argument construction paths. Both in-tree
// roots provide it; base types obtainable only from the engine itself would
// not.
type Instantiable interface {
	Object
	instantiable()
}

// Base is the manually-managed root type. Objects rooted here are torn down
// only by an explicit Free; dropping the last handle without freeing leaks
// the object.
type Base struct {
	rt *Runtime
	id ID
}

// ObjectID returns the engine identity backing this object.
func (b *Base) ObjectID() ID { return b.id }

// Runtime returns the object table that owns this object.
func (b *Base) Runtime() *Runtime { return b.rt }

func (b *Base) root() *Base    { return b }
func (b *Base) instantiable() {}

// Free releases the object. It fails for reference-counted objects, which
// are torn down by Release instead.
func (b *Base) Free() error { return b.rt.Free(b.id) }

// Refcounted is the reference-counted root type. A fresh object starts with
// one reference, held by whoever allocated it.
type Refcounted struct {
	Base
}

func (r *Refcounted) refcounted() {}

// Retain increments the object's reference count.
func (r *Refcounted) Retain() error { return r.rt.Retain(r.id) }

// Release decrements the object's reference count, tearing the object down
// when it reaches zero.
func (r *Refcounted) Release() error { return r.rt.Release(r.id) }

// refcountedRoot detects the lifetime mode of a base type at allocation.
type refcountedRoot interface {
	refcounted()
}

// New allocates a fresh engine object of base type B in rt. The lifetime
// mode follows the root B embeds. The caller holds the only reference to
// the result.
func New[B any, PB interface {
	Instantiable
	*B
}](rt *Runtime) (*B, error) {
	obj := new(B)
	pb := PB(obj)
	_, rc := any(pb).(refcountedRoot)

	id, err := rt.allocate(obj, rc)
	if err != nil {
		return nil, err
	}

	root := pb.root()
	root.rt = rt
	root.id = id
	return obj, nil
}
