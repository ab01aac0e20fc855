package object

import (
	"github.com/substratelabs/bindkit/ownership"
)

// Ref is a typed borrowed reference to an engine-backed object: the pair of
// an object and the access-capability tag the producer attached when
// delivering it. A Ref is valid only for the dynamic extent of the call
// that produced it and must not be stored past it; persisting access
// requires an owning Instance.
//
// A Ref never participates in destruction of the object.
type Ref[T any, A ownership.Access] struct {
	obj *T
}

// Borrow produces a reference under an aliasable tag. No proof is required:
// both Shared and ThreadLocal admit other live references. The choice
// between them follows the engine's documented threading rules for the call
// path handing out the reference.
func Borrow[A ownership.NonUnique, T any](obj *T) Ref[T, A] {
	return Ref[T, A]{obj: obj}
}

// Exclusive produces a Unique-tagged reference. The caller asserts that no
// other live reference to the same object exists anywhere in the process;
// violating that is undefined behavior at the engine-call boundary and is
// not detectable here.
func Exclusive[T any](obj *T) Ref[T, ownership.Unique] {
	return Ref[T, ownership.Unique]{obj: obj}
}

// AsRef returns the bare reference for use within the current call. The
// delivery of the Ref itself establishes that access through the bare
// reference is sound for the call's duration.
func (r Ref[T, A]) AsRef() *T { return r.obj }

// IsNil reports whether the reference is empty.
func (r Ref[T, A]) IsNil() bool { return r.obj == nil }

// Downgrade converts a Unique reference into a Shared one. This is the only
// direction tags convert in: a Shared reference is never upgraded back
// without the producer revalidating exclusivity.
func Downgrade[T any](r Ref[T, ownership.Unique]) Ref[T, ownership.Shared] {
	return Ref[T, ownership.Shared]{obj: r.obj}
}

// DowngradeLocal converts a Unique reference into a ThreadLocal one,
// keeping the thread-confinement half of the guarantee.
func DowngradeLocal[T any](r Ref[T, ownership.Unique]) Ref[T, ownership.ThreadLocal] {
	return Ref[T, ownership.ThreadLocal]{obj: r.obj}
}
