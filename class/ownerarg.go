package class

import (
	"github.com/substratelabs/bindkit/object"
	"github.com/substratelabs/bindkit/ownership"
)

// OwnerArg is the sealed set of shapes a handler may declare for the
// implicit owner parameter of an exported method: the bare owner *T, or the
// typed reference object.Ref[T, A] carrying the access-capability tag the
// engine attached.
//
// The set is a closed type union. A third shape cannot satisfy the
// constraint, so an attempt to route an owner reference into any other form
// is rejected at compile time; this is what keeps the capability discipline
// exhaustively checked. Were the set open, a handler could declare an owner
// shape that discards the tag's guarantee and touch the object from a
// thread the engine never sanctioned.
type OwnerArg[T any, A ownership.Access] interface {
	*T | object.Ref[T, A]
}

// FromSafeRef converts a freshly delivered owner reference into the shape S
// a handler declared.
//
// For the bare shape it strips the tag: producing the reference already
// establishes, per the engine's documented threading rules, that no
// unsynchronized concurrent access can occur for the duration of the call.
// For the reference shape it is the identity.
//
// The tag is never inspected; the only dynamic code here dispatches on the
// declared shape.
func FromSafeRef[S OwnerArg[T, A], T any, A ownership.Access](owner object.Ref[T, A]) S {
	var s S
	switch p := any(&s).(type) {
	case **T:
		*p = owner.AsRef()
	case *object.Ref[T, A]:
		*p = owner
	}
	return s
}
