// Package class provides the registration contract for attaching Go script
// classes to engine object types, and the capability-gated owner-argument
// conversion used when the engine calls back into script methods.
//
// # Defining a class
//
// A script class is a Go struct paired with an engine base type. The struct
// implements Script; the optional contracts add construction and
// registration behavior:
//
//	type Sprite struct {
//		Frame int
//	}
//
//	func (*Sprite) ClassName() string { return "Sprite" }
//
//	func (s *Sprite) Init(owner object.Ref[Node, ownership.Shared]) {
//		s.Frame = 1
//	}
//
//	func (*Sprite) RegisterProperties(b *class.Builder) {
//		b.Property("frame", 0)
//	}
//
// Classes without Init are intentionally constructible only through
// Emplace; invoking the zero-argument path on one is a fatal condition
// (a panic naming the class), not a recoverable error.
//
// # Owner arguments
//
// When the engine invokes a script method it delivers a typed reference to
// the owner object, tagged with an access capability chosen by the engine's
// threading rules for that call path. A handler declares the owner
// parameter as one of exactly two shapes:
//
//	*B                          - the bare owner; sound because delivery of
//	                              the reference establishes safe access for
//	                              the call's duration
//	object.Ref[B, A]            - the tagged reference itself, letting the
//	                              handler make its own safety argument
//
// OwnerArg is the sealed set of these shapes and FromSafeRef performs the
// conversion. The set is closed at the type level: no third shape can
// instantiate the contract, so a handler cannot declare an owner form that
// bypasses the capability tag. There is no runtime capability check
// anywhere on this path.
//
// # Registration and dispatch
//
// A Registry binds classes for engine dispatch:
//
//	reg := class.NewRegistry(rt)
//	class.Register[Sprite, Node](reg)
//
//	inst, _ := class.NewInstance[Sprite, Node](rt)
//	result, _ := reg.Call(inst.ID(), "area", 6, 7)
//
// Registration runs exactly once per class per registry; registering the
// same class again is a no-op. Methods are taken from RegisterMethods when
// the class implements MethodRegistrar, otherwise from reflection over
// exported methods with a dispatchable signature, named in snake_case.
package class
