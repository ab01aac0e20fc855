package class

import (
	"github.com/substratelabs/bindkit/errors"
	"github.com/substratelabs/bindkit/object"
	"github.com/substratelabs/bindkit/ownership"
)

// NewInstance creates a fresh base object of type B with a freshly
// constructed C payload attached, yielding a uniquely-owned instance.
//
// The class must have a zero-argument construction path: if C does not
// implement Initializer[B], NewInstance panics with a message naming the
// class. That is a contract violation, not a recoverable condition; such
// classes are constructible only through Emplace.
//
// If B is manually managed the caller must eventually free the instance or
// hand it to the engine; the base object leaks otherwise. Must be called
// after library initialization.
func NewInstance[C, B any, PC interface {
	Script
	*C
}, PB interface {
	object.Instantiable
	*B
}](rt *object.Runtime) (object.Instance[B, C, ownership.Unique], error) {
	var zero object.Instance[B, C, ownership.Unique]

	script := new(C)
	pc := PC(script)
	name := pc.ClassName()

	init, ok := any(pc).(Initializer[B])
	if !ok {
		panic(name + " does not have a zero-argument constructor")
	}

	base, err := object.New[B, PB](rt)
	if err != nil {
		return zero, errors.Instantiation(name, err)
	}
	id := PB(base).ObjectID()

	// The fresh object is observable only by this call; the Shared tag is
	// what the engine's construction path documents for init owners.
	init.Init(object.Borrow[ownership.Shared](base))

	if err := rt.AttachPayload(id, name, script); err != nil {
		return zero, errors.Instantiation(name, err)
	}
	return object.MakeInstance[ownership.Unique](rt, base, id, script), nil
}

// Emplace creates a fresh base object of type B and attaches the
// caller-supplied payload, skipping the zero-argument construction path
// entirely. This is the only way to instantiate classes without a
// zero-argument constructor.
//
// The same ownership caveat as NewInstance applies to manually-managed
// bases. Must be called after library initialization.
func Emplace[C, B any, PC interface {
	Script
	*C
}, PB interface {
	object.Instantiable
	*B
}](rt *object.Runtime, script *C) (object.Instance[B, C, ownership.Unique], error) {
	var zero object.Instance[B, C, ownership.Unique]

	name := PC(script).ClassName()

	base, err := object.New[B, PB](rt)
	if err != nil {
		return zero, errors.Instantiation(name, err)
	}
	id := PB(base).ObjectID()

	if err := rt.AttachPayload(id, name, script); err != nil {
		return zero, errors.Instantiation(name, err)
	}
	return object.MakeInstance[ownership.Unique](rt, base, id, script), nil
}
