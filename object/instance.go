package object

import (
	"github.com/substratelabs/bindkit/ownership"
)

// Instance is the owning container pairing an engine object of base type B
// with its script payload C, parameterized by ownership mode. It is the
// deposit target of the construction paths in the class package.
//
// For manually-managed bases the holder must eventually call Free (or hand
// the instance to the engine); otherwise the base object leaks.
type Instance[B, C any, A ownership.Access] struct {
	rt     *Runtime
	base   *B
	script *C
	id     ID
}

// MakeInstance assembles an Instance from its parts. The caller vouches for
// the tag: construction paths produce Unique instances because nothing else
// has seen the fresh object yet.
func MakeInstance[A ownership.Access, B, C any](rt *Runtime, base *B, id ID, script *C) Instance[B, C, A] {
	return Instance[B, C, A]{rt: rt, base: base, script: script, id: id}
}

// ID returns the identity of the underlying engine object.
func (i Instance[B, C, A]) ID() ID { return i.id }

// Base returns the engine object.
func (i Instance[B, C, A]) Base() *B { return i.base }

// Script returns the attached payload.
func (i Instance[B, C, A]) Script() *C { return i.script }

// Runtime returns the object table that owns the underlying object.
func (i Instance[B, C, A]) Runtime() *Runtime { return i.rt }

// Ref borrows the base object for the duration of the current call.
func (i Instance[B, C, A]) Ref() Ref[B, ownership.Shared] {
	return Borrow[ownership.Shared](i.base)
}

// Free tears down a manually-managed instance. It requires a tag proving
// thread confinement: freeing through an aliasable Shared handle would race
// with other holders.
func Free[B, C any, A ownership.Local](i Instance[B, C, A]) error {
	return i.rt.Free(i.id)
}

// Release drops one reference to a reference-counted instance. Safe under
// any tag: the count is maintained by the object runtime.
func Release[B, C any, A ownership.Access](i Instance[B, C, A]) error {
	return i.rt.Release(i.id)
}

// Share downgrades a uniquely-held instance to a shared one, allowing the
// handle to be passed across threads. There is no inverse.
func Share[B, C any](i Instance[B, C, ownership.Unique]) Instance[B, C, ownership.Shared] {
	return Instance[B, C, ownership.Shared]{rt: i.rt, base: i.base, script: i.script, id: i.id}
}
