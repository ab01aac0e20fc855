package class

import (
	"github.com/substratelabs/bindkit/object"
	"github.com/substratelabs/bindkit/ownership"
)

// fakeNode is a manually-managed engine base type used across the package
// tests.
type fakeNode struct {
	object.Base
	visible bool
}

// sprite exercises the implicit registration paths: Init, property
// registration, and reflection-discovered methods in both owner shapes.
type sprite struct {
	frame int
}

func (*sprite) ClassName() string { return "Sprite" }

func (s *sprite) Init(owner object.Ref[fakeNode, ownership.Shared]) {
	s.frame = 1
	owner.AsRef().visible = true
}

func (s *sprite) RegisterProperties(b *Builder) {
	b.Property("frame", 0)
	b.Property("flip_h", false)
}

func (s *sprite) Area(owner *fakeNode, args []any) any {
	return args[0].(int) * args[1].(int)
}

func (s *sprite) OwnerVisible(owner object.Ref[fakeNode, ownership.Shared], args []any) any {
	return owner.AsRef().visible
}

// Helper has no dispatchable signature and must stay invisible to the
// engine.
func (s *sprite) Helper(x int) int { return x }

// detachedCamera deliberately has no zero-argument constructor.
type detachedCamera struct {
	zoom float64
}

func (*detachedCamera) ClassName() string { return "DetachedCamera" }

// countingInit records zero-argument constructions so tests can assert the
// Emplace path never takes them.
var initCalls int

type countingInit struct{}

func (*countingInit) ClassName() string { return "CountingInit" }

func (c *countingInit) Init(owner object.Ref[fakeNode, ownership.Shared]) { initCalls++ }

// counterScript registers its methods explicitly through MethodRegistrar.
type counterScript struct {
	n int
}

func (*counterScript) ClassName() string { return "Counter" }

func (c *counterScript) Init(owner object.Ref[fakeNode, ownership.Shared]) {}

func (c *counterScript) RegisterMethods(b *Builder) {
	BareMethod(b, "inc", func(owner *fakeNode, self *counterScript, args []any) any {
		self.n++
		return self.n
	})
	RefMethod(b, "value", func(owner object.Ref[fakeNode, ownership.Shared], self *counterScript, args []any) any {
		return self.n
	})
}
