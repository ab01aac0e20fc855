package class

import (
	"github.com/substratelabs/bindkit/object"
	"github.com/substratelabs/bindkit/ownership"
)

// Script is implemented by every script class payload type.
type Script interface {
	// ClassName returns the library-unique class name. It must be pure,
	// deterministic and stable for the life of the library: many classes
	// can be defined in one library and the name is the sole
	// disambiguator.
	ClassName() string
}

// Initializer is implemented by script classes with a zero-argument
// construction path. Init populates a freshly allocated payload; it runs
// against the freshly created base object, which at that point is
// observable only by the constructing call.
//
// Classes without Init can only be constructed through Emplace.
type Initializer[B any] interface {
	Script
	Init(owner object.Ref[B, ownership.Shared])
}

// PropertyRegistrar is implemented by script classes that export
// properties. RegisterProperties runs once per class per registry.
type PropertyRegistrar interface {
	RegisterProperties(b *Builder)
}

// MethodRegistrar is implemented by script classes that register their
// exposed methods explicitly. When absent, exported methods with a
// dispatchable signature are registered by reflection instead.
//
// RegisterMethods runs exactly once per class per registry. Method order
// within one class follows registration order; ordering between classes is
// unspecified.
type MethodRegistrar interface {
	RegisterMethods(b *Builder)
}
