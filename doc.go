// Package bindkit registers script classes against a host object model and
// dispatches calls to them under an explicit ownership discipline.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	bindkit/             Root package documentation
//	├── ownership/       Access tags (Unique, Shared, ThreadLocal) and their capability sets
//	├── object/          Object runtime: identity, lifecycle, payloads, typed references
//	├── class/           Class registration, builders, owner-argument conversion, dispatch
//	├── wasmhost/        WebAssembly-defined script classes on top of wazero
//	├── errors/          Structured error types for debugging
//	└── cmd/inspect/     Interactive registry browser
//
// # Quick Start
//
// Define a script class, register it, and construct an instance:
//
//	type Sprite struct{ frame int }
//
//	func (*Sprite) ClassName() string { return "Sprite" }
//
//	func (s *Sprite) Init(owner object.Ref[Node, ownership.Shared]) { s.frame = 1 }
//
//	rt := object.NewRuntime()
//	defer rt.Close()
//
//	reg := class.NewRegistry(rt)
//	if _, err := class.Register[Sprite, Node](reg); err != nil {
//	    log.Fatal(err)
//	}
//
//	inst, err := class.NewInstance[Sprite, Node](rt)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer object.Free(inst)
//
// Method dispatch goes through the registry by object identity:
//
//	out, err := reg.Call(inst.ID(), "advance")
//
// # Ownership
//
// Every reference to a host object carries an access tag describing how the
// holder may use it. Unique references permit mutation and manual teardown,
// Shared references are aliasable and read-only, and ThreadLocal references
// are aliasable within a single goroutine. The ownership package documents
// the capability each tag grants; object.Ref and the class package's
// owner-argument shapes enforce them at compile time.
package bindkit
