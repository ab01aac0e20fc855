// Package object provides the engine object runtime and the typed reference
// types used to pass engine-owned objects around without transferring
// ownership.
//
// # Object Runtime
//
// The Runtime is the engine-side object table. It owns every engine object:
// the binding layer never deallocates an object directly, it asks the
// Runtime to do so. Each object has a stable identity (ID) that is never
// reused for the lifetime of the Runtime, so a freed identity stays
// distinguishable from every later allocation.
//
// Two lifetime modes exist, selected by the root type a base object embeds:
//
//	Base       - manually managed; the owner must call Free or the object
//	             leaks. The leak is a documented caller obligation and is
//	             not detected.
//	Refcounted - reference-counted; the object is torn down when the last
//	             owning handle releases it.
//
// # Typed References
//
// Ref[T, A] is a non-owning handle to an engine-backed object, parameterized
// by the object type and by an access-capability tag from the ownership
// package. A Ref is produced fresh per call by whoever delivers the object
// (the dispatch layer, or construction), is valid only for the dynamic
// extent of that call, and must not be persisted past it. Persisting access
// requires an owning Instance with its own retain/release contract.
//
// Which tag a call path attaches is the producer's responsibility, chosen
// per the engine's documented threading rules. The tag is never inspected
// at run time.
//
// # Script Payloads
//
// A script payload is user state attached to an object identity via
// AttachPayload. It lives exactly as long as the object: when the Runtime
// tears the object down, a payload implementing Dropper gets Drop() called.
//
// # Observers
//
// Register observers to track object lifecycle events:
//
//	rt.Subscribe(obs)
//	// obs.OnObjectEvent receives EventAllocated, EventAttached,
//	// EventRetained, EventReleased, EventDetached, EventFreed
//
// # Thread Safety
//
// Runtime is safe for concurrent use. Ref and Instance values are plain
// data; the guarantees about concurrent access to the underlying object are
// exactly those asserted by their capability tag.
package object
