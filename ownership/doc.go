// Package ownership defines the access-capability tags attached to engine
// object references.
//
// A tag describes who else may hold a reference to the same engine object at
// the moment the reference was produced:
//
//	Unique      - no other live reference exists anywhere in the process
//	Shared      - other references may exist; mutation must go through the
//	              engine's own synchronization
//	ThreadLocal - other references may exist, but all of them are confined
//	              to the current thread
//
// Tags are zero-size marker types used only as type parameters. They carry
// no runtime state and are never inspected at run time: APIs that require a
// particular guarantee constrain their tag parameter instead.
//
// # Capability sets
//
// Two sub-capability constraints group the tags:
//
//	Local     - Unique, ThreadLocal: access is thread-confined, so plain
//	            mutation through the reference is sound
//	NonUnique - Shared, ThreadLocal: aliases may exist, so the tag may be
//	            attached to a borrowed reference without further proof
//
// # Producer obligations
//
// Tags are advisory proofs, not locks. The producer of a reference chooses
// the tag according to the engine's documented threading rules for the call
// path that delivers it. Attaching Unique while another live reference to
// the same identity exists anywhere in the process is undefined behavior at
// the engine-call boundary; nothing in this package can detect it. A tag is
// never upgraded (Shared to Unique) once attached; downgrades are explicit
// one-way conversions provided by the object package.
//
// The interfaces in this package are sealed: the three tags are the entire
// set, and outside packages cannot add more.
package ownership
