// Package wasmhost provides script classes whose behavior lives in a
// WebAssembly module instead of Go code.
//
// A Loader wraps a wazero runtime. Loading a module compiles it and yields
// a Module, one wasm binary per class:
//
//	loader, _ := wasmhost.NewLoader(ctx)
//	defer loader.Close(ctx)
//
//	mod, _ := loader.Load(ctx, "Counter", wasmBytes)
//	inst, _ := mod.NewInstance(ctx)
//	result, _ := inst.Call(ctx, "incr")
//
// Exported functions whose parameters and results are all i64 (with at most
// one result) become class methods. An exported "init" function, when
// present, is the class's zero-argument constructor and runs on the
// NewInstance path; when absent, NewInstance panics naming the class, the
// same contract as Go classes without Init. Emplace instantiates the module
// without running init.
//
// Each script instance owns its own module instance; wasm instances are not
// safe for concurrent use, so each goroutine needs its own or external
// synchronization. Instance implements class.Script and object.Dropper:
// attach one to an engine object with class.Emplace and the module instance
// is closed when the object is torn down.
package wasmhost
