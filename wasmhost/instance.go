package wasmhost

import (
	"context"

	"github.com/tetratelabs/wazero/api"

	"github.com/substratelabs/bindkit/errors"
)

// Instance is one instantiation of a wasm class: the script payload for one
// engine object. It is not safe for concurrent use.
type Instance struct {
	module *Module
	mod    api.Module
}

// ClassName implements class.Script, so an Instance can be attached to an
// engine object through class.Emplace.
func (i *Instance) ClassName() string { return i.module.name }

// Call invokes an exported method.
func (i *Instance) Call(ctx context.Context, method string, args ...uint64) (uint64, error) {
	fn := i.mod.ExportedFunction(method)
	if fn == nil {
		return 0, errors.New(errors.PhaseDispatch, errors.KindNotFound).
			Class(i.module.name).
			Method(method).
			Detail("no such method").
			Build()
	}

	results, err := fn.Call(ctx, args...)
	if err != nil {
		return 0, errors.New(errors.PhaseDispatch, errors.KindInvalidInput).
			Class(i.module.name).
			Method(method).
			Cause(err).
			Build()
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0], nil
}

// Close tears down the module instance.
func (i *Instance) Close(ctx context.Context) error {
	return i.mod.Close(ctx)
}

// Drop implements object.Dropper: the module instance dies with the engine
// object it is attached to.
func (i *Instance) Drop() {
	_ = i.mod.Close(context.Background())
}
