package wasmhost

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/substratelabs/bindkit/errors"
)

// Loader compiles WebAssembly script modules. It owns the underlying wasm
// runtime; closing the loader invalidates every module and instance loaded
// through it.
type Loader struct {
	runtime wazero.Runtime
	logger  *zap.Logger
	nameSeq atomic.Uint64
}

// Option configures a Loader.
type Option func(*Loader)

// WithLogger sets the loader's logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(ld *Loader) { ld.logger = l }
}

// NewLoader creates a loader backed by a fresh wasm runtime.
func NewLoader(ctx context.Context, opts ...Option) (*Loader, error) {
	ld := &Loader{
		runtime: wazero.NewRuntime(ctx),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(ld)
	}
	return ld, nil
}

// Close releases the wasm runtime and everything loaded through it.
func (l *Loader) Close(ctx context.Context) error {
	return l.runtime.Close(ctx)
}

// Module is one compiled wasm class.
type Module struct {
	loader   *Loader
	compiled wazero.CompiledModule
	name     string
	methods  []string
	hasInit  bool
}

// Load compiles a wasm binary as the class named name. Exports that are not
// callable as methods (non-i64 signatures, multiple results) are ignored.
func (l *Loader) Load(ctx context.Context, name string, wasm []byte) (*Module, error) {
	if name == "" {
		return nil, errors.InvalidInput(errors.PhaseLoad, "class name cannot be empty")
	}

	compiled, err := l.runtime.CompileModule(ctx, wasm)
	if err != nil {
		return nil, errors.Load("compile script module", err)
	}

	var methods []string
	hasInit := false
	for export, def := range compiled.ExportedFunctions() {
		if !dispatchable(def) {
			continue
		}
		if export == "init" {
			hasInit = true
			continue
		}
		methods = append(methods, export)
	}
	sort.Strings(methods)

	l.logger.Debug("script module loaded",
		zap.String("class", name),
		zap.Strings("methods", methods),
		zap.Bool("has_init", hasInit))

	return &Module{
		loader:   l,
		compiled: compiled,
		name:     name,
		methods:  methods,
		hasInit:  hasInit,
	}, nil
}

// dispatchable reports whether an export can serve as a class method: all
// parameters i64 and at most one i64 result.
func dispatchable(def api.FunctionDefinition) bool {
	for _, p := range def.ParamTypes() {
		if p != api.ValueTypeI64 {
			return false
		}
	}
	results := def.ResultTypes()
	if len(results) > 1 {
		return false
	}
	if len(results) == 1 && results[0] != api.ValueTypeI64 {
		return false
	}
	return true
}

// ClassName returns the class name this module was loaded as.
func (m *Module) ClassName() string { return m.name }

// Methods returns the method names the module exports, sorted.
func (m *Module) Methods() []string {
	out := make([]string, len(m.methods))
	copy(out, m.methods)
	return out
}

// HasInit reports whether the module exports a zero-argument constructor.
func (m *Module) HasInit() bool { return m.hasInit }

// NewInstance instantiates the module and runs its constructor. Like Go
// classes, a wasm class without an init export has no zero-argument
// construction path: NewInstance panics naming the class.
func (m *Module) NewInstance(ctx context.Context) (*Instance, error) {
	if !m.hasInit {
		panic(m.name + " does not have a zero-argument constructor")
	}

	inst, err := m.instantiate(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := inst.mod.ExportedFunction("init").Call(ctx); err != nil {
		inst.mod.Close(ctx)
		return nil, errors.Instantiation(m.name, err)
	}
	return inst, nil
}

// Emplace instantiates the module without running init. The instance starts
// from the module's declared initial state.
func (m *Module) Emplace(ctx context.Context) (*Instance, error) {
	return m.instantiate(ctx)
}

func (m *Module) instantiate(ctx context.Context) (*Instance, error) {
	cfg := wazero.NewModuleConfig().
		WithName(fmt.Sprintf("%s-%d", m.name, m.loader.nameSeq.Add(1))).
		WithStartFunctions()

	mod, err := m.loader.runtime.InstantiateModule(ctx, m.compiled, cfg)
	if err != nil {
		return nil, errors.Instantiation(m.name, err)
	}
	return &Instance{module: m, mod: mod}, nil
}
