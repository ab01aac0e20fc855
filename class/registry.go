package class

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/substratelabs/bindkit/errors"
	"github.com/substratelabs/bindkit/object"
	"github.com/substratelabs/bindkit/ownership"
)

// Definition is the registered description of one class: its name, its
// script and base types, and its recorded property/method registrations.
type Definition struct {
	builder    *Builder
	scriptType reflect.Type
	baseType   reflect.Type
	name       string
}

// Name returns the class name.
func (d *Definition) Name() string { return d.name }

// Properties returns the exported properties in registration order.
func (d *Definition) Properties() []PropertyInfo { return d.builder.Properties() }

// MethodNames returns the exported method names in registration order.
func (d *Definition) MethodNames() []string { return d.builder.MethodNames() }

// Registry holds the class definitions of one library against one object
// runtime. It must be fully populated during library initialization, before
// the engine starts delivering calls.
type Registry struct {
	rt      *object.Runtime
	classes map[string]*Definition
	mu      sync.RWMutex
}

// NewRegistry creates an empty registry bound to rt.
func NewRegistry(rt *object.Runtime) *Registry {
	return &Registry{
		rt:      rt,
		classes: make(map[string]*Definition),
	}
}

// Runtime returns the object runtime this registry dispatches against.
func (r *Registry) Runtime() *object.Runtime { return r.rt }

// Register binds script class C with base type B. Property and method
// registration runs exactly once per class per registry: registering the
// same class again is a no-op returning the existing definition, while a
// second class claiming the same name is a registration error.
func Register[C, B any, PC interface {
	Script
	*C
}, PB interface {
	object.Instantiable
	*B
}](r *Registry) (*Definition, error) {
	pc := PC(new(C))
	name := pc.ClassName()
	if name == "" {
		return nil, errors.InvalidInput(errors.PhaseRegister, "class name cannot be empty")
	}

	scriptType := reflect.TypeOf((*C)(nil))

	r.mu.RLock()
	existing, ok := r.classes[name]
	r.mu.RUnlock()
	if ok {
		if existing.scriptType == scriptType {
			return existing, nil
		}
		Logger().Warn("duplicate class name",
			zap.String("class", name),
			zap.String("existing", existing.scriptType.String()),
			zap.String("rejected", scriptType.String()))
		return nil, errors.DuplicateClass(name)
	}

	b := NewBuilder(name)
	if pr, ok := any(pc).(PropertyRegistrar); ok {
		pr.RegisterProperties(b)
	}
	if mr, ok := any(pc).(MethodRegistrar); ok {
		mr.RegisterMethods(b)
	} else {
		reflectMethods[C, B](b)
	}

	def := &Definition{
		name:       name,
		scriptType: scriptType,
		baseType:   reflect.TypeOf((*B)(nil)),
		builder:    b,
	}

	r.mu.Lock()
	if existing, ok := r.classes[name]; ok {
		// Lost a registration race for the same name.
		r.mu.Unlock()
		if existing.scriptType == scriptType {
			return existing, nil
		}
		return nil, errors.DuplicateClass(name)
	}
	r.classes[name] = def
	r.mu.Unlock()

	Logger().Debug("class registered",
		zap.String("class", name),
		zap.Int("properties", len(b.props)),
		zap.Int("methods", len(b.methods)))
	return def, nil
}

// Definition returns the registered definition for a class name.
func (r *Registry) Definition(name string) (*Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.classes[name]
	return def, ok
}

// Definitions returns all registered definitions sorted by class name.
// Ordering between classes carries no meaning for dispatch.
func (r *Registry) Definitions() []*Definition {
	r.mu.RLock()
	defs := make([]*Definition, 0, len(r.classes))
	for _, d := range r.classes {
		defs = append(defs, d)
	}
	r.mu.RUnlock()

	sort.Slice(defs, func(i, j int) bool { return defs[i].name < defs[j].name })
	return defs
}

// Call dispatches a method call on the script object with identity id. It
// borrows the owner for the call's extent under the Shared tag, the
// engine's standard variant-call delivery, and routes it to the handler
// through the sealed owner-argument conversion.
func (r *Registry) Call(id object.ID, method string, args ...any) (any, error) {
	className, ok := r.rt.Class(id)
	if !ok {
		return nil, errors.NotFound(errors.PhaseDispatch, "script object", fmt.Sprintf("%d", id))
	}

	def, ok := r.Definition(className)
	if !ok {
		return nil, errors.NotFound(errors.PhaseDispatch, "class", className)
	}

	info, ok := def.builder.method(method)
	if !ok {
		return nil, errors.New(errors.PhaseDispatch, errors.KindNotFound).
			Class(className).
			Method(method).
			Detail("no such method").
			Build()
	}

	base, _ := r.rt.Object(id)
	payload, _ := r.rt.Payload(id)
	return info.invoke(base, payload, args)
}

// reflectMethods registers every exported method of *C whose signature is
// dispatchable:
//
//	func (c *C) Name(owner *B, args []any) any
//	func (c *C) Name(owner object.Ref[B, ownership.Shared], args []any) any
//
// with an optional single result. Names convert to snake_case. Methods
// belonging to the class contracts and everything with a different shape
// stay ordinary Go methods.
func reflectMethods[C, B any](b *Builder) {
	ct := reflect.TypeOf((*C)(nil))
	bareT := reflect.TypeOf((*B)(nil))
	refT := reflect.TypeOf(object.Ref[B, ownership.Shared]{})
	argsT := reflect.TypeOf([]any(nil))

	for i := 0; i < ct.NumMethod(); i++ {
		m := ct.Method(i)
		if !m.IsExported() {
			continue
		}
		switch m.Name {
		case "ClassName", "Init", "RegisterProperties", "RegisterMethods", "Drop":
			continue
		}

		mt := m.Type
		if mt.NumIn() != 3 || mt.NumOut() > 1 {
			continue
		}
		ownerT := mt.In(1)
		if ownerT != bareT && ownerT != refT {
			continue
		}
		if mt.In(2) != argsT {
			continue
		}

		fn := m.Func
		wantRef := ownerT == refT
		b.addMethod(toSnakeCase(m.Name), func(base, self any, args []any) (any, error) {
			bb, ok := base.(*B)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseDispatch, b.class, "owner has unexpected base type")
			}
			cc, ok := self.(*C)
			if !ok {
				return nil, errors.TypeMismatch(errors.PhaseDispatch, b.class, "payload has unexpected script type")
			}

			owner := object.Borrow[ownership.Shared](bb)
			var ownerV reflect.Value
			if wantRef {
				ownerV = reflect.ValueOf(FromSafeRef[object.Ref[B, ownership.Shared]](owner))
			} else {
				ownerV = reflect.ValueOf(FromSafeRef[*B](owner))
			}

			out := fn.Call([]reflect.Value{reflect.ValueOf(cc), ownerV, reflect.ValueOf(args)})
			if len(out) == 1 {
				return out[0].Interface(), nil
			}
			return nil, nil
		})
	}
}
