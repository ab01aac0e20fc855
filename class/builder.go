package class

import (
	"github.com/substratelabs/bindkit/errors"
	"github.com/substratelabs/bindkit/object"
	"github.com/substratelabs/bindkit/ownership"
)

// PropertyInfo describes one exported property of a class.
type PropertyInfo struct {
	Default any
	Name    string
}

// MethodInfo describes one exported method of a class.
type MethodInfo struct {
	invoke func(base, self any, args []any) (any, error)
	Name   string
}

// Builder records the property and method registrations of one class. It is
// the collaborator handed to RegisterProperties and RegisterMethods.
//
// Registration is idempotent per name: registering a name again replaces
// the earlier entry instead of duplicating it, and the position of the
// first registration is kept.
type Builder struct {
	class       string
	props       []PropertyInfo
	propIndex   map[string]int
	methods     []MethodInfo
	methodIndex map[string]int
}

// NewBuilder creates an empty builder for the named class.
func NewBuilder(class string) *Builder {
	return &Builder{
		class:       class,
		propIndex:   make(map[string]int),
		methodIndex: make(map[string]int),
	}
}

// ClassName returns the class this builder registers for.
func (b *Builder) ClassName() string { return b.class }

// Property registers an exported property with its default value.
func (b *Builder) Property(name string, def any) {
	info := PropertyInfo{Name: name, Default: def}
	if i, ok := b.propIndex[name]; ok {
		b.props[i] = info
		return
	}
	b.propIndex[name] = len(b.props)
	b.props = append(b.props, info)
}

// Properties returns the registered properties in registration order.
func (b *Builder) Properties() []PropertyInfo {
	out := make([]PropertyInfo, len(b.props))
	copy(out, b.props)
	return out
}

// MethodNames returns the registered method names in registration order.
func (b *Builder) MethodNames() []string {
	out := make([]string, len(b.methods))
	for i, m := range b.methods {
		out[i] = m.Name
	}
	return out
}

func (b *Builder) method(name string) (MethodInfo, bool) {
	i, ok := b.methodIndex[name]
	if !ok {
		return MethodInfo{}, false
	}
	return b.methods[i], true
}

func (b *Builder) addMethod(name string, invoke func(base, self any, args []any) (any, error)) {
	info := MethodInfo{Name: name, invoke: invoke}
	if i, ok := b.methodIndex[name]; ok {
		b.methods[i] = info
		return
	}
	b.methodIndex[name] = len(b.methods)
	b.methods = append(b.methods, info)
}

// BareMethod registers a handler that declares the bare owner shape. The
// engine's standard dispatch path delivers owners under the Shared tag; the
// conversion to *B goes through the sealed owner-argument contract.
func BareMethod[B, C any](b *Builder, name string, fn func(owner *B, self *C, args []any) any) {
	addTypedMethod(b, name, func(owner object.Ref[B, ownership.Shared], self *C, args []any) any {
		return fn(FromSafeRef[*B](owner), self, args)
	})
}

// RefMethod registers a handler that declares the tagged-reference shape,
// keeping the access-capability tag visible to the handler.
func RefMethod[B, C any](b *Builder, name string, fn func(owner object.Ref[B, ownership.Shared], self *C, args []any) any) {
	addTypedMethod(b, name, func(owner object.Ref[B, ownership.Shared], self *C, args []any) any {
		return fn(FromSafeRef[object.Ref[B, ownership.Shared]](owner), self, args)
	})
}

// addTypedMethod adapts a typed handler to the builder's uniform dispatch
// signature. BareMethod and RefMethod are the only entry points; together
// with the reflection path they cover exactly the two sanctioned owner
// shapes.
func addTypedMethod[B, C any](b *Builder, name string, fn func(owner object.Ref[B, ownership.Shared], self *C, args []any) any) {
	b.addMethod(name, func(base, self any, args []any) (any, error) {
		bb, ok := base.(*B)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseDispatch, b.class, "owner has unexpected base type")
		}
		cc, ok := self.(*C)
		if !ok {
			return nil, errors.TypeMismatch(errors.PhaseDispatch, b.class, "payload has unexpected script type")
		}
		return fn(object.Borrow[ownership.Shared](bb), cc, args), nil
	})
}
