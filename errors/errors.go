package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRegister Phase = "register" // class registration
	PhaseInit     Phase = "init"     // payload construction
	PhaseDispatch Phase = "dispatch" // method dispatch
	PhaseInstance Phase = "instance" // instance lifecycle
	PhaseRuntime  Phase = "runtime"  // engine object table operations
	PhaseLoad     Phase = "load"     // script module loading
)

// Kind categorizes the error
type Kind string

const (
	KindDuplicateClass Kind = "duplicate_class"
	KindNotFound       Kind = "not_found"
	KindTypeMismatch   Kind = "type_mismatch"
	KindInvalidInput   Kind = "invalid_input"
	KindRegistration   Kind = "registration"
	KindUseAfterFree   Kind = "use_after_free"
	KindRefcount       Kind = "refcount"
	KindInstantiation  Kind = "instantiation"
	KindClosed         Kind = "closed"
	KindUnsupported    Kind = "unsupported"
)

// Error is the structured error type used throughout bindkit
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Class  string
	Method string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Class != "" {
		b.WriteString(": class ")
		b.WriteString(e.Class)
		if e.Method != "" {
			b.WriteByte('.')
			b.WriteString(e.Method)
		}
	} else if e.Method != "" {
		b.WriteString(": method ")
		b.WriteString(e.Method)
	}

	if e.Detail != "" {
		if e.Class != "" || e.Method != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Class sets the class name
func (b *Builder) Class(name string) *Builder {
	b.err.Class = name
	return b
}

// Method sets the method name
func (b *Builder) Method(name string) *Builder {
	b.err.Method = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// DuplicateClass reports a second registration of a class name with a
// different script type.
func DuplicateClass(class string) *Error {
	return &Error{
		Phase:  PhaseRegister,
		Kind:   KindDuplicateClass,
		Class:  class,
		Detail: "already registered with a different script type",
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, class, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindTypeMismatch,
		Class:  class,
		Detail: detail,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Registration wraps a failure to register a class member
func Registration(class, member string, cause error) *Error {
	return &Error{
		Phase:  PhaseRegister,
		Kind:   KindRegistration,
		Class:  class,
		Method: member,
		Cause:  cause,
	}
}

// UseAfterFree reports an operation on a freed or never-allocated identity
func UseAfterFree(phase Phase, id uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUseAfterFree,
		Detail: fmt.Sprintf("object %d is not live", id),
		Value:  id,
	}
}

// Refcount reports a retain/release on an object with the wrong lifetime mode
func Refcount(id uint64, detail string) *Error {
	return &Error{
		Phase:  PhaseRuntime,
		Kind:   KindRefcount,
		Detail: detail,
		Value:  id,
	}
}

// Instantiation creates an instantiation error
func Instantiation(class string, cause error) *Error {
	return &Error{
		Phase: PhaseInstance,
		Kind:  KindInstantiation,
		Class: class,
		Cause: cause,
	}
}

// Closed reports an operation on a closed runtime or loader
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", what),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Load creates a script module loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidInput,
		Detail: detail,
		Cause:  cause,
	}
}
