// Package errors provides structured error types for the bindkit library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes the class and method names involved and
// a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRegister, errors.KindDuplicateClass).
//		Class("Sprite").
//		Detail("already registered with a different script type").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseDispatch, "method", "area")
//	err := errors.UseAfterFree(errors.PhaseRuntime, id)
//
// All errors implement the standard error interface and support errors.Is/As.
//
// The one deliberately unrecoverable condition in bindkit, invoking the
// zero-argument construction path of a class without a zero-argument
// constructor, is a panic rather than an Error: continuing would attach a
// payload in an undefined state.
package errors
