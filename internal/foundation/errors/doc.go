// Package errors provides the classified error primitives shared by the doctools commands.
//
// A ClassifiedError carries a category, a severity and a small context map (typically the
// offending path). The CLI adapter turns any error into a user-facing message and an exit
// status, so commands never let raw I/O errors escape to the user.
//
// Example usage:
//
//	err := errors.NotFoundError("input file not found").
//		WithContext("path", input).
//		WithCause(statErr).
//		Build()
package errors
