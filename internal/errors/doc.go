// Package errors provides structured error handling for the planner API.
//
// Errors carry a code, a message, and optional metadata:
//
//	err := errors.NotFoundf("session %s not found", id)
//	err = err.WithMeta("session_id", id)
//
// Wrapping preserves the original code where one exists:
//
//	if err := backend.Set(ctx, key, data); err != nil {
//	    return errors.Wrapf(err, "failed to persist record %q", key)
//	}
//
// Checking:
//
//	if errors.IsNotFound(err) { ... }
//	status := errors.GetCode(err).HTTPStatus()
//
// Multi-field input validation uses the builder:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("columnLayout", columns, 2, 6, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
