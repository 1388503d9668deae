// Package errs provides standardized error types for the gift exchange service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by the domain model, the orchestration layer and the adapters.
//
// The package includes:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is present but malformed
//   - ValueIsOutOfRangeError: a numeric value falls outside its allowed bounds
//   - ObjectNotFoundError: a stored object cannot be found
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g., ErrValueIsRequired) used with errors.Is
//   - A struct type carrying the offending parameter
//   - Constructor functions with and without cause
//   - Unwrap returning the sentinel so callers can classify the failure
package errs
