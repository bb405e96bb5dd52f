// Package errs provides standardized error types for the application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the error taxonomy of the order lifecycle service:
//   - ObjectNotFoundError: a referenced order, payment, customer, or agent is missing
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: input validation
//   - OperationForbiddenError: role or franchise-area authorization failures
//   - InvalidStateError: the operation is not valid for the object's current state
//   - TransitionNotAllowedError: the target order status is not reachable from the current one
//   - ConflictError: duplicate completion attempts and similar clashes
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrOperationForbidden)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// This standardized approach keeps error classification uniform across the domain,
// application, and HTTP layers.
package errs
