// Package errs provides standardized error types for the order management service.
// Every error type pairs a sentinel (for errors.Is classification) with a struct
// carrying the details that the HTTP layer reports back to clients.
//
// The package includes:
//   - ObjectNotFoundError: an entity lookup by identifier found nothing
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//   - InvalidReferenceError: a request referenced objects that do not exist
//   - InvalidTransitionError: a status change the state machine forbids
//   - AlreadyExistsError: a unique attribute is already taken
//   - ConcurrentModificationError: a conditional write lost a race
//
// Each error type follows the same pattern: a sentinel variable, a struct with the
// error details, constructor functions, Error() for formatting and Unwrap() returning
// the sentinel.
package errs
