// Package errs provides the error types shared by the decoflow order workflow.
//
// Every error type follows the same shape:
//   - a sentinel error variable (e.g. ErrValueIsRequired) returned by Unwrap,
//     so callers classify failures with errors.Is
//   - a struct carrying the details of the failure
//   - constructor functions with and without a cause
//
// The workflow-specific kinds are:
//   - InvalidTransitionError: a stage change rejected by the stage graph or a gate
//   - ObjectNotFoundError: an unknown order, placement, proof or file id
//   - DuplicateError: an id or order number collision in the store
//   - ConflictError: a stale write detected through the optimistic version
//   - ValidationError: the list of structural problems found for an entity
//
// None of these are fatal. A failed store operation leaves the store as it was.
package errs
