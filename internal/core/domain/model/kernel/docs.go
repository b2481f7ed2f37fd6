// Package kernel provides the primitives shared by every aggregate in the
// order workflow.
//
// The package includes:
//   - UUID: identifier value object for orders, line items, placements,
//     proofs, files and revision entries
//   - Clock: the time source used by command handlers, replaceable in tests
package kernel
