// Package art implements the art-confirmation sub-workflow that runs inside
// the Art Confirmation stage of an order.
//
// A Confirmation holds the decoration placements of an order, the versioned
// proofs submitted for each placement, files uploaded by the customer, and an
// append-only revision history. Its OverallStatus moves through:
//
//	Not Started ─> In Progress ─> Sent to Customer ─┬─> Approved
//	                                   ^             │
//	                                   └─ Revision Requested
//
// OverallStatus becomes Approved when every placement has at least one
// approved proof, or when a final approval is recorded manually.
//
// The package knows nothing about orders. The order aggregate decides when
// the sub-workflow may be edited and mirrors OverallStatus into its coarse
// art status.
package art
