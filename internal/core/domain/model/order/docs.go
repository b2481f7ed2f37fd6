// Package order contains the Order aggregate and the workflow state machine
// that moves it through the decoration business.
//
// # Stages
//
// An order starts as a Lead or a Quote and moves forward one stage at a
// time. Every stage has a gate that must hold before the order may leave it:
//
//	Lead                always passes; copies the event date into dueDate
//	Quote               at least one line item
//	Approval            always passes
//	Art Confirmation    art approved, or advanced with art pending
//	Inventory Order     every line item ordered
//	Production Prep     gang sheet, digitizing and screens where the
//	                    decoration types need them
//	Inventory Received  every line item received
//	Production          every line item decorated and packed
//	Fulfillment         shipping label printed or customer picked up
//	Invoice             invoice created and sent
//	Closeout            files saved, Canva archived, summary uploaded
//
// Closed orders can only be reopened. MoveBack is an escape hatch that goes
// back one stage without checking gates.
//
// # Art status
//
// The order carries a coarse ArtStatus next to the detailed status of its
// art confirmation. Advancing with art pending sets the coarse status to
// Pending and leaves the detailed one alone, so the two may disagree until
// a final art approval is recorded.
//
// # Persistence
//
// Snapshot and Restore convert between the aggregate and its plain JSON
// record. Getters return copies; the aggregate is only changed through its
// methods.
package order
