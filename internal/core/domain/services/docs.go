// Package services provides domain services that coordinate more than one
// Order aggregate.
//
// The package includes:
//   - DeadOpportunityArchiver: archives an abandoned quote and optionally
//     creates a follow-up lead for the same customer
package services
