// Package validation checks plain order records for structural problems.
//
// Validators are pure. They never stop at the first problem: every check
// adds to a Result so that a whole store can be validated in one pass and
// reported back, for example before an import is accepted.
package validation
