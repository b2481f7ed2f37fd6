// Package pricing computes the selling unit price of a decorated garment.
//
// UnitPrice is a pure function of the wholesale cost and the decoration
// parameters. Line items call it when they are committed and the price
// preview query calls it before anything is committed; there is no second
// formula.
//
// Rule:
//
//	base = unitCost * 2
//	ScreenPrint: + 1.00 * colors + 2.00 * placements
//	DTF:         + 5.00 (Standard) | + 8.00 (Large)
//	Embroidery:  + 0 (<8k) | + 10.00 (8k-12k) | + 20.00 (12k+)
//	Other:       no surcharge
//	plus size (2XL, 3XL, 4XL): + 2.00, once, for every decoration type
package pricing
