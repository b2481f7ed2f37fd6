// Package exchange defines the export bundle: the portable JSON document
// that carries a whole order store between installations.
//
// A bundle has three parts. Metadata records the schema version and when the
// export was taken, Orders holds the plain order records, and Schema lists
// every enumeration literal so that a reader can check values without
// consulting this code. Importers accept any 1.x schema version.
package exchange
