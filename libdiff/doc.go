// Package libdiff computes structural differences between UXF values.
//
// Diff walks two value trees together and reports a Change for each
// inserted, deleted or replaced value, located by its ir.Path. List
// elements and table records are aligned with a sequence diff, so
// shifting elements does not produce a change per element.
package libdiff
