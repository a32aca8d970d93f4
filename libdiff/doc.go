// Package libdiff computes structural differences between documents.
//
// Objects are compared by their key sequences and arrays by the sequence of
// their elements, each reduced to a rune and handed to diffmatchpatch.  Keys
// or elements present on both sides are compared recursively, so a change
// deep in a document is reported at its own path rather than as a
// replacement of everything above it.
package libdiff
