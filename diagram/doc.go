// Package diagram corrects misaligned right-hand borders in ASCII/Unicode
// box-drawing diagrams embedded in plain-text documents.
//
// Given a document as a slice of lines, Process locates each probable
// diagram, aligns the rightmost border of every line in it to a common
// visual column by inserting spaces, and returns the corrected lines plus
// Stats describing what it did. It never deletes characters, never
// reflows content, and leaves non-diagram lines byte-identical.
//
// The package is strictly single-threaded and synchronous: one call to
// Process holds no state shared with any other, so document-level
// parallelism (running Process over many files concurrently) is safe and
// left to callers such as cmd/aadc.
package diagram
