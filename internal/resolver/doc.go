// Package resolver builds and applies rename/match plans for catalog images.
//
// Plans are side-effect free until Apply: every mutating command first
// computes the full plan (collision resolution included) and only then, under
// a directory lock, performs the renames sequentially. One failed item never
// aborts the batch; it is recorded on its plan entry.
package resolver
