// Package pipeline orchestrates a run: discover regular files, classify and
// validate all of them, then copy each into the mirrored output tree.
//
// The ordering is strict. No file is copied until every file has been
// classified and resolved; a single unresolved type aborts the run with
// [ErrUnresolvedTypes] and leaves the output root untouched.
package pipeline
