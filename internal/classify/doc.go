// Package classify describes file contents independently of file names.
//
// A [Classifier] turns a path into a single-line, human-readable
// description whose first word names the content family ("PDF document,
// version 1.4", "PNG image data, ..."). Two backends are provided:
//
//   - [FileCommand] runs file(1) in brief mode, one process per file.
//   - [Sniffer] inspects magic bytes in-process and emits file(1)-style
//     descriptions for the families it knows.
//
// [Cached] wraps either backend so repeated lookups of the same path during
// a run reuse the first answer.
package classify
