// Package naming derives output paths: the mirrored target of a source file
// under the output root, and in-run tracking of which source claimed each
// target.
package naming
