// Package copier writes planned files into the output tree: it creates
// missing parent directories, copies bytes over any existing target, and
// optionally carries permissions and modification time across.
package copier
