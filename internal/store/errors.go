// Package store persists the site's content collections as JSON files
// on disk. Each collection (shows, merch, audit log) is one pretty-
// printed JSON array; writes are atomic (temp file + rename), take a
// timestamped backup of the previous file into a history directory, and
// prune that history to a fixed cap. The store is the only component
// that touches the content paths.
package store

import "errors"

// ErrValidation is returned when a record read from or written to a
// collection violates its schema, or when a file's contents fail to
// parse as the collection's JSON shape. A write that fails validation
// never touches disk. Handlers should translate this into an HTTP 422
// response.
var ErrValidation = errors.New("validation failed")

// ErrNotFound is returned by the mutation layer when the record a
// mutation targets does not exist in its collection. Handlers should
// translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
