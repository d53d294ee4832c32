// Package internal is a collection of types for this module's packages that
// have no business being part of any of their public APIs. Its Error type is
// used by package codec.
package internal

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "bwt: " + string(e) }
