// Package response reads payloads off native fetch response handles.
//
// A handle lives only as long as needed to perform the single body read
// that consumes it. The underlying stream drains once; a second read
// fails with ErrBodyConsumed instead of tripping undefined native
// behavior.
package response
