// Package app assembles the pieces: configuration, the backend client,
// the in-memory store, and the terminal interface.
package app
