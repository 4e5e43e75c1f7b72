// Package fleet provides the HTTP client for the fleet backend API.
//
// # Overview
//
// This package is the only place fleetdeck touches the network. It
// defines the resource types (owners, vehicles, maintenance records,
// aggregate stats), the mutation payloads, and a Client with one method
// per resource operation. Every response travels in the backend's
// envelope:
//
//	{ "success": true,  "data": ... }
//	{ "success": false, "error": "diagnostic" }
//
// DELETE endpoints answer with { "success": true, "message": ... }.
//
// # Error Handling
//
// Request outcomes are normalized into exactly one of three error types:
//
//   - *TransportError: the backend was unreachable or the connection broke
//   - *BackendError: the backend answered and rejected the request; the
//     Message field carries the backend's own diagnostic when one was sent
//   - *DecodeError: a 2xx response whose body could not be decoded
//
// A fourth type, *ValidationError, is produced by the payload Validate
// methods before a request is ever issued. None of these are fatal;
// callers keep their last-good data and surface the message.
//
// # Side Effects
//
// The Client never touches local state. Refreshing stored snapshots after
// a mutation is the reload package's job.
//
// # Network Assumptions
//
// The backend is on localhost or a trusted local network, speaks plain
// HTTP, and requires no authentication. Requests carry a 10 second
// timeout and honor context cancellation.
package fleet
