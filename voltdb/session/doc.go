// Package session implements the connection engine of the driver: the
// authenticated session to a single server node, the asynchronous call API
// and the background receive loop that correlates responses to callers.
//
// The package focuses on:
//   - The login handshake and the immutable connection snapshot (ConnInfo)
//   - Strictly increasing request handles and the pending-request table
//   - Exactly-once delivery of each response to the caller that issued it
//   - A clean, idempotent shutdown that never leaks the socket or the
//     receive goroutine
//
// Key Components:
//
//   - Connect: dials the server, performs the handshake and starts the
//     receive loop. No partially constructed Session ever escapes.
//
//   - (*Session).Call: registers a pending request and writes the
//     invocation frame. Returns the receiving end of a one-shot channel.
//
//   - BlockForResult: blocks on such a channel and converts a
//     server-reported failure into a typed error.
//
//   - (*Session).Query / ListProcedures / UploadJar / Ping: thin
//     specializations of Call for the built-in system procedures.
//
// Thread Safety:
//
//	A Session may be used concurrently from multiple goroutines. Frame
//	writes are serialized by a write lock so concurrent callers can never
//	interleave partial frames.
package session
