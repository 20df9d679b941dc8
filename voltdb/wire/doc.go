// Package wire implements the binary frame codec of the driver: encoding
// procedure invocations into request frames and decoding response envelopes
// and tabular payloads.
//
// All multi-byte integers on the wire are big endian. Strings and binary
// blobs are length prefixed with a 32-bit length. Every frame is prefixed
// with a 32-bit length that does not include the length field itself.
//
// Key Components:
//
//   - Writer / Reader: cursor-based big-endian encoding over byte slices.
//     Reader returns a typed DecodeError on truncated or invalid input.
//
//   - Value and its constructors (String, Int64, Bytes, ...): typed
//     parameters for procedure invocations, tagged with their wire type ID.
//
//   - EncodeInvocation: builds a complete, length-prefixed procedure
//     invocation frame for a (handle, procedure, parameters) triple.
//
//   - ParseResponse / ParseTable: decode the response envelope following
//     the handle and the tabular payload that follows the envelope.
package wire
