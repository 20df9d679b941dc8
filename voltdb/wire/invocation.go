package wire

// invocationVersion is the protocol version byte of a procedure invocation
const invocationVersion int8 = 0

// EncodeInvocation builds a complete, length-prefixed procedure invocation
// frame:
//
//	u32 length | i8 version | string procedure | i64 handle |
//	i16 paramCount | params
//
// The returned slice is the full frame including the length prefix; its
// length is what the session records for the pending request.
func EncodeInvocation(handle int64, procedure string, params ...Value) []byte {
	w := NewWriter()

	// Length placeholder, backfilled below
	w.WriteUint32(0)

	w.WriteInt8(invocationVersion)
	w.WriteString(procedure)
	w.WriteInt64(handle)

	w.WriteInt16(int16(len(params)))
	for _, p := range params {
		p.encode(w)
	}

	w.SetUint32At(0, uint32(w.Len()-4))
	return w.Bytes()
}
