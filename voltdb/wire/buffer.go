package wire

import (
	"encoding/binary"
	"math"
	"unicode/utf8"

	"github.com/ties/voltdb-client-go/voltdb/common"
)

// --------------------------------------------------------------------------
// Writer
// --------------------------------------------------------------------------

// Writer builds a binary frame in memory. All integers are written big
// endian. The zero value is not usable, create one with NewWriter.
type Writer struct {
	buf []byte
}

// NewWriter creates a Writer with a small initial capacity
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 128)}
}

func (w *Writer) WriteUint8(b byte) {
	w.buf = append(w.buf, b)
}

func (w *Writer) WriteInt8(v int8) {
	w.buf = append(w.buf, byte(v))
}

func (w *Writer) WriteInt16(v int16) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, uint16(v))
}

func (w *Writer) WriteInt32(v int32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(v))
}

func (w *Writer) WriteUint32(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

func (w *Writer) WriteInt64(v int64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, uint64(v))
}

func (w *Writer) WriteFloat64(v float64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, math.Float64bits(v))
}

// WriteString writes a 32-bit length prefix followed by the UTF-8 bytes
func (w *Writer) WriteString(s string) {
	w.WriteInt32(int32(len(s)))
	w.buf = append(w.buf, s...)
}

// WriteVarbinary writes a 32-bit length prefix followed by the raw bytes
func (w *Writer) WriteVarbinary(bs []byte) {
	w.WriteInt32(int32(len(bs)))
	w.buf = append(w.buf, bs...)
}

// WriteRaw appends bytes without a length prefix
func (w *Writer) WriteRaw(bs []byte) {
	w.buf = append(w.buf, bs...)
}

// SetUint32At overwrites four bytes at the given offset. Used to backfill
// the frame length placeholder once the frame is complete.
func (w *Writer) SetUint32At(offset int, v uint32) {
	binary.BigEndian.PutUint32(w.buf[offset:offset+4], v)
}

// Len returns the number of bytes written so far
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the assembled frame. The slice aliases the Writer's
// internal buffer and must not be retained across further writes.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// --------------------------------------------------------------------------
// Reader
// --------------------------------------------------------------------------

// Reader decodes a binary frame from a byte slice. All reads advance an
// internal cursor and fail with a DecodeError once the data runs out.
type Reader struct {
	buf []byte
	pos int
}

// NewReader creates a Reader over the given frame body
func NewReader(data []byte) *Reader {
	return &Reader{buf: data}
}

// Remaining returns the number of unread bytes
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// take returns the next n bytes and advances the cursor
func (r *Reader) take(n int, what string) ([]byte, error) {
	if n < 0 || r.Remaining() < n {
		return nil, common.NewDecodeError("truncated frame reading " + what)
	}
	bs := r.buf[r.pos : r.pos+n]
	r.pos += n
	return bs, nil
}

func (r *Reader) ReadUint8(what string) (uint8, error) {
	bs, err := r.take(1, what)
	if err != nil {
		return 0, err
	}
	return bs[0], nil
}

func (r *Reader) ReadInt8(what string) (int8, error) {
	b, err := r.ReadUint8(what)
	return int8(b), err
}

func (r *Reader) ReadInt16(what string) (int16, error) {
	bs, err := r.take(2, what)
	if err != nil {
		return 0, err
	}
	return int16(binary.BigEndian.Uint16(bs)), nil
}

func (r *Reader) ReadInt32(what string) (int32, error) {
	bs, err := r.take(4, what)
	if err != nil {
		return 0, err
	}
	return int32(binary.BigEndian.Uint32(bs)), nil
}

func (r *Reader) ReadInt64(what string) (int64, error) {
	bs, err := r.take(8, what)
	if err != nil {
		return 0, err
	}
	return int64(binary.BigEndian.Uint64(bs)), nil
}

func (r *Reader) ReadFloat64(what string) (float64, error) {
	v, err := r.ReadInt64(what)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(v)), nil
}

// ReadString reads a 32-bit length prefix followed by that many UTF-8 bytes
func (r *Reader) ReadString(what string) (string, error) {
	length, err := r.ReadInt32(what + " length")
	if err != nil {
		return "", err
	}
	if length < 0 {
		// -1 encodes a null string on the wire
		return "", nil
	}
	bs, err := r.take(int(length), what)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bs) {
		return "", common.NewDecodeError("invalid UTF-8 in " + what)
	}
	return string(bs), nil
}

// ReadVarbinary reads a 32-bit length prefix followed by that many raw bytes
func (r *Reader) ReadVarbinary(what string) ([]byte, error) {
	length, err := r.ReadInt32(what + " length")
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, nil
	}
	bs, err := r.take(int(length), what)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(bs))
	copy(out, bs)
	return out, nil
}

// ReadRaw reads exactly n bytes without a length prefix
func (r *Reader) ReadRaw(n int, what string) ([]byte, error) {
	return r.take(n, what)
}
