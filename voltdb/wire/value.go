package wire

import (
	"time"
)

// Type is the wire type ID of a column or parameter.
type Type int8

const (
	TypeNull      Type = 1
	TypeTinyInt   Type = 3
	TypeSmallInt  Type = 4
	TypeInteger   Type = 5
	TypeBigInt    Type = 6
	TypeFloat     Type = 8
	TypeString    Type = 9
	TypeTimestamp Type = 11
	TypeVarbinary Type = 25
)

// String returns the string representation of a Type
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeTinyInt:
		return "tinyint"
	case TypeSmallInt:
		return "smallint"
	case TypeInteger:
		return "integer"
	case TypeBigInt:
		return "bigint"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeTimestamp:
		return "timestamp"
	case TypeVarbinary:
		return "varbinary"
	default:
		return "unknown"
	}
}

// --------------------------------------------------------------------------
// Typed parameters
// --------------------------------------------------------------------------

// Value is a typed procedure parameter. Each value writes its one-byte type
// tag followed by its payload.
type Value interface {
	Type() Type
	encode(w *Writer)
}

type nullValue struct{}

func (nullValue) Type() Type       { return TypeNull }
func (nullValue) encode(w *Writer) { w.WriteInt8(int8(TypeNull)) }

type tinyIntValue int8

func (v tinyIntValue) Type() Type { return TypeTinyInt }
func (v tinyIntValue) encode(w *Writer) {
	w.WriteInt8(int8(TypeTinyInt))
	w.WriteInt8(int8(v))
}

type smallIntValue int16

func (v smallIntValue) Type() Type { return TypeSmallInt }
func (v smallIntValue) encode(w *Writer) {
	w.WriteInt8(int8(TypeSmallInt))
	w.WriteInt16(int16(v))
}

type integerValue int32

func (v integerValue) Type() Type { return TypeInteger }
func (v integerValue) encode(w *Writer) {
	w.WriteInt8(int8(TypeInteger))
	w.WriteInt32(int32(v))
}

type bigIntValue int64

func (v bigIntValue) Type() Type { return TypeBigInt }
func (v bigIntValue) encode(w *Writer) {
	w.WriteInt8(int8(TypeBigInt))
	w.WriteInt64(int64(v))
}

type floatValue float64

func (v floatValue) Type() Type { return TypeFloat }
func (v floatValue) encode(w *Writer) {
	w.WriteInt8(int8(TypeFloat))
	w.WriteFloat64(float64(v))
}

type stringValue string

func (v stringValue) Type() Type { return TypeString }
func (v stringValue) encode(w *Writer) {
	w.WriteInt8(int8(TypeString))
	w.WriteString(string(v))
}

type timestampValue time.Time

func (v timestampValue) Type() Type { return TypeTimestamp }
func (v timestampValue) encode(w *Writer) {
	w.WriteInt8(int8(TypeTimestamp))
	w.WriteInt64(time.Time(v).UnixMicro())
}

type varbinaryValue []byte

func (v varbinaryValue) Type() Type { return TypeVarbinary }
func (v varbinaryValue) encode(w *Writer) {
	w.WriteInt8(int8(TypeVarbinary))
	w.WriteVarbinary(v)
}

// --------------------------------------------------------------------------
// Value constructors
// --------------------------------------------------------------------------

// Null creates a null parameter
func Null() Value { return nullValue{} }

// Int8 creates a tinyint parameter
func Int8(v int8) Value { return tinyIntValue(v) }

// Int16 creates a smallint parameter
func Int16(v int16) Value { return smallIntValue(v) }

// Int32 creates an integer parameter
func Int32(v int32) Value { return integerValue(v) }

// Int64 creates a bigint parameter
func Int64(v int64) Value { return bigIntValue(v) }

// Float64 creates a float parameter
func Float64(v float64) Value { return floatValue(v) }

// String creates a string parameter
func String(v string) Value { return stringValue(v) }

// Timestamp creates a timestamp parameter with microsecond precision
func Timestamp(v time.Time) Value { return timestampValue(v) }

// Bytes creates a varbinary parameter
func Bytes(v []byte) Value { return varbinaryValue(v) }
