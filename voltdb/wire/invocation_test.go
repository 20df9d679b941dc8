package wire

import (
	"testing"
	"time"
)

// TestEncodeInvocationLayout verifies the byte layout of an invocation frame
func TestEncodeInvocationLayout(t *testing.T) {
	frame := EncodeInvocation(42, "@AdHoc", String("SELECT 1"))

	r := NewReader(frame)

	length, err := r.ReadInt32("length")
	if err != nil {
		t.Fatalf("Failed to read length: %v", err)
	}
	if int(length) != len(frame)-4 {
		t.Errorf("Length prefix %d does not match frame size %d", length, len(frame)-4)
	}

	version, err := r.ReadInt8("version")
	if err != nil {
		t.Fatalf("Failed to read version: %v", err)
	}
	if version != 0 {
		t.Errorf("Expected version 0, got %d", version)
	}

	proc, err := r.ReadString("procedure")
	if err != nil {
		t.Fatalf("Failed to read procedure: %v", err)
	}
	if proc != "@AdHoc" {
		t.Errorf("Expected procedure @AdHoc, got %q", proc)
	}

	handle, err := r.ReadInt64("handle")
	if err != nil {
		t.Fatalf("Failed to read handle: %v", err)
	}
	if handle != 42 {
		t.Errorf("Expected handle 42, got %d", handle)
	}

	paramCount, err := r.ReadInt16("param count")
	if err != nil {
		t.Fatalf("Failed to read param count: %v", err)
	}
	if paramCount != 1 {
		t.Errorf("Expected 1 param, got %d", paramCount)
	}

	paramType, err := r.ReadInt8("param type")
	if err != nil {
		t.Fatalf("Failed to read param type: %v", err)
	}
	if Type(paramType) != TypeString {
		t.Errorf("Expected string param, got type %d", paramType)
	}

	sql, err := r.ReadString("param")
	if err != nil {
		t.Fatalf("Failed to read param: %v", err)
	}
	if sql != "SELECT 1" {
		t.Errorf("Expected param SELECT 1, got %q", sql)
	}

	if r.Remaining() != 0 {
		t.Errorf("Expected no trailing bytes, got %d", r.Remaining())
	}
}

// TestEncodeParameters verifies the encoding of each parameter type
func TestEncodeParameters(t *testing.T) {
	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name  string
		param Value
		check func(t *testing.T, r *Reader)
	}{
		{
			name:  "Null",
			param: Null(),
			check: func(t *testing.T, r *Reader) {},
		},
		{
			name:  "TinyInt",
			param: Int8(-7),
			check: func(t *testing.T, r *Reader) {
				if v, _ := r.ReadInt8("v"); v != -7 {
					t.Errorf("Expected -7, got %d", v)
				}
			},
		},
		{
			name:  "SmallInt",
			param: Int16(300),
			check: func(t *testing.T, r *Reader) {
				if v, _ := r.ReadInt16("v"); v != 300 {
					t.Errorf("Expected 300, got %d", v)
				}
			},
		},
		{
			name:  "Integer",
			param: Int32(1 << 20),
			check: func(t *testing.T, r *Reader) {
				if v, _ := r.ReadInt32("v"); v != 1<<20 {
					t.Errorf("Expected %d, got %d", 1<<20, v)
				}
			},
		},
		{
			name:  "BigInt",
			param: Int64(1 << 40),
			check: func(t *testing.T, r *Reader) {
				if v, _ := r.ReadInt64("v"); v != 1<<40 {
					t.Errorf("Expected %d, got %d", int64(1)<<40, v)
				}
			},
		},
		{
			name:  "Float",
			param: Float64(2.5),
			check: func(t *testing.T, r *Reader) {
				if v, _ := r.ReadFloat64("v"); v != 2.5 {
					t.Errorf("Expected 2.5, got %f", v)
				}
			},
		},
		{
			name:  "Timestamp",
			param: Timestamp(ts),
			check: func(t *testing.T, r *Reader) {
				if v, _ := r.ReadInt64("v"); v != ts.UnixMicro() {
					t.Errorf("Expected %d, got %d", ts.UnixMicro(), v)
				}
			},
		},
		{
			name:  "Varbinary",
			param: Bytes([]byte{1, 2, 3}),
			check: func(t *testing.T, r *Reader) {
				v, _ := r.ReadVarbinary("v")
				if len(v) != 3 || v[2] != 3 {
					t.Errorf("Expected [1 2 3], got %v", v)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWriter()
			tc.param.encode(w)

			r := NewReader(w.Bytes())
			tag, err := r.ReadInt8("type tag")
			if err != nil {
				t.Fatalf("Failed to read type tag: %v", err)
			}
			if Type(tag) != tc.param.Type() {
				t.Errorf("Type tag mismatch: expected %s, got %d", tc.param.Type(), tag)
			}
			tc.check(t, r)
			if r.Remaining() != 0 {
				t.Errorf("Expected no trailing bytes, got %d", r.Remaining())
			}
		})
	}
}
