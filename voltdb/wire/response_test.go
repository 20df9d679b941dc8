package wire

import (
	"errors"
	"testing"

	"github.com/ties/voltdb-client-go/voltdb/common"
)

// buildEnvelope encodes a response envelope (everything after the handle)
func buildEnvelope(status ResponseStatus, statusString string) []byte {
	w := NewWriter()

	var fields byte
	if statusString != "" {
		fields |= fieldStatusString
	}
	w.WriteUint8(fields)
	w.WriteInt8(int8(status))
	if statusString != "" {
		w.WriteString(statusString)
	}
	w.WriteInt8(0)  // app status
	w.WriteInt32(3) // cluster round trip
	w.WriteInt16(0) // table count
	return w.Bytes()
}

// TestParseResponseSuccess tests decoding a plain success envelope
func TestParseResponseSuccess(t *testing.T) {
	info, err := ParseResponse(NewReader(buildEnvelope(StatusSuccess, "")), 17)
	if err != nil {
		t.Fatalf("Did not expect error but got: %v", err)
	}
	if info.Handle != 17 {
		t.Errorf("Handle mismatch: got %d", info.Handle)
	}
	if info.Status != StatusSuccess {
		t.Errorf("Status mismatch: got %s", info.Status)
	}
	if info.ClusterRoundTrip != 3 {
		t.Errorf("ClusterRoundTrip mismatch: got %d", info.ClusterRoundTrip)
	}
	if err := info.Err(); err != nil {
		t.Errorf("Success envelope must not convert to an error, got %v", err)
	}
}

// TestParseResponseFailure tests that a failure status carries the server
// message and converts to a ServerError
func TestParseResponseFailure(t *testing.T) {
	info, err := ParseResponse(NewReader(buildEnvelope(StatusGracefulFailure, "table not found")), 5)
	if err != nil {
		t.Fatalf("Did not expect error but got: %v", err)
	}
	if info.StatusString != "table not found" {
		t.Errorf("StatusString mismatch: got %q", info.StatusString)
	}

	convErr := info.Err()
	if convErr == nil {
		t.Fatalf("Expected error for failure status but got none")
	}
	var serverErr *common.ServerError
	if !errors.As(convErr, &serverErr) {
		t.Fatalf("Expected ServerError, got %T: %v", convErr, convErr)
	}
	if serverErr.Status != int8(StatusGracefulFailure) {
		t.Errorf("Status mismatch: got %d", serverErr.Status)
	}
	if serverErr.Message != "table not found" {
		t.Errorf("Message mismatch: got %q", serverErr.Message)
	}
}

// TestParseResponseTruncated tests that a truncated envelope is rejected
func TestParseResponseTruncated(t *testing.T) {
	full := buildEnvelope(StatusSuccess, "")
	for i := 0; i < len(full); i++ {
		if _, err := ParseResponse(NewReader(full[:i]), 1); err == nil {
			t.Errorf("Expected error for envelope truncated at %d bytes", i)
		}
	}
}
