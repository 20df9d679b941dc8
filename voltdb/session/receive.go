package session

import (
	"encoding/binary"
	"io"
	"net"

	"github.com/ties/voltdb-client-go/voltdb/wire"
)

// receiveLoop reads response frames off the socket until the stop flag is
// set. It runs as the single background goroutine of the session, so frames
// are dispatched strictly in arrival order.
//
// A read or decode failure is not fatal to the loop: the cycle is logged
// and the next one starts. Once the stop flag is set, errors are expected
// (Shutdown closes the socket under us) and suppressed.
func (s *Session) receiveLoop(conn net.Conn) {
	for {
		if s.stopped.Load() {
			return
		}
		if err := s.receiveOne(conn); err != nil {
			if s.stopped.Load() {
				return
			}
			receiveErrors.Inc()
			Logger.Errorf("receive loop: %v", err)
		}
	}
}

// receiveOne reads and dispatches a single response frame
func (s *Session) receiveOne(conn net.Conn) error {
	var lenBuf [4]byte
	if _, err := io.ReadFull(conn, lenBuf[:]); err != nil {
		return err
	}
	length := binary.BigEndian.Uint32(lenBuf[:])
	if length == 0 {
		return nil
	}

	body := make([]byte, length)
	if _, err := io.ReadFull(conn, body); err != nil {
		return err
	}

	r := wire.NewReader(body)
	if _, err := r.ReadUint8("reserved byte"); err != nil {
		return err
	}
	handle, err := r.ReadInt64("handle")
	if err != nil {
		return err
	}

	// Liveness responses are never registered and never delivered
	if handle == pingHandle {
		return nil
	}

	req, ok := s.pending.remove(handle)
	if !ok {
		// Unsolicited, late or duplicate response. Dropping it keeps
		// the loop alive and every other pending request untouched.
		framesDropped.Inc()
		Logger.Warningf("dropping response for unknown handle %d", handle)
		return nil
	}

	// The entry is already claimed, so decode failures are delivered to
	// the waiting caller instead of being swallowed here.
	info, err := wire.ParseResponse(r, handle)
	if err != nil {
		req.deliver(Result{Err: err})
		return err
	}
	table, err := wire.ParseTable(r, info)
	if err != nil {
		req.deliver(Result{Err: err})
		return err
	}

	responsesDelivered.Inc()
	req.deliver(Result{Table: table})
	return nil
}
