package session

import (
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/ties/voltdb-client-go/voltdb/wire"
)

// Result is what a caller receives for one issued call: either a decoded
// table or the error that prevented its delivery. A server-side application
// failure is carried inside the table and only converted to an error by
// BlockForResult.
type Result struct {
	Table *wire.Table
	Err   error
}

// pendingRequest is the bookkeeping record for one outstanding call
type pendingRequest struct {
	handle   int64
	query    bool
	sync     bool
	numBytes int32
	ch       chan Result
}

// deliver sends the result and closes the channel. Each entry is removed
// from the table exactly once before delivery, so this runs at most once
// per request.
func (p *pendingRequest) deliver(res Result) {
	p.ch <- res
	close(p.ch)
}

// pendingTable maps outstanding handles to their delivery channels. It is
// written by caller goroutines (register) and by the receive loop (remove),
// so all mutation goes through the concurrent map.
type pendingTable struct {
	requests *xsync.MapOf[int64, *pendingRequest]
}

func newPendingTable() *pendingTable {
	return &pendingTable{requests: xsync.NewMapOf[int64, *pendingRequest]()}
}

// register creates the entry for a new call. The channel has capacity one
// so delivery never blocks the receive loop, even if the caller is gone.
func (t *pendingTable) register(handle int64, numBytes int32) *pendingRequest {
	req := &pendingRequest{
		handle:   handle,
		query:    true,
		sync:     true,
		numBytes: numBytes,
		ch:       make(chan Result, 1),
	}
	t.requests.Store(handle, req)
	return req
}

// remove atomically claims the entry for a handle. The second return is
// false for unknown, late or duplicate handles.
func (t *pendingTable) remove(handle int64) (*pendingRequest, bool) {
	return t.requests.LoadAndDelete(handle)
}

// drain atomically removes and returns all outstanding entries
func (t *pendingTable) drain() []*pendingRequest {
	var out []*pendingRequest
	t.requests.Range(func(handle int64, _ *pendingRequest) bool {
		if req, ok := t.requests.LoadAndDelete(handle); ok {
			out = append(out, req)
		}
		return true
	})
	return out
}

// size returns the number of outstanding requests
func (t *pendingTable) size() int {
	return t.requests.Size()
}
