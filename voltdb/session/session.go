package session

import (
	"math"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/ties/voltdb-client-go/voltdb/common"
	"github.com/ties/voltdb-client-go/voltdb/wire"
)

var Logger = logger.GetLogger("session")

// pingHandle is the reserved handle for liveness probes. It is never
// registered in the pending-request table and the receive loop discards
// the matching response.
const pingHandle int64 = math.MaxInt64

// Session metrics, shared across sessions of one process
var (
	requestsIssued     = metrics.NewCounter("voltdb_requests_issued_total")
	responsesDelivered = metrics.NewCounter("voltdb_responses_delivered_total")
	framesDropped      = metrics.NewCounter("voltdb_frames_dropped_total")
	receiveErrors      = metrics.NewCounter("voltdb_receive_errors_total")
	pingsSent          = metrics.NewCounter("voltdb_pings_sent_total")
)

// Session is an authenticated connection to a single server node. The
// socket is either fully usable or absent, never half initialized: Connect
// returns a Session only after the handshake succeeded and the receive
// loop is running.
type Session struct {
	connMu sync.Mutex // guards conn for writes and teardown
	conn   net.Conn   // nil once the session is shut down

	info    ConnInfo
	pending *pendingTable
	stopped atomic.Bool
	seq     atomic.Int64 // last issued handle, next is seq+1
}

// Connect dials the configured endpoint, performs the login handshake and
// starts the receive loop. Every failure aborts construction, nothing is
// left running.
func Connect(config common.ClientConfig) (*Session, error) {
	addr := config.Target.Addr()

	var conn net.Conn
	var err error
	if config.ConnectTimeoutSecond > 0 {
		timeout := time.Duration(config.ConnectTimeoutSecond) * time.Second
		conn, err = net.DialTimeout("tcp", addr, timeout)
	} else {
		conn, err = net.Dial("tcp", addr)
	}
	if err != nil {
		return nil, common.NewConnectionError("dial "+addr, err)
	}

	if err := upgradeConnection(conn, config.TCP); err != nil {
		conn.Close()
		return nil, common.NewConnectionError("configure socket", err)
	}

	info, err := login(conn, config.Username, config.Password)
	if err != nil {
		conn.Close()
		return nil, err
	}

	s := &Session{
		conn:    conn,
		info:    *info,
		pending: newPendingTable(),
	}

	Logger.Infof("connected to %s: %s", addr, info)

	go s.receiveLoop(conn)
	return s, nil
}

// upgradeConnection applies the TCP socket settings to a fresh connection
func upgradeConnection(conn net.Conn, conf common.TCPConf) error {
	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		return nil
	}

	if err := tcpConn.SetNoDelay(conf.TCPNoDelay); err != nil {
		return err
	}

	if conf.WriteBufferSize > 0 {
		if err := tcpConn.SetWriteBuffer(conf.WriteBufferSize); err != nil {
			return err
		}
	}

	if conf.ReadBufferSize > 0 {
		if err := tcpConn.SetReadBuffer(conf.ReadBufferSize); err != nil {
			return err
		}
	}

	if conf.TCPKeepAliveSec > 0 {
		if err := tcpConn.SetKeepAlive(true); err != nil {
			return err
		}
		if err := tcpConn.SetKeepAlivePeriod(time.Duration(conf.TCPKeepAliveSec) * time.Second); err != nil {
			return err
		}
	}

	return nil
}

// Info returns the connection snapshot captured during the handshake
func (s *Session) Info() ConnInfo {
	return s.info
}

// nextHandle returns a handle strictly greater than every previous one for
// this session, starting at 1
func (s *Session) nextHandle() int64 {
	return s.seq.Add(1)
}

// Call invokes a stored procedure asynchronously. It returns the receiving
// end of a one-shot channel that the receive loop delivers the result on.
//
// The pending request is registered before the frame is written so a
// response racing with registration can never be missed. If the write
// fails the entry is removed again and the error returned synchronously.
func (s *Session) Call(procedure string, params ...wire.Value) (<-chan Result, error) {
	handle := s.nextHandle()
	frame := wire.EncodeInvocation(handle, procedure, params...)

	req := s.pending.register(handle, int32(len(frame)))

	if err := s.writeFrame(frame); err != nil {
		s.pending.remove(handle)
		return nil, err
	}

	requestsIssued.Inc()
	return req.ch, nil
}

// ListProcedures queries the catalog for all stored procedures
func (s *Session) ListProcedures() (<-chan Result, error) {
	return s.Call("@SystemCatalog", wire.String("PROCEDURES"))
}

// Query runs an ad-hoc SQL statement via the @AdHoc system procedure
func (s *Session) Query(sql string) (<-chan Result, error) {
	return s.Call("@AdHoc", wire.String(sql))
}

// UploadJar updates the stored procedure classes on the server
func (s *Session) UploadJar(jar []byte) (<-chan Result, error) {
	return s.Call("@UpdateClasses", wire.Bytes(jar), wire.String(""))
}

// Ping writes a liveness probe addressed with the reserved handle. No
// pending request is registered, the response is discarded by the receive
// loop, so a nil return only means the write succeeded.
func (s *Session) Ping() error {
	frame := wire.EncodeInvocation(pingHandle, "@Ping")
	if err := s.writeFrame(frame); err != nil {
		return err
	}
	pingsSent.Inc()
	return nil
}

// writeFrame writes one frame under the write lock. Serializing writers
// keeps concurrent calls from interleaving partial frames.
func (s *Session) writeFrame(frame []byte) error {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	if s.conn == nil {
		return common.ErrConnectionNotAvailable
	}
	if _, err := s.conn.Write(frame); err != nil {
		return common.NewConnectionError("write frame", err)
	}
	return nil
}

// PendingCount returns the number of calls still waiting for a response
func (s *Session) PendingCount() int {
	return s.pending.size()
}

// Shutdown stops the receive loop, closes the socket and fails every
// outstanding request with a connection error. It is idempotent, repeated
// calls are no-ops.
func (s *Session) Shutdown() error {
	if !s.stopped.CompareAndSwap(false, true) {
		return nil
	}

	s.connMu.Lock()
	conn := s.conn
	s.conn = nil
	s.connMu.Unlock()

	var err error
	if conn != nil {
		// Closing the socket forces the blocked read in the receive
		// loop to fail, which it suppresses because the stop flag is
		// already set.
		err = conn.Close()
	}

	// Outstanding requests are completed with an explicit error so
	// callers can tell shutdown apart from a response that never came.
	for _, req := range s.pending.drain() {
		req.deliver(Result{Err: common.NewConnectionError("shutdown", common.ErrConnectionNotAvailable)})
	}

	Logger.Infof("session to host %d shut down", s.info.HostID)
	return err
}

// BlockForResult blocks until the call behind the receiving end completes
// and converts a server-reported failure into an error. The raw decoded
// table always travels the channel, error interpretation happens here and
// not in the receive loop.
func BlockForResult(ch <-chan Result) (*wire.Table, error) {
	res, ok := <-ch
	if !ok {
		return nil, common.ErrConnectionNotAvailable
	}
	if res.Err != nil {
		return nil, res.Err
	}
	if err := res.Table.HasError(); err != nil {
		return nil, err
	}
	return res.Table, nil
}
