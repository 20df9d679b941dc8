package session

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"net"

	"github.com/ties/voltdb-client-go/voltdb/common"
	"github.com/ties/voltdb-client-go/voltdb/wire"
)

const (
	// serviceName is the service identifier sent in the login frame
	serviceName = "database"

	// loginFormat and loginBitfield are fixed protocol bytes of the
	// login frame
	loginFormat   byte = 1
	loginBitfield byte = 1
)

// ConnInfo is the immutable snapshot captured during the handshake. The
// leader address is recorded as reported by the server but the driver does
// not reroute traffic to it.
type ConnInfo struct {
	HostID       int32
	ConnectionID int64
	LeaderAddr   net.IP
	Build        string
}

// String returns a short description of the connection
func (i ConnInfo) String() string {
	return fmt.Sprintf("host=%d connection=%d leader=%s build=%q",
		i.HostID, i.ConnectionID, i.LeaderAddr, i.Build)
}

// encodeLoginFrame builds the length-prefixed login frame:
//
//	u32 length | u8 format | u8 bitfield | string service |
//	string username | bytes[32] sha256(password)
//
// A missing password is hashed as the empty byte sequence, the server
// always expects a digest.
func encodeLoginFrame(username, password string) []byte {
	w := wire.NewWriter()
	w.WriteUint32(0) // length placeholder
	w.WriteUint8(loginFormat)
	w.WriteUint8(loginBitfield)
	w.WriteString(serviceName)
	w.WriteString(username)

	digest := sha256.Sum256([]byte(password))
	w.WriteRaw(digest[:])

	w.SetUint32At(0, uint32(w.Len()-4))
	return w.Bytes()
}

// login performs the handshake synchronously on the calling goroutine. No
// receive loop exists yet at this point, the single response frame is read
// blocking off the socket.
func login(conn net.Conn, username, password string) (*ConnInfo, error) {
	frame := encodeLoginFrame(username, password)
	if _, err := conn.Write(frame); err != nil {
		return nil, common.NewConnectionError("write login frame", err)
	}

	var lenBuf [4]byte
	if _, err := io.ReadFull(conn, lenBuf[:]); err != nil {
		return nil, common.NewConnectionError("read login response length", err)
	}
	length := binary.BigEndian.Uint32(lenBuf[:])

	body := make([]byte, length)
	if _, err := io.ReadFull(conn, body); err != nil {
		return nil, common.NewConnectionError("read login response", err)
	}

	return parseLoginResponse(wire.NewReader(body))
}

// parseLoginResponse decodes the handshake response body:
//
//	u8 version | u8 authStatus | i32 hostId | i64 connectionId |
//	i64 reserved | i32 leaderAddress | string buildString
func parseLoginResponse(r *wire.Reader) (*ConnInfo, error) {
	if _, err := r.ReadUint8("login version"); err != nil {
		return nil, err
	}

	auth, err := r.ReadUint8("auth status")
	if err != nil {
		return nil, err
	}
	if auth != 0 {
		return nil, common.ErrAuthFailed
	}

	info := &ConnInfo{}
	if info.HostID, err = r.ReadInt32("host id"); err != nil {
		return nil, err
	}
	if info.ConnectionID, err = r.ReadInt64("connection id"); err != nil {
		return nil, err
	}
	if _, err = r.ReadInt64("reserved field"); err != nil {
		return nil, err
	}

	// The leader address is a big-endian 32-bit IPv4 address
	leader, err := r.ReadInt32("leader address")
	if err != nil {
		return nil, err
	}
	var ip [4]byte
	binary.BigEndian.PutUint32(ip[:], uint32(leader))
	info.LeaderAddr = net.IPv4(ip[0], ip[1], ip[2], ip[3])

	if info.Build, err = r.ReadString("build string"); err != nil {
		return nil, err
	}

	return info, nil
}
