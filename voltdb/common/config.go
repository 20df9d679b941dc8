package common

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Target address
// --------------------------------------------------------------------------

// IPPort identifies a single server endpoint.
type IPPort struct {
	Host string
	Port uint16
}

// NewIPPort creates an IPPort from a host and port
func NewIPPort(host string, port uint16) IPPort {
	return IPPort{Host: host, Port: port}
}

// ParseIPPort parses a "host:port" string into an IPPort
func ParseIPPort(addr string) (IPPort, error) {
	idx := strings.LastIndex(addr, ":")
	if idx < 0 {
		return IPPort{}, fmt.Errorf("invalid address %q: expected host:port", addr)
	}
	port, err := strconv.ParseUint(addr[idx+1:], 10, 16)
	if err != nil {
		return IPPort{}, fmt.Errorf("invalid port in address %q: %w", addr, err)
	}
	return IPPort{Host: addr[:idx], Port: uint16(port)}, nil
}

// Addr returns the endpoint in "host:port" form
func (p IPPort) Addr() string {
	return fmt.Sprintf("%s:%d", p.Host, p.Port)
}

// --------------------------------------------------------------------------
// TCP socket tuning
// --------------------------------------------------------------------------

// TCPConf holds the TCP specific socket settings applied after dialing.
// Zero values leave the kernel defaults untouched.
type TCPConf struct {
	TCPNoDelay      bool // disable Nagle's algorithm
	TCPKeepAliveSec int  // keep-alive interval in seconds, 0 = disabled
	WriteBufferSize int  // socket write buffer in bytes, 0 = kernel default
	ReadBufferSize  int  // socket read buffer in bytes, 0 = kernel default
}

// --------------------------------------------------------------------------
// Client configuration struct
// --------------------------------------------------------------------------

// ClientConfig holds all configuration parameters for one session. The
// config is consumed once during session.Connect and not retained beyond
// the handshake.
type ClientConfig struct {
	// Target server endpoint
	Target IPPort

	// Optional credentials. An unset password is hashed as an empty byte
	// sequence during the handshake, it does not disable authentication.
	Username string
	Password string

	// Dial timeout in seconds, 0 = no timeout
	ConnectTimeoutSecond int

	// TCP socket settings
	TCP TCPConf

	// Logging configuration
	LogLevel string
}

// String returns a formatted string representation of the configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	addSection("Client Configuration")
	addField("Target", c.Target.Addr())
	if c.Username != "" {
		addField("Username", c.Username)
	} else {
		addField("Username", "(none)")
	}
	addField("Connect Timeout", fmt.Sprintf("%d sec", c.ConnectTimeoutSecond))

	addSection("TCP")
	addField("No Delay", fmt.Sprintf("%t", c.TCP.TCPNoDelay))
	addField("Keep Alive", fmt.Sprintf("%d sec", c.TCP.TCPKeepAliveSec))
	addField("Write Buffer", fmt.Sprintf("%d bytes", c.TCP.WriteBufferSize))
	addField("Read Buffer", fmt.Sprintf("%d bytes", c.TCP.ReadBufferSize))

	addSection("Logging")
	addField("Log Level", c.LogLevel)

	return sb.String()
}
