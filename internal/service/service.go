// Package service defines the contracts of the two external state
// machines a node drives: the file getter (download client) and the
// file server.  Their byte-level protocol handling lives outside this
// module; implementations are supplied by the host through Machines.
//
// Both machines are re-entered on every activation rather than
// resumed: Activate is called with a ready socket descriptor, or with
// TimerFired when a scheduled sleep has elapsed.
package service

import (
	"fmt"

	"filetransfer/internal/host"
)

// TimerFired is the pseudo-descriptor delivered when a wakeup fires.
const TimerFired = 0

// Machines creates fresh machine handles.  The node owns every handle
// it creates until Free.
type Machines interface {
	NewGetter() Getter
	NewFileServer() FileServer
}

// ── Getter ───────────────────────────────────────────────────────────

// Getter is the download client machine.
type Getter interface {
	// StartSingle, StartDouble and StartMulti begin a download session
	// and return the first socket descriptor to activate, or a negative
	// value when the machine has nothing to activate yet.
	StartSingle(args *SingleArgs) (int, error)
	StartDouble(args *DoubleArgs) (int, error)
	StartMulti(args *MultiArgs) (int, error)

	// Activate re-enters the machine for descriptor sockd.
	Activate(sockd int)

	// Stop aborts any in-flight transfer and releases machine resources.
	Stop()
}

// LogLevel is the getter's own severity enumeration.
type LogLevel int

const (
	LogCritical LogLevel = iota
	LogWarning
	LogNotice
	LogInfo
	LogDebug
)

func (l LogLevel) String() string {
	switch l {
	case LogCritical:
		return "critical"
	case LogWarning:
		return "warning"
	case LogNotice:
		return "notice"
	case LogInfo:
		return "info"
	case LogDebug:
		return "debug"
	default:
		return fmt.Sprintf("loglevel(%d)", int(l))
	}
}

// Callbacks are handed to the getter at start time.  Sleep is nil for
// single-download sessions, which never pause.
type Callbacks struct {
	Log     func(level LogLevel, message string)
	Resolve func(hostname string) host.InAddr
	Sleep   func(cont Getter, seconds uint)
}

// Endpoint is a host/port pair exactly as given on the command line.
type Endpoint struct {
	Host string
	Port string
}

// SingleArgs starts a session downloading one file N times.
type SingleArgs struct {
	Server    Endpoint
	Proxy     *Endpoint // nil when no SOCKS proxy is used
	Downloads string
	Path      string
	Callbacks
}

// DoubleArgs starts a session downloading up to three files with a
// pause between rounds.
type DoubleArgs struct {
	Server Endpoint
	Proxy  *Endpoint
	Path1  string
	Path2  string
	Path3  string // empty when absent
	Pause  string
	Callbacks
}

// MultiArgs starts a session driven by a download specification file.
type MultiArgs struct {
	SpecPath      string
	Proxy         *Endpoint
	ThinkTimePath string // empty when think times are disabled
	Runtime       string // "-1" runs until stopped
	Callbacks
}

// ── FileServer ───────────────────────────────────────────────────────

// FileServer is the file-serving machine.
type FileServer interface {
	// Start binds and listens.  It reports failure through the code
	// rather than an error so the node can log it verbatim.
	Start(addr host.InAddr, port uint16, docRoot string, backlog int) Code

	// Activate re-enters the server for descriptor sockd.
	Activate(sockd int) Code

	// Stats returns the running counters.  They never decrease for the
	// lifetime of the server.
	Stats() Stats

	// Shutdown closes every socket the server owns.
	Shutdown() Code
}

// Stats are the file server's cumulative counters.
type Stats struct {
	BytesReceived uint64
	BytesSent     uint64
	RepliesSent   uint64
}
