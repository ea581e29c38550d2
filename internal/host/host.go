// Package host describes the services a simulation host offers to a
// node.  The host owns the clock, the sockets and the event loop; a node
// only ever borrows these services and never closes them.
package host

import (
	"fmt"
	"time"
)

// Level is the host's log severity vocabulary.
type Level int

const (
	LevelCritical Level = iota
	LevelWarning
	LevelMessage
	LevelInfo
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelCritical:
		return "critical"
	case LevelWarning:
		return "warning"
	case LevelMessage:
		return "message"
	case LevelInfo:
		return "info"
	case LevelDebug:
		return "debug"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}

// Services is the capability set a host hands to a node at init time.
type Services interface {
	// Log emits a message tagged with the origin of the call.
	Log(level Level, origin, format string, args ...interface{})

	// ResolveHostname returns the address of name, or AddrNone when the
	// host cannot resolve it.
	ResolveHostname(name string) InAddr

	// ScheduleWakeup registers a one-shot timer.  wake runs on the
	// host's event loop once delay of simulated time has elapsed.  It
	// must not block.
	ScheduleWakeup(wake func(), delay time.Duration)
}
