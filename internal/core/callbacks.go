package core

import (
	"time"

	"filetransfer/internal/host"
	"filetransfer/internal/service"
	"filetransfer/util"
)

// getterOrigin tags log lines that come from the getter.
const getterOrigin = "filegetter"

// getterLevels maps the getter's severities onto the host's.
var getterLevels = map[service.LogLevel]host.Level{
	service.LogCritical: host.LevelCritical,
	service.LogWarning:  host.LevelWarning,
	service.LogNotice:   host.LevelMessage,
	service.LogInfo:     host.LevelInfo,
	service.LogDebug:    host.LevelDebug,
}

// callbacks returns the adapter functions handed to a getter at start.
// Single sessions never sleep and get no Sleep callback.
func (n *Node) callbacks(withSleep bool) service.Callbacks {
	cb := service.Callbacks{
		Log:     n.getterLog,
		Resolve: n.resolve,
	}
	if withSleep {
		cb.Sleep = n.sleep
	}
	return cb
}

func (n *Node) getterLog(level service.LogLevel, message string) {
	hl, ok := getterLevels[level]
	if !ok || n.svc == nil {
		return
	}
	n.svc.Log(hl, getterOrigin, "%s", message)
}

// resolve answers the getter's hostname lookups.  "none" and
// "localhost" never reach the host resolver.
func (n *Node) resolve(hostname string) host.InAddr {
	switch {
	case util.IsNone(hostname):
		return host.AddrNone
	case util.IsLocalhost(hostname):
		return host.AddrLoopback
	case n.svc == nil:
		return host.AddrNone
	default:
		return n.svc.ResolveHostname(hostname)
	}
}

// sleep registers a wakeup instead of blocking.  When it fires the node
// re-enters cont with descriptor 0, provided the session that slept is
// still installed.
func (n *Node) sleep(cont service.Getter, seconds uint) {
	if n.svc == nil {
		return
	}
	s := n.client
	n.svc.ScheduleWakeup(func() { n.wakeup(s, cont) }, time.Duration(seconds)*time.Second)
}
