package core

import (
	"strings"

	"filetransfer/config"
	ferrors "filetransfer/internal/errors"
	"filetransfer/internal/host"
	"filetransfer/internal/metrics"
	"filetransfer/internal/service"
	"filetransfer/internal/session"
)

// origin tags every log line the node emits itself.
const origin = "filetransfer"

// Node is the application state of one simulated node.  All methods
// must be called from the host's event loop; a Node is not safe for
// concurrent use.
type Node struct {
	svc      host.Services
	machines service.Machines

	state  State
	client *session.Client
	server *session.Server
}

// Init creates a node bound to the host's services.  machines supplies
// the getter and file server implementations.
func Init(svc host.Services, machines service.Machines) *Node {
	n := &Node{machines: machines}
	return n.Init(svc)
}

// Init installs svc as the node's host services.  It may be called
// again at any time; the installed role is kept.
func (n *Node) Init(svc host.Services) *Node {
	n.svc = svc
	return n
}

// State returns the dispatcher state.
func (n *Node) State() State { return n.state }

// Client returns the installed client session, or nil.
func (n *Node) Client() *session.Client { return n.client }

// Server returns the installed server session, or nil.
func (n *Node) Server() *session.Server { return n.server }

// Stats returns the last server counters observed, or zero stats when
// no server is installed.
func (n *Node) Stats() service.Stats {
	if n.server == nil {
		return service.Stats{}
	}
	return n.server.Metrics.Stats()
}

// Snapshot returns the metrics of the installed role.
func (n *Node) Snapshot() metrics.Snapshot {
	switch {
	case n.server != nil:
		return n.server.Metrics.Snapshot()
	case n.client != nil:
		return n.client.Metrics.Snapshot()
	default:
		return metrics.Snapshot{}
	}
}

// New configures the node from args.  Failures are logged and also
// returned; the node is left empty except when a server was installed
// but failed to start, in which case it stays installed.
func (n *Node) New(args []string) error {
	n.logf(host.LevelDebug, "new called")

	if n.state != StateEmpty {
		err := ferrors.Wrapf(ferrors.ErrRoleActive, "new %s while %s", strings.Join(args, " "), n.state)
		n.logf(host.LevelCritical, "%v", err)
		return err
	}

	inv, err := config.Parse(args)
	if err != nil {
		n.logf(host.LevelDebug, "%v", err)
		n.logf(host.LevelCritical, "%s", config.Usage)
		return err
	}

	return n.install(inv)
}

// Activate routes sockd to the installed role.  sockd 0 means a
// scheduled wakeup fired.  With no role installed nothing happens.
func (n *Node) Activate(sockd int) {
	n.logf(host.LevelDebug, "activating socket %d", sockd)

	switch n.state {
	case StateClientActive:
		n.client.Activate(sockd)
	case StateServerActive:
		n.activateServer(sockd)
	}
}

// Free tears down the installed role.  It is safe to call repeatedly;
// with no role installed it does nothing and logs nothing.
func (n *Node) Free() {
	switch n.state {
	case StateClientActive:
		n.logf(host.LevelDebug, "free called")
		n.stopClient()
	case StateServerActive:
		n.logf(host.LevelDebug, "free called")
		n.stopServer()
	}
}

func (n *Node) transition(next State) error {
	if !allowedTransition(n.state, next) {
		return ferrors.Wrapf(ferrors.ErrInvalidTransition, "%s -> %s", n.state, next)
	}
	n.state = next
	return nil
}

func (n *Node) logf(level host.Level, format string, args ...interface{}) {
	if n.svc == nil {
		return
	}
	n.svc.Log(level, origin, format, args...)
}
