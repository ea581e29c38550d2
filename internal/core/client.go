package core

import (
	"filetransfer/config"
	ferrors "filetransfer/internal/errors"
	"filetransfer/internal/host"
	"filetransfer/internal/service"
	"filetransfer/internal/session"
)

// startClient installs a getter and starts it for inv.  The session is
// installed before the getter starts so callbacks fired during start
// already see it.  A start error releases the getter and leaves the
// node empty.
func (n *Node) startClient(inv config.Invocation) error {
	g := n.machines.NewGetter()
	if g == nil {
		err := &ferrors.StartError{Role: string(config.RoleClient), Err: ferrors.ErrNoMachine}
		n.logf(host.LevelCritical, "%v", err)
		return err
	}

	if err := n.transition(StateClientActive); err != nil {
		n.logf(host.LevelCritical, "%v", err)
		return err
	}
	n.client = session.NewClient(g, inv)

	sockd, err := n.startGetter(g, inv)
	if err != nil {
		n.logf(host.LevelCritical, "filegetter error, not started: %v", err)
		n.stopClient()
		return &ferrors.StartError{Role: string(config.RoleClient), Err: err}
	}

	n.logf(host.LevelInfo, "filegetter started: %s", inv)
	if sockd >= 0 {
		n.client.Activate(sockd)
	}
	return nil
}

func (n *Node) startGetter(g service.Getter, inv config.Invocation) (int, error) {
	switch inv := inv.(type) {
	case *config.Single:
		return g.StartSingle(&service.SingleArgs{
			Server:    inv.Server,
			Proxy:     inv.Proxy,
			Downloads: inv.Downloads,
			Path:      inv.Path,
			Callbacks: n.callbacks(false),
		})
	case *config.Double:
		return g.StartDouble(&service.DoubleArgs{
			Server:    inv.Server,
			Proxy:     inv.Proxy,
			Path1:     inv.Path1,
			Path2:     inv.Path2,
			Path3:     inv.Path3,
			Pause:     inv.Pause,
			Callbacks: n.callbacks(true),
		})
	case *config.Multi:
		return g.StartMulti(&service.MultiArgs{
			SpecPath:      inv.SpecPath,
			Proxy:         inv.Proxy,
			ThinkTimePath: inv.ThinkTimePath,
			Runtime:       inv.Runtime,
			Callbacks:     n.callbacks(true),
		})
	default:
		return -1, ferrors.Errorf("not a client invocation: %T", inv)
	}
}

// wakeup delivers a fired sleep timer to cont as descriptor 0.  Timers
// that outlive the session that scheduled them are dropped.
func (n *Node) wakeup(scheduledBy *session.Client, cont service.Getter) {
	if n.state != StateClientActive || n.client != scheduledBy {
		n.logf(host.LevelDebug, "dropping wakeup for a released filegetter")
		return
	}
	n.logf(host.LevelDebug, "activating socket %d", service.TimerFired)
	n.client.Wake(cont)
}

func (n *Node) stopClient() {
	n.client.Close()
	n.client = nil
	if err := n.transition(StateEmpty); err != nil {
		n.logf(host.LevelCritical, "%v", err)
	}
}
