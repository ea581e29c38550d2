package core

import (
	"filetransfer/config"
	ferrors "filetransfer/internal/errors"
	"filetransfer/internal/host"
	"filetransfer/internal/session"
)

// startServer installs a file server and tells it to listen.  A start
// failure is logged and returned, but the server stays installed: the
// node keeps reporting it until Free.
func (n *Node) startServer(inv *config.Server) error {
	fs := n.machines.NewFileServer()
	if fs == nil {
		err := &ferrors.StartError{Role: string(config.RoleServer), Err: ferrors.ErrNoMachine}
		n.logf(host.LevelCritical, "%v", err)
		return err
	}

	if err := n.transition(StateServerActive); err != nil {
		n.logf(host.LevelCritical, "%v", err)
		return err
	}
	n.server = session.NewServer(fs, inv)

	n.logf(host.LevelInfo, "serving '%s' on port %d", inv.DocRoot, inv.ListenPort)
	code := n.server.Start()
	if !code.OK() {
		n.logf(host.LevelCritical, "fileserver error, not started! (%s)", code)
		return &ferrors.StartError{Role: string(config.RoleServer), Code: code.String()}
	}

	n.logf(host.LevelMessage, "fileserver running on at %s", inv.Addr())
	return nil
}

func (n *Node) activateServer(sockd int) {
	code, stats, regressed := n.server.Activate(sockd)
	if regressed {
		n.logf(host.LevelWarning, "fileserver counters went backwards; keeping previous values")
	}
	n.logf(host.LevelDebug,
		"fileserver activation result: %s (%d bytes in, %d bytes out, %d replies)",
		code, stats.BytesReceived, stats.BytesSent, stats.RepliesSent)
}

func (n *Node) stopServer() {
	stats := n.server.Final()
	n.logf(host.LevelMessage,
		"fileserver stats: %d bytes in, %d bytes out, %d replies",
		stats.BytesReceived, stats.BytesSent, stats.RepliesSent)

	n.logf(host.LevelInfo, "shutting down fileserver")
	if code := n.server.Close(); !code.OK() {
		n.logf(host.LevelWarning, "fileserver shutdown: %s", code)
	}
	n.server = nil
	if err := n.transition(StateEmpty); err != nil {
		n.logf(host.LevelCritical, "%v", err)
	}
}
