package core

import (
	"filetransfer/config"
	ferrors "filetransfer/internal/errors"
	"filetransfer/internal/host"
)

// install drives the Empty → ClientActive or Empty → ServerActive
// transition for inv.  This is the single dispatch point between the
// parsed invocation and the role that serves it.
func (n *Node) install(inv config.Invocation) error {
	if n.machines == nil {
		err := &ferrors.StartError{Role: string(inv.Role()), Err: ferrors.ErrNoMachine}
		n.logf(host.LevelCritical, "%v", err)
		return err
	}

	switch inv := inv.(type) {
	case *config.Server:
		return n.startServer(inv)
	case *config.Single, *config.Double, *config.Multi:
		return n.startClient(inv)
	default:
		return ferrors.Errorf("unhandled invocation %T", inv)
	}
}
