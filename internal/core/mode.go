// Package core is the node itself.  It receives the host's entry
// points (New, Activate, Free), turns the argument vector into an
// invocation, installs the matching client or server role and routes
// every activation to it.
//
// Architecture layers (bottom → top):
//
//	host/service  →  config  →  session  →  core  →  host event loop
//
// The dispatcher in this package is the single place that knows which
// role is installed.  A node never holds a client and a server at the
// same time.
package core

import "fmt"

// State is the dispatcher state of a node.
type State int

const (
	StateEmpty State = iota
	StateClientActive
	StateServerActive
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateClientActive:
		return "client-active"
	case StateServerActive:
		return "server-active"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// transitions lists the legal next states for each state.
var transitions = map[State][]State{
	StateEmpty:        {StateClientActive, StateServerActive},
	StateClientActive: {StateEmpty},
	StateServerActive: {StateEmpty},
}

func allowedTransition(cur, next State) bool {
	for _, s := range transitions[cur] {
		if s == next {
			return true
		}
	}
	return false
}
