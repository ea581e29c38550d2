// Package session holds the role state a node owns while a client or
// server role is installed: the external machine handle, the invocation
// that configured it, and for servers the counters collected from it.
//
// Sessions decouple the dispatcher from machine bookkeeping: the
// dispatcher decides where an activation goes, the session knows how to
// deliver it and how to release the handle afterwards.
package session

import (
	"filetransfer/config"
	"filetransfer/internal/metrics"
	"filetransfer/internal/service"
)

// Client is the ClientState of a node.
type Client struct {
	Getter     service.Getter
	Invocation config.Invocation
	Metrics    *metrics.Collector
}

// NewClient binds a getter to the invocation that configured it.
func NewClient(g service.Getter, inv config.Invocation) *Client {
	return &Client{Getter: g, Invocation: inv, Metrics: metrics.New()}
}

// Wake delivers a fired timer to cont as descriptor service.TimerFired.
// A nil cont means the session's own getter.
func (c *Client) Wake(cont service.Getter) {
	if cont == nil {
		cont = c.Getter
	}
	c.Metrics.WokeUp()
	c.Metrics.Activated("")
	cont.Activate(service.TimerFired)
}

// Activate forwards sockd to the getter unchanged.
func (c *Client) Activate(sockd int) {
	c.Metrics.Activated("")
	c.Getter.Activate(sockd)
}

// Close stops the getter and drops the handle.  Calling Close again is
// a no-op.
func (c *Client) Close() {
	if c.Getter == nil {
		return
	}
	c.Getter.Stop()
	c.Getter = nil
}

// Server is the ServerState of a node.
type Server struct {
	FileServer service.FileServer
	Invocation *config.Server
	Metrics    *metrics.Collector

	// Started is false when the file server rejected Start; the session
	// stays installed but no socket is being served.
	Started bool
}

// NewServer binds a file server to the invocation that configured it.
func NewServer(fs service.FileServer, inv *config.Server) *Server {
	return &Server{FileServer: fs, Invocation: inv, Metrics: metrics.New()}
}

// Start binds and listens as configured.
func (s *Server) Start() service.Code {
	inv := s.Invocation
	code := s.FileServer.Start(inv.ListenAddr, inv.ListenPort, inv.DocRoot, inv.Backlog)
	s.Started = code.OK()
	return code
}

// Activate forwards sockd to the file server and records the counters
// it reports afterwards.  regressed is true if the server reported a
// counter lower than one already observed.
func (s *Server) Activate(sockd int) (code service.Code, stats service.Stats, regressed bool) {
	code = s.FileServer.Activate(sockd)
	s.Metrics.Activated(code.String())
	regressed = !s.Metrics.Observe(s.FileServer.Stats())
	return code, s.Metrics.Stats(), regressed
}

// Final records the counters one last time and returns them.
func (s *Server) Final() service.Stats {
	s.Metrics.Observe(s.FileServer.Stats())
	return s.Metrics.Stats()
}

// Close shuts the file server down and drops the handle.  Calling Close
// again is a no-op.
func (s *Server) Close() service.Code {
	if s.FileServer == nil {
		return service.CodeSuccess
	}
	code := s.FileServer.Shutdown()
	s.FileServer = nil
	return code
}
