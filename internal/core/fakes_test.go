package core

import (
	"filetransfer/internal/host"
	"filetransfer/internal/service"
)

// fakeMachines hands out the configured fakes and counts requests.
type fakeMachines struct {
	getter  *fakeGetter
	server  *fakeServer
	getters int
	servers int
}

func newFakeMachines() *fakeMachines {
	return &fakeMachines{getter: &fakeGetter{}, server: newFakeServer()}
}

func (m *fakeMachines) NewGetter() service.Getter {
	m.getters++
	if m.getter == nil {
		return nil
	}
	return m.getter
}

func (m *fakeMachines) NewFileServer() service.FileServer {
	m.servers++
	if m.server == nil {
		return nil
	}
	return m.server
}

// fakeGetter records how it was started and activated.
type fakeGetter struct {
	sockd    int
	startErr error
	onStart  func(cb service.Callbacks)

	kind       string
	single     *service.SingleArgs
	double     *service.DoubleArgs
	multi      *service.MultiArgs
	callbacks  service.Callbacks
	activated  []int
	stops      int
	onActivate func(sockd int)
}

func (g *fakeGetter) start(kind string, cb service.Callbacks) (int, error) {
	g.kind = kind
	g.callbacks = cb
	if g.onStart != nil {
		g.onStart(cb)
	}
	if g.startErr != nil {
		return -1, g.startErr
	}
	return g.sockd, nil
}

func (g *fakeGetter) StartSingle(args *service.SingleArgs) (int, error) {
	g.single = args
	return g.start("single", args.Callbacks)
}

func (g *fakeGetter) StartDouble(args *service.DoubleArgs) (int, error) {
	g.double = args
	return g.start("double", args.Callbacks)
}

func (g *fakeGetter) StartMulti(args *service.MultiArgs) (int, error) {
	g.multi = args
	return g.start("multi", args.Callbacks)
}

func (g *fakeGetter) Activate(sockd int) {
	g.activated = append(g.activated, sockd)
	if g.onActivate != nil {
		g.onActivate(sockd)
	}
}

func (g *fakeGetter) Stop() { g.stops++ }

// fakeServer grows its counters by a fixed step on every activation.
type fakeServer struct {
	startCode    service.Code
	activateCode service.Code
	step         service.Stats
	stats        service.Stats

	addr      host.InAddr
	port      uint16
	docRoot   string
	backlog   int
	activated []int
	shutdowns int
}

func newFakeServer() *fakeServer {
	return &fakeServer{step: service.Stats{BytesReceived: 120, BytesSent: 4096, RepliesSent: 1}}
}

func (s *fakeServer) Start(addr host.InAddr, port uint16, docRoot string, backlog int) service.Code {
	s.addr, s.port, s.docRoot, s.backlog = addr, port, docRoot, backlog
	return s.startCode
}

func (s *fakeServer) Activate(sockd int) service.Code {
	s.activated = append(s.activated, sockd)
	s.stats.BytesReceived += s.step.BytesReceived
	s.stats.BytesSent += s.step.BytesSent
	s.stats.RepliesSent += s.step.RepliesSent
	return s.activateCode
}

func (s *fakeServer) Stats() service.Stats { return s.stats }

func (s *fakeServer) Shutdown() service.Code {
	s.shutdowns++
	return service.CodeSuccess
}
