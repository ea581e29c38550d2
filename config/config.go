// Package config turns a node's argument vector into one immutable
// invocation record: a single, double or multi download client, or a
// file server.  It also holds the CLI options of the filetransfer
// binary.
package config

import (
	"fmt"
	"strconv"
	"strings"

	ferrors "filetransfer/internal/errors"
	"filetransfer/internal/host"
	"filetransfer/internal/service"
	"filetransfer/util"
)

// Kind names an invocation shape.
type Kind string

const (
	KindSingle Kind = "single"
	KindDouble Kind = "double"
	KindMulti  Kind = "multi"
	KindServer Kind = "server"
)

// Role is the mutually exclusive operating mode of a node.
type Role string

const (
	RoleClient Role = "client"
	RoleServer Role = "server"
)

// Invocation is one parsed invocation.  The concrete type is exactly one
// of *Single, *Double, *Multi or *Server.
type Invocation interface {
	Kind() Kind
	Role() Role

	// Args renders the canonical argument vector for the invocation.
	Args() []string

	String() string
}

// ── Client invocations ───────────────────────────────────────────────

// Single downloads one file a number of times.
type Single struct {
	Server    service.Endpoint
	Proxy     *service.Endpoint // nil when "none"
	Downloads string
	Path      string
}

// Double downloads up to three files, pausing between rounds.
type Double struct {
	Server service.Endpoint
	Proxy  *service.Endpoint
	Path1  string
	Path2  string
	Path3  string // empty when "none"
	Pause  string
}

// Multi downloads from targets listed in a specification file.
type Multi struct {
	SpecPath      string
	Proxy         *service.Endpoint
	ThinkTimePath string // empty when "none"
	Runtime       string // "-1" is unbounded
}

func (*Single) Kind() Kind { return KindSingle }
func (*Double) Kind() Kind { return KindDouble }
func (*Multi) Kind() Kind  { return KindMulti }
func (*Single) Role() Role { return RoleClient }
func (*Double) Role() Role { return RoleClient }
func (*Multi) Role() Role  { return RoleClient }

func (s *Single) Args() []string {
	proxyHost, proxyPort := proxyArgs(s.Proxy)
	return []string{string(RoleClient), string(KindSingle),
		s.Server.Host, s.Server.Port, proxyHost, proxyPort, s.Downloads, s.Path}
}

func (d *Double) Args() []string {
	proxyHost, proxyPort := proxyArgs(d.Proxy)
	return []string{string(RoleClient), string(KindDouble),
		d.Server.Host, d.Server.Port, proxyHost, proxyPort,
		d.Path1, d.Path2, noneIfEmpty(d.Path3), d.Pause}
}

func (m *Multi) Args() []string {
	proxyHost, proxyPort := proxyArgs(m.Proxy)
	return []string{string(RoleClient), string(KindMulti),
		m.SpecPath, proxyHost, proxyPort, noneIfEmpty(m.ThinkTimePath), m.Runtime}
}

func (s *Single) String() string {
	return fmt.Sprintf("client single %s x%s from %s%s",
		s.Path, s.Downloads, endpoint(s.Server), via(s.Proxy))
}

func (d *Double) String() string {
	files := []string{d.Path1, d.Path2}
	if d.Path3 != "" {
		files = append(files, d.Path3)
	}
	return fmt.Sprintf("client double %s from %s%s, pause %ss",
		strings.Join(files, ","), endpoint(d.Server), via(d.Proxy), d.Pause)
}

func (m *Multi) String() string {
	think := "no think time"
	if m.ThinkTimePath != "" {
		think = "think time " + m.ThinkTimePath
	}
	runtime := m.Runtime + "s"
	if m.Unbounded() {
		runtime = "unbounded"
	}
	return fmt.Sprintf("client multi %s%s, %s, runtime %s",
		m.SpecPath, via(m.Proxy), think, runtime)
}

// Unbounded reports whether the multi client runs until it is stopped.
func (m *Multi) Unbounded() bool {
	return strings.TrimSpace(m.Runtime) == "-1"
}

// ── Server invocation ────────────────────────────────────────────────

// Server serves files from a document root.
type Server struct {
	ListenAddr host.InAddr // always host.AddrAny
	ListenPort uint16
	DocRoot    string
	Backlog    int
}

func (*Server) Kind() Kind { return KindServer }
func (*Server) Role() Role { return RoleServer }

func (s *Server) Args() []string {
	return []string{string(RoleServer), strconv.Itoa(int(s.ListenPort)), s.DocRoot}
}

func (s *Server) String() string {
	return fmt.Sprintf("server %s on %s", s.DocRoot, s.Addr())
}

// Addr returns the listen address as "ip:port".
func (s *Server) Addr() string {
	return util.FormatAddr(s.ListenAddr.String(), int(s.ListenPort))
}

// ── Parsing ──────────────────────────────────────────────────────────

// Parse builds an Invocation from args, where args[0] is the mode.  Any
// malformed vector yields a *errors.UsageError.
func Parse(args []string) (Invocation, error) {
	if len(args) < 1 {
		return nil, ferrors.Usage("", "no arguments")
	}

	switch mode := args[0]; {
	case util.EqualFoldASCII(mode, string(RoleClient)):
		return parseClient(args)
	case util.EqualFoldASCII(mode, string(RoleServer)):
		return parseServer(args)
	default:
		return nil, ferrors.Usage("", "unknown mode %q", mode)
	}
}

func parseServer(args []string) (Invocation, error) {
	if err := need(args, ServerArgs, "server"); err != nil {
		return nil, err
	}
	return &Server{
		ListenAddr: host.AddrAny,
		ListenPort: util.ParsePort16(args[1]),
		DocRoot:    args[2],
		Backlog:    DefaultBacklog,
	}, nil
}

func parseClient(args []string) (Invocation, error) {
	if len(args) < 2 {
		return nil, ferrors.Usage("client", "missing client mode")
	}

	sub := args[1]
	switch {
	case util.HasPrefixFold(sub, string(KindSingle)):
		if err := need(args, SingleArgs, "client single"); err != nil {
			return nil, err
		}
		return &Single{
			Server:    service.Endpoint{Host: args[2], Port: args[3]},
			Proxy:     parseProxy(args[4], args[5]),
			Downloads: args[6],
			Path:      args[7],
		}, nil

	case util.HasPrefixFold(sub, string(KindDouble)):
		if err := need(args, DoubleArgs, "client double"); err != nil {
			return nil, err
		}
		return &Double{
			Server: service.Endpoint{Host: args[2], Port: args[3]},
			Proxy:  parseProxy(args[4], args[5]),
			Path1:  args[6],
			Path2:  args[7],
			Path3:  util.OrNone(args[8]),
			Pause:  args[9],
		}, nil

	case util.HasPrefixFold(sub, string(KindMulti)):
		if err := need(args, MultiArgs, "client multi"); err != nil {
			return nil, err
		}
		return &Multi{
			SpecPath:      args[2],
			Proxy:         parseProxy(args[3], args[4]),
			ThinkTimePath: util.OrNone(args[5]),
			Runtime:       args[6],
		}, nil

	default:
		return nil, ferrors.Usage("client", "unknown client mode %q", sub)
	}
}

func need(args []string, n int, shape string) error {
	if len(args) < n {
		return ferrors.Usage(shape, "need %d arguments, got %d", n, len(args))
	}
	return nil
}

func parseProxy(hostArg, portArg string) *service.Endpoint {
	if util.IsNone(hostArg) {
		return nil
	}
	return &service.Endpoint{Host: hostArg, Port: portArg}
}

// ── helpers ──────────────────────────────────────────────────────────

func proxyArgs(p *service.Endpoint) (string, string) {
	if p == nil {
		return util.NoneToken, "0"
	}
	return p.Host, p.Port
}

func noneIfEmpty(s string) string {
	if s == "" {
		return util.NoneToken
	}
	return s
}

func endpoint(e service.Endpoint) string {
	return e.Host + ":" + e.Port
}

func via(p *service.Endpoint) string {
	if p == nil {
		return ""
	}
	return " via socks " + endpoint(*p)
}
