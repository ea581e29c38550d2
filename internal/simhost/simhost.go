// Package simhost is a small discrete-event host for running nodes
// outside a full network simulator.  It owns a virtual clock and a
// queue of one-shot timers, resolves names from a fixed table and
// records every log line a node emits.
//
// The host is single-threaded like the simulators it stands in for:
// timers fire from Step, Advance or RunUntilIdle on the caller's
// goroutine, never concurrently.
package simhost

import (
	"container/heap"
	"fmt"
	"strings"
	"time"

	"filetransfer/internal/host"
	"filetransfer/util"
)

// Record is one captured log line.
type Record struct {
	At      time.Duration
	Level   host.Level
	Origin  string
	Message string
}

// Host implements host.Services on a virtual clock.
type Host struct {
	name    string
	now     time.Duration
	seq     uint64
	timers  timerQueue
	names   map[string]host.InAddr
	records []Record
	logger  *util.Logger

	lookups int
}

var _ host.Services = (*Host)(nil)

// New creates a host whose log lines go to logger.  A nil logger only
// records.
func New(name string, logger *util.Logger) *Host {
	return &Host{
		name:   name,
		names:  make(map[string]host.InAddr),
		logger: logger,
	}
}

// Name returns the host name given to New.
func (h *Host) Name() string { return h.name }

// ── host.Services ────────────────────────────────────────────────────

// Log records the message and forwards it to the logger.
func (h *Host) Log(level host.Level, origin, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	h.records = append(h.records, Record{At: h.now, Level: level, Origin: origin, Message: msg})

	if h.logger == nil {
		return
	}
	l := h.logger.Origin(origin)
	switch level {
	case host.LevelCritical:
		l.Error("[%s] %s", h.now, msg)
	case host.LevelWarning:
		l.Warn("[%s] %s", h.now, msg)
	case host.LevelMessage:
		l.Info("[%s] %s", h.now, msg)
	case host.LevelInfo:
		l.Verbose("[%s] %s", h.now, msg)
	default:
		l.Debug("[%s] %s", h.now, msg)
	}
}

// ResolveHostname looks name up in the table.  Unknown names resolve to
// host.AddrNone.
func (h *Host) ResolveHostname(name string) host.InAddr {
	h.lookups++
	if addr, ok := h.names[strings.ToLower(name)]; ok {
		return addr
	}
	return host.AddrNone
}

// ScheduleWakeup queues wake to run once delay has elapsed on the
// virtual clock.  Negative delays fire at the current time.
func (h *Host) ScheduleWakeup(wake func(), delay time.Duration) {
	if delay < 0 {
		delay = 0
	}
	h.seq++
	heap.Push(&h.timers, &timer{at: h.now + delay, seq: h.seq, wake: wake})
}

// ── Name table ───────────────────────────────────────────────────────

// AddHost registers addr under name (case-insensitive).
func (h *Host) AddHost(name string, addr host.InAddr) {
	h.names[strings.ToLower(name)] = addr
}

// Lookups returns how many times ResolveHostname was called.
func (h *Host) Lookups() int { return h.lookups }

// ── Clock ────────────────────────────────────────────────────────────

// Now returns the current virtual time.
func (h *Host) Now() time.Duration { return h.now }

// Pending returns the number of queued timers.
func (h *Host) Pending() int { return h.timers.Len() }

// Step fires the earliest timer, advancing the clock to its deadline.
// It returns false when no timer is queued.
func (h *Host) Step() bool {
	if h.timers.Len() == 0 {
		return false
	}
	t := heap.Pop(&h.timers).(*timer)
	if t.at > h.now {
		h.now = t.at
	}
	t.wake()
	return true
}

// Advance fires every timer due within d and leaves the clock at
// now+d.  Timers scheduled by fired timers run too if they fall inside
// the window.
func (h *Host) Advance(d time.Duration) int {
	end := h.now + d
	fired := 0
	for h.timers.Len() > 0 && h.timers[0].at <= end {
		h.Step()
		fired++
	}
	h.now = end
	return fired
}

// RunUntilIdle fires timers until none remain or limit timers have
// fired.  A limit of zero or less means no limit.
func (h *Host) RunUntilIdle(limit int) int {
	fired := 0
	for limit <= 0 || fired < limit {
		if !h.Step() {
			break
		}
		fired++
	}
	return fired
}

// ── Captured log ─────────────────────────────────────────────────────

// Records returns a copy of every captured log line.
func (h *Host) Records() []Record {
	return append([]Record(nil), h.records...)
}

// Count returns the number of captured lines at level.
func (h *Host) Count(level host.Level) int {
	n := 0
	for _, r := range h.records {
		if r.Level == level {
			n++
		}
	}
	return n
}

// Find returns the captured lines whose message contains substr.
func (h *Host) Find(substr string) []Record {
	var out []Record
	for _, r := range h.records {
		if strings.Contains(r.Message, substr) {
			out = append(out, r)
		}
	}
	return out
}

// Reset drops every captured line.
func (h *Host) Reset() { h.records = nil }

// ── timer queue ──────────────────────────────────────────────────────

type timer struct {
	at   time.Duration
	seq  uint64
	wake func()
}

// timerQueue orders timers by deadline, then by scheduling order.
type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *timerQueue) Push(x interface{}) { *q = append(*q, x.(*timer)) }

func (q *timerQueue) Pop() interface{} {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}
