// Package metrics tracks the running statistics of a node: the file
// server's transfer counters and the number of activations the host
// delivered.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"

	"filetransfer/internal/service"
)

// Collector tracks runtime metrics for one node.
// A nil Collector is safe to use; all methods become no-ops.
type Collector struct {
	bytesIn     atomic.Uint64
	bytesOut    atomic.Uint64
	replies     atomic.Uint64
	activations atomic.Int64
	wakeups     atomic.Int64
	regressions atomic.Int64

	mu       sync.RWMutex
	lastCode string
}

// New creates an empty collector.
func New() *Collector {
	return &Collector{}
}

// ── Server counters ──────────────────────────────────────────────────

// Observe records a snapshot of the server's cumulative counters.  The
// stored counters never decrease: a value lower than the one already
// recorded is ignored and Observe returns false.
func (c *Collector) Observe(s service.Stats) bool {
	if c == nil {
		return true
	}
	ok := raise(&c.bytesIn, s.BytesReceived)
	ok = raise(&c.bytesOut, s.BytesSent) && ok
	ok = raise(&c.replies, s.RepliesSent) && ok
	if !ok {
		c.regressions.Add(1)
	}
	return ok
}

// raise stores v in u if it is not lower than the current value.
func raise(u *atomic.Uint64, v uint64) bool {
	for {
		cur := u.Load()
		if v < cur {
			return false
		}
		if u.CompareAndSwap(cur, v) {
			return true
		}
	}
}

// Stats returns the last observed server counters.
func (c *Collector) Stats() service.Stats {
	if c == nil {
		return service.Stats{}
	}
	return service.Stats{
		BytesReceived: c.bytesIn.Load(),
		BytesSent:     c.bytesOut.Load(),
		RepliesSent:   c.replies.Load(),
	}
}

// ── Activation metrics ───────────────────────────────────────────────

// Activated records one host activation and the machine's result code,
// if it reported one.
func (c *Collector) Activated(code string) {
	if c == nil {
		return
	}
	c.activations.Add(1)
	if code == "" {
		return
	}
	c.mu.Lock()
	c.lastCode = code
	c.mu.Unlock()
}

// Activations returns the number of activations recorded.
func (c *Collector) Activations() int64 {
	if c == nil {
		return 0
	}
	return c.activations.Load()
}

// WokeUp records a timer wakeup delivered to the client machine.
func (c *Collector) WokeUp() {
	if c == nil {
		return
	}
	c.wakeups.Add(1)
}

// Wakeups returns the number of wakeups recorded.
func (c *Collector) Wakeups() int64 {
	if c == nil {
		return 0
	}
	return c.wakeups.Load()
}

// Regressions returns how many observed snapshots went backwards.
func (c *Collector) Regressions() int64 {
	if c == nil {
		return 0
	}
	return c.regressions.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	BytesReceived uint64 `json:"bytes_received"`
	BytesSent     uint64 `json:"bytes_sent"`
	RepliesSent   uint64 `json:"replies_sent"`
	Activations   int64  `json:"activations"`
	Wakeups       int64  `json:"wakeups"`
	Regressions   int64  `json:"regressions,omitempty"`
	LastCode      string `json:"last_code,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	return Snapshot{
		BytesReceived: c.bytesIn.Load(),
		BytesSent:     c.bytesOut.Load(),
		RepliesSent:   c.replies.Load(),
		Activations:   c.activations.Load(),
		Wakeups:       c.wakeups.Load(),
		Regressions:   c.regressions.Load(),
		LastCode:      c.lastCode,
	}
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
