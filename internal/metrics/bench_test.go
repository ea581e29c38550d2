package metrics

import (
	"testing"

	"filetransfer/internal/service"
)

// BenchmarkCollector_Observe measures the cost of recording a server
// counter snapshot (three CAS loops).
func BenchmarkCollector_Observe(b *testing.B) {
	c := New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := uint64(i)
		c.Observe(service.Stats{BytesReceived: n, BytesSent: n * 4, RepliesSent: n})
	}
}

// BenchmarkCollector_Snapshot measures the cost of taking a snapshot.
func BenchmarkCollector_Snapshot(b *testing.B) {
	c := New()
	c.Observe(service.Stats{BytesReceived: 1024, BytesSent: 4096, RepliesSent: 3})
	c.Activated("FS_SUCCESS")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Snapshot()
	}
}
