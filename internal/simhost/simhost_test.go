package simhost

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"filetransfer/internal/host"
	"filetransfer/util"
)

func TestHost_TimersFireInDeadlineOrder(t *testing.T) {
	h := New("node", nil)
	var order []string

	h.ScheduleWakeup(func() { order = append(order, "late") }, 3*time.Second)
	h.ScheduleWakeup(func() { order = append(order, "early") }, time.Second)
	h.ScheduleWakeup(func() { order = append(order, "tie-1") }, 2*time.Second)
	h.ScheduleWakeup(func() { order = append(order, "tie-2") }, 2*time.Second)

	assert.Equal(t, 4, h.Pending())
	assert.Equal(t, 4, h.RunUntilIdle(0))
	assert.Equal(t, []string{"early", "tie-1", "tie-2", "late"}, order)
	assert.Equal(t, 3*time.Second, h.Now())
	assert.False(t, h.Step())
}

func TestHost_Advance(t *testing.T) {
	h := New("node", nil)
	fired := 0
	h.ScheduleWakeup(func() { fired++ }, 500*time.Millisecond)
	h.ScheduleWakeup(func() { fired++ }, 5*time.Second)

	assert.Equal(t, 1, h.Advance(time.Second))
	assert.Equal(t, 1, fired)
	assert.Equal(t, time.Second, h.Now())
	assert.Equal(t, 1, h.Pending())
}

func TestHost_TimerScheduledFromTimer(t *testing.T) {
	h := New("node", nil)
	var at []time.Duration

	var tick func()
	tick = func() {
		at = append(at, h.Now())
		if len(at) < 3 {
			h.ScheduleWakeup(tick, 2*time.Second)
		}
	}
	h.ScheduleWakeup(tick, 0)

	h.RunUntilIdle(0)
	assert.Equal(t, []time.Duration{0, 2 * time.Second, 4 * time.Second}, at)
}

func TestHost_RunUntilIdleLimit(t *testing.T) {
	h := New("node", nil)
	var forever func()
	forever = func() { h.ScheduleWakeup(forever, time.Second) }
	h.ScheduleWakeup(forever, time.Second)

	assert.Equal(t, 10, h.RunUntilIdle(10))
	assert.Equal(t, 10*time.Second, h.Now())
}

func TestHost_NegativeDelayFiresNow(t *testing.T) {
	h := New("node", nil)
	h.Advance(time.Minute)
	h.ScheduleWakeup(func() {}, -time.Second)
	require.True(t, h.Step())
	assert.Equal(t, time.Minute, h.Now())
}

func TestHost_Resolve(t *testing.T) {
	h := New("node", nil)
	h.AddHost("Server.Example", host.ParseAddr("10.0.0.2"))

	assert.Equal(t, host.ParseAddr("10.0.0.2"), h.ResolveHostname("server.example"))
	assert.Equal(t, host.AddrNone, h.ResolveHostname("unknown"))
	assert.Equal(t, 2, h.Lookups())
}

func TestHost_LogRecordsAndForwards(t *testing.T) {
	var buf bytes.Buffer
	logger := util.NewLogger(3)
	logger.SetOutput(&buf)
	logger.SetTimestamps(false)

	h := New("node1", logger)
	h.Log(host.LevelCritical, "filetransfer", "bad %s", "args")
	h.Log(host.LevelDebug, "filetransfer", "activating socket %d", 5)
	h.Log(host.LevelMessage, "filegetter", "done")

	assert.Equal(t, 1, h.Count(host.LevelCritical))
	assert.Equal(t, 1, h.Count(host.LevelDebug))
	require.Len(t, h.Find("socket 5"), 1)
	assert.Equal(t, "filetransfer", h.Find("socket 5")[0].Origin)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[ERR] filetransfer: [0s] bad args", lines[0])
	assert.Equal(t, "[DBG] filetransfer: [0s] activating socket 5", lines[1])
	assert.Equal(t, "[INF] filegetter: [0s] done", lines[2])
	assert.Equal(t, "node1", h.Name())

	h.Reset()
	assert.Empty(t, h.Records())
}

func TestHost_LogOriginInJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := util.NewLogger(1)
	logger.SetOutput(&buf)
	logger.SetJSON(true)

	h := New("node1", logger)
	h.Advance(2 * time.Second)
	h.Log(host.LevelMessage, "filegetter", "done")

	out := buf.String()
	assert.Contains(t, out, `"origin":"filegetter"`)
	assert.Contains(t, out, `"msg":"[2s] done"`)
}
