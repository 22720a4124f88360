package callbacks

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/effective-security/transend-mcp/pkg/jsonutils"
	"github.com/effective-security/transend-mcp/tools"
)

var TimeNowFn = time.Now

type RunStats struct {
	RunID string

	Duration            time.Duration
	BytesIn             uint64
	BytesOut            uint64
	ToolsCalls          uint32
	ToolsCallsSucceeded uint32
	ToolsCallsFailed    uint32
	ToolNotFound        uint32
}

// Scratchpad records a transcript and stats of the tool calls made during a run.
// Events outside of a run are ignored.
type Scratchpad struct {
	mode Mode
	lock sync.Mutex
	run  *run
}

func NewScratchpad(mode Mode) *Scratchpad {
	return &Scratchpad{
		mode: mode,
	}
}

// StartRun starts recording, a run in progress is discarded
func (l *Scratchpad) StartRun(runID string) {
	r := &run{
		runID:   runID,
		started: time.Now(),
		stats: RunStats{
			RunID: runID,
		},
	}

	l.lock.Lock()
	l.run = r
	l.lock.Unlock()

	r.print("*** Run Started ***")
}

// EndRun stops recording and returns the stats and the transcript
func (l *Scratchpad) EndRun() (*RunStats, []byte) {
	l.lock.Lock()
	run := l.run
	l.run = nil
	l.lock.Unlock()

	if run == nil {
		return nil, nil
	}

	stats := run.snapshot()
	stats.Duration = time.Since(run.started)

	run.print(fmt.Sprintf("Tool calls: %d, Failed: %d, Not Found: %d",
		stats.ToolsCalls,
		stats.ToolsCallsFailed,
		stats.ToolNotFound,
	))
	run.print(fmt.Sprintf("Bytes In: %d, Bytes Out: %d",
		stats.BytesIn,
		stats.BytesOut,
	))
	run.print(fmt.Sprintf("*** Run Ended. Duration: %s ***", stats.Duration))

	return &stats, run.bytes()
}

func (l *Scratchpad) getRun() *run {
	l.lock.Lock()
	defer l.lock.Unlock()
	return l.run
}

func (l *Scratchpad) OnToolStart(ctx context.Context, tool tools.ITool, input string) {
	run := l.getRun()
	if run == nil {
		return
	}
	atomic.AddUint32(&run.stats.ToolsCalls, 1)
	atomic.AddUint64(&run.stats.BytesIn, uint64(len(input)))
	run.print(tool.Domain(), tool.Name(), "*** Tool Start ***")
	run.print(tool.Domain(), tool.Name(), "Input:", input)
}

func (l *Scratchpad) OnToolEnd(ctx context.Context, tool tools.ITool, input string, output any) {
	run := l.getRun()
	if run == nil {
		return
	}
	out := jsonutils.ToJSON(output)
	atomic.AddUint32(&run.stats.ToolsCallsSucceeded, 1)
	atomic.AddUint64(&run.stats.BytesOut, uint64(len(out)))
	if l.mode == ModeVerbose {
		run.print(tool.Domain(), tool.Name(), "Output:", out)
	}
	run.print(tool.Domain(), tool.Name(), "*** Tool End ***")
}

func (l *Scratchpad) OnToolError(ctx context.Context, tool tools.ITool, input string, err error) {
	run := l.getRun()
	if run == nil {
		return
	}
	atomic.AddUint32(&run.stats.ToolsCallsFailed, 1)
	run.print(tool.Domain(), tool.Name(), "*** Tool Error ***", err.Error())
}

func (l *Scratchpad) OnToolNotFound(ctx context.Context, name string) {
	run := l.getRun()
	if run == nil {
		return
	}
	atomic.AddUint32(&run.stats.ToolNotFound, 1)
	run.print("*** Tool Not Found ***", name)
}

type run struct {
	runID   string
	w       bytes.Buffer
	started time.Time
	lock    sync.Mutex
	stats   RunStats
}

func (r *run) snapshot() RunStats {
	return RunStats{
		RunID:               r.stats.RunID,
		BytesIn:             atomic.LoadUint64(&r.stats.BytesIn),
		BytesOut:            atomic.LoadUint64(&r.stats.BytesOut),
		ToolsCalls:          atomic.LoadUint32(&r.stats.ToolsCalls),
		ToolsCallsSucceeded: atomic.LoadUint32(&r.stats.ToolsCallsSucceeded),
		ToolsCallsFailed:    atomic.LoadUint32(&r.stats.ToolsCallsFailed),
		ToolNotFound:        atomic.LoadUint32(&r.stats.ToolNotFound),
	}
}

func (r *run) bytes() []byte {
	r.lock.Lock()
	defer r.lock.Unlock()
	return bytes.Clone(r.w.Bytes())
}

// print writes the entries to the run's output.
// The entries are written in the following format:
// [timestamp runID] entry entry\n
func (r *run) print(entries ...string) {
	r.lock.Lock()
	defer r.lock.Unlock()

	now := TimeNowFn()
	ts := now.Format("2006-01-02 15:04:05")

	_, _ = r.w.WriteString(ts)
	_, _ = r.w.WriteString(" ")
	_, _ = r.w.WriteString(r.runID)
	_, _ = r.w.WriteString(" ")

	for i, entry := range entries {
		if i > 0 {
			_, _ = r.w.WriteString(" ")
		}
		_, _ = r.w.WriteString(entry)
	}
	_, _ = r.w.WriteString("\n")
}
