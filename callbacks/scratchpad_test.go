package callbacks

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTool struct{ name string }

func (t *fakeTool) Name() string                   { return t.name }
func (t *fakeTool) Description() string            { return "desc" }
func (t *fakeTool) Parameters() *jsonschema.Schema { return nil }
func (t *fakeTool) Domain() string                 { return "vehicle" }
func (t *fakeTool) Mutating() bool                 { return false }
func (t *fakeTool) Destructive() bool              { return false }

func TestScratchpad_StartRun_EndRun(t *testing.T) {
	t.Parallel()
	sp := NewScratchpad(ModeVerbose)
	sp.StartRun("run1")

	r := sp.getRun()
	require.NotNil(t, r)
	r.stats.ToolsCalls = 3
	r.stats.ToolsCallsFailed = 2
	r.stats.ToolNotFound = 1

	stats, buf := sp.EndRun()
	require.NotNil(t, stats)
	assert.Equal(t, "run1", stats.RunID)
	assert.Contains(t, string(buf), "Run Started")
	assert.Contains(t, string(buf), "Run Ended")
	assert.Contains(t, string(buf), "Tool calls: 3, Failed: 2, Not Found: 1")
	assert.Nil(t, sp.getRun())

	s2, b2 := sp.EndRun()
	assert.Nil(t, s2)
	assert.Nil(t, b2)
}

func TestScratchpad_OnCallbacks(t *testing.T) {
	t.Parallel()
	sp := NewScratchpad(ModeVerbose)
	ctx := context.Background()
	tool := &fakeTool{name: "get_years"}

	// no run
	sp.OnToolStart(ctx, tool, "{}")
	assert.Nil(t, sp.getRun())

	sp.StartRun("run2")
	sp.OnToolStart(ctx, tool, `{"vhid":"1"}`)
	sp.OnToolEnd(ctx, tool, `{"vhid":"1"}`, []any{2020})
	sp.OnToolStart(ctx, tool, `{}`)
	sp.OnToolError(ctx, tool, `{}`, errors.New("terr"))
	sp.OnToolNotFound(ctx, "get_weather")

	stats, output := sp.EndRun()
	require.NotNil(t, stats)
	assert.Equal(t, uint32(2), stats.ToolsCalls)
	assert.Equal(t, uint32(1), stats.ToolsCallsSucceeded)
	assert.Equal(t, uint32(1), stats.ToolsCallsFailed)
	assert.Equal(t, uint32(1), stats.ToolNotFound)
	assert.Equal(t, uint64(len(`{"vhid":"1"}`)+len(`{}`)), stats.BytesIn)
	assert.Equal(t, uint64(len(`[2020]`)), stats.BytesOut)

	outStr := string(output)
	assert.Contains(t, outStr, "vehicle get_years *** Tool Start ***")
	assert.Contains(t, outStr, "vehicle get_years Output: [2020]")
	assert.Contains(t, outStr, "vehicle get_years *** Tool End ***")
	assert.Contains(t, outStr, "*** Tool Error *** terr")
	assert.Contains(t, outStr, "*** Tool Not Found *** get_weather")
	assert.Contains(t, outStr, "Bytes In: 14, Bytes Out: 6")

	// events after the run are ignored
	sp.OnToolEnd(ctx, tool, "{}", "x")
	sp.OnToolError(ctx, tool, "{}", errors.New("terr2"))
	sp.OnToolNotFound(ctx, "T3")
}

func Test_run_print_format(t *testing.T) {
	r := &run{runID: "run3"}
	oldTimeFn := TimeNowFn
	TimeNowFn = func() time.Time { return time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC) }
	defer func() { TimeNowFn = oldTimeFn }()

	r.print("hello", "again")
	lines := strings.Split(r.w.String(), "\n")
	require.NotEmpty(t, lines[0])
	assert.Equal(t, "2024-01-01 12:00:00 run3 hello again", lines[0])
}
