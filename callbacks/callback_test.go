package callbacks_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/effective-security/transend-mcp/callbacks"
	"github.com/effective-security/transend-mcp/mocks/mocktools"
	"github.com/effective-security/transend-mcp/tools"
	"github.com/effective-security/transend-mcp/transend"
	"github.com/effective-security/x/values"
	"github.com/effective-security/xlog"
	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	cb := callbacks.NewPrinter(&buf, callbacks.ModeVerbose)
	ctx := context.Background()

	tool := &fakeTool{name: "get_users", domain: "customer"}

	cb.OnToolStart(ctx, tool, `{}`)
	cb.OnToolEnd(ctx, tool, `{}`, []any{map[string]any{"id": 1}})
	cb.OnToolError(ctx, tool, `{}`, errors.New("test error"))
	cb.OnToolNotFound(ctx, "get_weather")

	res := buf.String()
	assert.Contains(t, res, "Tool Start: get_users (customer)")
	assert.Contains(t, res, "Input: {}")
	assert.Contains(t, res, "Tool End: get_users (customer)")
	assert.Contains(t, res, `Output: [{"id":1}]`)
	assert.Contains(t, res, "Tool Error: get_users (customer): test error")
	assert.Contains(t, res, "Tool Not Found: get_weather")

	buf.Reset()
	cb = callbacks.NewPrinter(&buf, callbacks.ModeDefault)
	cb.OnToolEnd(ctx, tool, `{}`, "secret")
	assert.NotContains(t, buf.String(), "secret")
}

func TestPackageLogger(t *testing.T) {
	var buf bytes.Buffer
	xlog.SetFormatter(xlog.NewStringFormatter(&buf))
	// new package loggers start at INFO, so raise the level once it is registered
	logger := xlog.NewPackageLogger("github.com/effective-security/transend-mcp", "callbacks_test")
	xlog.SetGlobalLogLevel(xlog.DEBUG)

	cb := callbacks.NewPackageLogger(logger)
	ctx := context.Background()
	tool := &fakeTool{name: "get_branch_by_number", domain: "branch"}

	cb.OnToolStart(ctx, tool, `{"branch_number":"01"}`)
	cb.OnToolEnd(ctx, tool, `{"branch_number":"01"}`, map[string]any{})
	cb.OnToolError(ctx, tool, `{"branch_number":"01"}`, errors.New("404 Not Found"))
	cb.OnToolNotFound(ctx, "get_weather")

	res := buf.String()
	assert.Contains(t, res, "tool_start")
	assert.Contains(t, res, "tool_end")
	assert.Contains(t, res, "tool_error")
	assert.Contains(t, res, "404 Not Found")
	assert.Contains(t, res, "tool_not_found")
	assert.Contains(t, res, "get_weather")

	// unknown entities are logged as warnings
	xlog.SetGlobalLogLevel(xlog.ERROR)
	buf.Reset()
	cb.OnToolError(ctx, tool, `{"branch_number":"99"}`, &transend.APIError{StatusCode: 404, Status: "404 Not Found"})
	assert.Empty(t, buf.String())

	cb.OnToolError(ctx, tool, `{"branch_number":"01"}`, &transend.APIError{StatusCode: 500, Status: "500 Internal Server Error"})
	res = buf.String()
	assert.Contains(t, res, "status_code")
	assert.Contains(t, res, "500 Internal Server Error")
}

func TestFanout(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()
	tool := &fakeTool{name: "get_years", domain: "vehicle"}
	err := errors.New("fail")

	cb1 := mocktools.NewMockCallback(ctrl)
	cb2 := mocktools.NewMockCallback(ctrl)
	for _, cb := range []*mocktools.MockCallback{cb1, cb2} {
		cb.EXPECT().OnToolStart(ctx, tool, "in")
		cb.EXPECT().OnToolEnd(ctx, tool, "in", "out")
		cb.EXPECT().OnToolError(ctx, tool, "in", err)
		cb.EXPECT().OnToolNotFound(ctx, "nope")
	}

	f := callbacks.NewFanout(cb1, callbacks.NewNoop())
	f.Add(cb2)

	f.OnToolStart(ctx, tool, "in")
	f.OnToolEnd(ctx, tool, "in", "out")
	f.OnToolError(ctx, tool, "in", err)
	f.OnToolNotFound(ctx, "nope")
}

type fakeTool struct {
	name        string
	description string
	domain      string
}

var _ tools.ITool = (*fakeTool)(nil)

func (f *fakeTool) Name() string {
	return f.name
}
func (f *fakeTool) Description() string {
	return values.StringsCoalesce(f.description, "useful tool")
}
func (f *fakeTool) Parameters() *jsonschema.Schema {
	return nil
}
func (f *fakeTool) Domain() string {
	return f.domain
}
func (f *fakeTool) Mutating() bool {
	return false
}
func (f *fakeTool) Destructive() bool {
	return false
}
