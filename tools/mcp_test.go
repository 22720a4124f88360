package tools_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/effective-security/transend-mcp/pkg/jsonutils"
	"github.com/effective-security/transend-mcp/tools"
	"github.com/effective-security/transend-mcp/transend"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type rpcResponse struct {
	ID     int             `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type listResult struct {
	Tools []struct {
		Name        string          `json:"name"`
		Description string          `json:"description"`
		InputSchema json.RawMessage `json:"inputSchema"`
		Annotations struct {
			ReadOnlyHint    *bool `json:"readOnlyHint"`
			DestructiveHint *bool `json:"destructiveHint"`
			IdempotentHint  *bool `json:"idempotentHint"`
			OpenWorldHint   *bool `json:"openWorldHint"`
		} `json:"annotations"`
	} `json:"tools"`
}

type callResult struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StructuredContent json.RawMessage `json:"structuredContent"`
	IsError           bool            `json:"isError"`
}

func rpc(t *testing.T, s *server.MCPServer, method string, params any) rpcResponse {
	t.Helper()
	msg := jsonutils.ToJSON(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	res := s.HandleMessage(context.Background(), json.RawMessage(msg))
	require.NotNil(t, res)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal([]byte(jsonutils.ToJSON(res)), &resp))
	return resp
}

func newMCPServer(t *testing.T) (*server.MCPServer, *apiMocks) {
	ctrl := gomock.NewController(t)
	m := newAPIMocks(ctrl)
	reg := tools.NewRegistry(m.api)

	s := server.NewMCPServer("transend", "test", server.WithToolCapabilities(false))
	reg.RegisterMCP(s)
	return s, m
}

func TestMCP_ListTools(t *testing.T) {
	s, _ := newMCPServer(t)

	resp := rpc(t, s, "tools/list", map[string]any{})
	require.Nil(t, resp.Error)

	var res listResult
	require.NoError(t, json.Unmarshal(resp.Result, &res))
	require.Len(t, res.Tools, 33)

	byName := map[string]int{}
	for i, tool := range res.Tools {
		byName[tool.Name] = i
		assert.NotEmpty(t, tool.Description)
		require.NotNil(t, tool.Annotations.ReadOnlyHint, tool.Name)
		require.NotNil(t, tool.Annotations.OpenWorldHint, tool.Name)
		assert.True(t, *tool.Annotations.OpenWorldHint)
	}

	vin := res.Tools[byName["get_vehicles_by_vin"]]
	assert.JSONEq(t,
		`{"type":"object","properties":{"vin":{"type":"string","minLength":1,"description":"Vehicle identification number. Must not be empty."}},"required":["vin"]}`,
		string(vin.InputSchema))
	assert.True(t, *vin.Annotations.ReadOnlyHint)
	assert.False(t, *vin.Annotations.DestructiveHint)
	assert.True(t, *vin.Annotations.IdempotentHint)

	del := res.Tools[byName["delete_credit_card"]]
	assert.False(t, *del.Annotations.ReadOnlyHint)
	assert.True(t, *del.Annotations.DestructiveHint)
	assert.False(t, *del.Annotations.IdempotentHint)

	cores := res.Tools[byName["get_open_cores"]]
	assert.JSONEq(t, `{"type":"object","properties":{}}`, string(cores.InputSchema))
}

func TestMCP_CallTool(t *testing.T) {
	s, m := newMCPServer(t)

	t.Run("value", func(t *testing.T) {
		m.vehicle.EXPECT().GetYearMakeModelVHID(gomock.Any(), 2015, "Ford", "F-150").
			Return(transend.Object{"vhid": "12345"}, nil)

		resp := rpc(t, s, "tools/call", map[string]any{
			"name":      "get_year_make_model_vhid",
			"arguments": map[string]any{"year": 2015, "make": "Ford", "model": "F-150"},
		})
		require.Nil(t, resp.Error)

		var res callResult
		require.NoError(t, json.Unmarshal(resp.Result, &res))
		assert.False(t, res.IsError)
		require.Len(t, res.Content, 1)
		assert.Equal(t, "text", res.Content[0].Type)
		assert.JSONEq(t, `{"vhid":"12345"}`, res.Content[0].Text)
		assert.JSONEq(t, `{"vhid":"12345"}`, string(res.StructuredContent))
	})

	t.Run("list", func(t *testing.T) {
		m.vehicle.EXPECT().GetYears(gomock.Any(), gomock.Nil()).
			Return(transend.List{json.Number("2020"), json.Number("2021")}, nil)

		resp := rpc(t, s, "tools/call", map[string]any{"name": "get_years"})
		require.Nil(t, resp.Error)

		var res callResult
		require.NoError(t, json.Unmarshal(resp.Result, &res))
		assert.False(t, res.IsError)
		require.Len(t, res.Content, 1)
		assert.Equal(t, `[2020,2021]`, res.Content[0].Text)
		assert.Empty(t, res.StructuredContent)
	})

	t.Run("envelope", func(t *testing.T) {
		m.customer.EXPECT().GetUsers(gomock.Any()).
			Return(nil, &transend.APIError{StatusCode: 500, Status: "500 Internal Server Error"})

		resp := rpc(t, s, "tools/call", map[string]any{"name": "get_users", "arguments": map[string]any{}})
		require.Nil(t, resp.Error)

		var res callResult
		require.NoError(t, json.Unmarshal(resp.Result, &res))
		// the envelope is the tool value, not a protocol error
		assert.False(t, res.IsError)
		require.Len(t, res.Content, 1)
		assert.JSONEq(t, `{"error":"500 Internal Server Error"}`, res.Content[0].Text)
		assert.JSONEq(t, `{"error":"500 Internal Server Error"}`, string(res.StructuredContent))
	})

	t.Run("success", func(t *testing.T) {
		m.account.EXPECT().DeleteBankAccount(gomock.Any(), int64(42)).Return(nil)

		resp := rpc(t, s, "tools/call", map[string]any{
			"name":      "delete_bank_account",
			"arguments": map[string]any{"customer_stripe_id": 42},
		})
		require.Nil(t, resp.Error)

		var res callResult
		require.NoError(t, json.Unmarshal(resp.Result, &res))
		assert.False(t, res.IsError)
		assert.JSONEq(t, `{"success":true}`, res.Content[0].Text)
	})

	t.Run("missing_argument", func(t *testing.T) {
		resp := rpc(t, s, "tools/call", map[string]any{
			"name":      "get_vehicle_by_vhid",
			"arguments": map[string]any{},
		})
		require.Nil(t, resp.Error)

		var res callResult
		require.NoError(t, json.Unmarshal(resp.Result, &res))
		assert.True(t, res.IsError)
		require.Len(t, res.Content, 1)
		assert.Equal(t, "invalid arguments for get_vehicle_by_vhid: missing required argument: vhid", res.Content[0].Text)
	})

	t.Run("unknown_tool", func(t *testing.T) {
		resp := rpc(t, s, "tools/call", map[string]any{"name": "get_weather"})
		require.NotNil(t, resp.Error)
		assert.Contains(t, resp.Error.Message, "get_weather")
	})
}

func TestNewMCPResult(t *testing.T) {
	res := tools.NewMCPResult(nil)
	assert.False(t, res.IsError)
	assert.Nil(t, res.StructuredContent)

	res = tools.NewMCPResult(map[string]any(nil))
	assert.Nil(t, res.StructuredContent)

	res = tools.NewMCPResult(tools.Success)
	assert.Equal(t, tools.Success, res.StructuredContent)

	res = tools.NewMCPResult("created")
	assert.Nil(t, res.StructuredContent)
}
