package metricskey

import "github.com/effective-security/metrics"

// Stats
var (
	StatsToolCallsSucceeded = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_succeeded",
		Help:         "stats_tool_calls_succeeded provides total tool calls succeeded",
		RequiredTags: []string{"tool"},
	}

	// StatsToolCallsFailed is counted when a tool returns an error envelope
	StatsToolCallsFailed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_failed",
		Help:         "stats_tool_calls_failed provides total tool calls failed",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsNotFound = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_not_found",
		Help:         "stats_tool_calls_not_found provides total tool calls not found",
		RequiredTags: []string{"tool"},
	}

	StatsToolCallsInvalidArgs = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_tool_calls_invalid_args",
		Help:         "stats_tool_calls_invalid_args provides total tool calls rejected for invalid arguments",
		RequiredTags: []string{"tool"},
	}

	StatsAPIRequestsSucceeded = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_api_requests_succeeded",
		Help:         "stats_api_requests_succeeded provides total Transend API requests succeeded",
		RequiredTags: []string{"op"},
	}

	StatsAPIRequestsFailed = metrics.Describe{
		Type:         metrics.TypeCounter,
		Name:         "stats_api_requests_failed",
		Help:         "stats_api_requests_failed provides total Transend API requests failed",
		RequiredTags: []string{"op"},
	}
)

// Perf
var (
	PerfToolCall = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_tool_call",
		Help:         "perf_tool_call provides duration of tool call",
		RequiredTags: []string{"tool"},
	}

	PerfAPIRequest = metrics.Describe{
		Type:         metrics.TypeSample,
		Name:         "perf_api_request",
		Help:         "perf_api_request provides duration of Transend API request, including retries",
		RequiredTags: []string{"op"},
	}
)

// Metrics returns slice of metrics from this repo
// keep sorted by name
var Metrics = []*metrics.Describe{
	&PerfAPIRequest,
	&PerfToolCall,
	&StatsAPIRequestsFailed,
	&StatsAPIRequestsSucceeded,
	&StatsToolCallsFailed,
	&StatsToolCallsInvalidArgs,
	&StatsToolCallsNotFound,
	&StatsToolCallsSucceeded,
}
