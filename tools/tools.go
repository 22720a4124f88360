package tools

import (
	"context"

	"github.com/invopop/jsonschema"
)

//go:generate mockgen -source=tools.go -destination=../mocks/mocktools/tools_mock.gen.go  -package mocktools

// ITool describes a tool exposed to MCP clients.
type ITool interface {
	// Name returns the name of the Tool.
	Name() string
	// Description returns the description of the tool, to be shown to the caller.
	Description() string
	// Parameters returns the JSON schema of the tool arguments.
	Parameters() *jsonschema.Schema
	// Domain returns the API sub-resource the tool delegates to.
	Domain() string
	// Mutating returns true if the tool changes state in the remote system.
	Mutating() bool
	// Destructive returns true if the tool deletes remote state.
	Destructive() bool
}

// Callback observes tool invocations.
// Implementations must not block, the result of the call does not depend on them.
type Callback interface {
	OnToolStart(ctx context.Context, tool ITool, input string)
	OnToolEnd(ctx context.Context, tool ITool, input string, output any)
	OnToolError(ctx context.Context, tool ITool, input string, err error)
	OnToolNotFound(ctx context.Context, name string)
}

// Description is a short summary of the tool
type Description struct {
	Name        string `json:"Name" yaml:"Name"`
	Domain      string `json:"Domain" yaml:"Domain"`
	Mutating    bool   `json:"Mutating" yaml:"Mutating"`
	Arguments   string `json:"Arguments" yaml:"Arguments"`
	Description string `json:"Description" yaml:"Description"`
}

// GetDescriptions returns descriptions of the tools, in the provided order.
func GetDescriptions(list ...ITool) []Description {
	var res []Description
	for _, tool := range list {
		res = append(res, Description{
			Name:        tool.Name(),
			Domain:      tool.Domain(),
			Mutating:    tool.Mutating(),
			Arguments:   ArgumentsSummary(tool.Parameters()),
			Description: tool.Description(),
		})
	}
	return res
}

// ArgumentsSummary returns the argument list as `name:type`,
// optional arguments are marked with `?`.
func ArgumentsSummary(params *jsonschema.Schema) string {
	if params == nil || params.Properties == nil || params.Properties.Len() == 0 {
		return "-"
	}

	required := map[string]bool{}
	for _, name := range params.Required {
		required[name] = true
	}

	var summary string
	for pair := params.Properties.Oldest(); pair != nil; pair = pair.Next() {
		if summary != "" {
			summary += ", "
		}
		summary += pair.Key
		if !required[pair.Key] {
			summary += "?"
		}
		summary += ":" + typeName(pair.Value)
	}
	return summary
}

func typeName(s *jsonschema.Schema) string {
	if s.Type != "" {
		return s.Type
	}
	var name string
	for _, alt := range s.AnyOf {
		if name != "" {
			name += "|"
		}
		name += alt.Type
	}
	if name == "" {
		return "any"
	}
	return name
}
