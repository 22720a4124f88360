package tools

import (
	"context"

	"github.com/effective-security/transend-mcp/pkg/schema"
	"github.com/effective-security/transend-mcp/transend"
	"github.com/invopop/jsonschema"
)

// tool binds a name to the argument type and one client call
type tool struct {
	name        string
	description string
	domain      string
	mutating    bool
	destructive bool
	schema      *schema.Schema

	// newArgs returns a pointer to zero arguments
	newArgs func() any
	// exec performs the client call with the bound arguments
	exec func(ctx context.Context, api transend.API, args any) (any, error)
}

// ensure tool implements ITool
var _ ITool = (*tool)(nil)

func (t *tool) Name() string                   { return t.name }
func (t *tool) Description() string            { return t.description }
func (t *tool) Parameters() *jsonschema.Schema { return t.schema.Parameters }
func (t *tool) Domain() string                 { return t.domain }
func (t *tool) Mutating() bool                 { return t.mutating }
func (t *tool) Destructive() bool              { return t.destructive }

// query returns a tool that returns the value of the client call
func query[I, O any](domain, name, description string, fn func(context.Context, transend.API, *I) (O, error)) *tool {
	return &tool{
		name:        name,
		description: description,
		domain:      domain,
		schema:      mustSchema[I](),
		newArgs:     func() any { return new(I) },
		exec: func(ctx context.Context, api transend.API, args any) (any, error) {
			v, err := fn(ctx, api, args.(*I))
			if err != nil {
				return nil, err
			}
			return v, nil
		},
	}
}

// command returns a mutating tool that returns Success
// when the client call does not fail
func command[I any](domain, name, description string, fn func(context.Context, transend.API, *I) error) *tool {
	return &tool{
		name:        name,
		description: description,
		domain:      domain,
		mutating:    true,
		schema:      mustSchema[I](),
		newArgs:     func() any { return new(I) },
		exec: func(ctx context.Context, api transend.API, args any) (any, error) {
			if err := fn(ctx, api, args.(*I)); err != nil {
				return nil, err
			}
			return Success, nil
		},
	}
}

// mutates marks the tool as changing remote state
func (t *tool) mutates(destructive bool) *tool {
	t.mutating = true
	t.destructive = destructive
	return t
}

func mustSchema[I any]() *schema.Schema {
	s, err := schema.For[I]()
	if err != nil {
		panic(err)
	}
	return s
}
