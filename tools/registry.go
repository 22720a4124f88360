package tools

import (
	"context"
	"encoding/json"
	"reflect"
	"runtime/debug"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/transend-mcp/pkg/jsonutils"
	"github.com/effective-security/transend-mcp/pkg/metricskey"
	"github.com/effective-security/transend-mcp/transend"
	"github.com/effective-security/xlog"
	"github.com/go-playground/validator/v10"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/transend-mcp", "tools")

// Option configures the Registry
type Option func(*Registry)

// WithCallback sets the invocation observer
func WithCallback(cb Callback) Option {
	return func(r *Registry) {
		r.callback = cb
	}
}

// Registry holds the tool catalogue bound to the API client.
// It is immutable after NewRegistry and safe for concurrent use.
type Registry struct {
	api      transend.API
	callback Callback
	validate *validator.Validate

	tools map[string]*tool
	// list is sorted by name
	list []ITool
}

// NewRegistry returns the Registry of all catalogue tools
// delegating to the provided API client.
func NewRegistry(api transend.API, opts ...Option) *Registry {
	r := &Registry{
		api:      api,
		validate: newValidator(),
		tools:    map[string]*tool{},
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, t := range catalogue() {
		if _, ok := r.tools[t.name]; ok {
			panic("duplicate tool: " + t.name)
		}
		r.tools[t.name] = t
		r.list = append(r.list, t)
	}
	sort.Slice(r.list, func(i, j int) bool {
		return r.list[i].Name() < r.list[j].Name()
	})

	return r
}

// List returns all tools sorted by name
func (r *Registry) List() []ITool {
	return append([]ITool(nil), r.list...)
}

// Get returns the tool by name
func (r *Registry) Get(name string) (ITool, bool) {
	t, ok := r.tools[name]
	if !ok {
		return nil, false
	}
	return t, true
}

// Call invokes the tool with JSON arguments.
//
// The result is the client value, or ErrorEnvelope if the call failed,
// or SuccessEnvelope for commands.
// An error is returned only for an unknown tool (ErrToolNotFound),
// or for arguments that can not be bound (ErrInvalidArguments),
// in which case the client is not called.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (any, error) {
	t := r.tools[name]
	if t == nil {
		metricskey.StatsToolCallsNotFound.IncrCounter(1, name)
		if r.callback != nil {
			r.callback.OnToolNotFound(ctx, name)
		}
		logger.ContextKV(ctx, xlog.WARNING,
			"status", "tool_not_found",
			"tool", name,
		)
		return nil, errors.Mark(errors.Errorf("tool not found: %s", name), ErrToolNotFound)
	}

	input := string(args)
	in, err := r.bind(t, args)
	if err != nil {
		metricskey.StatsToolCallsInvalidArgs.IncrCounter(1, name)
		if r.callback != nil {
			r.callback.OnToolError(ctx, t, input, err)
		}
		logger.ContextKV(ctx, xlog.DEBUG,
			"status", "invalid_arguments",
			"tool", name,
			"err", err.Error(),
		)
		return nil, err
	}

	if r.callback != nil {
		r.callback.OnToolStart(ctx, t, input)
	}

	started := time.Now()
	value, err := r.invoke(ctx, t, in)
	metricskey.PerfToolCall.MeasureSince(started, name)

	res := Outcome(value, err)
	if err != nil {
		metricskey.StatsToolCallsFailed.IncrCounter(1, name)
		if r.callback != nil {
			r.callback.OnToolError(ctx, t, input, err)
		}
		logger.ContextKV(ctx, xlog.DEBUG,
			"status", "tool_failed",
			"tool", name,
			"err", err.Error(),
		)
		return res, nil
	}

	metricskey.StatsToolCallsSucceeded.IncrCounter(1, name)
	if r.callback != nil {
		r.callback.OnToolEnd(ctx, t, input, res)
	}
	return res, nil
}

// bind decodes and validates the arguments
func (r *Registry) bind(t *tool, args json.RawMessage) (any, error) {
	in := t.newArgs()
	if err := jsonutils.Decode(args, in); err != nil {
		return nil, invalidArguments(t.name, err.Error())
	}

	if err := r.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			var missing, invalid []string
			for _, fe := range verrs {
				if fe.Tag() == "required" {
					missing = append(missing, fe.Field())
				} else {
					invalid = append(invalid, fe.Field())
				}
			}
			if len(missing) > 0 {
				return nil, invalidArguments(t.name, "missing required argument: "+strings.Join(missing, ", "))
			}
			return nil, invalidArguments(t.name, "invalid argument: "+strings.Join(invalid, ", "))
		}
		return nil, invalidArguments(t.name, err.Error())
	}
	return in, nil
}

// invoke runs the tool, a panic is returned as error
func (r *Registry) invoke(ctx context.Context, t *tool, in any) (value any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.ContextKV(ctx, xlog.ERROR,
				"status", "tool_panic",
				"tool", t.name,
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			value = nil
			err = errors.Errorf("%v", rec)
		}
	}()
	return t.exec(ctx, r.api, in)
}

func invalidArguments(name, reason string) error {
	return errors.Mark(errors.Errorf("invalid arguments for %s: %s", name, reason), ErrInvalidArguments)
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report JSON names of the arguments
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
