package main

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/transend-mcp/callbacks"
	"github.com/effective-security/transend-mcp/pkg/jsonutils"
	"github.com/effective-security/transend-mcp/tools"
	"github.com/google/uuid"
)

type callCmd struct {
	app *app

	Args    string `short:"a" long:"args" default:"{}" description:"tool arguments as JSON object"`
	Verbose bool   `short:"v" long:"verbose" description:"print the tool output and the call transcript to stderr"`
	Quiet   bool   `short:"q" long:"quiet" description:"do not print the tool trace to stderr"`

	Positional struct {
		Tool string `positional-arg-name:"tool" required:"yes"`
	} `positional-args:"yes"`
}

func (c *callCmd) Execute(_ []string) error {
	if !json.Valid([]byte(c.Args)) {
		return errors.Errorf("--args must be valid JSON: %s", c.Args)
	}

	cfg, err := c.app.load()
	if err != nil {
		return err
	}

	mode := callbacks.ModeDefault
	if c.Verbose {
		mode = callbacks.ModeVerbose
	}
	var trace tools.Callback = callbacks.NewPrinter(c.app.stderr, mode)
	if c.Quiet {
		trace = callbacks.NewNoop()
	}
	sp := callbacks.NewScratchpad(mode)

	cb := callbacks.NewFanout(callbacks.NewPackageLogger(logger))
	cb.Add(trace)
	cb.Add(sp)

	reg, err := c.app.registry(cfg, tools.WithCallback(cb))
	if err != nil {
		return err
	}

	sp.StartRun(uuid.NewString())
	res, err := reg.Call(c.app.ctx, c.Positional.Tool, json.RawMessage(c.Args))
	_, transcript := sp.EndRun()
	if c.Verbose {
		fmt.Fprint(c.app.stderr, string(transcript))
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(c.app.stdout, jsonutils.ToJSONIndent(res))
	return nil
}
