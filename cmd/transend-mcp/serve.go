package main

import (
	"github.com/effective-security/transend-mcp/callbacks"
	"github.com/effective-security/transend-mcp/mcpserver"
	"github.com/effective-security/transend-mcp/tools"
)

type serveCmd struct {
	app *app
}

func (c *serveCmd) Execute(_ []string) error {
	cfg, err := c.app.load()
	if err != nil {
		return err
	}
	reg, err := c.app.registry(cfg, tools.WithCallback(callbacks.NewPackageLogger(logger)))
	if err != nil {
		return err
	}

	s := mcpserver.New(cfg.Server, reg)
	return mcpserver.ServeStdio(c.app.ctx, s, c.app.stdin, c.app.stdout)
}
