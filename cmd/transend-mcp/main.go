// Command transend-mcp serves the Transend business API tools over MCP stdio.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/transend-mcp/config"
	"github.com/effective-security/transend-mcp/tools"
	"github.com/effective-security/transend-mcp/transend"
	"github.com/effective-security/xlog"
	"github.com/jessevdk/go-flags"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/transend-mcp", "cmd")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}

// app holds the global flags and the process streams
type app struct {
	Config   string `short:"f" long:"config" description:"path to the YAML config file"`
	LogLevel string `short:"l" long:"log-level" description:"log level, overrides TRANSEND_LOG_LEVEL"`

	ctx    context.Context
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	// stdout carries the MCP protocol
	xlog.SetFormatter(xlog.NewStringFormatter(stderr))

	a := &app{
		ctx:    ctx,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	parser := flags.NewParser(a, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "transend-mcp"
	commands := []struct {
		name, short string
		cmd         any
	}{
		{"serve", "Serve the tools over MCP stdio", &serveCmd{app: a}},
		{"list", "List the tools", &listCmd{app: a}},
		{"call", "Call one tool and print the result", &callCmd{app: a}},
		{"version", "Print the version", &versionCmd{app: a}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.short, c.cmd); err != nil {
			fmt.Fprintln(stderr, err.Error())
			return 1
		}
	}

	if _, err := parser.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, ferr.Message)
			return 0
		}
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	return 0
}

// load returns the configuration and sets the log level
func (a *app) load() (*config.Config, error) {
	cfg, err := config.Load(a.ctx, a.Config, nil)
	if err != nil {
		return nil, err
	}
	if a.LogLevel != "" {
		cfg.LogLevel = a.LogLevel
	}
	xlog.SetGlobalLogLevel(cfg.Level())
	return cfg, nil
}

// registry returns the tools bound to the API client
func (a *app) registry(cfg *config.Config, opts ...tools.Option) (*tools.Registry, error) {
	client, err := transend.New(cfg.ClientConfig(), transend.WithUserAgent(transend.DefaultUserAgent+"/"+config.Version))
	if err != nil {
		return nil, err
	}
	logger.KV(xlog.DEBUG,
		"base_url", client.BaseURL(),
		"retry_max", cfg.Transend.RetryMax,
	)
	return tools.NewRegistry(client, opts...), nil
}

type versionCmd struct {
	app *app
}

func (c *versionCmd) Execute(_ []string) error {
	fmt.Fprintln(c.app.stdout, config.Version)
	return nil
}
