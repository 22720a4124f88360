package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/transend-mcp/pkg/jsonutils"
	"github.com/effective-security/transend-mcp/tools"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

type listCmd struct {
	app *app

	Format string `short:"o" long:"format" default:"table" choice:"table" choice:"json" choice:"yaml" description:"output format"`
	Domain string `short:"d" long:"domain" description:"list only tools of the domain"`
}

func (c *listCmd) Execute(_ []string) error {
	cfg, err := c.app.load()
	if err != nil {
		return err
	}
	reg, err := c.app.registry(cfg)
	if err != nil {
		return err
	}

	var list []tools.ITool
	for _, t := range reg.List() {
		if c.Domain == "" || t.Domain() == c.Domain {
			list = append(list, t)
		}
	}
	descr := tools.GetDescriptions(list...)

	switch c.Format {
	case "json":
		fmt.Fprintln(c.app.stdout, jsonutils.ToJSONIndent(descr))
	case "yaml":
		fmt.Fprint(c.app.stdout, jsonutils.ToYAML(descr))
	default:
		return printTable(c.app.stdout, descr)
	}
	return nil
}

func printTable(w io.Writer, descr []tools.Description) error {
	cfg := tablewriter.Config{
		Header: tw.CellConfig{
			Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignLeft},
		},
		Behavior: tw.Behavior{TrimSpace: tw.On},
	}
	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(cfg),
		tablewriter.WithHeader([]string{"Name", "Domain", "Mutating", "Arguments"}),
		tablewriter.WithRenderer(renderer.NewBlueprint()),
		tablewriter.WithRendition(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleMarkdown),
			Borders: tw.Border{
				Left:   tw.On,
				Top:    tw.Off,
				Right:  tw.On,
				Bottom: tw.Off,
			},
		}),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
	for _, d := range descr {
		if err := table.Append([]string{d.Name, d.Domain, strconv.FormatBool(d.Mutating), d.Arguments}); err != nil {
			return errors.WithStack(err)
		}
	}
	return errors.WithStack(table.Render())
}
