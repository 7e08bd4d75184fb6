package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-yaml"

	"github.com/dzonerzy/go-argv/argv"
	"github.com/dzonerzy/go-argv/termio"
)

func render(m *termio.IOManager, res *argv.Result, format string, indent int) error {
	switch format {
	case "json":
		return renderJSON(m.Out(), res, indent)
	case "yaml":
		return renderYAML(m.Out(), res, indent)
	default:
		return renderText(m, res)
	}
}

func renderJSON(w io.Writer, res *argv.Result, indent int) error {
	var (
		data []byte
		err  error
	)
	if indent > 0 {
		data, err = json.MarshalIndent(res, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(res)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}

func renderYAML(w io.Writer, res *argv.Result, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalWithOptions(res, opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(data))
	return err
}

func renderText(m *termio.IOManager, res *argv.Result) error {
	w := m.Out()

	fmt.Fprintf(w, "%s %s\n", m.Bold("app:    "), optional(m, res.App, res.HasApp))
	fmt.Fprintf(w, "%s %s\n", m.Bold("command:"), optional(m, res.Command, res.HasCommand))
	fmt.Fprintf(w, "%s\n", m.Bold("options:"))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for key, v := range res.Options.All() {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", key, v, v.Kind())
	}
	return tw.Flush()
}

func optional(m *termio.IOManager, s string, ok bool) string {
	if !ok {
		return m.Faint("-")
	}
	return s
}
