package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/dzonerzy/go-argv/argv"
	"github.com/dzonerzy/go-argv/termio"
)

const description = "Parse an argument vector with go-argv and print the result"

type logConfig struct {
	Format string `default:"circles" enum:"circles,symbols,tagged,plain" help:"Log prefix style."`
	Debug  bool   `help:"Log parse details."`
}

func (*logConfig) group() kong.Group {
	return kong.Group{Key: "log", Title: "Logging options"}
}

// CLI holds the flags of argvdump itself. Everything from the first
// positional token on is handed to argv.Parse untouched.
type CLI struct {
	Log logConfig `embed:"" group:"log" prefix:"log-"`

	Format  string   `default:"text" enum:"text,json,yaml" help:"Output format."                          short:"f"`
	Indent  int      `default:"2"                          help:"Indentation for json and yaml output."`
	NoColor bool     `help:"Disable colored output."`
	Get     []string `help:"Print only the value of this option (repeatable)." short:"g"`

	Argv []string `arg:"" help:"Argument vector; the first token is the program name." optional:"" passthrough:""`
}

// run parses the argvdump command line, executes it and returns the process
// exit code.
func run(args []string, m *termio.IOManager, exit func(int)) int {
	var cli CLI

	parser, err := kong.New(&cli,
		kong.Name("argvdump"),
		kong.Description(description),
		kong.Writers(m.Out(), m.Err()),
		kong.Exit(exit),
		kong.ExplicitGroups([]kong.Group{cli.Log.group()}),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	if err != nil {
		termio.NewLogger(m).Error("%v", err)
		return argv.ExitGeneral
	}

	if _, err := parser.Parse(args); err != nil {
		termio.NewLogger(m).Error("%v", err)
		return argv.ExitMisusage
	}

	// kong hands the "--" terminator through to passthrough args
	if len(cli.Argv) > 0 && cli.Argv[0] == "--" {
		cli.Argv = cli.Argv[1:]
	}

	logger := cli.logger(m)

	err = cli.Run(m, logger)
	if err != nil {
		report(logger, err, cli.Argv)
	}
	return argv.ExitCode(err)
}

func (c *CLI) logger(m *termio.IOManager) *termio.Logger {
	if c.NoColor {
		m.NoColor()
	}

	// enum tag already restricts the value
	format, _ := termio.ParseLogFormat(c.Log.Format)
	logger := termio.NewLogger(m).WithFormat(format)
	if c.Log.Debug {
		logger.WithLevel(termio.LevelDebug)
	}
	return logger
}

// Run parses the vector and writes it in the selected format.
func (c *CLI) Run(m *termio.IOManager, logger *termio.Logger) error {
	logger.Debug("parsing %d tokens: %q", len(c.Argv), c.Argv)
	logger.Debug("normalized: %q", argv.Normalize(c.Argv))

	res, err := argv.Parse(c.Argv)
	if err != nil {
		return err
	}

	logger.Debug("parsed %d options", res.Options.Len())

	if len(c.Get) > 0 {
		return printValues(m, logger, res, c.Get)
	}
	return render(m, res, c.Format, c.Indent)
}

// printValues writes one line per requested option. Missing options are
// reported with a suggestion and make the command fail.
func printValues(m *termio.IOManager, logger *termio.Logger, res *argv.Result, keys []string) error {
	var missing []string
	for _, key := range keys {
		v, ok := res.Options.Get(key)
		if !ok {
			missing = append(missing, key)
			if hint := res.Options.Suggest(key); hint != "" {
				logger.Warning("option %q not present, did you mean %q?", key, hint)
			}
			continue
		}
		fmt.Fprintln(m.Out(), v)
	}

	if len(missing) > 0 {
		return &argv.ExitError{
			Code: argv.ExitGeneral,
			Err:  fmt.Errorf("option(s) not present: %s", strings.Join(missing, ", ")),
		}
	}
	return nil
}

// report logs err, pointing at the offending token for parse errors.
func report(logger *termio.Logger, err error, vector []string) {
	logger.Error("%v", err)

	var parseErr *argv.ParseError
	if !errors.As(err, &parseErr) || parseErr.Position < 0 || parseErr.Position >= len(vector) {
		return
	}

	line := strings.Join(vector, " ")
	offset := 0
	for _, tok := range vector[:parseErr.Position] {
		offset += len([]rune(tok)) + 1
	}
	width := max(len([]rune(parseErr.Token)), 1)

	logger.Info("  %s", line)
	logger.Info("  %s%s", strings.Repeat(" ", offset), strings.Repeat("^", width))
}
