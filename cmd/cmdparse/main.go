// Command cmdparse parses arguments against a schema file and prints the
// outcome, for trying out schemas from the shell.
package main

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/anacrolix/cmdparse"
)

//go:embed schema.yaml
var selfSchema []byte

const (
	exitOk       = 0
	exitSchema   = 1
	exitBadUsage = 2
)

type config struct {
	Schema  string
	Usage   bool
	Line    string
	Strict  bool
	NoHelp  bool
	Debug   bool
	NoColor bool
	Args    []string `type:"pos"`
}

func main() {
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

func selfCommand() *cmdparse.Command {
	cmd, err := cmdparse.LoadYAML(selfSchema)
	if err != nil {
		panic(err)
	}
	return cmd
}

func run(stdout, stderr io.Writer, args []string) int {
	self := selfCommand()
	r := self.Parse(args)
	switch r.Outcome {
	case cmdparse.Success:
	case cmdparse.ShowUsage:
		self.WriteUsage(stdout)
		return exitOk
	default:
		writeErrors(stderr, "cmdparse", r.Errors)
		return exitBadUsage
	}
	var c config
	if err := r.Bind(&c); err != nil {
		panic(err)
	}
	if c.NoColor {
		color.NoColor = true
	}
	if c.Line != "" && len(c.Args) != 0 {
		writeErrors(stderr, "cmdparse", []string{"--line can't be combined with ARGS"})
		return exitBadUsage
	}

	cmd, err := cmdparse.Load(c.Schema)
	if err != nil {
		fmt.Fprintln(stderr, color.RedString("error: %v", err))
		return exitSchema
	}
	for _, w := range cmd.Warnings {
		fmt.Fprintln(stderr, color.YellowString("warning: %s", w))
	}
	if c.Usage {
		cmd.WriteUsage(stdout)
		return exitOk
	}

	opts := []cmdparse.ParseOpt{cmdparse.WithLogger(newLogger(stderr, c.Debug))}
	if c.Strict {
		opts = append(opts, cmdparse.StrictPositional())
	}
	if c.NoHelp {
		opts = append(opts, cmdparse.NoDefaultHelp())
	}
	if c.Line != "" {
		r = cmd.ParseString(c.Line, opts...)
	} else {
		r = cmd.Parse(c.Args, opts...)
	}
	switch r.Outcome {
	case cmdparse.Success:
		if err := writeResult(stdout, r); err != nil {
			fmt.Fprintln(stderr, color.RedString("error: %v", err))
			return exitSchema
		}
		return exitOk
	case cmdparse.ShowUsage:
		cmd.WriteUsage(stdout)
		return exitOk
	}
	writeErrors(stderr, cmd.Schema().Program, r.Errors)
	return exitBadUsage
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func writeErrors(w io.Writer, program string, errs []string) {
	var buf bytes.Buffer
	cmdparse.WriteErrors(&buf, program, errs)
	color.New(color.FgRed).Fprint(w, buf.String())
}

// Writes the option values in declaration order, then the positional
// parameters.
func writeResult(w io.Writer, r *cmdparse.Result) error {
	var buf bytes.Buffer
	buf.WriteString(`{"options":{`)
	for i, name := range r.Names() {
		if i != 0 {
			buf.WriteByte(',')
		}
		v, _ := r.Value(name)
		k, err := json.Marshal(name)
		if err != nil {
			return err
		}
		b, err := json.Marshal(v)
		if err != nil {
			return errors.Wrapf(err, "encoding %q", name)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(b)
	}
	buf.WriteString(`},"positional":`)
	b, err := json.Marshal(r.Positional)
	if err != nil {
		return err
	}
	buf.Write(b)
	buf.WriteByte('}')
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err = out.WriteTo(w)
	return err
}
