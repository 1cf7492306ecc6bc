package cmdparse

import (
	"fmt"
	"time"
)

// Outcome classifies a parse.
type Outcome int

const (
	Success Outcome = iota
	ParseError
	// -h or --help was given.
	ShowUsage
	// Everything parsed, but a required option was not given.
	MissingMandatoryArg
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case ParseError:
		return "parse-error"
	case ShowUsage:
		return "show-usage"
	case MissingMandatoryArg:
		return "missing-mandatory"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result is the outcome of parsing one command line.
type Result struct {
	Outcome Outcome
	// Diagnostics in the order they were found. Empty for Success and
	// ShowUsage.
	Errors []string
	// Leftover arguments. Always nil if the schema declares no positional
	// parameters.
	Positional []string

	cmd     *Command
	options []*optionState
}

func (r *Result) Ok() bool {
	return r.Outcome == Success
}

func (r *Result) Command() *Command {
	return r.cmd
}

func (r *Result) state(name string) *optionState {
	i, ok := r.cmd.byName.Get(name)
	if !ok {
		return nil
	}
	return r.options[i.(int)]
}

// Value returns the named option's value: a bool for Flag options, the value
// or nil for Value options, and a []interface{} for List options. Values are
// strings unless the option declares a DataType. ok is false if there's no
// such option.
func (r *Result) Value(name string) (v interface{}, ok bool) {
	s := r.state(name)
	if s == nil {
		return nil, false
	}
	return s.value(), true
}

func (r *Result) Bool(name string) bool {
	v, _ := r.Value(name)
	b, _ := v.(bool)
	return b
}

// Raw returns the strings captured for the named option, or its defaults.
func (r *Result) Raw(name string) []string {
	s := r.state(name)
	if s == nil {
		return nil
	}
	return append([]string(nil), s.raw...)
}

func (r *Result) Int(name string) int {
	v, _ := r.Value(name)
	i, _ := v.(int)
	return i
}

func (r *Result) Float(name string) float64 {
	v, _ := r.Value(name)
	f, _ := v.(float64)
	return f
}

func (r *Result) Date(name string) time.Time {
	v, _ := r.Value(name)
	t, _ := v.(time.Time)
	return t
}

// Initialized reports whether the named option has a value, from the command
// line or a default. Flag options are always initialized.
func (r *Result) Initialized(name string) bool {
	s := r.state(name)
	return s != nil && s.initialized
}

// SuppliedKey returns the key token that matched the named option, such as
// "-v" or "--verbose", or "" if it wasn't on the command line.
func (r *Result) SuppliedKey(name string) string {
	s := r.state(name)
	if s == nil {
		return ""
	}
	return s.suppliedKey
}

// Names returns the option names in declaration order.
func (r *Result) Names() (ret []string) {
	for _, s := range r.options {
		ret = append(ret, s.Name)
	}
	return
}
