package cmdparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type parseCase struct {
	args       []string
	outcome    Outcome
	errs       []string
	expected   map[string]interface{}
	positional []string
}

func noErrorCase(expected map[string]interface{}, args ...string) parseCase {
	return parseCase{args: args, expected: expected}
}

func errorCase(outcome Outcome, err string, args ...string) parseCase {
	return parseCase{args: args, outcome: outcome, errs: []string{err}}
}

func (me parseCase) withPositional(pos ...string) parseCase {
	me.positional = pos
	return me
}

func (me parseCase) Run(t *testing.T, cmd *Command, opts ...ParseOpt) {
	r := cmd.Parse(me.args, opts...)
	assert.EqualValues(t, me.outcome, r.Outcome, "%q: %q", me.args, r.Errors)
	if me.outcome != Success {
		if me.errs != nil {
			assert.EqualValues(t, me.errs, r.Errors, "%q", me.args)
		}
		return
	}
	assert.Empty(t, r.Errors)
	for name, v := range me.expected {
		actual, ok := r.Value(name)
		assert.True(t, ok, name)
		assert.EqualValues(t, v, actual, "%s in %q", name, me.args)
	}
	if me.positional != nil {
		assert.EqualValues(t, me.positional, r.Positional, "%q", me.args)
	}
}

func RunCases(t *testing.T, cases []parseCase, cmd *Command, opts ...ParseOpt) {
	for _, _case := range cases {
		_case.Run(t, cmd, opts...)
	}
}

// Compiles options into one category, with positional parameters if pos.
func compileOptions(t *testing.T, pos bool, opts ...Option) *Command {
	s := Schema{Categories: []Category{{Options: opts}}}
	if pos {
		s.Positional = &Positional{}
	}
	cmd, err := Compile(s)
	require.NoError(t, err)
	return cmd
}

func strs(ss ...string) []interface{} {
	return stringsToInterfaces(ss)
}
