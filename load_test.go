package cmdparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAMLSchema = `
program_name: clone
summary: Copies things.
positional_params:
  params: FROM TO
  text: |
    FROM and TO are paths.
supported_options:
  - category: Common
    options:
      - name: verbose
        short: v
        long: verbose
        opt: bool
        help: Say more.
      - name: file
        short: f
        long: file
        hint: path
        required: true
        opt: param
      - name: level
        short: l
        opt: param
        datatype: int
        default: 3
  - category: Advanced
    options:
      - name: pair
        long: pair
        opt: param
        multi_type: exactly
        count: 2
      - name: tags
        long: tags
        opt: param
        multi_type: no-limit
        default: [a, b]
      - name: secret
        long: secret
        opt: bool
        internal: true
      - name: nothing
        long: nothing
        opt: param
        default:
examples:
  - example: clone -f x a b
    explanation: Copies a to b.
`

const testTOMLSchema = `
program_name = "clone"
summary = "Copies things."

[positional_params]
params = "FROM TO"
text = "FROM and TO are paths."

[[supported_options]]
category = "Common"

[[supported_options.options]]
name = "verbose"
short = "v"
long = "verbose"
opt = "bool"
help = "Say more."

[[supported_options.options]]
name = "file"
short = "f"
long = "file"
hint = "path"
required = true
opt = "param"

[[supported_options.options]]
name = "level"
short = "l"
opt = "param"
datatype = "int"
default = 3

[[supported_options]]
category = "Advanced"

[[supported_options.options]]
name = "pair"
long = "pair"
opt = "param"
multi_type = "exactly"
count = 2

[[supported_options.options]]
name = "tags"
long = "tags"
opt = "param"
multi_type = "no-limit"
default = ["a", "b"]

[[supported_options.options]]
name = "secret"
long = "secret"
opt = "bool"
internal = true

[[examples]]
example = "clone -f x a b"
explanation = "Copies a to b."
`

const testHCLSchema = `
program_name = "clone"
summary      = "Copies things."

positional_params {
  params = "FROM TO"
  text   = "FROM and TO are paths."
}

category "Common" {
  option "verbose" {
    short = "v"
    long  = "verbose"
    opt   = "bool"
    help  = "Say more."
  }
  option "file" {
    short    = "f"
    long     = "file"
    hint     = "path"
    required = true
    opt      = "param"
  }
  option "level" {
    short    = "l"
    opt      = "param"
    datatype = "int"
    default  = 3
  }
}

category "Advanced" {
  option "pair" {
    long       = "pair"
    opt        = "param"
    multi_type = "exactly"
    count      = 2
  }
  option "tags" {
    long       = "tags"
    opt        = "param"
    multi_type = "no-limit"
    default    = ["a", "b"]
  }
  option "secret" {
    long     = "secret"
    opt      = "bool"
    internal = true
  }
}

example {
  example     = "clone -f x a b"
  explanation = "Copies a to b."
}
`

// The loaded schemas should all describe the same command.
func checkLoadedSchema(t *testing.T, cmd *Command) {
	s := cmd.Schema()
	assert.EqualValues(t, "clone", s.Program)
	assert.EqualValues(t, "Copies things.", s.Summary)
	require.NotNil(t, s.Positional)
	assert.EqualValues(t, "FROM TO", s.Positional.Params)
	require.Len(t, s.Categories, 2)
	assert.EqualValues(t, "Common", s.Categories[0].Name)
	assert.EqualValues(t, "Advanced", s.Categories[1].Name)
	require.Len(t, s.Examples, 1)
	assert.EqualValues(t, "clone -f x a b", s.Examples[0].Example)

	o, ok := cmd.Option("level")
	require.True(t, ok)
	assert.EqualValues(t, Value, o.Kind)
	assert.EqualValues(t, DataTypeInt, o.DataType)
	assert.EqualValues(t, []string{"3"}, o.Default)
	o, _ = cmd.Option("pair")
	assert.EqualValues(t, List, o.Kind)
	assert.EqualValues(t, Exactly(2), o.Cardinality)
	o, _ = cmd.Option("secret")
	assert.True(t, o.Internal)

	r := cmd.Parse([]string{"-vf", "x", "--pair", "p", "q", "a", "b"})
	require.True(t, r.Ok(), "%q", r.Errors)
	assert.True(t, r.Bool("verbose"))
	assert.EqualValues(t, 3, r.Int("level"))
	v, _ := r.Value("tags")
	assert.EqualValues(t, strs("a", "b"), v)
	v, _ = r.Value("pair")
	assert.EqualValues(t, strs("p", "q"), v)
	assert.EqualValues(t, []string{"a", "b"}, r.Positional)

	r = cmd.Parse(nil)
	assert.EqualValues(t, MissingMandatoryArg, r.Outcome)
	assert.EqualValues(t, []string{"Mandatory option(s) not provided: -f/--file"}, r.Errors)
}

func TestLoadYAML(t *testing.T) {
	cmd, err := LoadYAML([]byte(testYAMLSchema))
	require.NoError(t, err)
	checkLoadedSchema(t, cmd)
	o, ok := cmd.Option("nothing")
	require.True(t, ok)
	assert.Nil(t, o.Default)
}

func TestLoadTOML(t *testing.T) {
	cmd, err := LoadTOML([]byte(testTOMLSchema))
	require.NoError(t, err)
	checkLoadedSchema(t, cmd)
}

func TestLoadHCL(t *testing.T) {
	cmd, err := LoadHCL([]byte(testHCLSchema), "test.hcl")
	require.NoError(t, err)
	checkLoadedSchema(t, cmd)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"schema.yml":  testYAMLSchema,
		"schema.toml": testTOMLSchema,
		"schema.hcl":  testHCLSchema,
	} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		cmd, err := Load(path)
		require.NoError(t, err, name)
		checkLoadedSchema(t, cmd)
	}
	path := filepath.Join(dir, "schema.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadSchemaErrors(t *testing.T) {
	for _, _case := range []struct {
		yaml   string
		config bool
	}{
		{"supported_options: [{options: [{name: a, short: a, opt: flag}]}]", true},
		{"supported_options: [{options: [{name: a, short: a}]}]", true},
		{"supported_options: [{options: [{name: a, short: a, opt: bool, datatype: float}]}]", true},
		{"supported_options: [{options: [{name: a, short: a, opt: param, multi_type: many}]}]", true},
		{"supported_options: [{options: [{name: a, short: a, opt: param, default: [1, 2]}]}]", true},
		{"supported_options: [{options: [{name: a, short: a, opt: param, default: {x: 1}}]}]", false},
		{"supported_options: [", false},
	} {
		_, err := LoadYAML([]byte(_case.yaml))
		require.Error(t, err, _case.yaml)
		assert.EqualValues(t, _case.config, IsConfigError(err), "%s: %v", _case.yaml, err)
	}
}

func TestLoadHCLErrors(t *testing.T) {
	for _, src := range []string{
		`category "a" {`,
		`category "a" { option "b" { short = "b" } }`,
		`
category "a" {
  option "b" {
    short   = "b"
    opt     = "param"
    default = [["x"]]
  }
}`,
	} {
		_, err := LoadHCL([]byte(src), "test.hcl")
		assert.Error(t, err, src)
	}
}
