package cmdparse

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Load reads a schema from a file, choosing the format from the extension:
// .yaml or .yml, .toml, or .hcl. The schema is compiled before it's returned.
func Load(path string) (*Command, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var load func([]byte) (*Command, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		load = LoadYAML
	case ".toml":
		load = LoadTOML
	case ".hcl":
		load = func(b []byte) (*Command, error) {
			return LoadHCL(b, path)
		}
	default:
		return nil, errors.Errorf("unknown schema format %q", ext)
	}
	c, err := load(b)
	return c, errors.Wrapf(err, "loading %s", path)
}

// The document layout shared by the YAML and TOML sources.
type schemaDoc struct {
	ProgramName      string         `yaml:"program_name" toml:"program_name"`
	Summary          string         `yaml:"summary" toml:"summary"`
	Usage            string         `yaml:"usage" toml:"usage"`
	PositionalParams *positionalDoc `yaml:"positional_params" toml:"positional_params"`
	SupportedOptions []categoryDoc  `yaml:"supported_options" toml:"supported_options"`
	Details          string         `yaml:"details" toml:"details"`
	Examples         []exampleDoc   `yaml:"examples" toml:"examples"`
	Addendum         string         `yaml:"addendum" toml:"addendum"`
}

type positionalDoc struct {
	Params string `yaml:"params" toml:"params"`
	Text   string `yaml:"text" toml:"text"`
}

type categoryDoc struct {
	Category string      `yaml:"category" toml:"category"`
	Options  []optionDoc `yaml:"options" toml:"options"`
}

type optionDoc struct {
	Name      string     `yaml:"name" toml:"name"`
	Short     string     `yaml:"short" toml:"short"`
	Long      string     `yaml:"long" toml:"long"`
	Hint      string     `yaml:"hint" toml:"hint"`
	Required  bool       `yaml:"required" toml:"required"`
	Internal  bool       `yaml:"internal" toml:"internal"`
	Default   stringList `yaml:"default" toml:"default"`
	Datatype  string     `yaml:"datatype" toml:"datatype"`
	Opt       string     `yaml:"opt" toml:"opt"`
	MultiType string     `yaml:"multi_type" toml:"multi_type"`
	Count     *int       `yaml:"count" toml:"count"`
	Help      string     `yaml:"help" toml:"help"`
}

type exampleDoc struct {
	Example     string `yaml:"example" toml:"example"`
	Explanation string `yaml:"explanation" toml:"explanation"`
}

// A default may be given as a single value or a list. Nil means no default.
type stringList []string

func (d *schemaDoc) compile() (*Command, error) {
	s := Schema{
		Program:  d.ProgramName,
		Summary:  d.Summary,
		Usage:    d.Usage,
		Details:  d.Details,
		Addendum: d.Addendum,
	}
	if p := d.PositionalParams; p != nil {
		s.Positional = &Positional{Params: p.Params, Help: p.Text}
	}
	for _, cd := range d.SupportedOptions {
		cat := Category{Name: cd.Category}
		for _, od := range cd.Options {
			o, err := od.option()
			if err != nil {
				return nil, errors.Wrapf(err, "option %q", od.Name)
			}
			cat.Options = append(cat.Options, o)
		}
		s.Categories = append(s.Categories, cat)
	}
	for _, e := range d.Examples {
		s.Examples = append(s.Examples, Example{Example: e.Example, Explanation: e.Explanation})
	}
	return Compile(s)
}

func (od *optionDoc) option() (o Option, err error) {
	o = Option{
		Name:     od.Name,
		Short:    od.Short,
		Long:     od.Long,
		Hint:     od.Hint,
		Required: od.Required,
		Internal: od.Internal,
		Default:  []string(od.Default),
		Help:     strings.TrimSpace(od.Help),
	}
	o.DataType, err = ParseDataType(od.Datatype)
	if err != nil {
		return
	}
	switch strings.ToLower(strings.TrimSpace(od.Opt)) {
	case "bool":
		o.Kind = Flag
	case "param":
		o.Cardinality, err = ParseCardinality(od.MultiType, od.Count)
		if err != nil {
			return
		}
		if o.Cardinality == Exactly(1) {
			o.Kind = Value
		} else {
			o.Kind = List
		}
	default:
		err = configErrorf("unknown option type: %q", od.Opt)
	}
	return
}
