package cmdparse

import (
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// hclSchemaFile is the top-level layout of an HCL schema:
//
//	program_name = "clone"
//	positional_params {
//	  params = "FROM TO"
//	}
//	category "Common" {
//	  option "verbose" {
//	    short = "v"
//	    opt   = "bool"
//	  }
//	}
type hclSchemaFile struct {
	ProgramName string         `hcl:"program_name,optional"`
	Summary     string         `hcl:"summary,optional"`
	Usage       string         `hcl:"usage,optional"`
	Details     string         `hcl:"details,optional"`
	Addendum    string         `hcl:"addendum,optional"`
	Positional  *hclPositional `hcl:"positional_params,block"`
	Categories  []*hclCategory `hcl:"category,block"`
	Examples    []*hclExample  `hcl:"example,block"`
}

type hclPositional struct {
	Params string `hcl:"params,optional"`
	Text   string `hcl:"text,optional"`
}

type hclCategory struct {
	Name    string       `hcl:"name,label"`
	Options []*hclOption `hcl:"option,block"`
}

type hclOption struct {
	Name      string    `hcl:"name,label"`
	Opt       string    `hcl:"opt"`
	Short     string    `hcl:"short,optional"`
	Long      string    `hcl:"long,optional"`
	Hint      string    `hcl:"hint,optional"`
	Required  bool      `hcl:"required,optional"`
	Internal  bool      `hcl:"internal,optional"`
	Default   cty.Value `hcl:"default,optional"`
	Datatype  string    `hcl:"datatype,optional"`
	MultiType string    `hcl:"multi_type,optional"`
	Count     *int      `hcl:"count,optional"`
	Help      string    `hcl:"help,optional"`
}

type hclExample struct {
	Example     string `hcl:"example"`
	Explanation string `hcl:"explanation,optional"`
}

// LoadHCL compiles a schema from HCL. filename is only used in diagnostics.
func LoadHCL(b []byte, filename string) (*Command, error) {
	f, diags := hclparse.NewParser().ParseHCL(b, filename)
	if diags.HasErrors() {
		return nil, errors.Wrap(diags, "parsing hcl schema")
	}
	var hf hclSchemaFile
	if diags := gohcl.DecodeBody(f.Body, nil, &hf); diags.HasErrors() {
		return nil, errors.Wrap(diags, "decoding hcl schema")
	}
	d := schemaDoc{
		ProgramName: hf.ProgramName,
		Summary:     hf.Summary,
		Usage:       hf.Usage,
		Details:     hf.Details,
		Addendum:    hf.Addendum,
	}
	if hf.Positional != nil {
		d.PositionalParams = &positionalDoc{Params: hf.Positional.Params, Text: hf.Positional.Text}
	}
	for _, hc := range hf.Categories {
		cd := categoryDoc{Category: hc.Name}
		for _, ho := range hc.Options {
			def, err := ctyStrings(ho.Default)
			if err != nil {
				return nil, errors.Wrapf(err, "option %q default", ho.Name)
			}
			cd.Options = append(cd.Options, optionDoc{
				Name:      ho.Name,
				Short:     ho.Short,
				Long:      ho.Long,
				Hint:      ho.Hint,
				Required:  ho.Required,
				Internal:  ho.Internal,
				Default:   def,
				Datatype:  ho.Datatype,
				Opt:       ho.Opt,
				MultiType: ho.MultiType,
				Count:     ho.Count,
				Help:      ho.Help,
			})
		}
		d.SupportedOptions = append(d.SupportedOptions, cd)
	}
	for _, he := range hf.Examples {
		d.Examples = append(d.Examples, exampleDoc{Example: he.Example, Explanation: he.Explanation})
	}
	return d.compile()
}

// Converts a scalar or a list/tuple/set of scalars.
func ctyStrings(v cty.Value) (stringList, error) {
	if v.IsNull() {
		return nil, nil
	}
	if !v.IsWhollyKnown() {
		return nil, errors.New("value must be known")
	}
	t := v.Type()
	if !t.IsTupleType() && !t.IsListType() && !t.IsSetType() {
		s, err := ctyString(v)
		if err != nil {
			return nil, err
		}
		return stringList{s}, nil
	}
	ret := stringList{}
	for it := v.ElementIterator(); it.Next(); {
		_, ev := it.Element()
		s, err := ctyString(ev)
		if err != nil {
			return nil, err
		}
		ret = append(ret, s)
	}
	return ret, nil
}

func ctyString(v cty.Value) (string, error) {
	sv, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", err
	}
	if sv.IsNull() {
		return "", errors.New("null element")
	}
	return sv.AsString(), nil
}
