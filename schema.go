package cmdparse

import (
	"fmt"
	"regexp"

	orderedmap "github.com/wk8/go-ordered-map"
)

// Schema is the declarative description of a program's command line. Only
// Categories and Positional affect parsing; the rest is for usage.
type Schema struct {
	Program string
	Summary string
	// Overrides the usage line generated from the options.
	Usage string
	// Nil means the program takes no positional parameters, and leftover
	// arguments are an error.
	Positional *Positional
	Categories []Category
	Details    string
	Examples   []Example
	Addendum   string
}

// Positional declares that the program collects leftover arguments.
type Positional struct {
	// Shown in the usage line, as in "FILE...".
	Params string
	Help   string
}

// Category groups options for usage. The grouping doesn't affect parsing, but
// declaration order across all categories breaks ties between options.
type Category struct {
	Name    string
	Options []Option
}

type Example struct {
	Example     string
	Explanation string
}

// Command is a compiled Schema. It is immutable and can be shared.
type Command struct {
	schema  Schema
	options []*Option
	// Coerced defaults, by index into options.
	defaults [][]interface{}
	// Option name -> index into options.
	byName *orderedmap.OrderedMap
	// Things that are allowed but probably not what the schema author wanted.
	Warnings []string
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

var (
	shortKey = regexp.MustCompile(`^\w$`)
	longKey  = regexp.MustCompile(`^\w[^=\s]*$`)
)

// Compile checks a Schema for contradictions and returns a Command ready to
// parse with. The returned error is always a ConfigError.
func Compile(s Schema) (*Command, error) {
	c := &Command{
		schema: s,
		byName: orderedmap.New(),
	}
	c.schema.Categories = make([]Category, len(s.Categories))
	shorts := map[string]string{}
	longs := map[string]string{}
	for i, cat := range s.Categories {
		c.schema.Categories[i] = Category{
			Name:    cat.Name,
			Options: make([]Option, len(cat.Options)),
		}
		for j := range cat.Options {
			o := &c.schema.Categories[i].Options[j]
			*o = cat.Options[j]
			if o.Default != nil {
				o.Default = append([]string{}, o.Default...)
			}
			if err := c.addOption(o, shorts, longs); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}

func (c *Command) addOption(o *Option, shorts, longs map[string]string) error {
	if !identifier.MatchString(o.Name) {
		return configErrorf("option name %q must be a valid identifier", o.Name)
	}
	if _, ok := c.byName.Get(o.Name); ok {
		return configErrorf("option name %q defined more than once", o.Name)
	}
	if o.Short == "" && o.Long == "" {
		return configErrorf("option %q must specify a short or long key", o.Name)
	}
	if o.Short != "" {
		if !shortKey.MatchString(o.Short) {
			return configErrorf("invalid short key: %q", o.Short)
		}
		if other, ok := shorts[o.Short]; ok {
			return configErrorf("short key -%s used by both %q and %q", o.Short, other, o.Name)
		}
		shorts[o.Short] = o.Name
	}
	if o.Long != "" {
		if !longKey.MatchString(o.Long) {
			return configErrorf("invalid long key: %q", o.Long)
		}
		if other, ok := longs[o.Long]; ok {
			return configErrorf("long key --%s used by both %q and %q", o.Long, other, o.Name)
		}
		longs[o.Long] = o.Name
	}
	if _, ok := dataTypeNames[o.DataType]; !ok {
		return configErrorf("option %q has unknown datatype %v", o.Name, o.DataType)
	}
	defaults, err := c.checkDefaults(o)
	if err != nil {
		return err
	}
	if o.Required && o.Default != nil && o.Kind != Flag {
		c.Warnings = append(c.Warnings,
			fmt.Sprintf("option %q is required, but its default always satisfies it", o.Name))
	}
	c.byName.Set(o.Name, len(c.options))
	c.options = append(c.options, o)
	c.defaults = append(c.defaults, defaults)
	return nil
}

func (c *Command) checkDefaults(o *Option) (defaults []interface{}, err error) {
	var want func(int) bool
	switch o.Kind {
	case Flag:
		return nil, nil
	case Value:
		want = func(n int) bool { return n == 1 }
	case List:
		card := o.Cardinality
		switch card.kind {
		case exactly:
			want = func(n int) bool { return n == card.n }
		case atMost:
			want = func(n int) bool { return n <= card.n }
		case unlimited:
			want = func(int) bool { return true }
		}
		if card.kind != unlimited && card.n < 1 {
			return nil, configErrorf("option %q: count must be at least 1, got %d", o.Name, card.n)
		}
	default:
		return nil, configErrorf("option %q has unknown kind %v", o.Name, o.Kind)
	}
	if o.Default == nil {
		return nil, nil
	}
	if !want(len(o.Default)) {
		return nil, configErrorf("invalid defaults supplied for %q: %q does not fit %s",
			o.Name, o.Default, o.cardinalityText())
	}
	for _, d := range o.Default {
		v, err := o.DataType.Coerce(d)
		if err != nil {
			return nil, configErrorf("default %q for %q has incorrect data type: expected %s", d, o.Name, o.DataType)
		}
		defaults = append(defaults, v)
	}
	return defaults, nil
}

func (o *Option) cardinalityText() string {
	if o.Kind == Value {
		return "a single value"
	}
	return o.Cardinality.String()
}

// MustCompile is like Compile but panics on error. It's for schemas that are
// part of the program.
func MustCompile(s Schema) *Command {
	c, err := Compile(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Command) Schema() Schema {
	return c.schema
}

// Options returns every option across all categories, in declaration order.
func (c *Command) Options() []*Option {
	return append([]*Option(nil), c.options...)
}

// Option returns the option with the given name.
func (c *Command) Option(name string) (*Option, bool) {
	i, ok := c.byName.Get(name)
	if !ok {
		return nil, false
	}
	return c.options[i.(int)], true
}

func (c *Command) hasPositional() bool {
	return c.schema.Positional != nil
}
