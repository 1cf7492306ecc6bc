package cmdparse

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/anacrolix/missinggo/v2"
	"github.com/huandu/xstrings"
)

// Placeholder for the option's value in usage, derived from the name if the
// option has no Hint.
func (o *Option) placeholder() string {
	if o.Kind == Flag {
		return ""
	}
	h := o.Hint
	if h == "" {
		h = strings.ToUpper(xstrings.ToSnakeCase(o.Name))
	}
	if o.Kind == List && o.Cardinality != Exactly(1) {
		h += "..."
	}
	return h
}

// KeysAndHint formats the option for usage, as in "-f, --file <path>".
func (o *Option) KeysAndHint() string {
	s := strings.Replace(o.Keys(), "/", ", ", 1)
	if ph := o.placeholder(); ph != "" {
		s += " <" + ph + ">"
	}
	return s
}

func newUsageTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 8, 2, 3, ' ', 0)
}

func writeSection(w io.Writer, heading, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	if heading != "" {
		fmt.Fprintf(w, "\n%s:\n", heading)
	}
	fmt.Fprint(w, missinggo.Unchomp(text))
}

func (c *Command) usageLine() string {
	parts := []string{}
	if c.schema.Program != "" {
		parts = append(parts, c.schema.Program)
	}
	for _, o := range c.options {
		if o.Internal {
			continue
		}
		// Prefer the long form, it says more.
		k := "--" + o.Long
		if o.Long == "" {
			k = "-" + o.Short
		}
		if ph := o.placeholder(); ph != "" {
			k += " <" + ph + ">"
		}
		if !o.Required {
			k = "[" + k + "]"
		}
		parts = append(parts, k)
	}
	if p := c.schema.Positional; p != nil {
		params := p.Params
		if params == "" {
			params = "[ARGS...]"
		}
		parts = append(parts, params)
	}
	return strings.Join(parts, " ")
}

// WriteUsage writes usage instructions generated from the schema. Internal
// options are left out.
func (c *Command) WriteUsage(w io.Writer) {
	s := c.schema
	if s.Program != "" {
		fmt.Fprintf(w, "%s\n%s\n", s.Program, strings.Repeat("=", len(s.Program)))
	}
	writeSection(w, "", s.Summary)
	usage := s.Usage
	if usage == "" {
		usage = c.usageLine()
	}
	writeSection(w, "Usage", "  "+usage)
	if s.Positional != nil {
		writeSection(w, "", s.Positional.Help)
	}
	c.writeOptionsUsage(w)
	writeSection(w, "Additional detail", s.Details)
	if len(s.Examples) != 0 {
		fmt.Fprintf(w, "\nExamples:\n")
		for _, e := range s.Examples {
			fmt.Fprintf(w, "  %s\n", e.Example)
			if e.Explanation != "" {
				fmt.Fprint(w, indent(missinggo.Unchomp(e.Explanation), "    "))
			}
		}
	}
	writeSection(w, "Supplemental", s.Addendum)
}

func (c *Command) writeOptionsUsage(w io.Writer) {
	if len(c.options) == 0 {
		return
	}
	fmt.Fprintf(w, "\nOptions and parameters:\n")
	for _, cat := range c.schema.Categories {
		if strings.TrimSpace(cat.Name) != "" {
			fmt.Fprintf(w, "\n%s:\n", cat.Name)
		}
		tw := newUsageTabwriter(w)
		for i := range cat.Options {
			o := &cat.Options[i]
			if o.Internal {
				continue
			}
			fmt.Fprintf(tw, "  %s\t%s\n", o.KeysAndHint(), requiredPrefix(o))
		}
		tw.Flush()
	}
}

func requiredPrefix(o *Option) string {
	help := strings.Join(strings.Fields(o.Help), " ")
	if help == "" {
		return ""
	}
	if o.Required {
		return "Mandatory. " + help
	}
	return "Optional. " + help
}

func indent(s, prefix string) string {
	lines := strings.SplitAfter(s, "\n")
	for i, l := range lines {
		if strings.TrimSpace(l) != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "")
}

// WriteErrors writes diagnostics from a failed parse, followed by a hint to
// ask for help if program is known.
func WriteErrors(w io.Writer, program string, errs []string) {
	if len(errs) == 0 {
		return
	}
	if len(errs) > 1 {
		fmt.Fprintf(w, "Error(s):\n\n")
	} else {
		fmt.Fprintf(w, "Error:\n\n")
	}
	for _, e := range errs {
		fmt.Fprintln(w, e)
	}
	if program != "" {
		fmt.Fprintf(w, "\nFor usage instructions, try: %[1]s -h (or %[1]s --help)\n", program)
	}
}
