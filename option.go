package cmdparse

import (
	"fmt"
	"strings"

	"github.com/bradfitz/iter"
)

// Kind selects how an option consumes tokens.
type Kind int

const (
	// No value. Present means true.
	Flag Kind = iota
	// Exactly one value.
	Value
	// Several values, governed by the option's Cardinality.
	List
)

func (k Kind) String() string {
	switch k {
	case Flag:
		return "flag"
	case Value:
		return "value"
	case List:
		return "list"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type cardinalityKind int

const (
	exactly cardinalityKind = iota
	atMost
	unlimited
)

// Cardinality governs how many values a List option captures.
type Cardinality struct {
	kind cardinalityKind
	n    int
}

// Exactly captures n values, whatever they look like. Tokens such as "--other"
// are taken as values, so a user who supplies too few values will have a
// following option swallowed. Schema authors should prefer AtMost where that
// matters.
func Exactly(n int) Cardinality {
	return Cardinality{exactly, n}
}

// AtMost captures up to n values, stopping early at any token starting with a
// dash.
func AtMost(n int) Cardinality {
	return Cardinality{atMost, n}
}

// Unlimited captures values until a token starting with a dash, or the end of
// input. Without a following option or "--", it consumes what would otherwise
// be positional parameters.
func Unlimited() Cardinality {
	return Cardinality{kind: unlimited}
}

// Count is the bound for Exactly and AtMost, and -1 for Unlimited.
func (c Cardinality) Count() int {
	if c.kind == unlimited {
		return -1
	}
	return c.n
}

func (c Cardinality) String() string {
	switch c.kind {
	case exactly:
		return fmt.Sprintf("exactly %d", c.n)
	case atMost:
		return fmt.Sprintf("at-most %d", c.n)
	}
	return "no-limit"
}

// ParseCardinality maps the schema keywords exactly, at-most and no-limit to a
// Cardinality. A nil count means 1 for exactly and at-most.
func ParseCardinality(keyword string, count *int) (Cardinality, error) {
	n := 1
	if count != nil {
		n = *count
	}
	switch strings.ToLower(strings.TrimSpace(keyword)) {
	case "", "exactly":
		return Exactly(n), nil
	case "at-most":
		return AtMost(n), nil
	case "no-limit":
		return Unlimited(), nil
	}
	return Cardinality{}, configErrorf("unknown multi_type: %q", keyword)
}

// Option describes one command-line option. Values are only read after the
// option is compiled into a Command.
type Option struct {
	// Identifies the option when looking up its value.
	Name string
	// "v" for -v.
	Short string
	// "verbose" for --verbose.
	Long string
	// Placeholder for the value in usage, as in --file <path>.
	Hint     string
	Required bool
	// Hidden from usage.
	Internal bool
	// Raw default values. Nil means no default. Ignored for Flag options. A
	// default also satisfies Required.
	Default  []string
	DataType DataType
	Kind     Kind
	// Only used by List options.
	Cardinality Cardinality
	Help        string
}

// Keys formats the option keys as they are reported in diagnostics, as in
// -f/--file.
func (o *Option) Keys() string {
	var ss []string
	if o.Short != "" {
		ss = append(ss, "-"+o.Short)
	}
	if o.Long != "" {
		ss = append(ss, "--"+o.Long)
	}
	return strings.Join(ss, "/")
}

func (o *Option) matches(key string) bool {
	return key != "" && (key == o.Short || key == o.Long)
}

type acceptResult int

const (
	accepted acceptResult = iota
	ignored
	rejected
)

// The per-session state for an Option.
type optionState struct {
	*Option
	// The key token actually matched, such as "-f". Empty until matched.
	suppliedKey string
	initialized bool
	raw         []string
	values      []interface{}
}

func newOptionState(o *Option, defaults []interface{}) *optionState {
	s := &optionState{Option: o}
	switch {
	case o.Kind == Flag:
		s.initialized = true
		s.values = []interface{}{false}
	case o.Default != nil:
		s.initialized = true
		s.raw = append([]string(nil), o.Default...)
		s.values = append([]interface{}(nil), defaults...)
	}
	return s
}

// A bool for Flag, the coerced value or nil for Value, and a non-nil slice for
// List.
func (s *optionState) value() interface{} {
	switch s.Kind {
	case Flag:
		return s.values[0]
	case Value:
		if len(s.values) == 0 {
			return nil
		}
		return s.values[0]
	}
	return append([]interface{}{}, s.values...)
}

func (s *optionState) accept(ts *Tokens) (acceptResult, string) {
	if ts.Len() == 0 {
		return ignored, ""
	}
	key := ts.Peek()
	if !looksLikeOption(key) || !s.matches(strings.TrimLeft(key, "-")) {
		return ignored, ""
	}
	if s.suppliedKey != "" {
		return rejected, fmt.Sprintf("Duplicate option: %s already specified", key)
	}
	switch s.Kind {
	case Flag:
		s.suppliedKey = ts.Pop()
		s.values = []interface{}{true}
		return accepted, ""
	case Value, List:
		if ts.Len() < 2 {
			return rejected, fmt.Sprintf("%s: requires a value, which was not supplied", key)
		}
		s.suppliedKey = ts.Pop()
		var raw []string
		if s.Kind == Value {
			raw = []string{ts.Pop()}
		} else {
			raw = s.popList(ts)
			if s.Cardinality.kind == exactly && len(raw) != s.Cardinality.n {
				return rejected, fmt.Sprintf("%s: expected %d parameters but only found %d",
					s.suppliedKey, s.Cardinality.n, len(raw))
			}
		}
		values, msg := s.coerce(raw)
		if msg != "" {
			return rejected, msg
		}
		s.raw = raw
		s.values = values
		s.initialized = true
		return accepted, ""
	}
	panic(s.Kind)
}

func (s *optionState) popList(ts *Tokens) (raw []string) {
	c := s.Cardinality
	if c.kind == exactly {
		for range iter.N(c.n) {
			if ts.Len() == 0 {
				break
			}
			raw = append(raw, ts.Pop())
		}
		return
	}
	for ts.Len() != 0 && !strings.HasPrefix(ts.Peek(), "-") {
		if c.kind == atMost && len(raw) == c.n {
			break
		}
		raw = append(raw, ts.Pop())
	}
	return
}

func (s *optionState) coerce(raw []string) (values []interface{}, msg string) {
	values = make([]interface{}, 0, len(raw))
	for _, r := range raw {
		v, err := s.DataType.Coerce(r)
		if err != nil {
			return nil, fmt.Sprintf("%s: %s has incorrect data type: expected %s", s.suppliedKey, r, s.DataType)
		}
		values = append(values, v)
	}
	return
}
