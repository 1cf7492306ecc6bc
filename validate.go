package cmdparse

// Validator is called after a successful parse, once for each option in
// declaration order, then once with the positional parameters. Returning an
// error vetoes the parse, and the error's text becomes the diagnostic.
type Validator func(Validatee) error

// Validatee is either an OptionOutcome or a PositionalOutcome.
type Validatee interface {
	validatee()
}

type OptionOutcome struct {
	Option *Option
	// The key that matched, such as "-f", or empty if the option wasn't given.
	SuppliedKey string
	Initialized bool
	// As returned by Result.Value.
	Value interface{}
	Raw   []string
}

type PositionalOutcome struct {
	// Whether the schema declares positional parameters at all.
	Declared bool
	Params   []string
}

func (OptionOutcome) validatee()     {}
func (PositionalOutcome) validatee() {}

func (s *optionState) outcome() OptionOutcome {
	return OptionOutcome{
		Option:      s.Option,
		SuppliedKey: s.suppliedKey,
		Initialized: s.initialized,
		Value:       s.value(),
		Raw:         append([]string(nil), s.raw...),
	}
}
