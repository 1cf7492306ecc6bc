package cmdparse

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Session holds the state of parsing one command line against a Command. A
// Session is not safe for concurrent use; use one per goroutine, or call
// Command.Parse which makes its own.
type Session struct {
	cmd *Command

	noDefaultHelp    bool
	strictPositional bool
	validator        Validator
	logger           *slog.Logger

	id         uuid.UUID
	options    []*optionState
	positional []string
	errors     []string
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (c *Command) NewSession(opts ...ParseOpt) *Session {
	s := &Session{
		cmd:    c,
		logger: discardLogger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

// Reset discards all state from a previous parse. Results already returned
// are unaffected.
func (s *Session) Reset() {
	s.id = uuid.New()
	s.options = make([]*optionState, len(s.cmd.options))
	for i, o := range s.cmd.options {
		s.options[i] = newOptionState(o, s.cmd.defaults[i])
	}
	s.positional = nil
	s.errors = nil
}

// Parse parses already split arguments. It doesn't expect the program name.
func (c *Command) Parse(args []string, opts ...ParseOpt) *Result {
	return c.NewSession(opts...).Parse(args)
}

// ParseString splits line like a shell would, then parses it.
func (c *Command) ParseString(line string, opts ...ParseOpt) *Result {
	return c.NewSession(opts...).ParseString(line)
}

func (s *Session) ParseString(line string) *Result {
	args, err := Lex(line)
	if err != nil {
		s.Reset()
		s.appendError(fmt.Sprintf("Can't split command line: %s", err))
		return s.result(ParseError)
	}
	return s.Parse(args)
}

// Parse resets the session and parses args.
func (s *Session) Parse(args []string) *Result {
	s.Reset()
	s.logger.Debug("parsing", "session", s.id, "args", args)
	var ts *Tokens
	if len(s.options) == 0 {
		ts = NewTokens(args)
	} else {
		ts = NewTokens(Normalize(args))
	}
	r := s.parse(ts)
	s.logger.Debug("parsed", "session", s.id, "outcome", r.Outcome, "errors", r.Errors)
	return r
}

func isHelp(tok string) bool {
	tok = strings.ToLower(tok)
	return tok == "-h" || tok == "--help"
}

func (s *Session) parse(ts *Tokens) *Result {
	if out, ok := s.scan(ts); !ok {
		return s.result(out)
	}
	if ts.Len() != 0 && !s.cmd.hasPositional() {
		s.appendError(fmt.Sprintf("Don't understand: %q", ts.PopAll()))
		return s.result(ParseError)
	}
	var missing []string
	for _, o := range s.options {
		if o.Required && !o.initialized {
			missing = append(missing, o.Keys())
		}
	}
	if len(missing) != 0 {
		s.appendError(fmt.Sprintf("Mandatory option(s) not provided: %s", strings.Join(missing, ", ")))
		return s.result(MissingMandatoryArg)
	}
	if err := s.validate(); err != nil {
		s.appendError(err.Error())
		return s.result(ParseError)
	}
	return s.result(Success)
}

// Consumes tokens until the end, "--", or the start of positional parameters.
// ok is false if parsing ended with out.
func (s *Session) scan(ts *Tokens) (out Outcome, ok bool) {
	for ts.Len() != 0 {
		tok := ts.Peek()
		if !s.noDefaultHelp && isHelp(tok) {
			return ShowUsage, false
		}
		if tok == endOfOptions {
			ts.Pop()
			s.capturePositional(ts)
			return Success, true
		}
		if len(s.options) == 0 && s.cmd.hasPositional() {
			s.capturePositional(ts)
			return Success, true
		}
		res, msg := s.offer(ts)
		switch res {
		case accepted:
			continue
		case rejected:
			s.appendError(msg)
			return ParseError, false
		}
		if !looksLikeOption(tok) && s.cmd.hasPositional() && !(s.strictPositional && ts.HasOptions()) {
			s.capturePositional(ts)
			return Success, true
		}
		s.appendError(fmt.Sprintf("Unsupported option: '%s'", tok))
		return ParseError, false
	}
	return Success, true
}

// Offers the tokens to each option in turn, stopping at the first that
// doesn't ignore them.
func (s *Session) offer(ts *Tokens) (acceptResult, string) {
	for _, o := range s.options {
		res, msg := o.accept(ts)
		if res == ignored {
			continue
		}
		if res == accepted {
			s.logger.Debug("accepted option", "session", s.id, "name", o.Name, "key", o.suppliedKey, "raw", o.raw)
		}
		return res, msg
	}
	return ignored, ""
}

// Does nothing if the schema doesn't declare positional parameters, leaving
// the tokens to be reported.
func (s *Session) capturePositional(ts *Tokens) {
	if !s.cmd.hasPositional() {
		return
	}
	s.positional = append(s.positional, ts.PopAll()...)
	s.logger.Debug("captured positional parameters", "session", s.id, "params", s.positional)
}

func (s *Session) validate() error {
	if s.validator == nil {
		return nil
	}
	for _, o := range s.options {
		if err := s.validator(o.outcome()); err != nil {
			return err
		}
	}
	return s.validator(PositionalOutcome{
		Declared: s.cmd.hasPositional(),
		Params:   append([]string(nil), s.positional...),
	})
}

func (s *Session) appendError(msg string) {
	s.errors = append(s.errors, msg)
}

func (s *Session) result(out Outcome) *Result {
	r := &Result{
		Outcome: out,
		Errors:  s.errors,
		cmd:     s.cmd,
		options: s.options,
	}
	if s.cmd.hasPositional() {
		r.Positional = s.positional
		if r.Positional == nil {
			r.Positional = []string{}
		}
	}
	return r
}
