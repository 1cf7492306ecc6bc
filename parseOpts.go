package cmdparse

import (
	"log/slog"
)

// ParseOpt configures a Session.
type ParseOpt func(s *Session)

// Don't treat -h and --help specially. They are then matched like any other
// option.
func NoDefaultHelp() ParseOpt {
	return func(s *Session) {
		s.noDefaultHelp = true
	}
}

// Only start collecting positional parameters once no tokens that look like
// options remain, so that "a -b" is an unsupported option rather than two
// positional parameters.
func StrictPositional() ParseOpt {
	return func(s *Session) {
		s.strictPositional = true
	}
}

// Runs v over the resolved options and positional parameters after a
// successful parse.
func WithValidator(v Validator) ParseOpt {
	return func(s *Session) {
		s.validator = v
	}
}

// Sets the logger for debug tracing. By default nothing is logged.
func WithLogger(l *slog.Logger) ParseOpt {
	return func(s *Session) {
		s.logger = l
	}
}
