package cmdparse

import (
	"fmt"

	"github.com/pkg/errors"
)

// ConfigError reports a schema that contradicts itself. It is raised before
// any argument is looked at, and is meant for the author of the schema rather
// than the user of the program.
type ConfigError struct {
	msg string
}

func (ce ConfigError) Error() string {
	return ce.msg
}

func configErrorf(format string, a ...interface{}) ConfigError {
	return ConfigError{fmt.Sprintf(format, a...)}
}

// IsConfigError reports whether err, or the error it wraps, is a ConfigError.
func IsConfigError(err error) bool {
	_, ok := errors.Cause(err).(ConfigError)
	return ok
}
