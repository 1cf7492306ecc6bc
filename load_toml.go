package cmdparse

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// LoadTOML compiles a schema from TOML. Categories are [[supported_options]]
// tables, each with [[supported_options.options]].
func LoadTOML(b []byte) (*Command, error) {
	var d schemaDoc
	if _, err := toml.Decode(string(b), &d); err != nil {
		return nil, errors.Wrap(err, "decoding toml schema")
	}
	return d.compile()
}

var _ toml.Unmarshaler = (*stringList)(nil)

func (sl *stringList) UnmarshalTOML(data interface{}) error {
	if vs, ok := data.([]interface{}); ok {
		ss := stringList{}
		for _, v := range vs {
			s, err := tomlScalar(v)
			if err != nil {
				return err
			}
			ss = append(ss, s)
		}
		*sl = ss
		return nil
	}
	s, err := tomlScalar(data)
	if err != nil {
		return err
	}
	*sl = stringList{s}
	return nil
}

func tomlScalar(v interface{}) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case int64, float64, bool:
		return fmt.Sprint(v), nil
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format("2006-01-02"), nil
		}
		return v.Format(time.RFC3339), nil
	}
	return "", errors.Errorf("default values must be scalars, got %T", v)
}
