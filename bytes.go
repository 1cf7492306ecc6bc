package cmdparse

import (
	"encoding"

	"github.com/dustin/go-humanize"
)

// A byte quantity parsed from human readable input, for example 100GB. See
// https://godoc.org/github.com/dustin/go-humanize.
type Bytes int64

var _ encoding.TextUnmarshaler = (*Bytes)(nil)

// ParseBytes is the coercion used for DataTypeBytes.
func ParseBytes(s string) (Bytes, error) {
	ui64, err := humanize.ParseBytes(s)
	if err != nil {
		return 0, err
	}
	return Bytes(ui64), nil
}

func (me *Bytes) UnmarshalText(text []byte) error {
	b, err := ParseBytes(string(text))
	if err != nil {
		return err
	}
	*me = b
	return nil
}

func (me Bytes) Int64() int64 {
	return int64(me)
}

func (me Bytes) String() string {
	return humanize.Bytes(uint64(me))
}
