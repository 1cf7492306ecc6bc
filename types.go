package cmdparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DataType is the optional type an option's values are coerced to.
type DataType int

const (
	// Values are kept as the strings given.
	DataTypeNone DataType = iota
	DataTypeInt
	DataTypeDecimal
	DataTypeDate
	// Human readable byte quantities, such as 100MB. See Bytes.
	DataTypeBytes
)

var dataTypeNames = map[DataType]string{
	DataTypeNone:    "",
	DataTypeInt:     "int",
	DataTypeDecimal: "decimal",
	DataTypeDate:    "date",
	DataTypeBytes:   "bytes",
}

func (dt DataType) String() string {
	if s, ok := dataTypeNames[dt]; ok {
		return s
	}
	return fmt.Sprintf("DataType(%d)", int(dt))
}

// ParseDataType maps a schema keyword to a DataType. The empty string is
// DataTypeNone.
func ParseDataType(s string) (DataType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for dt, name := range dataTypeNames {
		if name == s {
			return dt, nil
		}
	}
	return DataTypeNone, configErrorf("unknown datatype: %q", s)
}

var dataTypeCoercers = map[DataType]func(string) (interface{}, error){}

func addCoercer[T any](dt DataType, f func(string) (T, error)) {
	dataTypeCoercers[dt] = func(s string) (interface{}, error) {
		v, err := f(s)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

func init() {
	addCoercer(DataTypeInt, strconv.Atoi)
	addCoercer(DataTypeDecimal, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
	addCoercer(DataTypeDate, ParseDate)
	addCoercer(DataTypeBytes, ParseBytes)
}

// Coerce converts a raw value to dt. DataTypeNone returns s unchanged.
func (dt DataType) Coerce(s string) (interface{}, error) {
	f, ok := dataTypeCoercers[dt]
	if !ok {
		return s, nil
	}
	return f(s)
}

type dateLayout struct {
	re               *regexp.Regexp
	year, month, day int
}

// Year first, or month first. Separators may be -, / or . and needn't match.
var dateLayouts = []dateLayout{
	{regexp.MustCompile(`^([0-9]{2,4})[-/.]([0-9]{1,2})[-/.]([0-9]{1,2})$`), 1, 2, 3},
	{regexp.MustCompile(`^([0-9]{1,2})[-/.]([0-9]{1,2})[-/.]([0-9]{2,4})$`), 3, 1, 2},
}

// ParseDate accepts YYYY-M-D and M-D-YYYY, with 2 to 4 digit years. Nothing
// else is recognized.
func ParseDate(s string) (time.Time, error) {
	for _, l := range dateLayouts {
		ss := l.re.FindStringSubmatch(s)
		if ss == nil {
			continue
		}
		y, _ := strconv.Atoi(ss[l.year])
		m, _ := strconv.Atoi(ss[l.month])
		d, _ := strconv.Atoi(ss[l.day])
		t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
		if t.Year() != y || t.Month() != time.Month(m) || t.Day() != d {
			// Only the first matching shape is tried, so 12/31/19 fails.
			break
		}
		return t, nil
	}
	return time.Time{}, fmt.Errorf("not a date: %q", s)
}
