package cmdparse

import (
	"encoding"
	"fmt"
	"net"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/bradfitz/iter"
	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// Bind copies the values of a successful Result into the struct pointed to by
// dst.
//
// A field is bound to the option named by its "name" tag, or else to an
// option named after the field: DataDir matches "dataDir" or "data_dir".
// A []string field tagged type:"pos" receives the positional parameters.
// Unmatched struct fields are searched recursively, other unmatched fields
// are left alone, as are fields of Value options that have no value.
//
// Values are converted to the field's type where that makes sense. Numbers
// convert to other numeric types. Strings are parsed for *url.URL,
// *net.TCPAddr, time.Duration and net.IP, and otherwise go through
// encoding.TextUnmarshaler or fmt.Sscan.
func (r *Result) Bind(dst interface{}) error {
	if !r.Ok() {
		return errors.Errorf("can't bind a %s result", r.Outcome)
	}
	v := reflect.ValueOf(dst)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return errors.Errorf("expected pointer to struct, got %T", dst)
	}
	return r.bindStruct(v.Elem())
}

func (r *Result) bindStruct(st reflect.Value) (err error) {
	foreachStructField(st, func(f reflect.Value, sf reflect.StructField) (stop bool) {
		if sf.PkgPath != "" {
			return false
		}
		if sf.Tag.Get("type") == "pos" {
			err = assign(f, stringsToInterfaces(r.Positional))
			err = errors.Wrapf(err, "binding positional parameters to %s", sf.Name)
			return err != nil
		}
		if name, ok := r.fieldOption(sf); ok {
			v, _ := r.Value(name)
			err = assign(f, v)
			err = errors.Wrapf(err, "binding option %q to %s", name, sf.Name)
			return err != nil
		}
		if f.Kind() == reflect.Struct {
			err = r.bindStruct(f)
			return err != nil
		}
		return false
	})
	return
}

func (r *Result) fieldOption(sf reflect.StructField) (string, bool) {
	candidates := []string{sf.Tag.Get("name")}
	if candidates[0] == "" {
		candidates = []string{fieldOptionName(sf.Name), xstrings.ToSnakeCase(sf.Name)}
	}
	for _, c := range candidates {
		if _, ok := r.cmd.Option(c); ok {
			return c, true
		}
	}
	return "", false
}

func foreachStructField(_struct reflect.Value, f func(fv reflect.Value, sf reflect.StructField) (stop bool)) {
	t := _struct.Type()
	for i := range iter.N(t.NumField()) {
		if f(_struct.Field(i), t.Field(i)) {
			break
		}
	}
}

// Turn a struct field name into an option name. In particular this lower
// cases leading acronyms, and the first capital letter.
func fieldOptionName(fieldName string) string {
	// TCP
	if ss := regexp.MustCompile("^[[:upper:]]{2,}$").FindStringSubmatch(fieldName); ss != nil {
		return strings.ToLower(ss[0])
	}
	// TCPAddr
	if ss := regexp.MustCompile("^([[:upper:]]+)([[:upper:]][^[:upper:]].*?)$").FindStringSubmatch(fieldName); ss != nil {
		return strings.ToLower(ss[1]) + ss[2]
	}
	// Addr
	if ss := regexp.MustCompile("^([[:upper:]])(.*)$").FindStringSubmatch(fieldName); ss != nil {
		return strings.ToLower(ss[1]) + ss[2]
	}
	return fieldName
}

func stringsToInterfaces(ss []string) []interface{} {
	ret := make([]interface{}, 0, len(ss))
	for _, s := range ss {
		ret = append(ret, s)
	}
	return ret
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func assign(v reflect.Value, x interface{}) error {
	if x == nil {
		return nil
	}
	if s, ok := x.(string); ok {
		if f, ok := typeUnmarshalFuncs[v.Type()]; ok {
			return f(v, s)
		}
	}
	if xs, ok := x.([]interface{}); ok {
		if v.Kind() != reflect.Slice {
			return fmt.Errorf("can't set %d values into %s", len(xs), v.Type())
		}
		s := reflect.MakeSlice(v.Type(), len(xs), len(xs))
		for i := range iter.N(len(xs)) {
			if err := assign(s.Index(i), xs[i]); err != nil {
				return err
			}
		}
		v.Set(s)
		return nil
	}
	if v.Kind() == reflect.Slice {
		return assign(v, []interface{}{x})
	}
	xv := reflect.ValueOf(x)
	switch {
	case xv.Type().AssignableTo(v.Type()):
		v.Set(xv)
		return nil
	case isNumeric(xv.Kind()) && isNumeric(v.Kind()):
		v.Set(xv.Convert(v.Type()))
		return nil
	case xv.Kind() == v.Kind() && xv.Type().ConvertibleTo(v.Type()):
		v.Set(xv.Convert(v.Type()))
		return nil
	}
	if s, ok := x.(string); ok {
		return unmarshalString(v, s)
	}
	return fmt.Errorf("can't set %s from %T", v.Type(), x)
}

var typeUnmarshalFuncs = map[reflect.Type]func(v reflect.Value, s string) error{}

func addUnmarshalFunc[T any](f func(string) (T, error)) {
	typeUnmarshalFuncs[reflect.TypeOf((*T)(nil)).Elem()] = func(v reflect.Value, s string) error {
		t, err := f(s)
		if err != nil {
			return err
		}
		v.Set(reflect.ValueOf(t))
		return nil
	}
}

func init() {
	addUnmarshalFunc(url.Parse)
	addUnmarshalFunc(func(s string) (*net.TCPAddr, error) {
		return net.ResolveTCPAddr("tcp", s)
	})
	addUnmarshalFunc(time.ParseDuration)
	addUnmarshalFunc(func(s string) (net.IP, error) {
		ip := net.ParseIP(s)
		if ip == nil {
			return nil, fmt.Errorf("invalid IP address: %q", s)
		}
		return ip, nil
	})
}

// The fallback for raw strings, that attempts encoding.TextUnmarshaler and
// then fmt.Sscan.
func unmarshalString(v reflect.Value, s string) error {
	if tu, ok := v.Addr().Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(s))
	}
	n, err := fmt.Sscan(s, v.Addr().Interface())
	if err != nil {
		return fmt.Errorf("error parsing %q: %s", s, err)
	}
	if n != 1 {
		panic(n)
	}
	return nil
}
