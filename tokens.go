package cmdparse

import (
	"regexp"
	"strings"

	"github.com/ef-ds/deque"
	"github.com/google/shlex"
	"github.com/pkg/errors"
)

const endOfOptions = "--"

// One or two dashes followed by a word character. Anything with three or more
// leading dashes is left alone.
var optionMarker = regexp.MustCompile(`^--?\w`)

func looksLikeOption(s string) bool {
	return optionMarker.MatchString(s)
}

// Lex splits s the way a shell would, keeping quoted substrings together.
func Lex(s string) ([]string, error) {
	ret, err := shlex.Split(s)
	if err != nil {
		return nil, errors.Wrapf(err, "splitting %q", s)
	}
	return ret, nil
}

// Normalize expands bundled short options and splits key=value forms, so that
// every option key and every value is its own token. Once "--" is seen the
// rest is passed through untouched.
//
//	-abc=foo   -> -a -b -c foo
//	--foo=bar  -> --foo bar
//	--foo=     -> --foo ""
func Normalize(args []string) (ret []string) {
	ret = make([]string, 0, len(args))
	for i, a := range args {
		if a == endOfOptions {
			ret = append(ret, args[i:]...)
			return
		}
		switch {
		case !looksLikeOption(a):
			ret = append(ret, a)
		case strings.HasPrefix(a, "--"):
			ret = append(ret, splitLong(a)...)
		default:
			ret = append(ret, splitShort(a)...)
		}
	}
	return
}

func splitLong(a string) []string {
	i := strings.IndexByte(a, '=')
	if i == -1 {
		return []string{a}
	}
	return []string{a[:i], a[i+1:]}
}

func splitShort(a string) (ret []string) {
	body := a[1:]
	value, hasValue := "", false
	if i := strings.IndexByte(body, '='); i != -1 {
		body, value, hasValue = body[:i], body[i+1:], true
	}
	for _, r := range body {
		ret = append(ret, "-"+string(r))
	}
	if hasValue {
		ret = append(ret, value)
	}
	return
}

// Tokens is a cursor over normalized arguments. The first argument is popped
// first.
type Tokens struct {
	q deque.Deque
	// Count of queued tokens that start with a dash.
	dashed int
}

func NewTokens(args []string) *Tokens {
	ts := &Tokens{}
	for _, a := range args {
		ts.q.PushBack(a)
		if strings.HasPrefix(a, "-") {
			ts.dashed++
		}
	}
	return ts
}

func (ts *Tokens) Len() int {
	return ts.q.Len()
}

// Peek returns the front token, or "" if there are none.
func (ts *Tokens) Peek() string {
	v, ok := ts.q.Front()
	if !ok {
		return ""
	}
	return v.(string)
}

// Pop removes and returns the front token, or "" if there are none.
func (ts *Tokens) Pop() string {
	v, ok := ts.q.PopFront()
	if !ok {
		return ""
	}
	s := v.(string)
	if strings.HasPrefix(s, "-") {
		ts.dashed--
	}
	return s
}

// PopAll drains the cursor, returning the tokens in their original order.
func (ts *Tokens) PopAll() (ret []string) {
	for ts.Len() != 0 {
		ret = append(ret, ts.Pop())
	}
	return
}

// HasOptions reports whether any remaining token starts with a dash.
func (ts *Tokens) HasOptions() bool {
	return ts.dashed != 0
}
