package cmdparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerce(t *testing.T) {
	for _, _case := range []struct {
		dt       DataType
		raw      string
		expected interface{}
	}{
		{DataTypeNone, "123", "123"},
		{DataTypeInt, "123", 123},
		{DataTypeInt, "-7", -7},
		{DataTypeDecimal, "456.78", 456.78},
		{DataTypeDecimal, "3", 3.0},
		{DataTypeDate, "2019-12-31", time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC)},
		{DataTypeBytes, "100MB", Bytes(100e6)},
	} {
		actual, err := _case.dt.Coerce(_case.raw)
		require.NoError(t, err, "%v %q", _case.dt, _case.raw)
		assert.EqualValues(t, _case.expected, actual)
	}
	for _, _case := range []struct {
		dt  DataType
		raw string
	}{
		{DataTypeInt, "123.34"},
		{DataTypeInt, ""},
		{DataTypeDecimal, "2019-12-31"},
		{DataTypeDate, "today"},
		{DataTypeBytes, "lots"},
	} {
		_, err := _case.dt.Coerce(_case.raw)
		assert.Error(t, err, "%v %q", _case.dt, _case.raw)
	}
}

func TestParseDate(t *testing.T) {
	date := func(y, m, d int) time.Time {
		return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	}
	for _, _case := range []struct {
		s        string
		expected time.Time
	}{
		{"2019-12-31", date(2019, 12, 31)},
		{"2019/12/31", date(2019, 12, 31)},
		{"2019.1.2", date(2019, 1, 2)},
		{"2019-1/2", date(2019, 1, 2)},
		{"12-31-2019", date(2019, 12, 31)},
		{"1/2/2019", date(2019, 1, 2)},
		{"12/31/2019", date(2019, 12, 31)},
		{"1/2/19", date(19, 1, 2)},
		{"2020-02-29", date(2020, 2, 29)},
	} {
		actual, err := ParseDate(_case.s)
		require.NoError(t, err, _case.s)
		assert.EqualValues(t, _case.expected, actual, _case.s)
	}
	for _, s := range []string{
		"2019-13-01",
		"2019-02-29",
		"12/31/19",
		"2019-12-31T00:00",
		"20191231",
		"notadate",
		"",
	} {
		_, err := ParseDate(s)
		assert.Error(t, err, s)
	}
}

func TestParseDataType(t *testing.T) {
	for _, _case := range []struct {
		s        string
		expected DataType
	}{
		{"", DataTypeNone},
		{"int", DataTypeInt},
		{"INT", DataTypeInt},
		{" decimal ", DataTypeDecimal},
		{"date", DataTypeDate},
		{"bytes", DataTypeBytes},
	} {
		actual, err := ParseDataType(_case.s)
		require.NoError(t, err)
		assert.EqualValues(t, _case.expected, actual)
		assert.EqualValues(t, _case.expected.String(), dataTypeNames[actual])
	}
	_, err := ParseDataType("float")
	assert.True(t, IsConfigError(err))
}

func TestBytes(t *testing.T) {
	var b Bytes
	require.NoError(t, b.UnmarshalText([]byte("100g")))
	assert.EqualValues(t, 100e9, b)
	assert.EqualValues(t, 100e9, b.Int64())
	assert.EqualValues(t, "100 GB", b.String())
	assert.Error(t, b.UnmarshalText([]byte("wat")))
	assert.EqualValues(t, 100e9, b)
}
