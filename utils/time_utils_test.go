package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInterval(t *testing.T) {
	f, s, err := GetInterval("01.03.2024-31.03.2024")
	require.NoError(t, err)
	require.NotNil(t, f)
	require.NotNil(t, s)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local), *f)
	assert.Equal(t, time.Date(2024, time.March, 31, 0, 0, 0, 0, time.Local), *s)

	f, s, err = GetInterval("01.03.2024")
	require.NoError(t, err)
	assert.NotNil(t, f)
	assert.Nil(t, s)

	f, s, err = GetInterval("-31.03.2024")
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.NotNil(t, s)

	f, s, err = GetInterval("")
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.Nil(t, s)
}

func TestGetIntervalErrors(t *testing.T) {
	_, _, err := GetInterval("2024-03-01")
	assert.Error(t, err)

	_, _, err = GetInterval("31.03.2024-01.03.2024")
	assert.Error(t, err)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	for _, v := range []string{"2024-03-05", "05.03.2024", "03/05/2024", "3/5/2024", " 2024-03-05 "} {
		got, ok := ParseDate(v)
		require.True(t, ok, v)
		assert.True(t, want.Equal(got), v)
	}

	got, ok := ParseDate("Tue Mar 05 2024 00:00:00 GMT+0530 (India Standard Time)")
	require.True(t, ok)
	assert.Equal(t, 5, got.Day())
	assert.Equal(t, time.March, got.Month())

	for _, v := range []string{"", "Date", "Satsang", "32.13.2024"} {
		_, ok := ParseDate(v)
		assert.False(t, ok, v)
	}
}

func TestGetOrString(t *testing.T) {
	s := []string{"a", "b"}
	assert.Equal(t, "b", GetOrString(s, 1, "x"))
	assert.Equal(t, "x", GetOrString(s, 2, "x"))
	assert.Equal(t, "x", GetOrString(s, -1, "x"))
	assert.Equal(t, 1, IndexOf(s, "b"))
	assert.Equal(t, -1, IndexOf(s, "c"))
}
