package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("  hello world \n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleText_EOF(t *testing.T) {
	got, err := GetSimpleText(rdr("lastline"), "Name?", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", io.Discard)
	require.ErrorIs(t, err, io.EOF)
}

func TestGetOptionalText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetOptionalText(rdr("\n"), "Bio", "collector", &out)
	require.NoError(t, err)
	assert.Equal(t, "collector", got)
	assert.Contains(t, out.String(), "Bio [collector]")

	got, err = GetOptionalText(rdr("trader\n"), "Bio", "collector", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "trader", got)
}

func TestGetNumber(t *testing.T) {
	var out bytes.Buffer
	got, err := GetNumber(rdr("abc\n-2\n3\n"), "Quantity", 1, &out)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
	assert.Equal(t, 2, strings.Count(out.String(), "Please enter a whole number."))

	got, err = GetNumber(rdr("\n"), "Quantity", 1, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	got, err := GetMultiline(rdr("a\nb\n\n\n"), "Enter text", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)

	got, err = GetMultiline(rdr("no newline"), "Enter text", io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetPassword(t *testing.T) {
	oldRead, oldTerm := readPassword, isTerminal
	t.Cleanup(func() { readPassword, isTerminal = oldRead, oldTerm })

	t.Run("terminal", func(t *testing.T) {
		isTerminal = func(int) bool { return true }
		readPassword = func(int) ([]byte, error) { return []byte("secret"), nil }

		pw, err := GetPassword(rdr(""), io.Discard)
		require.NoError(t, err)
		assert.Equal(t, "secret", string(pw))
	})

	t.Run("terminal error", func(t *testing.T) {
		isTerminal = func(int) bool { return true }
		readPassword = func(int) ([]byte, error) { return nil, errors.New("boom") }

		_, err := GetPassword(rdr(""), io.Discard)
		require.Error(t, err)
	})

	t.Run("piped input", func(t *testing.T) {
		isTerminal = func(int) bool { return false }
		readPassword = func(int) ([]byte, error) {
			t.Fatal("terminal must not be read")
			return nil, nil
		}

		pw, err := GetPassword(rdr("piped\n"), io.Discard)
		require.NoError(t, err)
		assert.Equal(t, "piped", string(pw))
	})
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Confirm(rdr(tc.in), "Delete?", io.Discard), "input %q", tc.in)
	}
}
