package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	v, err := GetSimpleText(r, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", v)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("partial"))

	v, err := GetSimpleText(r, "Prompt", &out)
	require.NoError(t, err)
	assert.Equal(t, "partial", v)
}

func TestGetWithDefault_KeepsCurrentOnEmptyInput(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("\n"))

	v, err := GetWithDefault(r, "Business name", "Acme", &out)
	require.NoError(t, err)
	assert.Equal(t, "Acme", v)
	assert.Contains(t, out.String(), "[Acme]")
}

func TestGetWithDefault_OverridesWithInput(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("Globex\n"))

	v, err := GetWithDefault(r, "Business name", "Acme", &out)
	require.NoError(t, err)
	assert.Equal(t, "Globex", v)
}

func TestGetPassword_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("hunter22"), nil }
	defer func() { readPassword = orig }()

	var out bytes.Buffer
	pw, err := GetPassword(&out, "Enter password")
	require.NoError(t, err)
	assert.Equal(t, "hunter22", pw)
	assert.Contains(t, out.String(), "Enter password")
}
