package leveltool

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRCFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "input")
	require.NoError(t, os.WriteFile(file, []byte("123456789"), 0o644))

	// Standard IEEE check value for "123456789".
	crc, err := crcFile(file)
	require.NoError(t, err)
	assert.Equal(t, "CBF43926", crc)

	_, err = crcFile(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}

func TestCRCInputs(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.WriteFile(a, []byte("aaa"), 0o644))
	require.NoError(t, os.WriteFile(b, []byte("bbb"), 0o644))

	one, err := crcInputs(a, b)
	require.NoError(t, err)

	// Stable across calls, sensitive to content and order.
	again, err := crcInputs(a, b)
	require.NoError(t, err)
	assert.Equal(t, one, again)

	swapped, err := crcInputs(b, a)
	require.NoError(t, err)
	assert.NotEqual(t, one, swapped)

	require.NoError(t, os.WriteFile(a, []byte("changed"), 0o644))
	changed, err := crcInputs(a, b)
	require.NoError(t, err)
	assert.NotEqual(t, one, changed)
}
