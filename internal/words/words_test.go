package words

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNormalizes(t *testing.T) {
	d := New([]string{" crane ", "TRACE", "crane", "toolong", "abc", "ab1de", "Trace", "robot"})
	assert.Equal(t, []string{"CRANE", "TRACE", "ROBOT"}, d.Words())
	assert.True(t, d.Contains("crane"))
	assert.False(t, d.Contains("abc"))
}

func TestReadSkipsComments(t *testing.T) {
	d, err := Read(strings.NewReader("# header\nabove\n\nabout\n#acorn\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ABOVE", "ABOUT"}, d.Words())
}

func TestReadEmpty(t *testing.T) {
	_, err := Read(strings.NewReader("no\nwordz1\nhere!\n# words\ntoolong\n"))
	assert.ErrorIs(t, err, ErrEmpty)

	path := filepath.Join(t.TempDir(), "junk.txt")
	require.NoError(t, os.WriteFile(path, []byte("no\nwordz1\n"), 0o644))
	_, err = LoadFile(path)
	assert.ErrorIs(t, err, ErrEmpty)
	assert.Equal(t, Default().Words(), Load(path).Words())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words_5.txt")
	require.NoError(t, os.WriteFile(path, []byte("retry\nrobot\n"), 0o644))

	d := Load(path)
	assert.Equal(t, []string{"RETRY", "ROBOT"}, d.Words())
}

func TestLoadFallsBackToDefault(t *testing.T) {
	d := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Greater(t, d.Len(), 0)
	for _, w := range []string{"ABOVE", "ABOUT", "ACORN", "AFOOT", "AFORE"} {
		assert.True(t, d.Contains(w), w)
	}

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	assert.Equal(t, Default().Len(), Load(empty).Len())
}

func TestDefaultIsClean(t *testing.T) {
	d := Default()
	seen := map[string]bool{}
	for _, w := range d.Words() {
		assert.Len(t, w, 5)
		assert.Equal(t, strings.ToUpper(w), w)
		assert.False(t, seen[w], "duplicate %s", w)
		seen[w] = true
	}
}

func TestOrdered(t *testing.T) {
	d := New([]string{"ROBOT", "ABOVE", "CRANE", "TRACE", "LLAMA", "ERROR"})

	assert.Equal(t, []string{"ABOVE", "CRANE", "ERROR", "LLAMA", "ROBOT", "TRACE"}, d.Ordered(OrderAlpha, 0))
	assert.Equal(t, d.Words(), d.Ordered(OrderSource, 0))

	a := d.Ordered(OrderShuffle, 42)
	b := d.Ordered(OrderShuffle, 42)
	assert.Equal(t, a, b)
	assert.ElementsMatch(t, d.Words(), a)

	// Callers own the returned slice.
	a[0] = "XXXXX"
	assert.False(t, d.Contains("XXXXX"))
	assert.NotEqual(t, "XXXXX", d.Ordered(OrderShuffle, 42)[0])
}

func TestParseOrder(t *testing.T) {
	o, err := ParseOrder("ALPHA")
	require.NoError(t, err)
	assert.Equal(t, OrderAlpha, o)

	o, err = ParseOrder("")
	require.NoError(t, err)
	assert.Equal(t, OrderShuffle, o)

	_, err = ParseOrder("entropy")
	assert.Error(t, err)
}

func TestRandom(t *testing.T) {
	d := New([]string{"RETRY"})
	assert.Equal(t, "RETRY", d.Random())
	assert.Equal(t, "CRANE", New(nil).Random())
}
