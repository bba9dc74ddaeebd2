package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perr "sailormouth/internal/platform/errors"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParse_TrimsLowercasesAndSkipsBlanks(t *testing.T) {
	in := "Bad\n  worse  \n\nBAD\r\nf.ck\n"
	words, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"bad", "worse", "bad", "f.ck"}, words)
}

func TestParse_HashLinesAreWords(t *testing.T) {
	words, err := Parse(strings.NewReader("#Hashtag\n# two words\nheck\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"#hashtag", "# two words", "heck"}, words)
}

func TestDefault_IsBundled(t *testing.T) {
	words := Default()
	require.NotEmpty(t, words)
	assert.Contains(t, words, "damn")
	for _, w := range words {
		assert.Equal(t, strings.ToLower(strings.TrimSpace(w)), w)
		assert.False(t, strings.HasPrefix(w, "#"))
	}
}

func TestLoad_Text(t *testing.T) {
	p := writeFile(t, t.TempDir(), "mine.txt", "heck\ndarn\n")
	words, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"heck", "darn"}, words)
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()

	p := writeFile(t, dir, "mine.yaml", "words:\n  - Heck\n  - ' darn '\n  - ''\n")
	words, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"heck", "darn"}, words)

	p = writeFile(t, dir, "bare.yml", "- gosh\n- golly\n")
	words, err = Load(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"gosh", "golly"}, words)

	p = writeFile(t, dir, "empty.yaml", "")
	words, err = Load(p)
	require.NoError(t, err)
	assert.Empty(t, words)

	p = writeFile(t, dir, "broken.yaml", "words: [unterminated\n")
	_, err = Load(p)
	require.Error(t, err)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeWordList))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.True(t, perr.IsCode(err, perr.ErrorCodeWordList))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, filepath.Join("lists", "x.txt"), Resolve("lists", "x.txt"))
	assert.Equal(t, "other/x.txt", Resolve("lists", "other/x.txt"))
	assert.Equal(t, "x.txt", Resolve("", "x.txt"))
	assert.Equal(t, "", Resolve("lists", ""))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	words, err := Open(dir, "")
	require.NoError(t, err)
	assert.Equal(t, Default(), words)

	// default name falls back to the bundled list when not on disk
	words, err = Open(dir, DefaultName)
	require.NoError(t, err)
	assert.Equal(t, Default(), words)

	// and prefers the file when present
	writeFile(t, dir, DefaultName, "only\n")
	words, err = Open(dir, DefaultName)
	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, words)

	_, err = Open(dir, "missing.txt")
	assert.True(t, perr.IsCode(err, perr.ErrorCodeWordList))
}
