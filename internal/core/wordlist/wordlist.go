// Package wordlist loads target word lists from plain text or YAML files
package wordlist

import (
	"bufio"
	"bytes"
	_ "embed"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	perr "sailormouth/internal/platform/errors"
)

// DefaultName is the file name of the bundled list
const DefaultName = "bad_words.txt"

//go:embed bad_words.txt
var embedded []byte

// yamlDoc is the YAML list layout: {words: [...]}
type yamlDoc struct {
	Words []string `yaml:"words"`
}

// Default returns the bundled list
func Default() []string {
	words, _ := Parse(bytes.NewReader(embedded))
	return words
}

// Resolve maps name onto a path. A bare file name is looked up under dir,
// anything with a path separator is used as given
func Resolve(dir, name string) string {
	if name == "" {
		return ""
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(name, filepath.Separator) || dir == "" {
		return name
	}
	return filepath.Join(dir, name)
}

// Open returns the words named by name under dir. An empty name, or the default
// name with no such file on disk, yields the bundled list
func Open(dir, name string) ([]string, error) {
	if name == "" {
		return Default(), nil
	}
	path := Resolve(dir, name)
	if name == DefaultName {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return Default(), nil
		}
	}
	return Load(path)
}

// Load reads path. Files ending in .yaml or .yml are decoded as YAML, everything else
// as one word per line
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeWordList, "open word list %s", path)
	}
	defer f.Close()

	var words []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		words, err = parseYAML(f)
	default:
		words, err = Parse(f)
	}
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeWordList, "word list %s", path)
	}
	return words, nil
}

// Parse reads one word per line. Lines are trimmed and lowercased, blank lines are
// skipped and duplicates are kept. A line starting with # is a word like any other
func Parse(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if w, ok := clean(sc.Text()); ok {
			words = append(words, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeWordList, "read word list")
	}
	return words, nil
}

// parseYAML accepts either {words: [...]} or a bare sequence
func parseYAML(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeWordList, "read word list")
	}

	var raw []string
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeWordList, "decode word list yaml")
	}
	if len(node.Content) == 0 {
		return []string{}, nil
	}
	if node.Content[0].Kind == yaml.SequenceNode {
		err = node.Content[0].Decode(&raw)
	} else {
		var doc yamlDoc
		err = node.Decode(&doc)
		raw = doc.Words
	}
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeWordList, "decode word list yaml")
	}

	words := make([]string, 0, len(raw))
	for _, line := range raw {
		if w, ok := clean(line); ok {
			words = append(words, w)
		}
	}
	return words, nil
}

func clean(line string) (string, bool) {
	w := strings.ToLower(strings.TrimSpace(line))
	return w, w != ""
}
