package trie

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// AddWordsFrom reads one word per line from r and stores each of them.
// Surrounding whitespace is trimmed and blank lines are skipped. It returns
// how many words were new; words read before a read error stay stored.
func (t *Trie) AddWordsFrom(r io.Reader) (int, error) {
	added := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if t.AddWord(word) {
			added++
		}
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("reading words: %w", err)
	}
	return added, nil
}

// AddWordsFromFile stores every word in the named file, one word per line.
func (t *Trie) AddWordsFromFile(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening word list %s: %w", path, err)
	}
	defer f.Close()
	added, err := t.AddWordsFrom(f)
	if err != nil {
		return added, fmt.Errorf("%s: %w", path, err)
	}
	return added, nil
}
