package trie

import (
	"errors"
	"io"
	"iter"
)

// ErrNotSupported is returned by matchers the Trie does not implement.
var ErrNotSupported = errors.New("trie: not supported")

// Lexicon is a set of words that can be queried by exact word and by prefix
// and listed in order.
type Lexicon interface {
	AddWord(word string) bool
	AddWords(words ...string) int
	AddWordsFrom(r io.Reader) (int, error)
	AddWordsFromFile(path string) (int, error)
	RemoveWord(word string) bool
	NumWords() int
	ContainsWord(word string) bool
	ContainsPrefix(prefix string) bool
	Words() iter.Seq[string]
	WordsWithPrefix(prefix string) iter.Seq[string]
	SuggestCorrections(target string, maxDistance int) ([]string, error)
	MatchRegex(pattern string) ([]string, error)
}

var _ Lexicon = (*Trie)(nil)

// SuggestCorrections is not implemented and always returns ErrNotSupported.
func (t *Trie) SuggestCorrections(target string, maxDistance int) ([]string, error) {
	return nil, ErrNotSupported
}

// MatchRegex is not implemented and always returns ErrNotSupported.
func (t *Trie) MatchRegex(pattern string) ([]string, error) {
	return nil, ErrNotSupported
}
