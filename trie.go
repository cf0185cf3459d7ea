package trie

import (
	"iter"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// rootChar marks the root node. It never takes part in a word.
const rootChar = '^'

// Trie is a dictionary of words stored as a prefix tree keyed on single runes.
//
// Removing a word only unmarks the node its path ends at. Nodes are never
// detached, so a prefix shared with other words, or a word added again later,
// reuses the existing path.
type Trie struct {
	root                      *node
	mu                        sync.RWMutex
	count                     int
	normalised, caseSensitive bool
}

// New creates a new empty trie. By default words are folded to lower case and
// diacritics are kept as given.
func New() *Trie {
	t := new(Trie)
	t.root = newNode(rootChar, false)
	t.CaseInsensitive()
	t.WithoutNormalisation()
	return t
}

// WithNormalisation sets the Trie to strip diacritics from every word it is
// given. For example, Jürg is stored and looked up as Jurg.
func (t *Trie) WithNormalisation() *Trie {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.normalised = true
	return t
}

// WithoutNormalisation sets the Trie to keep diacritics, so Jurg and Jürg are
// different words.
func (t *Trie) WithoutNormalisation() *Trie {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.normalised = false
	return t
}

// CaseSensitive sets the Trie to store and compare words as given.
func (t *Trie) CaseSensitive() *Trie {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.caseSensitive = true
	return t
}

// CaseInsensitive sets the Trie to fold every word to lower case.
func (t *Trie) CaseInsensitive() *Trie {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.caseSensitive = false
	return t
}

// AddWord stores word. It returns false if word is empty or already stored.
func (t *Trie) AddWord(word string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.addWord(word)
}

// AddWords stores each of words and returns how many of them were new.
func (t *Trie) AddWords(words ...string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	added := 0
	for _, word := range words {
		if t.addWord(word) {
			added++
		}
	}
	return added
}

// addWord performs the insertion without locking.
func (t *Trie) addWord(word string) bool {
	rs := []rune(t.normalise(word))
	if len(rs) == 0 {
		return false
	}
	if n, ok := t.find(rs); ok && n.terminal {
		return false
	}
	current := t.root
	for i, r := range rs {
		next, ok := current.child(r)
		if !ok {
			current.addChild(chain(rs[i:]))
			t.count++
			return true
		}
		current = next
	}
	// the path is already there, left behind by a longer word or a removal
	current.terminal = true
	t.count++
	return true
}

// RemoveWord unmarks word. It returns false if word is not stored.
func (t *Trie) RemoveWord(word string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	rs := []rune(t.normalise(word))
	if len(rs) == 0 {
		return false
	}
	last := len(rs) - 1
	parent, ok := t.find(rs[:last])
	if !ok {
		return false
	}
	n, ok := parent.child(rs[last])
	if !ok || !n.terminal {
		return false
	}
	parent.removeChild(rs[last])
	t.count--
	return true
}

// ContainsWord reports whether word is stored.
func (t *Trie) ContainsWord(word string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n, ok := t.find([]rune(t.normalise(word)))
	return ok && n.terminal
}

// ContainsPrefix reports whether prefix begins at least one stored word,
// counting prefix itself. Paths left behind by removed words do not count.
func (t *Trie) ContainsPrefix(prefix string) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	n, ok := t.find([]rune(t.normalise(prefix)))
	return ok && n.hasWord()
}

// NumWords returns the number of stored words.
func (t *Trie) NumWords() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.count
}

// Words returns every stored word in lexicographic order of runes.
//
// The Trie is read locked while the sequence is being ranged over, so the
// loop body must not call any method of the Trie. Mutators deadlock at once,
// and queries can deadlock against a writer waiting for the lock.
func (t *Trie) Words() iter.Seq[string] {
	return t.WordsWithPrefix("")
}

// WordsWithPrefix returns, in lexicographic order, every stored word that
// begins with prefix, including prefix itself if it is stored. The same
// locking rules as Words apply.
func (t *Trie) WordsWithPrefix(prefix string) iter.Seq[string] {
	return func(yield func(string) bool) {
		t.mu.RLock()
		defer t.mu.RUnlock()
		rs := []rune(t.normalise(prefix))
		start, ok := t.find(rs)
		if !ok {
			return
		}
		if start.terminal && !yield(string(rs)) {
			return
		}
		walk(start, rs, yield)
	}
}

// walk yields the words below n in pre-order: each child's word, if any, then
// everything under that child, before moving on to the next sibling.
func walk(n *node, prefix []rune, yield func(string) bool) bool {
	for c := range n.all() {
		word := append(prefix, c.char)
		if c.terminal && !yield(string(word)) {
			return false
		}
		if !walk(c, word, yield) {
			return false
		}
	}
	return true
}

// find returns the node at the end of path. The empty path is the root.
func (t *Trie) find(path []rune) (*node, bool) {
	current := t.root
	for _, r := range path {
		next, ok := current.child(r)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// chain builds a fresh line of nodes spelling rs, marking the last one as the
// end of a word, and returns its head.
func chain(rs []rune) *node {
	head := newNode(rs[len(rs)-1], true)
	for i := len(rs) - 2; i >= 0; i-- {
		n := newNode(rs[i], false)
		n.addChild(head)
		head = n
	}
	return head
}

// normalise applies the Trie's normalisation and case settings to word.
func (t *Trie) normalise(word string) string {
	if t.normalised {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		if normal, _, err := transform.String(transformer, word); err == nil {
			word = normal
		}
	}
	if !t.caseSensitive {
		word = cases.Lower(language.Und).String(word)
	}
	return word
}
