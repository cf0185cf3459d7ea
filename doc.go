/*
Package trie provides a lexicon: a dictionary of words stored as a prefix tree.
It supports adding and removing words, exact word and prefix membership tests,
and listing the stored words, or those under a prefix, in lexicographic order.
Words are folded to lower case by default and may optionally have their
diacritics stripped.
*/
package trie
