package wfc

import (
	"sort"
	"strings"
)

// EnglishAlphabet is the canonical a-z alphabet.
const EnglishAlphabet = "abcdefghijklmnopqrstuvwxyz"

// HungarianAlphabet is the canonical extended Hungarian alphabet.
const HungarianAlphabet = "aábcdeéfghiíjklmnoóöőpqrstuúüűvwxyz"

// DictionaryConfig configures Dictionary loading.
type DictionaryConfig struct {
	Alphabet  string // unique lowercase letters this dictionary is restricted to
	MaxLength int    // 0 means unbounded
}

// Dictionary owns the alphabet, the accepted word list, and a
// length-indexed lookup table (byLen) used by pattern matching.
//
// byLen is additionally indexed per position/letter with posting lists
// (sorted indices into byLen[length]) so that MatchesPattern and
// Frequencies intersect small sets instead of scanning every word of a
// given length, per the propagator-efficiency design note.
type Dictionary struct {
	alphabet map[rune]bool
	byLen    map[int][]string
	postings map[int][]map[rune][]int // byLen[length][position][letter] -> sorted word indices
	lookup   map[int]map[string]bool  // byLen[length] as a set, for O(1) validity checks
}

// NewDictionary loads words from an iterable word source. A word is
// retained iff it is non-empty, composed only of alphabet letters, and
// (if MaxLength is given) no longer than it. Words are case-folded to
// lower before the alphabet check. Load order is preserved within each
// length bucket.
func NewDictionary(words []string, cfg DictionaryConfig) *Dictionary {
	alphabet := make(map[rune]bool, len(cfg.Alphabet))
	for _, r := range cfg.Alphabet {
		alphabet[r] = true
	}

	d := &Dictionary{
		alphabet: alphabet,
		byLen:    make(map[int][]string),
		postings: make(map[int][]map[rune][]int),
		lookup:   make(map[int]map[string]bool),
	}

	for _, raw := range words {
		w := strings.ToLower(strings.TrimSpace(raw))
		if w == "" {
			continue
		}
		if cfg.MaxLength > 0 && len(w) > cfg.MaxLength {
			continue
		}
		if !d.allInAlphabet(w) {
			continue
		}
		d.byLen[len(w)] = append(d.byLen[len(w)], w)
	}

	for length, bucket := range d.byLen {
		d.postings[length] = buildPostings(bucket, length)
		set := make(map[string]bool, len(bucket))
		for _, w := range bucket {
			set[w] = true
		}
		d.lookup[length] = set
	}

	return d
}

// Contains reports whether word is in the dictionary for its length.
func (d *Dictionary) Contains(word string) bool {
	return d.lookup[len(word)][word]
}

func (d *Dictionary) allInAlphabet(word string) bool {
	for _, r := range word {
		if !d.alphabet[r] {
			return false
		}
	}
	return true
}

func buildPostings(bucket []string, length int) []map[rune][]int {
	postings := make([]map[rune][]int, length)
	for i := range postings {
		postings[i] = make(map[rune][]int)
	}
	for idx, word := range bucket {
		for pos, r := range word {
			postings[pos][r] = append(postings[pos][r], idx)
		}
	}
	return postings
}

// Alphabet reports whether letter is part of the dictionary's declared
// alphabet.
func (d *Dictionary) Alphabet(letter rune) bool {
	return d.alphabet[letter]
}

// WordsOfLength returns every retained word of the given length, in
// load order. An unknown length returns nil, never an error.
func (d *Dictionary) WordsOfLength(length int) []string {
	return d.byLen[length]
}

// MatchesPattern returns every word of the given length whose letter at
// position i is admissible under classes[i], in insertion order.
// classes must have exactly `length` entries. An unknown length returns
// an empty, non-nil slice.
func (d *Dictionary) MatchesPattern(length int, classes []map[rune]int) []string {
	indices := d.matchingIndices(length, classes)
	if indices == nil {
		return []string{}
	}
	bucket := d.byLen[length]
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = bucket[idx]
	}
	return out
}

// Frequencies returns, for each position i, the count of how many
// dictionary words of length len(classes) have each admissible letter
// at position i, counting only words that also satisfy every other
// position's class. This is the hot-path query updateWordOptions uses:
// it needs frequencies, not the matching word list itself.
func (d *Dictionary) Frequencies(classes []map[rune]int) []map[rune]int {
	length := len(classes)
	freq := make([]map[rune]int, length)
	for i := range freq {
		freq[i] = make(map[rune]int)
	}

	indices := d.matchingIndices(length, classes)
	if indices == nil {
		return freq
	}
	bucket := d.byLen[length]
	for _, idx := range indices {
		word := bucket[idx]
		for pos, r := range word {
			freq[pos][r]++
		}
	}
	return freq
}

// matchingIndices intersects per-position posting lists for every
// position whose class is a strict subset of the alphabet, then
// verifies the remaining (unconstrained) positions the slow way. It
// returns nil if there is no byLen bucket for length.
func (d *Dictionary) matchingIndices(length int, classes []map[rune]int) []int {
	postings, ok := d.postings[length]
	if !ok {
		return nil
	}
	bucket := d.byLen[length]

	var candidates []int
	initialized := false

	for pos, class := range classes {
		admissible := admissibleLetters(class)
		if len(admissible) >= len(d.alphabet) {
			// Unconstrained position: matches everything, skip to keep
			// the posting-list union small.
			continue
		}
		var union []int
		for _, letter := range admissible {
			union = mergeSorted(union, postings[pos][letter])
		}
		if !initialized {
			candidates = union
			initialized = true
		} else {
			candidates = intersectSorted(candidates, union)
		}
		if len(candidates) == 0 {
			return []int{}
		}
	}

	if !initialized {
		// No position constrained the search; every word of this length
		// is a candidate.
		candidates = make([]int, len(bucket))
		for i := range bucket {
			candidates[i] = i
		}
	}

	// Verify fully: posting-list unions already narrow by class
	// membership per position, but double-check every position in case
	// a caller passes a class that isn't a clean subset filter.
	out := candidates[:0:0]
	for _, idx := range candidates {
		word := bucket[idx]
		if wordMatchesClasses(word, classes) {
			out = append(out, idx)
		}
	}
	return out
}

func admissibleLetters(class map[rune]int) []rune {
	letters := make([]rune, 0, len(class))
	for l, w := range class {
		if w > 0 {
			letters = append(letters, l)
		}
	}
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	return letters
}

func wordMatchesClasses(word string, classes []map[rune]int) bool {
	i := 0
	for _, r := range word {
		if w, ok := classes[i][r]; !ok || w <= 0 {
			return false
		}
		i++
	}
	return true
}

func mergeSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

func intersectSorted(a, b []int) []int {
	out := make([]int, 0, minInt(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
