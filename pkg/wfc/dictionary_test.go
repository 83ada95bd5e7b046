package wfc

import "testing"

func TestNewDictionaryFiltersByAlphabetAndLength(t *testing.T) {
	d := NewDictionary([]string{"Cat", "dog ", "café", "toolong", ""}, DictionaryConfig{
		Alphabet:  EnglishAlphabet,
		MaxLength: 5,
	})

	if !d.Contains("cat") {
		t.Error("cat should be retained (lowercased)")
	}
	if !d.Contains("dog") {
		t.Error("dog should be retained (trimmed)")
	}
	if d.Contains("café") {
		t.Error("café should be dropped, not in alphabet")
	}
	if d.Contains("toolong") {
		t.Error("toolong exceeds MaxLength and should be dropped")
	}
}

func TestDictionaryWordsOfLengthUnknownIsNil(t *testing.T) {
	d := NewDictionary([]string{"cat"}, DictionaryConfig{Alphabet: EnglishAlphabet})
	if got := d.WordsOfLength(9); got != nil {
		t.Errorf("WordsOfLength(9) = %v, want nil", got)
	}
}

func fullClass(alphabet string) map[rune]int {
	class := make(map[rune]int)
	for _, r := range alphabet {
		class[r] = 1
	}
	return class
}

func TestDictionaryMatchesPatternConstrained(t *testing.T) {
	d := NewDictionary([]string{"cat", "car", "cot", "dog"}, DictionaryConfig{Alphabet: EnglishAlphabet})

	classes := []map[rune]int{
		{'c': 1},
		fullClass(EnglishAlphabet),
		fullClass(EnglishAlphabet),
	}

	got := d.MatchesPattern(3, classes)
	want := map[string]bool{"cat": true, "car": true, "cot": true}
	if len(got) != len(want) {
		t.Fatalf("MatchesPattern = %v, want exactly %v", got, want)
	}
	for _, w := range got {
		if !want[w] {
			t.Errorf("unexpected match %q", w)
		}
	}
}

func TestDictionaryFrequenciesCountsPerPosition(t *testing.T) {
	d := NewDictionary([]string{"cat", "car", "cot"}, DictionaryConfig{Alphabet: EnglishAlphabet})

	classes := []map[rune]int{
		fullClass(EnglishAlphabet),
		fullClass(EnglishAlphabet),
		fullClass(EnglishAlphabet),
	}
	freq := d.Frequencies(classes)

	if freq[0]['c'] != 3 {
		t.Errorf("freq[0]['c'] = %d, want 3", freq[0]['c'])
	}
	if freq[1]['a'] != 2 || freq[1]['o'] != 1 {
		t.Errorf("freq[1] = %v, want a:2 o:1", freq[1])
	}
	if freq[2]['t'] != 2 || freq[2]['r'] != 1 {
		t.Errorf("freq[2] = %v, want t:2 r:1", freq[2])
	}
}

func TestDictionaryFrequenciesRespectsOtherPositionsConstraint(t *testing.T) {
	d := NewDictionary([]string{"cat", "car", "cot"}, DictionaryConfig{Alphabet: EnglishAlphabet})

	// Constrain position 2 to 't' only; frequency at position 1 should
	// then only count words ending in t (cat, cot), not car.
	classes := []map[rune]int{
		fullClass(EnglishAlphabet),
		fullClass(EnglishAlphabet),
		{'t': 1},
	}
	freq := d.Frequencies(classes)

	if freq[1]['a'] != 1 || freq[1]['o'] != 1 {
		t.Errorf("freq[1] = %v, want a:1 o:1 (car excluded)", freq[1])
	}
	if _, ok := freq[1]['r']; ok {
		t.Errorf("freq[1] should not mention r once position 2 is pinned to t: %v", freq[1])
	}
}

func TestDictionaryContainsUnknownLength(t *testing.T) {
	d := NewDictionary([]string{"cat"}, DictionaryConfig{Alphabet: EnglishAlphabet})
	if d.Contains("ab") {
		t.Error("ab should not be contained")
	}
}
