package puzzle

import (
	"strings"
	"sync"
)

// WordListService is a curated English word corpus used as the
// default dictionary source for a solver session when the caller
// does not supply its own word list.
type WordListService struct {
	mu    sync.RWMutex
	words map[string]struct{}
}

// NewWordListService builds a WordListService from the built-in word
// corpus.
func NewWordListService() *WordListService {
	wls := &WordListService{words: make(map[string]struct{}, len(baseWordList))}
	wls.loadBaseWordList()
	return wls
}

func (wls *WordListService) loadBaseWordList() {
	wls.mu.Lock()
	defer wls.mu.Unlock()
	for _, word := range baseWordList {
		wls.words[strings.ToUpper(word)] = struct{}{}
	}
}

// HasWord reports whether word (case-insensitive) is in the corpus.
func (wls *WordListService) HasWord(word string) bool {
	wls.mu.RLock()
	defer wls.mu.RUnlock()
	_, ok := wls.words[strings.ToUpper(word)]
	return ok
}

// WordCount returns the number of words in the corpus.
func (wls *WordListService) WordCount() int {
	wls.mu.RLock()
	defer wls.mu.RUnlock()
	return len(wls.words)
}

// AllWords returns every word in the corpus, lowercased, in no
// particular order. It seeds a solver's dictionary
// (pkg/wfc.NewDictionary) with a sensible default when a session is
// created without an explicit word list.
func (wls *WordListService) AllWords() []string {
	wls.mu.RLock()
	defer wls.mu.RUnlock()
	out := make([]string, 0, len(wls.words))
	for word := range wls.words {
		out = append(out, strings.ToLower(word))
	}
	return out
}

// baseWordList is a curated set of common English words spanning
// 3 to 8 letters, large enough to fill small-to-medium grids without
// requiring every caller to upload their own dictionary.
var baseWordList = []string{
	// 3-letter words
	"ACE", "ACT", "ADD", "AGE", "AID", "AIM", "AIR", "ALL", "AND", "ANT",
	"ANY", "APE", "ARC", "ARE", "ARK", "ARM", "ART", "ASK", "ATE", "AWE",
	"AXE", "BAD", "BAG", "BAR", "BAT", "BED", "BEE", "BET", "BIG", "BIT",
	"BOW", "BOX", "BOY", "BUD", "BUG", "BUS", "BUT", "BUY", "CAB", "CAN",
	"CAP", "CAR", "CAT", "COB", "COD", "COG", "COP", "COT", "COW", "CRY",
	"CUB", "CUD", "CUP", "CUT", "DAB", "DAD", "DAM", "DAY", "DEN", "DEW",
	"DID", "DIG", "DIM", "DIP", "DOC", "DOE", "DOG", "DOT", "DRY", "DUB",
	"DUD", "DUE", "DUG", "EAR", "EAT", "EEL", "EGG", "ELF", "ELK", "ELM",
	"EMU", "END", "ERA", "EVE", "EWE", "EYE", "FAN", "FAR", "FAT", "FAX",
	"FED", "FEE", "FEW", "FIG", "FIN", "FIR", "FIT", "FIX", "FLY", "FOB",
	// 4-letter words
	"ABLE", "ACHE", "ACID", "ACRE", "AGED", "ALSO", "AMID", "ANTI", "ARCH",
	"ARMY", "ATOM", "AUTO", "BABY", "BACK", "BAKE", "BALL", "BAND", "BANK",
	"BARK", "BARN", "BASE", "BATH", "BEAR", "BEAT", "BEEN", "BEER", "BELL",
	"BELT", "BEND", "BENT", "BEST", "BETA", "BIKE", "BILL", "BIND", "BIRD",
	"BITE", "BLOW", "BLUE", "BOAT", "BODY", "BOIL", "BOLD", "BOLT", "BOMB",
	"BOND", "BONE", "BOOK", "BOOM", "BOOT", "BORN", "BOSS", "BOTH", "BOWL",
	"BRAG", "BREW", "BUCK", "BULB", "BULK", "BULL", "BUMP", "BURN", "BURY",
	"BUSH", "BUSY", "CAFE", "CAGE", "CAKE", "CALF", "CALL", "CALM", "CAME",
	"CAMP", "CARD", "CARE", "CART", "CASE", "CASH", "CAST", "CAVE", "CELL",
	"CHEF", "CHEW", "CHIP", "CHOP", "CITY", "CLAM", "CLAP", "CLAW", "CLAY",
	// 5-letter words
	"ABOUT", "ABOVE", "ACTOR", "ADAPT", "ADMIT", "ADOPT", "ADULT", "AFTER",
	"AGAIN", "AGENT", "AGREE", "AHEAD", "ALARM", "ALBUM", "ALERT", "ALIEN",
	"ALIGN", "ALIKE", "ALIVE", "ALLEY", "ALLOW", "ALONE", "ALONG", "ALPHA",
	"ALTER", "AMONG", "ANGEL", "ANGER", "ANGLE", "ANGRY", "APART", "APPLE",
	"APPLY", "ARENA", "ARGUE", "ARISE", "ARMOR", "AROMA", "ARRAY", "ARROW",
	"ASIDE", "ASSET", "ATLAS", "AUDIO", "AUDIT", "AVOID", "AWAIT", "AWAKE",
	"AWARD", "AWARE", "BADLY", "BAKER", "BASIC", "BASIN", "BASIS", "BATCH",
	"BEACH", "BEARD", "BEAST", "BEGAN", "BEGIN", "BEING", "BELLY", "BELOW",
	"BENCH", "BERRY", "BIBLE", "BLACK", "BLADE", "BLAME", "BLANK", "BLAST",
	"BLAZE", "BLEED", "BLEND", "BLESS", "BLIND", "BLOCK", "BLOOD", "BLOOM",
	// 6-letter words
	"ABROAD", "ABSENT", "ABSORB", "ACCENT", "ACCEPT", "ACCESS", "ACCORD",
	"ACCUSE", "ACTION", "ACTIVE", "ACTUAL", "ADVICE", "ADVISE", "AFFAIR",
	"AFFECT", "AFFORD", "AFRAID", "AGENDA", "AGREED", "ALMOST", "ALWAYS",
	"AMOUNT", "ANIMAL", "ANNUAL", "ANSWER", "ANYONE", "APPEAL", "APPEAR",
	"ARTIST", "ASSUME", "ATTACK", "ATTEND", "AUTHOR", "AVENUE", "BACKED",
	"BACKUP", "BANNER", "BARREL", "BASKET", "BATTLE", "BEAUTY", "BECAME",
	"BECOME", "BEFORE", "BEHALF", "BEHIND", "BELIEF", "BELONG", "BESIDE",
	"BETTER", "BEYOND", "BISHOP", "BITTER", "BORDER",
	// 7-letter words
	"ABANDON", "ABILITY", "ABSENCE", "ACCOUNT", "ACHIEVE", "ACQUIRE", "ADDRESS",
	"ADVANCE", "AGAINST", "ALCOHOL", "ALREADY", "ANCIENT", "ANOTHER", "ANXIETY",
	"ANYBODY", "ANYWAYS", "APPLIED", "APPROVE", "ARTICLE", "ASSAULT", "ATTEMPT",
	"ATTRACT", "AVERAGE", "BACKING", "BALANCE", "BANKING", "BARGAIN", "BARRIER",
	"BATTERY", "BEATING", "BECAUSE", "BEDROOM", "BELIEVE", "BENEFIT",
	"BESIDES", "BIGGEST", "BILLION", "BINDING", "BLANKET", "BLOCKED", "BOOKING",
	// 8-letter words
	"BASEBALL", "ABSOLUTE", "ACADEMIC", "ACCIDENT", "ACCURATE", "ACTIVITY",
	"ADEQUATE", "ADVOCATE", "AIRCRAFT", "ALTHOUGH", "AMERICAN", "ANALYSIS",
}
