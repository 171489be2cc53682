package ordering

import (
	"sort"
	"strings"
)

var dessertSynonyms = map[string]string{
	"oreo mcflurry":         "McFlurry with Oreo",
	"mcflurry with oreo":    "McFlurry with Oreo",
	"m m s mcflurry":        "McFlurry with M&M's",
	"mcflurry with m m s":   "McFlurry with M&M's",
	"soft serve cone":       "Soft Serve Cone",
	"soft serve":            "Soft Serve Cone",
	"ice cream":             "Soft Serve Cone",
	"apple pie":             "Apple Pie",
	"cookie":                "Chocolate Chip Cookie",
	"chocolate chip cookie": "Chocolate Chip Cookie",
	"sundae":                "Sundae",
}

// synonymPhrases holds the synonym keys longest first so "mcflurry with oreo" beats "oreo".
var synonymPhrases = func() []string {
	keys := make([]string, 0, len(dessertSynonyms))
	for k := range dessertSynonyms {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// MatchDessert maps free text or a loose dessert name onto one of the catalog dessert
// names. Exact synonyms win, then names containing the text, then phrases found inside it.
func MatchDessert(text string, desserts []string) (string, bool) {
	key := Normalize(text)
	if key == "" {
		return "", false
	}

	known := func(name string) bool {
		for _, d := range desserts {
			if d == name {
				return true
			}
		}
		return false
	}

	if canon, ok := dessertSynonyms[key]; ok && known(canon) {
		return canon, true
	}
	for _, d := range desserts {
		if strings.Contains(Normalize(d), key) {
			return d, true
		}
	}
	for _, d := range desserts {
		if containsPhrase(key, Normalize(d)) {
			return d, true
		}
	}
	for _, phrase := range synonymPhrases {
		if canon := dessertSynonyms[phrase]; containsPhrase(key, phrase) && known(canon) {
			return canon, true
		}
	}
	return "", false
}

// containsPhrase reports whether phrase occurs in text on word boundaries.
func containsPhrase(text, phrase string) bool {
	return strings.Contains(" "+text+" ", " "+phrase+" ")
}
