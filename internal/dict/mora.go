package dict

import (
	"strings"

	"golang.org/x/text/width"
)

// smallKana never forms a mora of its own: the small vowels and the glide
// kana of yōon digraphs (キャ, シュ, ...) attach to the preceding character.
// The sokuon ッ and the prolonged sound mark ー do count as morae.
const smallKana = "ァィゥェォャュョヮゃゅょぁぃぅぇぉゎ"

// CountMorae counts the morae of a katakana reading. Half-width katakana is
// widened first so that readings pasted from legacy sources size the same as
// their full-width equivalents. Non-kana runes count one mora each.
func CountMorae(reading string) int {
	n := 0
	for _, r := range width.Widen.String(reading) {
		if !strings.ContainsRune(smallKana, r) {
			n++
		}
	}
	return n
}

// flatAccentPattern renders an all-high accent pattern for a reading of the
// given mora count, with the accent position suffix fixed to 0 (heiban). One
// '1' per mora, e.g. "1111@0" for a four-mora reading.
func flatAccentPattern(morae int) string {
	return strings.Repeat("1", morae) + "@0"
}
