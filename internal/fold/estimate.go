package fold

import (
	"math"
	"unicode/utf8"
)

// tokensPerChar is the character-to-token divisor: ~4 chars per token for
// English prose, ~3.5 for code, 3.75 as the middle ground. Stored counts
// are only comparable across runs if this exact divisor is kept.
const tokensPerChar = 3.75

// EstimateTokens estimates the token count of text from its length in
// runes. A cheap proxy, not a real tokenizer. Never returns less than 1,
// so even an empty summary costs something in the bookkeeping.
func EstimateTokens(text string) int {
	n := utf8.RuneCountInString(text)
	return max(1, int(math.Round(float64(n)/tokensPerChar)))
}
