package tenderscan

import "regexp"

var oddLotPattern = regexp.MustCompile(`(?i)odd lot`)

// ContainsOddLotProvision reports whether text mentions "odd lot" in any
// letter case. Only the two words separated by a single space match, so
// "odd-lot" does not.
func ContainsOddLotProvision(text string) bool {
	return oddLotPattern.MatchString(text)
}
