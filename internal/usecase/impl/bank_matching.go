// Package impl contains the implementation of the application's business logic.
package impl

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// nameMatchThreshold is the minimum token-sort similarity (0-100) for an
// account holder or director name to count as a match. The sandbox's mock
// bank hands out fixed holder names, so verification there runs against a
// near-zero bar.
const (
	nameMatchThreshold        = 80
	sandboxNameMatchThreshold = 5
)

// normalizeSortCode strips everything but digits, so "04-11-34" and
// "041134" compare equal.
func normalizeSortCode(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ukIBANParts extracts the sort code and account number embedded in a UK
// IBAN (GBkk BBBB SSSSSS AAAAAAAA). Returns empty strings for anything that
// is not a well-formed GB IBAN.
func ukIBANParts(iban string) (sortCode, accountNumber string) {
	cleaned := strings.ToUpper(strings.ReplaceAll(iban, " ", ""))
	if len(cleaned) != 22 || !strings.HasPrefix(cleaned, "GB") {
		return "", ""
	}

	return cleaned[8:14], cleaned[14:22]
}

// accountNumbersMatch reports whether the submitted sort code and account
// number identify the verified account. The comparison is exact after
// normalization; when the direct pair does not match, the sort code and
// account number derived from a UK IBAN are tried as a fallback.
func accountNumbersMatch(submittedSortCode, submittedAccountNumber, verifiedSortCode, verifiedAccountNumber, iban string) bool {
	subSort := normalizeSortCode(submittedSortCode)
	subAcct := strings.TrimSpace(submittedAccountNumber)
	verSort := normalizeSortCode(verifiedSortCode)
	verAcct := strings.TrimSpace(verifiedAccountNumber)

	if subSort != "" && subAcct != "" && subSort == verSort && subAcct == verAcct {
		return true
	}

	ibanSort, ibanAcct := ukIBANParts(iban)
	if ibanSort == "" {
		return false
	}

	return subSort == ibanSort && subAcct == ibanAcct
}

// normalizeName prepares a legal name for fuzzy comparison: uppercase,
// whitespace collapsed, common company-suffix spellings unified.
func normalizeName(raw string) string {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	upper = strings.ReplaceAll(upper, "&", " AND ")

	tokens := strings.Fields(upper)
	for i, token := range tokens {
		switch strings.Trim(token, ".,") {
		case "LTD", "LTD.":
			tokens[i] = "LIMITED"
		default:
			tokens[i] = strings.Trim(token, ".,")
		}
	}

	return strings.Join(tokens, " ")
}

// tokenSortRatio is a word-order-insensitive similarity score from 0 to
// 100: both names are normalized, their tokens sorted, and the Levenshtein
// distance of the joined strings converted to a percentage.
func tokenSortRatio(a, b string) int {
	sortedA := sortTokens(normalizeName(a))
	sortedB := sortTokens(normalizeName(b))

	if sortedA == "" && sortedB == "" {
		return 0
	}
	if sortedA == sortedB {
		return 100
	}

	distance := levenshtein.ComputeDistance(sortedA, sortedB)
	longest := len([]rune(sortedA))
	if l := len([]rune(sortedB)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0
	}

	score := 100 - (100*distance)/longest
	if score < 0 {
		return 0
	}

	return score
}

func sortTokens(normalized string) string {
	tokens := strings.Fields(normalized)
	sort.Strings(tokens)

	return strings.Join(tokens, " ")
}

// bestNameScore returns the highest token-sort similarity between the
// candidate name and any of the holder names on the verified account.
func bestNameScore(candidate string, holderNames []string) int {
	best := 0
	for _, holder := range holderNames {
		if score := tokenSortRatio(candidate, holder); score > best {
			best = score
		}
	}

	return best
}
