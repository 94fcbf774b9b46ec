package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSortCode(t *testing.T) {
	assert.Equal(t, "041134", normalizeSortCode("04-11-34"))
	assert.Equal(t, "041134", normalizeSortCode("041134"))
	assert.Equal(t, "041134", normalizeSortCode(" 04 11 34 "))
	assert.Empty(t, normalizeSortCode("no digits"))
}

func TestAccountNumbersMatch(t *testing.T) {
	t.Run("hyphenated sort code matches plain form", func(t *testing.T) {
		assert.True(t, accountNumbersMatch("04-11-34", "12345678", "041134", "12345678", ""))
	})

	t.Run("different account number does not match", func(t *testing.T) {
		assert.False(t, accountNumbersMatch("041134", "12345678", "041134", "87654321", ""))
	})

	t.Run("different sort code does not match", func(t *testing.T) {
		assert.False(t, accountNumbersMatch("041135", "12345678", "041134", "12345678", ""))
	})

	t.Run("uk iban fallback", func(t *testing.T) {
		// Sort code at positions 8-14, account number at 14-22.
		iban := "GB29NWBK60161331926819"
		assert.True(t, accountNumbersMatch("60-16-13", "31926819", "", "", iban))
	})

	t.Run("iban with spaces", func(t *testing.T) {
		iban := "GB29 NWBK 6016 1331 9268 19"
		assert.True(t, accountNumbersMatch("601613", "31926819", "", "", iban))
	})

	t.Run("non-gb iban is ignored", func(t *testing.T) {
		assert.False(t, accountNumbersMatch("601613", "31926819", "", "", "DE89370400440532013000"))
	})

	t.Run("empty submission never matches", func(t *testing.T) {
		assert.False(t, accountNumbersMatch("", "", "", "", ""))
	})
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "ANALYTICAL ENGINES LIMITED", normalizeName("Analytical Engines Ltd"))
	assert.Equal(t, "SMITH AND SONS LIMITED", normalizeName("Smith & Sons Ltd."))
	assert.Equal(t, "ADA LOVELACE", normalizeName("  ada   lovelace "))
}

func TestTokenSortRatio(t *testing.T) {
	t.Run("identical names", func(t *testing.T) {
		assert.Equal(t, 100, tokenSortRatio("Ada Lovelace", "Ada Lovelace"))
	})

	t.Run("word order is ignored", func(t *testing.T) {
		assert.Equal(t, 100, tokenSortRatio("Lovelace Ada", "Ada Lovelace"))
	})

	t.Run("case and suffix spelling are ignored", func(t *testing.T) {
		assert.Equal(t, 100, tokenSortRatio("ANALYTICAL ENGINES LTD", "Analytical Engines Limited"))
	})

	t.Run("small typo stays above threshold", func(t *testing.T) {
		assert.GreaterOrEqual(t, tokenSortRatio("Ada Lovelace", "Ada Lovelase"), nameMatchThreshold)
	})

	t.Run("unrelated names score low", func(t *testing.T) {
		assert.Less(t, tokenSortRatio("Ada Lovelace", "Charles Babbage"), nameMatchThreshold)
	})

	t.Run("empty names score zero", func(t *testing.T) {
		assert.Equal(t, 0, tokenSortRatio("", ""))
		assert.Equal(t, 0, tokenSortRatio("Ada", ""))
	})
}

func TestBestNameScore(t *testing.T) {
	holders := []string{"MR CHARLES BABBAGE", "ADA LOVELACE"}

	assert.Equal(t, 100, bestNameScore("Ada Lovelace", holders))
	assert.Equal(t, 0, bestNameScore("Ada Lovelace", nil))
}
