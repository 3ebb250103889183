// Package text provides tokenization and normalization for transaction
// descriptions, plus the amount-bucket feature.
package text

import (
	"regexp"
	"strings"
)

// NumToken replaces every run of digits in the input. Keeping a single
// generic token preserves the "contains a number" signal without letting
// literal amounts and reference numbers explode the vocabulary.
const NumToken = "num"

// minTokenLen drops fragments like "rs", "to", "of" that carry no signal.
const minTokenLen = 3

var (
	digitRun = regexp.MustCompile(`[0-9]+`)
	nonWord  = regexp.MustCompile(`[^a-z ]+`)

	stopwords = map[string]struct{}{
		"the": {}, "and": {}, "for": {}, "with": {}, "from": {},
		"payment": {}, "paid": {}, "via": {}, "upi": {}, "txn": {},
		"transaction": {}, "ref": {}, "transfer": {}, "debit": {},
		"credit": {}, "card": {}, "online": {}, "pvt": {}, "ltd": {},
	}
)

// Tokenize normalizes a transaction description into a token sequence:
// lower-case, digit runs collapsed to NumToken, punctuation stripped,
// whitespace split, short tokens and stopwords discarded.
//
// Pure and deterministic: token order only affects term-frequency
// counting downstream, never the normalized result.
func Tokenize(s string) []string {
	if s == "" {
		return nil
	}

	lower := strings.ToLower(s)
	lower = digitRun.ReplaceAllString(lower, " "+NumToken+" ")
	lower = nonWord.ReplaceAllString(lower, " ")

	fields := strings.Fields(lower)
	tokens := make([]string, 0, len(fields))
	for _, tok := range fields {
		if len(tok) < minTokenLen {
			continue
		}
		if _, stop := stopwords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// TermFrequency counts occurrences of each token.
func TermFrequency(tokens []string) map[string]int {
	tf := make(map[string]int, len(tokens))
	for _, tok := range tokens {
		tf[tok]++
	}
	return tf
}
