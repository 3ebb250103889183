package vectorize

import (
	"encoding/json"
	"fmt"
	"sort"
)

// TokenScore is a [token, score] pair. It marshals as a two-element JSON
// array to stay wire-compatible with the pretrained-model exporter.
type TokenScore struct {
	Token string
	Score float64
}

// MarshalJSON encodes the pair as ["token", score].
func (p TokenScore) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Token, p.Score})
}

// UnmarshalJSON decodes ["token", score].
func (p *TokenScore) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 2 {
		return fmt.Errorf("token score pair must have 2 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &p.Token); err != nil {
		return fmt.Errorf("invalid token in pair: %w", err)
	}
	if err := json.Unmarshal(raw[1], &p.Score); err != nil {
		return fmt.Errorf("invalid score in pair: %w", err)
	}
	return nil
}

// Snapshot is the lossless serialized form of a natively fitted
// vectorizer: everything needed to restore transform behavior and to
// re-fit later.
type Snapshot struct {
	Vocabulary        []string     `json:"vocabulary"`
	IDFScores         []TokenScore `json:"idfScores"`
	DocumentFrequency []TokenScore `json:"documentFrequency"`
	DocumentCount     int          `json:"documentCount"`
}

// Snapshot captures the full internal state. Token lists are sorted so
// snapshots of equal state are byte-identical.
func (v *Vectorizer) Snapshot() Snapshot {
	vocab := make([]string, 0, len(v.vocabulary))
	for tok := range v.vocabulary {
		vocab = append(vocab, tok)
	}
	sort.Strings(vocab)

	idf := make([]TokenScore, 0, len(vocab))
	df := make([]TokenScore, 0, len(vocab))
	for _, tok := range vocab {
		idf = append(idf, TokenScore{Token: tok, Score: v.idf[tok]})
		df = append(df, TokenScore{Token: tok, Score: float64(v.docFreq[tok])})
	}

	return Snapshot{
		Vocabulary:        vocab,
		IDFScores:         idf,
		DocumentFrequency: df,
		DocumentCount:     v.docCount,
	}
}

// FromSnapshot restores a fully refittable vectorizer.
func FromSnapshot(s Snapshot) *Vectorizer {
	v := New()
	for _, tok := range s.Vocabulary {
		v.vocabulary[tok] = struct{}{}
	}
	for _, p := range s.IDFScores {
		v.idf[p.Token] = p.Score
	}
	for _, p := range s.DocumentFrequency {
		v.docFreq[p.Token] = int(p.Score)
	}
	v.docCount = s.DocumentCount
	return v
}

// FromForeign builds a transform-only vectorizer from an imported
// vocabulary and its IDF scores. Document frequencies are not part of a
// foreign export, so the result reports ErrNotRefittable from Fit.
func FromForeign(vocabulary []string, idfScores []TokenScore) *Vectorizer {
	v := New()
	for _, tok := range vocabulary {
		v.vocabulary[tok] = struct{}{}
	}
	for _, p := range idfScores {
		v.idf[p.Token] = p.Score
	}
	v.refittable = false
	return v
}
