package vectorize

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"
)

var corpus = []string{
	"swiggy food delivery lunch",
	"uber ride airport",
	"amazon purchase electronics",
	"swiggy dinner order biryani",
}

func fitted(t *testing.T) *Vectorizer {
	t.Helper()
	v := New()
	if err := v.Fit(corpus); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	return v
}

func norm(vec Vector) float64 {
	var sum float64
	for _, w := range vec {
		sum += w * w
	}
	return math.Sqrt(sum)
}

func TestFitBuildsVocabulary(t *testing.T) {
	v := fitted(t)
	if v.VocabularySize() == 0 {
		t.Fatal("vocabulary is empty after Fit")
	}
	if v.DocumentCount() != len(corpus) {
		t.Errorf("DocumentCount = %d, want %d", v.DocumentCount(), len(corpus))
	}
}

func TestIDFStrictlyPositive(t *testing.T) {
	v := fitted(t)
	for tok, score := range v.idf {
		if score <= 0 {
			t.Errorf("idf[%q] = %v, want > 0", tok, score)
		}
	}
}

func TestIDFSafeForEmptyCorpus(t *testing.T) {
	v := New()
	if err := v.Fit(nil); err != nil {
		t.Fatalf("Fit(nil) failed: %v", err)
	}
	if vec := v.Transform("anything at all"); len(vec) != 0 {
		t.Errorf("Transform on empty corpus = %v, want empty", vec)
	}
}

func TestTransformUnitNorm(t *testing.T) {
	v := fitted(t)
	// All tokens in-vocabulary
	vec := v.Transform("swiggy food delivery")
	if len(vec) == 0 {
		t.Fatal("expected non-empty vector")
	}
	if got := norm(vec); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("‖vec‖ = %v, want 1.0 ± 1e-9", got)
	}
}

func TestTransformPure(t *testing.T) {
	v := fitted(t)
	doc := "swiggy dinner order"
	first := v.Transform(doc)
	for i := 0; i < 5; i++ {
		if got := v.Transform(doc); !reflect.DeepEqual(got, first) {
			t.Fatalf("Transform not pure: %v vs %v", got, first)
		}
	}
}

func TestTransformDropsOutOfVocabulary(t *testing.T) {
	v := fitted(t)
	vec := v.Transform("swiggy zzzunknownzzz")
	if _, ok := vec["zzzunknownzzz"]; ok {
		t.Error("out-of-vocabulary token was not dropped")
	}
	if _, ok := vec["swiggy"]; !ok {
		t.Error("in-vocabulary token missing from vector")
	}
}

func TestTransformNoSignal(t *testing.T) {
	v := fitted(t)
	// No in-vocabulary tokens: the empty vector is the deliberate
	// "no signal" state, not an error.
	vec := v.Transform("zzz yyy xxx")
	if len(vec) != 0 {
		t.Errorf("Transform = %v, want empty vector", vec)
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	v := fitted(t)
	blob, err := json.Marshal(v.Snapshot())
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	restored := FromSnapshot(snap)

	doc := "swiggy food delivery lunch"
	if !reflect.DeepEqual(v.Transform(doc), restored.Transform(doc)) {
		t.Error("Transform differs after snapshot round-trip")
	}
	if restored.DocumentCount() != v.DocumentCount() {
		t.Errorf("DocumentCount = %d, want %d", restored.DocumentCount(), v.DocumentCount())
	}
	if !restored.Refittable() {
		t.Error("natively restored vectorizer must be refittable")
	}
}

func TestForeignTransformOnly(t *testing.T) {
	v := fitted(t)
	snap := v.Snapshot()
	foreign := FromForeign(snap.Vocabulary, snap.IDFScores)

	doc := "uber ride airport"
	if !reflect.DeepEqual(v.Transform(doc), foreign.Transform(doc)) {
		t.Error("foreign vectorizer transform differs from source")
	}
	if foreign.Refittable() {
		t.Error("foreign vectorizer must not be refittable")
	}
	if err := foreign.Fit(corpus); !errors.Is(err, ErrNotRefittable) {
		t.Errorf("Fit on foreign vectorizer = %v, want ErrNotRefittable", err)
	}
}

func TestTopFeatures(t *testing.T) {
	vec := Vector{"alpha": 0.1, "beta": 0.9, "gamma": 0.5}
	got := TopFeatures(vec, 2)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Token != "beta" || got[1].Token != "gamma" {
		t.Errorf("TopFeatures = %v", got)
	}
	if all := TopFeatures(vec, 10); len(all) != 3 {
		t.Errorf("TopFeatures with large n = %v", all)
	}
}

func TestTokenScoreJSON(t *testing.T) {
	pair := TokenScore{Token: "swiggy", Score: 1.25}
	blob, err := json.Marshal(pair)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(blob) != `["swiggy",1.25]` {
		t.Errorf("marshal = %s, want [\"swiggy\",1.25]", blob)
	}
	var back TokenScore
	if err := json.Unmarshal(blob, &back); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if back != pair {
		t.Errorf("round-trip = %+v, want %+v", back, pair)
	}
	if err := json.Unmarshal([]byte(`["only"]`), &back); err == nil {
		t.Error("expected error for 1-element pair")
	}
}
