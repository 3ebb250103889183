package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/smartbudget/categorizer/internal/classify"
	"github.com/smartbudget/categorizer/internal/common"
	"github.com/smartbudget/categorizer/internal/model"
	"github.com/smartbudget/categorizer/internal/vectorize"
)

// NativeSnapshot is the wire shape of a locally trained model: the full
// vectorizer and classifier state plus the training log, so a restore
// can both predict and re-fit.
type NativeSnapshot struct {
	Timestamp        time.Time               `json:"timestamp"`
	ModelSource      model.ModelSource       `json:"modelSource"`
	Vectorizer       vectorize.Snapshot      `json:"vectorizer"`
	Classifier       classify.Snapshot       `json:"classifier"`
	TrainingExamples []model.TrainingExample `json:"trainingExamples"`
	Version          int                     `json:"version"`
}

// ForeignVectorizer is the vectorizer portion of a pretrained export:
// vocabulary and IDF scores only, no raw frequency counts.
type ForeignVectorizer struct {
	Vocabulary []string               `json:"vocabulary"`
	IDFScores  []vectorize.TokenScore `json:"idf_scores"`
}

// ForeignClassifier is the classifier portion of a pretrained export.
type ForeignClassifier struct {
	Weights    map[string]classify.ClassWeights `json:"weights"`
	Categories []string                         `json:"categories"`
}

// ForeignSnapshot is the wire shape produced by the external training
// pipeline. Field names are snake_case to match that exporter.
type ForeignSnapshot struct {
	Vectorizer ForeignVectorizer     `json:"vectorizer"`
	Classifier ForeignClassifier     `json:"classifier"`
	Metadata   model.ForeignMetadata `json:"metadata"`
}

// Validate checks that a decoded foreign snapshot is usable.
func (s *ForeignSnapshot) Validate() error {
	if len(s.Vectorizer.Vocabulary) == 0 {
		return fmt.Errorf("%w: empty vocabulary", common.ErrInvalidForeignModel)
	}
	if len(s.Vectorizer.IDFScores) == 0 {
		return fmt.Errorf("%w: missing idf scores", common.ErrInvalidForeignModel)
	}
	if len(s.Classifier.Weights) == 0 {
		return fmt.Errorf("%w: missing classifier weights", common.ErrInvalidForeignModel)
	}
	if len(s.Classifier.Categories) == 0 {
		return fmt.Errorf("%w: missing categories", common.ErrInvalidForeignModel)
	}
	for _, cat := range s.Classifier.Categories {
		if _, ok := s.Classifier.Weights[cat]; !ok {
			return fmt.Errorf("%w: no weights for category %q", common.ErrInvalidForeignModel, cat)
		}
	}
	return nil
}

// SnapshotKind discriminates the decoded snapshot union.
type SnapshotKind string

const (
	// KindNative identifies a locally trained snapshot.
	KindNative SnapshotKind = "native"
	// KindForeign identifies a pretrained imported snapshot.
	KindForeign SnapshotKind = "foreign"
)

// Snapshot is the tagged union of the two wire shapes, resolved exactly
// once at load time. Exactly one of Native/Foreign is non-nil.
type Snapshot struct {
	Native  *NativeSnapshot
	Foreign *ForeignSnapshot
	Kind    SnapshotKind
}

// DecodeSnapshot probes the blob's shape and decodes it into the union.
// A foreign export is recognized by its metadata section and snake_case
// idf_scores; a native snapshot by its modelSource field.
func DecodeSnapshot(blob []byte) (*Snapshot, error) {
	var probe struct {
		Metadata    json.RawMessage `json:"metadata"`
		ModelSource json.RawMessage `json:"modelSource"`
		Vectorizer  struct {
			IDFScores json.RawMessage `json:"idf_scores"`
		} `json:"vectorizer"`
	}
	if err := json.Unmarshal(blob, &probe); err != nil {
		return nil, fmt.Errorf("failed to decode model snapshot: %w", err)
	}

	switch {
	case probe.Metadata != nil || probe.Vectorizer.IDFScores != nil:
		foreign, err := DecodeForeign(blob)
		if err != nil {
			return nil, err
		}
		return &Snapshot{Kind: KindForeign, Foreign: foreign}, nil
	case probe.ModelSource != nil:
		var native NativeSnapshot
		if err := json.Unmarshal(blob, &native); err != nil {
			return nil, fmt.Errorf("failed to decode native snapshot: %w", err)
		}
		return &Snapshot{Kind: KindNative, Native: &native}, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized snapshot shape", common.ErrInvalidForeignModel)
	}
}

// DecodeForeign decodes and validates a pretrained model blob.
func DecodeForeign(blob []byte) (*ForeignSnapshot, error) {
	var foreign ForeignSnapshot
	if err := json.Unmarshal(blob, &foreign); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidForeignModel, err)
	}
	if err := foreign.Validate(); err != nil {
		return nil, err
	}
	return &foreign, nil
}
