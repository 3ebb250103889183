package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Snapshot key layout. One native and one foreign slot per user.
const (
	nativeKeyFormat  = "smartbudget:model:native:%s"
	foreignKeyFormat = "smartbudget:model:foreign:%s"
)

// ModelStore persists model snapshots through a KV backend.
type ModelStore struct {
	kv KV
}

// NewModelStore creates a model store over the given KV backend.
func NewModelStore(kv KV) *ModelStore {
	return &ModelStore{kv: kv}
}

// NativeKey returns the snapshot key for a user's locally trained model.
func NativeKey(userID string) string {
	return fmt.Sprintf(nativeKeyFormat, userID)
}

// ForeignKey returns the snapshot key for a user's imported model.
func ForeignKey(userID string) string {
	return fmt.Sprintf(foreignKeyFormat, userID)
}

// SaveNative encodes and stores a native snapshot.
func (s *ModelStore) SaveNative(ctx context.Context, userID string, snap *NativeSnapshot) error {
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	blob, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode native snapshot: %w", err)
	}
	return s.kv.Set(ctx, NativeKey(userID), blob)
}

// LoadNative loads and decodes a user's native snapshot. Returns
// common.ErrNotFound (wrapped) when none exists.
func (s *ModelStore) LoadNative(ctx context.Context, userID string) (*NativeSnapshot, error) {
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}
	blob, err := s.kv.Get(ctx, NativeKey(userID))
	if err != nil {
		return nil, err
	}
	snap, err := DecodeSnapshot(blob)
	if err != nil {
		return nil, err
	}
	if snap.Kind != KindNative {
		return nil, fmt.Errorf("native slot for user %q holds a %s snapshot", userID, snap.Kind)
	}
	return snap.Native, nil
}

// SaveForeign stores the raw pretrained blob under the foreign slot.
// The blob is kept verbatim so a later load replays the exact import.
func (s *ModelStore) SaveForeign(ctx context.Context, userID string, blob []byte) error {
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	// Reject blobs that would fail to load later.
	if _, err := DecodeForeign(blob); err != nil {
		return err
	}
	return s.kv.Set(ctx, ForeignKey(userID), blob)
}

// LoadForeign loads and decodes a user's imported snapshot. Returns
// common.ErrNotFound (wrapped) when none exists.
func (s *ModelStore) LoadForeign(ctx context.Context, userID string) (*ForeignSnapshot, error) {
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}
	blob, err := s.kv.Get(ctx, ForeignKey(userID))
	if err != nil {
		return nil, err
	}
	return DecodeForeign(blob)
}

// Reset removes both snapshot slots for a user.
func (s *ModelStore) Reset(ctx context.Context, userID string) error {
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := s.kv.Delete(ctx, NativeKey(userID)); err != nil {
		return err
	}
	return s.kv.Delete(ctx, ForeignKey(userID))
}
