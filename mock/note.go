package mock

import (
	"context"

	"github.com/fwojciec/xhsnote"
)

var _ xhsnote.NoteStore = (*NoteStore)(nil)

// NoteStore is a mock implementation of xhsnote.NoteStore.
type NoteStore struct {
	UpsertFn func(ctx context.Context, note *xhsnote.Note) error
	AllFn    func(ctx context.Context) ([]*xhsnote.Note, error)
	ResetFn  func(ctx context.Context) error
	CountFn  func(ctx context.Context) (int, error)
}

func (s *NoteStore) Upsert(ctx context.Context, note *xhsnote.Note) error {
	return s.UpsertFn(ctx, note)
}

func (s *NoteStore) All(ctx context.Context) ([]*xhsnote.Note, error) {
	return s.AllFn(ctx)
}

func (s *NoteStore) Reset(ctx context.Context) error {
	return s.ResetFn(ctx)
}

func (s *NoteStore) Count(ctx context.Context) (int, error) {
	return s.CountFn(ctx)
}

var _ xhsnote.SlotStore = (*SlotStore)(nil)

// SlotStore is a mock implementation of xhsnote.SlotStore.
type SlotStore struct {
	LoadFn   func(ctx context.Context, key string) ([]byte, error)
	SaveFn   func(ctx context.Context, key string, data []byte) error
	DeleteFn func(ctx context.Context, key string) error
}

func (s *SlotStore) Load(ctx context.Context, key string) ([]byte, error) {
	return s.LoadFn(ctx, key)
}

func (s *SlotStore) Save(ctx context.Context, key string, data []byte) error {
	return s.SaveFn(ctx, key, data)
}

func (s *SlotStore) Delete(ctx context.Context, key string) error {
	return s.DeleteFn(ctx, key)
}
