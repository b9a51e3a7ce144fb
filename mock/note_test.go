package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/xhsnote"
	"github.com/fwojciec/xhsnote/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteStore_Upsert(t *testing.T) {
	t.Parallel()

	t.Run("delegates to UpsertFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *xhsnote.Note
		s := &mock.NoteStore{
			UpsertFn: func(_ context.Context, note *xhsnote.Note) error {
				calledWith = note
				return nil
			},
		}

		note := &xhsnote.Note{SourceURL: "https://www.xiaohongshu.com/explore/1", Title: "Hello"}
		err := s.Upsert(context.Background(), note)

		require.NoError(t, err)
		assert.Same(t, note, calledWith)
	})

	t.Run("returns error from UpsertFn", func(t *testing.T) {
		t.Parallel()

		s := &mock.NoteStore{
			UpsertFn: func(context.Context, *xhsnote.Note) error {
				return xhsnote.Errorf(xhsnote.EINVALID, "note title required")
			},
		}

		err := s.Upsert(context.Background(), &xhsnote.Note{})

		assert.Equal(t, xhsnote.EINVALID, xhsnote.ErrorCode(err))
	})
}
