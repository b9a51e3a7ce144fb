package xhsnote_test

import (
	"testing"
	"time"

	"github.com/fwojciec/xhsnote"
	"github.com/stretchr/testify/assert"
)

func TestHashNote(t *testing.T) {
	t.Parallel()

	t.Run("ignores capture time", func(t *testing.T) {
		t.Parallel()

		a := &xhsnote.Note{SourceURL: "u", Title: "t", Body: "b", CapturedAt: time.Now()}
		b := &xhsnote.Note{SourceURL: "u", Title: "t", Body: "b", CapturedAt: time.Now().Add(time.Hour)}

		assert.Equal(t, xhsnote.HashNote(a), xhsnote.HashNote(b))
	})

	t.Run("changes with metrics", func(t *testing.T) {
		t.Parallel()

		a := &xhsnote.Note{SourceURL: "u", Title: "t", Metrics: xhsnote.Metrics{Likes: 1}}
		b := &xhsnote.Note{SourceURL: "u", Title: "t", Metrics: xhsnote.Metrics{Likes: 2}}

		assert.NotEqual(t, xhsnote.HashNote(a), xhsnote.HashNote(b))
	})

	t.Run("field boundaries are significant", func(t *testing.T) {
		t.Parallel()

		a := &xhsnote.Note{SourceURL: "u", Title: "ab", Body: "c"}
		b := &xhsnote.Note{SourceURL: "u", Title: "a", Body: "bc"}

		assert.NotEqual(t, xhsnote.HashNote(a), xhsnote.HashNote(b))
	})
}

func TestExtraction_Unchanged(t *testing.T) {
	t.Parallel()

	note := &xhsnote.Note{SourceURL: "u", Title: "t"}
	prev := &xhsnote.Extraction{Note: note, Hash: xhsnote.HashNote(note)}

	t.Run("same page and content", func(t *testing.T) {
		t.Parallel()

		next := &xhsnote.Extraction{Note: &xhsnote.Note{SourceURL: "u", Title: "t"}, Hash: prev.Hash}

		assert.True(t, next.Unchanged(prev))
	})

	t.Run("different page", func(t *testing.T) {
		t.Parallel()

		next := &xhsnote.Extraction{Note: &xhsnote.Note{SourceURL: "v", Title: "t"}, Hash: prev.Hash}

		assert.False(t, next.Unchanged(prev))
	})

	t.Run("no previous extraction", func(t *testing.T) {
		t.Parallel()

		assert.False(t, prev.Unchanged(nil))
	})
}

func TestIsNotePage(t *testing.T) {
	t.Parallel()

	assert.True(t, xhsnote.IsNotePage("https://www.xiaohongshu.com/explore/64f1a2"))
	assert.True(t, xhsnote.IsNotePage("https://www.xiaohongshu.com/discovery/item/64f1a2"))
	assert.False(t, xhsnote.IsNotePage("https://www.xiaohongshu.com/user/profile/1"))
}
