package goquery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/xhsnote/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfile_Validate(t *testing.T) {
	t.Parallel()

	assert.NoError(t, goquery.DefaultProfile().Validate())
}

func TestLoadProfile(t *testing.T) {
	t.Parallel()

	t.Run("overrides listed selectors and keeps defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "profile.yaml")
		require.NoError(t, os.WriteFile(path, []byte("title:\n  - \".new-title\"\n  - h1\n"), 0644))

		p, err := goquery.LoadProfile(path)

		require.NoError(t, err)
		assert.Equal(t, []string{".new-title", "h1"}, p.Title)
		assert.Equal(t, goquery.DefaultProfile().Body, p.Body)
	})

	t.Run("rejects empty selector list", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "profile.yaml")
		require.NoError(t, os.WriteFile(path, []byte("body: []\n"), 0644))

		_, err := goquery.LoadProfile(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation")
	})

	t.Run("returns error for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := goquery.LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
	})

	t.Run("drives the locator", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "profile.yaml")
		require.NoError(t, os.WriteFile(path, []byte("title: [\".headline\"]\nbody: [\".story\"]\n"), 0644))
		p, err := goquery.LoadProfile(path)
		require.NoError(t, err)
		doc := parse(t, `<html><body><h1>Ignored</h1><p class="headline">Custom</p><div class="story">Text</div></body></html>`)

		title, body, err := goquery.NewLocator(p).Locate(doc)

		require.NoError(t, err)
		assert.Equal(t, "Custom", title.Text())
		assert.Equal(t, "Text", body.Text())
	})
}
