package progress

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepoMissingFileIsFresh(t *testing.T) {
	repo := NewFileRepo(filepath.Join(t.TempDir(), "progress.json"), nil)
	doc, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, doc.XP)
	assert.NotNil(t, doc.Words)
}

func TestFileRepoCorruptFileIsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	doc, err := NewFileRepo(path, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, New(), doc)
}

func TestFileRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "progress.json")
	repo := NewFileRepo(path, nil)

	doc := New()
	doc.XP = 25
	doc.Streak = 3
	doc.LastPlayed = "2024-05-01"
	doc.BestSpeed = 7
	doc.RecordAnswer("verbs", "sein", true)
	require.NoError(t, repo.Save(ctx, doc))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestFileRepoReadsExistingLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "progress.json")
	raw := `{
  "xp": 120,
  "streak": 2,
  "last_played": "2024-01-02",
  "best_speed": 11,
  "words": {
    "colors:rot": {"mastery": 4, "correct": 6, "wrong": 2},
    "colors:blau": {"mastery": 9, "correct": 9, "wrong": 0}
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	doc, err := NewFileRepo(path, nil).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 120, doc.XP)
	assert.Equal(t, 11, doc.BestSpeed)
	assert.Equal(t, 4, doc.Mastery("colors", "rot"))
	assert.Equal(t, MaxMastery, doc.Mastery("colors", "blau"), "out-of-range mastery is clamped on load")
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	repo := NewFileRepo(filepath.Join(t.TempDir(), "progress.json"), nil)
	doc := New()
	doc.XP = 99
	require.NoError(t, repo.Save(ctx, doc))

	require.NoError(t, Reset(ctx, repo))
	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, got.XP)
}
