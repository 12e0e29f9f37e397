package dict

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/yomi/internal/testutil"
)

func newTextManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(NewStore(testutil.TextDictPath(t)))
}

func newBinaryManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(NewStore(testutil.BinaryDictPath(t)))
}

func TestAddIsIdempotent(t *testing.T) {
	mgr := newTextManager(t)
	e := Entry{SurfaceForm: "東京", Pronunciation: "トーキョー"}

	require.NoError(t, mgr.Add(e))
	require.NoError(t, mgr.Add(e))

	entries, err := mgr.All()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestAddUpsertsBySurfaceFormInTextDictionary(t *testing.T) {
	mgr := newTextManager(t)

	require.NoError(t, mgr.Add(Entry{SurfaceForm: "MCP", Pronunciation: "A"}))
	require.NoError(t, mgr.Add(Entry{SurfaceForm: "MCP", Pronunciation: "B"}))

	entries, err := mgr.All()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "B", entries[0].Pronunciation)
}

func TestAddUpsertsByReadingInBinaryDictionary(t *testing.T) {
	mgr := newBinaryManager(t)

	// Distinct readings are distinct keys here, even for one surface form.
	require.NoError(t, mgr.Add(Entry{SurfaceForm: "MCP", Pronunciation: "A"}))
	require.NoError(t, mgr.Add(Entry{SurfaceForm: "MCP", Pronunciation: "B"}))

	entries, err := mgr.All()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestAddReplacementKeepsPosition(t *testing.T) {
	mgr := newTextManager(t)
	require.NoError(t, mgr.Add(Entry{SurfaceForm: "一", Pronunciation: "イチ"}))
	require.NoError(t, mgr.Add(Entry{SurfaceForm: "二", Pronunciation: "ニ"}))
	require.NoError(t, mgr.Add(Entry{SurfaceForm: "三", Pronunciation: "サン"}))

	require.NoError(t, mgr.Add(Entry{SurfaceForm: "二", Pronunciation: "フタ"}))

	entries, err := mgr.All()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "フタ", entries[1].Pronunciation)
	assert.Equal(t, "一", entries[0].SurfaceForm)
	assert.Equal(t, "三", entries[2].SurfaceForm)
}

func TestAddTreatsLanguagesAsDistinct(t *testing.T) {
	mgr := newTextManager(t)

	require.NoError(t, mgr.Add(Entry{SurfaceForm: "AI", Pronunciation: "エーアイ"}))
	require.NoError(t, mgr.Add(Entry{SurfaceForm: "AI", Pronunciation: "エイアイ", Language: "en"}))

	entries, err := mgr.All()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRemove(t *testing.T) {
	mgr := newTextManager(t)
	require.NoError(t, mgr.Add(Entry{SurfaceForm: "東京", Pronunciation: "トーキョー"}))

	removed, err := mgr.Remove("東京", "")
	require.NoError(t, err)
	assert.True(t, removed)

	entries, err := mgr.All()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRemoveAbsentKey(t *testing.T) {
	mgr := newTextManager(t)
	require.NoError(t, mgr.Add(Entry{SurfaceForm: "東京", Pronunciation: "トーキョー"}))

	removed, err := mgr.Remove("大阪", "")
	require.NoError(t, err)
	assert.False(t, removed)

	entries, err := mgr.All()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRemoveFiltersByLanguage(t *testing.T) {
	mgr := newTextManager(t)
	require.NoError(t, mgr.Add(Entry{SurfaceForm: "AI", Pronunciation: "エーアイ"}))
	require.NoError(t, mgr.Add(Entry{SurfaceForm: "AI", Pronunciation: "エイアイ", Language: "en"}))

	removed, err := mgr.Remove("AI", "en")
	require.NoError(t, err)
	assert.True(t, removed)

	entries, err := mgr.All()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, DefaultLanguage, entries[0].Language)
}

func TestFindIgnoresLanguage(t *testing.T) {
	mgr := newTextManager(t)
	require.NoError(t, mgr.Add(Entry{SurfaceForm: "AI", Pronunciation: "エーアイ"}))
	require.NoError(t, mgr.Add(Entry{SurfaceForm: "AI", Pronunciation: "エイアイ", Language: "en"}))

	matches, err := mgr.Find("AI")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestFindAbsentKey(t *testing.T) {
	mgr := newTextManager(t)

	matches, err := mgr.Find("なし")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestFindUsesReadingInBinaryDictionary(t *testing.T) {
	mgr := newBinaryManager(t)
	require.NoError(t, mgr.Add(Entry{SurfaceForm: "東京", Pronunciation: "トーキョー"}))

	matches, err := mgr.Find("トーキョー")
	require.NoError(t, err)
	assert.Len(t, matches, 1)

	// The surface form is not a key in the binary dictionary; it was never
	// stored in the first place.
	matches, err = mgr.Find("東京")
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestClear(t *testing.T) {
	for _, mgr := range []*Manager{newTextManager(t), newBinaryManager(t)} {
		require.NoError(t, mgr.Add(Entry{SurfaceForm: "東京", Pronunciation: "トーキョー"}))
		require.NoError(t, mgr.Clear())

		entries, err := mgr.All()
		require.NoError(t, err)
		assert.Empty(t, entries)
	}
}
