package dict

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/yomi/internal/testutil"
)

func TestFormatForPath(t *testing.T) {
	assert.Equal(t, FormatBinary, FormatForPath(`C:\engine\user.dic`))
	assert.Equal(t, FormatBinary, FormatForPath("/tmp/USER.DIC"))
	assert.Equal(t, FormatText, FormatForPath("/home/u/.config/yomi/user_dict.json"))
	assert.Equal(t, FormatText, FormatForPath("words"))
}

func TestStoreReadMissingFile(t *testing.T) {
	for _, path := range []string{testutil.TextDictPath(t), testutil.BinaryDictPath(t)} {
		entries, err := NewStore(path).ReadAll()
		require.NoError(t, err)
		assert.Empty(t, entries)
	}
}

func TestStoreCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine", "data", "user_dict.json")
	store := NewStore(path)

	require.NoError(t, store.WriteAll([]Entry{{SurfaceForm: "犬", Pronunciation: "イヌ"}}))

	info, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestStoreTextWriteRead(t *testing.T) {
	store := NewStore(testutil.TextDictPath(t))
	in := []Entry{
		{SurfaceForm: "東京", Pronunciation: "トーキョー", AccentType: 1},
		{SurfaceForm: "犬", Pronunciation: "イヌ"},
	}

	require.NoError(t, store.WriteAll(in))
	out, err := store.ReadAll()
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, ApplyDefaults(in[0]), out[0])
	assert.Equal(t, ApplyDefaults(in[1]), out[1])
}

func TestStoreBinaryWriteRead(t *testing.T) {
	store := NewStore(testutil.BinaryDictPath(t))
	require.Equal(t, CompareByPronunciation, store.Policy())

	in := []Entry{{SurfaceForm: "東京", Pronunciation: "トーキョー", AccentType: 3}}
	require.NoError(t, store.WriteAll(in))

	out, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, out, 1)

	// Documented lossy mapping: the surface form comes back as the reading
	// and the accent type resets to 0.
	assert.Equal(t, "トーキョー", out[0].SurfaceForm)
	assert.Equal(t, "トーキョー", out[0].Pronunciation)
	assert.Equal(t, DefaultPartOfSpeech, out[0].PartOfSpeech)
	assert.Equal(t, DefaultPriority, out[0].Priority)
	assert.Equal(t, 0, out[0].AccentType)
}

func TestStoreReadErrorOnCorruptText(t *testing.T) {
	path := testutil.TextDictPath(t)
	testutil.CreateTestFile(t, path, []byte("{not json"))

	_, err := NewStore(path).ReadAll()
	var rErr *ReadError
	require.ErrorAs(t, err, &rErr)
	assert.Equal(t, path, rErr.Path)
}

func TestStoreReadErrorCarriesDecodeDiagnostic(t *testing.T) {
	path := testutil.BinaryDictPath(t)

	// A valid file with its final terminator cut off.
	store := NewStore(path)
	require.NoError(t, store.WriteAll([]Entry{{SurfaceForm: "犬", Pronunciation: "イヌ"}}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	testutil.CreateTestFile(t, path, data[:len(data)-1])

	_, err = store.ReadAll()
	var rErr *ReadError
	require.ErrorAs(t, err, &rErr)
	var mErr *MalformedRecordError
	require.ErrorAs(t, err, &mErr)
	assert.Equal(t, 0, mErr.Index)
}

func TestStoreWriteError(t *testing.T) {
	// The dictionary path points below an existing file, so directory
	// creation must fail.
	base := filepath.Join(t.TempDir(), "occupied")
	testutil.CreateTestFile(t, base, []byte("x"))

	err := NewStore(filepath.Join(base, "user.dic")).WriteAll(nil)
	var wErr *WriteError
	require.ErrorAs(t, err, &wErr)
}
