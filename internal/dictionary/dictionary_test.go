package dictionary_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/internal/dictionary"
	"github.com/robalobadob/wordscramble/internal/game"
)

var (
	_ game.Dictionary = (*dictionary.Memory)(nil)
	_ game.Dictionary = (*dictionary.SQLite)(nil)
)

func TestMemory(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	d := dictionary.NewMemory("en", []string{"Silk", " worm ", ""})

	tests := []struct {
		word, locale string
		want         bool
	}{
		{"silk", "en", true},
		{"SILK", "en", true},
		{"worm", "en-US", true},
		{"worm", "EN_gb", true},
		{"milk", "en", false},
		{"silk", "fr", false},
	}
	for _, tt := range tests {
		got, err := d.Contains(ctx, tt.word, tt.locale)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%s/%s", tt.word, tt.locale)
	}
	assert.Equal(t, 2, d.Len("en"))

	d.Add("fr", "soie")
	ok, err := d.Contains(ctx, "soie", "fr")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemory_LocaleCasing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	d := dictionary.NewMemory("tr", []string{"KIR", "İSİM"})

	for _, w := range []string{"kır", "KIR", "isim", "İSİM"} {
		ok, err := d.Contains(ctx, w, "tr-TR")
		require.NoError(t, err)
		assert.True(t, ok, w)
	}
	ok, err := d.Contains(ctx, "kir", "tr")
	require.NoError(t, err)
	assert.False(t, ok, "dotted i is a different letter in Turkish")
}

func TestSQLite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "words.db")

	d, err := dictionary.OpenSQLite(path)
	require.NoError(t, err)

	added, err := d.Import(ctx, "en", []string{"silk", "Worm", "silk", " "})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	n, err := d.Count(ctx, "en-US")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	ok, err := d.Contains(ctx, "WORM", "en")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = d.Contains(ctx, "milk", "en")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = d.Contains(ctx, "silk", "de")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = d.Import(ctx, "tr", []string{"IRMAK", "KIR"})
	require.NoError(t, err)
	ok, err = d.Contains(ctx, "kır", "tr")
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = d.Contains(ctx, "ırmak", "tr")
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, d.Close())

	// Reopening keeps data and does not reapply migrations.
	d, err = dictionary.OpenSQLite(path)
	require.NoError(t, err)
	defer d.Close()
	added, err = d.Import(ctx, "en", []string{"silk", "milk"})
	require.NoError(t, err)
	assert.Equal(t, 1, added)
}
