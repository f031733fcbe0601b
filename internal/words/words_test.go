package words_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordscramble/internal/words"
)

func TestParse(t *testing.T) {
	t.Parallel()
	in := "Silkworm\n\n  # comment\n  triangle  \r\nPAINTERS\n"
	got, err := words.Parse(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"Silkworm", "triangle", "PAINTERS"}, got)
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	tests := []struct {
		tag  language.Tag
		in   string
		want string
	}{
		{language.English, "  SILK ", "silk"},
		{language.English, "IRMAK", "irmak"},
		{language.Turkish, "IRMAK", "ırmak"},
		{language.Turkish, "İSİM", "isim"},
		{language.Turkish, "kır", "kır"},
		{language.English, "   ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, words.Normalize(tt.tag, tt.in), "%s/%q", tt.tag, tt.in)
	}
}

func TestLoadStartWords(t *testing.T) {
	t.Parallel()

	t.Run("embedded fallback", func(t *testing.T) {
		t.Parallel()
		list, err := words.LoadStartWords("")
		require.NoError(t, err)
		assert.Contains(t, list, "silkworm")
	})

	t.Run("from file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "start.txt")
		require.NoError(t, os.WriteFile(path, []byte("alpha\nbravo\n"), 0o644))
		list, err := words.LoadStartWords(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "bravo"}, list)
	})

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "start.txt")
		require.NoError(t, os.WriteFile(path, []byte("\n# nothing\n"), 0o644))
		_, err := words.LoadStartWords(path)
		assert.ErrorIs(t, err, words.ErrEmpty)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := words.LoadStartWords(filepath.Join(t.TempDir(), "nope.txt"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadDictionary_Embedded(t *testing.T) {
	t.Parallel()
	list, err := words.LoadDictionary("")
	require.NoError(t, err)
	assert.Subset(t, list, []string{"silk", "worm", "milk", "or"})
}

func TestRandomPicker(t *testing.T) {
	t.Parallel()
	var p words.RandomPicker
	assert.Equal(t, "", p.Pick(nil))
	assert.Equal(t, "only", p.Pick([]string{"only"}))

	candidates := []string{"silkworm", "triangle", "painters"}
	for i := 0; i < 50; i++ {
		assert.Contains(t, candidates, p.Pick(candidates))
	}
}
