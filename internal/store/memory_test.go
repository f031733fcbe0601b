package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordscramble/internal/dictionary"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/words"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e, err := game.New(dictionary.NewMemory("en", nil), words.RandomPicker{}, game.Config{})
	require.NoError(t, err)
	s, err := e.NewSession([]string{"silkworm"})
	require.NoError(t, err)

	st := store.NewMemoryStore()
	_, err = st.Get(ctx, s.ID())
	assert.ErrorIs(t, err, store.ErrNotFound)

	require.NoError(t, st.Save(ctx, s))
	got, err := st.Get(ctx, s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)

	require.NoError(t, st.Delete(ctx, s.ID()))
	require.NoError(t, st.Delete(ctx, "unknown"))
	_, err = st.Get(ctx, s.ID())
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemoryStore_Prune(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	e, err := game.New(dictionary.NewMemory("en", nil), words.RandomPicker{}, game.Config{})
	require.NoError(t, err)
	st := store.NewMemoryStore()
	s, err := e.NewSession([]string{"silkworm"})
	require.NoError(t, err)
	require.NoError(t, st.Save(ctx, s))

	n, err := st.Prune(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = st.Prune(ctx, time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	_, err = st.Get(ctx, s.ID())
	assert.ErrorIs(t, err, store.ErrNotFound)
}
