package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileTokenStore_MissingFileIsEmptyState(t *testing.T) {
	store := NewFileTokenStore(filepath.Join(t.TempDir(), "does-not-exist.json"))

	state, err := store.Load()
	assert.NoError(t, err)
	assert.Empty(t, state.Token)
	assert.Empty(t, state.Theme)
}

func TestFileTokenStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "session.json")
	store := NewFileTokenStore(path)

	err := store.Save(State{Token: "signed.jwt.token", Theme: ThemeDark})
	assert.NoError(t, err)

	state, err := store.Load()
	assert.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", state.Token)
	assert.Equal(t, ThemeDark, state.Theme)
}

func TestFileTokenStore_SaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileTokenStore(path)

	assert.NoError(t, store.Save(State{Token: "first"}))
	assert.NoError(t, store.Save(State{Token: ""}))

	state, err := store.Load()
	assert.NoError(t, err)
	assert.Empty(t, state.Token)
}

func TestMemoryTokenStore(t *testing.T) {
	store := NewMemoryTokenStore()

	state, err := store.Load()
	assert.NoError(t, err)
	assert.Empty(t, state.Token)

	assert.NoError(t, store.Save(State{Token: "tok", Theme: ThemeLight}))

	state, err = store.Load()
	assert.NoError(t, err)
	assert.Equal(t, "tok", state.Token)
}
