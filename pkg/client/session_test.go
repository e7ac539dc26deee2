package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingSignupRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "pending.json")

	store, err := NewPendingSignup(path)
	require.NoError(t, err)

	require.NoError(t, store.Set(PendingUserTypeKey, "worker"))
	require.NoError(t, store.Set(PendingEmailKey, "sita@example.com"))
	require.NoError(t, store.Set(PendingFirebaseUIDKey, "uid-42"))

	// A fresh store over the same file sees the persisted values: the
	// signup flow survives an app restart.
	reopened, err := NewPendingSignup(path)
	require.NoError(t, err)

	for key, want := range map[string]string{
		PendingUserTypeKey:    "worker",
		PendingEmailKey:       "sita@example.com",
		PendingFirebaseUIDKey: "uid-42",
	} {
		got, err := reopened.Get(key)
		require.NoError(t, err)
		assert.Equal(t, want, got, key)
	}
}

func TestPendingSignupMissingKey(t *testing.T) {
	store, err := NewPendingSignup(filepath.Join(t.TempDir(), "pending.json"))
	require.NoError(t, err)

	got, err := store.Get(PendingUserTypeKey)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPendingSignupClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pending.json")
	store, err := NewPendingSignup(path)
	require.NoError(t, err)

	require.NoError(t, store.Set(PendingUserTypeKey, "employer"))
	require.NoError(t, store.Clear())

	got, err := store.Get(PendingUserTypeKey)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}

func TestPendingSignupCorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pending.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	store, err := NewPendingSignup(path)
	require.NoError(t, err)

	got, err := store.Get(PendingUserTypeKey)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Set(PendingUserTypeKey, "worker"))
	got, err = store.Get(PendingUserTypeKey)
	require.NoError(t, err)
	assert.Equal(t, "worker", got)
}
