package credstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	sdk "github.com/caselink/caselink-go"
)

func fullRecord() Record {
	return Record{
		AccessToken:  "access",
		RefreshToken: "refresh",
		User: sdk.UserProfile{
			ID:       "u1",
			Email:    "ada@example.com",
			UserType: sdk.UserTypeClient,
			Roles:    []string{sdk.RoleClient},
		},
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	store := NewMemory()

	_, err := store.Load()
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(fullRecord()))
	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, fullRecord(), got)

	require.NoError(t, store.Clear())
	_, err = store.Load()
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoadRejectsPartialRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Record)
	}{
		{"missing access token", func(r *Record) { r.AccessToken = "" }},
		{"missing refresh token", func(r *Record) { r.RefreshToken = "" }},
		{"missing user id", func(r *Record) { r.User.ID = "" }},
		{"whitespace access token", func(r *Record) { r.AccessToken = "  " }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := fullRecord()
			tc.mutate(&rec)

			store := NewMemory()
			require.NoError(t, store.Save(rec))
			_, err := store.Load()
			require.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "credentials.json")
	store := NewFileStore(path)

	_, err := store.Load()
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Save(fullRecord()))
	got, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, fullRecord(), got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	require.NoError(t, store.Clear())
	_, err = store.Load()
	require.ErrorIs(t, err, ErrNotFound)

	// Clearing an already-empty store is not an error.
	require.NoError(t, store.Clear())
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	store := NewFileStore(path)
	_, err := store.Load()
	require.ErrorIs(t, err, ErrNotFound)
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestFileStorePartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"accessToken":"access"}`), 0o600))

	store := NewFileStore(path)
	_, err := store.Load()
	require.ErrorIs(t, err, ErrNotFound)
}
