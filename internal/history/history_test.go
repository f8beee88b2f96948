package history

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kedare/wordsmith/internal/history/migrations"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "nested", FileName))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func withClock(s *Store) func(time.Duration) {
	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	current := base
	s.now = func() time.Time { return current }

	return func(d time.Duration) { current = current.Add(d) }
}

func TestOpenCreatesVersionedDatabase(t *testing.T) {
	s := openTestStore(t)

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(FilePermissions), info.Mode().Perm())

	version, err := getSchemaVersion(s.db)
	require.NoError(t, err)
	assert.Equal(t, migrations.LatestVersion(), version)
	assert.Equal(t, 3, version)
}

func TestRecordAndRecent(t *testing.T) {
	s := openTestStore(t)
	advance := withClock(s)

	require.NoError(t, s.Record("tacs"))
	advance(time.Second)
	require.NoError(t, s.Record(" QUIZ "))
	advance(time.Second)
	require.NoError(t, s.Record("tacs"))
	require.NoError(t, s.Record("   "))

	entries, err := s.Recent(0)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "tacs", entries[0].Letters)
	assert.Equal(t, 2, entries[0].Uses)
	assert.Equal(t, "quiz", entries[1].Letters)
	assert.Equal(t, 1, entries[1].Uses)
	assert.True(t, entries[0].LastUsed.After(entries[1].LastUsed))

	letters, err := s.Letters(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"tacs"}, letters)
}

func TestClear(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Record("abc"))
	require.NoError(t, s.Record("def"))

	n, err := s.Clear()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	entries, err := s.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReopenKeepsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Record("zebra"))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	letters, err := s.Letters(5)
	require.NoError(t, err)
	assert.Equal(t, []string{"zebra"}, letters)
}

func TestMigrateFromVersionOne(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	require.NoError(t, initSchema(db))
	require.NoError(t, setSchemaVersion(db, 1))
	require.NoError(t, db.Close())

	s, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	version, err := getSchemaVersion(s.db)
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, version)

	_, err = os.Stat(path + ".bak")
	assert.True(t, os.IsNotExist(err))

	require.NoError(t, s.Record("abc"))
}

func TestNilStoreIsDisabled(t *testing.T) {
	var s *Store

	assert.NoError(t, s.Record("abc"))
	entries, err := s.Recent(5)
	assert.NoError(t, err)
	assert.Nil(t, entries)

	n, err := s.Clear()
	assert.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, s.Path())
	assert.NoError(t, s.Close())
}

func TestMigrationRegistry(t *testing.T) {
	all := migrations.All()
	require.Len(t, all, 2)
	assert.Equal(t, 2, all[0].Version())
	assert.Equal(t, 3, all[1].Version())

	assert.Len(t, migrations.GetPending(2), 1)
	assert.Empty(t, migrations.GetPending(3))
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	t.Setenv("HOME", "/tmp/home")

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("wordsmith", FileName), filepath.Join(filepath.Base(filepath.Dir(path)), filepath.Base(path)))
}
