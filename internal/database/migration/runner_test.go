package migration

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	"career-compass/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMigrations_OrdersAndChecksums(t *testing.T) {
	fsys := fstest.MapFS{
		"V10__later.sql":  {Data: []byte("SELECT 10;")},
		"V2__second.sql":  {Data: []byte("  SELECT 2;\n")},
		"README.md":       {Data: []byte("ignored")},
		"V1__initial.sql": {Data: []byte("SELECT 1;")},
	}

	migs, err := LoadMigrations(fsys)
	require.NoError(t, err)
	require.Len(t, migs, 3)

	assert.Equal(t, []int64{1, 2, 10}, []int64{migs[0].Version, migs[1].Version, migs[2].Version})
	assert.Equal(t, "second", migs[1].Name)
	assert.Equal(t, "SELECT 2;", migs[1].SQL)
	assert.Len(t, migs[0].Checksum, 64)
	assert.NotEqual(t, migs[0].Checksum, migs[1].Checksum)
}

func TestLoadMigrations_Rejects(t *testing.T) {
	_, err := LoadMigrations(fstest.MapFS{"V1__empty.sql": {Data: []byte("   ")}})
	assert.Error(t, err)

	_, err = LoadMigrations(fstest.MapFS{
		"V1__a.sql":  {Data: []byte("SELECT 1;")},
		"V01__b.sql": {Data: []byte("SELECT 1;")},
	})
	assert.ErrorContains(t, err, "duplicate migration version")
}

func TestEmbeddedMigrations(t *testing.T) {
	migs, err := LoadMigrations(migrations.FS)
	require.NoError(t, err)
	require.Len(t, migs, 4)
	assert.Equal(t, "create_users", migs[0].Name)
	assert.Contains(t, migs[2].SQL, "learning_resources")
	assert.Equal(t, "add_user_projects", migs[3].Name)
}

func TestDiffApplied(t *testing.T) {
	migs := []Migration{
		{Version: 1, Name: "a", Checksum: "aaa"},
		{Version: 2, Name: "b", Checksum: "bbb"},
		{Version: 3, Name: "c", Checksum: "ccc"},
	}

	pending, err := diffApplied(migs, map[int64]string{1: "aaa"})
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, int64(2), pending[0].Version)

	none, err := diffApplied(migs, map[int64]string{1: "aaa", 2: "bbb", 3: "ccc"})
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = diffApplied(migs, map[int64]string{2: "changed"})
	assert.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestRunner_RejectsMissingInputs(t *testing.T) {
	_, err := Runner{FS: migrations.FS}.Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNilDB)

	_, err = Runner{}.Pending(context.Background(), &sql.DB{})
	assert.ErrorIs(t, err, ErrNilFS)
}
