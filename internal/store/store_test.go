package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-redis/redismock/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "progress")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "progress", []byte(`{"xp":10}`)))
	got, err := s.Get(ctx, "progress")
	require.NoError(t, err)
	assert.JSONEq(t, `{"xp":10}`, string(got))

	require.NoError(t, s.Set(ctx, "progress", []byte(`{"xp":20}`)))
	got, err = s.Get(ctx, "progress")
	require.NoError(t, err)
	assert.JSONEq(t, `{"xp":20}`, string(got))

	require.NoError(t, s.Delete(ctx, "progress"))
	_, err = s.Get(ctx, "progress")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, s.Delete(ctx, "progress"))

	require.NoError(t, s.Close())
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	s := NewMemoryStore()
	buf := []byte("abc")
	require.NoError(t, s.Set(context.Background(), "k", buf))
	buf[0] = 'x'
	got, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestFileStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s, err := NewFileStore(dir)
	require.NoError(t, err)
	exerciseStore(t, s)

	_, err = os.Stat(filepath.Join(dir, "progress.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "progress.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "fundlens.db"))
	require.NoError(t, err)
	exerciseStore(t, s)
}

func TestSQLiteStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fundlens.db")
	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "k", []byte("v")))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(context.Background(), "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestRedisStore(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisStore(db, "fundlens:")
	ctx := context.Background()

	mock.ExpectGet("fundlens:progress").RedisNil()
	_, err := s.Get(ctx, "progress")
	assert.ErrorIs(t, err, ErrNotFound)

	mock.ExpectSet("fundlens:progress", `{"xp":10}`, 0).SetVal("OK")
	require.NoError(t, s.Set(ctx, "progress", []byte(`{"xp":10}`)))

	mock.ExpectGet("fundlens:progress").SetVal(`{"xp":10}`)
	got, err := s.Get(ctx, "progress")
	require.NoError(t, err)
	assert.Equal(t, `{"xp":10}`, string(got))

	mock.ExpectDel("fundlens:progress").SetVal(1)
	require.NoError(t, s.Delete(ctx, "progress"))

	mock.ExpectGet("fundlens:progress").SetErr(errors.New("connection refused"))
	_, err = s.Get(ctx, "progress")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, Options{Driver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = Open(ctx, Options{Driver: "file", FileDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, s)

	s, err = Open(ctx, Options{Driver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "kv.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, s)
	require.NoError(t, s.Close())

	_, err = Open(ctx, Options{Driver: "etcd"})
	assert.Error(t, err)
}
