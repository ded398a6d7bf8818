package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

// testKV runs the KV contract against any backend.
func testKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	require.True(t, IsNotFound(err), "missing key: %v", err)

	require.NoError(t, kv.Put(ctx, "b", []byte(`{"v":1}`)))
	require.NoError(t, kv.Put(ctx, "a", []byte(`[]`)))

	got, err := kv.Get(ctx, "b")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":1}`, string(got))

	require.NoError(t, kv.Put(ctx, "b", []byte(`{"v":2}`)))
	got, err = kv.Get(ctx, "b")
	require.NoError(t, err)
	assert.JSONEq(t, `{"v":2}`, string(got), "put replaces the whole value")

	keys, err := kv.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, keys)

	require.NoError(t, kv.Delete(ctx, "b"))
	_, err = kv.Get(ctx, "b")
	assert.True(t, IsNotFound(err))
	require.NoError(t, kv.Delete(ctx, "never-written"))
}

func TestSQLite_KV(t *testing.T) {
	testKV(t, openTestStore(t))
}

func TestMemory_KV(t *testing.T) {
	testKV(t, NewMemory())
}

func TestSQLite_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persist.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "answerLedger", []byte(`[1,2,3]`)))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Get(ctx, "answerLedger")
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(got))
}

func TestMemory_CopiesValues(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()
	buf := []byte("abc")
	require.NoError(t, m.Put(ctx, "k", buf))
	buf[0] = 'x'
	got, _ := m.Get(ctx, "k")
	assert.Equal(t, "abc", string(got))
}

func TestOpenURL(t *testing.T) {
	ctx := context.Background()

	kv, err := OpenURL(ctx, "memory:")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, kv)

	path := filepath.Join(t.TempDir(), "nested", "dir", "m.db")
	kv, err = OpenURL(ctx, path)
	require.NoError(t, err)
	defer kv.Close()
	assert.IsType(t, &SQLite{}, kv)
	_, err = os.Stat(filepath.Dir(path))
	assert.NoError(t, err)

	_, err = OpenURL(ctx, "redis://%zz")
	assert.Error(t, err)
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("MLTPLY_DB", filepath.Join(dir, "custom", "x.db"))
	p, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "custom", "x.db"), p)

	t.Setenv("MLTPLY_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mltply", "mltply.db"), p)
	_, err = os.Stat(filepath.Join(dir, "mltply"))
	assert.NoError(t, err)
}

var pointSchema = &Schema{
	Name: "test_point",
	Definition: map[string]any{
		"type":                 "object",
		"required":             []string{"x"},
		"additionalProperties": false,
		"properties": map[string]any{
			"x": map[string]any{"type": "integer"},
		},
	},
}

type point struct {
	X int `json:"x"`
}

func TestLoadSave(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()

	var p point
	err := Load(ctx, kv, "pt", pointSchema, &p)
	assert.True(t, IsNotFound(err))

	require.NoError(t, Save(ctx, kv, "pt", point{X: 7}))
	require.NoError(t, Load(ctx, kv, "pt", pointSchema, &p))
	assert.Equal(t, 7, p.X)
}

func TestLoad_InvalidRecords(t *testing.T) {
	ctx := context.Background()
	kv := NewMemory()

	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"x":`},
		{"wrong type", `{"x":"seven"}`},
		{"missing field", `{}`},
		{"extra field", `{"x":1,"y":2}`},
	}
	for _, tc := range tests {
		require.NoError(t, kv.Put(ctx, "pt", []byte(tc.raw)))
		p := point{X: 99}
		err := Load(ctx, kv, "pt", pointSchema, &p)

		var invalid *ErrInvalidRecord
		require.True(t, errors.As(err, &invalid), "%s: got %v", tc.name, err)
		assert.Equal(t, "pt", invalid.Key)
		assert.Equal(t, 99, p.X, "%s: target must be untouched", tc.name)
	}
}

func TestRedis_KV(t *testing.T) {
	url := os.Getenv("MLTPLY_TEST_REDIS")
	if url == "" {
		t.Skip("MLTPLY_TEST_REDIS not set")
	}
	r, err := OpenRedis(context.Background(), url)
	require.NoError(t, err)
	defer r.Close()

	kv := r.WithPrefix("mltply-test:" + t.Name() + ":")
	ctx := context.Background()
	keys, err := kv.Keys(ctx)
	require.NoError(t, err)
	for _, k := range keys {
		require.NoError(t, kv.Delete(ctx, k))
	}
	testKV(t, kv)
}
