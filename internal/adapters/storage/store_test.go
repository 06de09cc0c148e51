package storage

import (
	"context"
	"path/filepath"
	"testing"

	"african-animals/internal/config"
	"african-animals/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackendFor(t *testing.T) {
	cases := map[string]Backend{
		"":                                   BackendMemory,
		"mongodb://localhost:27017":          BackendMongo,
		"mongodb+srv://u:p@cluster.example":  BackendMongo,
		"postgres://u:p@localhost:5432/zoo":  BackendPostgres,
		"postgresql://localhost/zoo":         BackendPostgres,
		"sqlite://data/animals.db":           BackendSQLite,
		"file:animals.db?_busy_timeout=5000": BackendSQLite,
	}
	for in, want := range cases {
		got, err := BackendFor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestBackendFor_UnknownSchemeRedactsCredentials(t *testing.T) {
	_, err := BackendFor("mysql://root:secret@db:3306/zoo")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret")
	assert.Contains(t, err.Error(), "mysql://***@db:3306/zoo")
}

func TestOpen_MemoryWhenURLEmpty(t *testing.T) {
	ctx := context.Background()
	st, err := Open(ctx, config.Config{}, logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, st.Backend)
	require.NoError(t, st.Animals.Ping(ctx))
	assert.NoError(t, st.Close(ctx))
}

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	url := "sqlite://" + filepath.Join(t.TempDir(), "animals.db")

	st, err := Open(ctx, config.Config{DatabaseURL: url}, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close(ctx) })

	assert.Equal(t, BackendSQLite, st.Backend)
	require.NoError(t, st.Animals.Ping(ctx))

	all, err := st.Animals.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
