package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"african-animals/internal/domain/animals"
)

func TestSeedCmd_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "animals.db")
	t.Setenv("DATABASE_URL", "sqlite://"+dbPath)
	t.Setenv("LOG_LEVEL", "error")

	for i := 0; i < 2; i++ {
		var out, errOut bytes.Buffer
		root := NewRootCmd()
		root.SetOut(&out)
		root.SetErr(&errOut)
		root.SetArgs([]string{"seed", "--env-file", filepath.Join(t.TempDir(), "missing.env")})

		require.NoError(t, root.Execute(), errOut.String())

		got := out.String()
		assert.Contains(t, got, "5 animals into")
		assert.Contains(t, got, "sqlite")
		for _, a := range animals.StarterSet() {
			assert.Contains(t, got, a.Species)
		}
	}

	// el archivo existe y el seed quedó persistido
	_, err := os.Stat(dbPath)
	require.NoError(t, err)
}

func TestSeedCmd_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "test.env")
	dbPath := filepath.Join(dir, "from-env.db")
	require.NoError(t, os.WriteFile(envPath, []byte("DATABASE_URL=sqlite://"+dbPath+"\nLOG_LEVEL=error\n"), 0o600))

	// godotenv no pisa variables existentes
	t.Setenv("DATABASE_URL", "")
	require.NoError(t, os.Unsetenv("DATABASE_URL"))
	t.Setenv("LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))

	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"seed", "--env-file", envPath})
	require.NoError(t, root.Execute())

	_, err := os.Stat(dbPath)
	require.NoError(t, err, "DATABASE_URL must come from the env file")
}

func TestSeedCmd_BadConfig(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"seed", "--env-file", filepath.Join(t.TempDir(), "missing.env")})

	err := root.Execute()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "config: PORT"), err.Error())
}

func TestPrintSeeded(t *testing.T) {
	var out bytes.Buffer
	printSeeded(&out, "memory", []animals.Animal{
		{ID: "a1", Species: "Lion", Location: "Kenya", LifeExpectancy: 10},
		{ID: "a2", Species: "Okapi", Location: "Ituri", LifeExpectancy: 22.5},
	})

	got := out.String()
	assert.Contains(t, got, "2 animals into")
	assert.Contains(t, got, "Okapi")
	assert.Contains(t, got, "22.5")
}
