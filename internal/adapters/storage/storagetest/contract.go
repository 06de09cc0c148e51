// Package storagetest contiene la batería común que debe pasar cualquier
// implementación de animals.Repository.
package storagetest

import (
	"context"
	"testing"

	"african-animals/internal/domain/animals"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunRepositoryContract ejecuta los casos contra repos nuevos (vacíos).
// invalidID debe ser un id que el backend rechace por formato y
// missingID uno bien formado que no exista.
func RunRepositoryContract(t *testing.T, newRepo func(t *testing.T) animals.Repository, invalidID, missingID string) {
	t.Helper()

	t.Run("insert then find returns same record", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		in := animals.Animal{
			Species:        "Okapi",
			Extinct:        false,
			Location:       "Ituri Rainforest",
			LifeExpectancy: 22.5,
			Image:          "https://example.org/okapi.jpg",
		}
		created, err := repo.Insert(ctx, in)
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)

		got, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)

		in.ID = created.ID
		assert.Equal(t, in, got)
	})

	t.Run("seed twice leaves exactly the starter set", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		for i := 0; i < 2; i++ {
			require.NoError(t, repo.DeleteAll(ctx))
			created, err := repo.InsertMany(ctx, animals.StarterSet())
			require.NoError(t, err)
			require.Len(t, created, 5)
		}

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 5)

		species := make([]string, 0, len(all))
		years := make([]float64, 0, len(all))
		for _, a := range all {
			species = append(species, a.Species)
			years = append(years, a.LifeExpectancy)
		}
		assert.Equal(t, []string{"African Elephant", "Lion", "Giraffe", "Cheetah", "African Buffalo"}, species)
		assert.Equal(t, []float64{60, 10, 25, 12, 25}, years)
	})

	t.Run("replace overwrites every field", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		a, err := repo.Insert(ctx, animals.Animal{Species: "Lion", LifeExpectancy: 10, Image: "https://example.org/l.jpg"})
		require.NoError(t, err)

		repl := animals.Animal{ID: a.ID, Species: "Barbary Lion", Extinct: true, Location: "North Africa"}
		require.NoError(t, repo.Replace(ctx, repl))

		got, err := repo.FindByID(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, repl, got)
	})

	t.Run("delete then find is not found", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		a, err := repo.Insert(ctx, animals.Animal{Species: "Cheetah"})
		require.NoError(t, err)

		require.NoError(t, repo.DeleteByID(ctx, a.ID))
		_, err = repo.FindByID(ctx, a.ID)
		assert.ErrorIs(t, err, animals.ErrNotFound)
		assert.ErrorIs(t, repo.DeleteByID(ctx, a.ID), animals.ErrNotFound)
	})

	t.Run("invalid and missing ids are distinct", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		_, err := repo.FindByID(ctx, invalidID)
		assert.ErrorIs(t, err, animals.ErrInvalidID)
		assert.ErrorIs(t, repo.DeleteByID(ctx, invalidID), animals.ErrInvalidID)
		assert.ErrorIs(t, repo.Replace(ctx, animals.Animal{ID: invalidID, Species: "x"}), animals.ErrInvalidID)

		_, err = repo.FindByID(ctx, missingID)
		assert.ErrorIs(t, err, animals.ErrNotFound)
		assert.ErrorIs(t, repo.Replace(ctx, animals.Animal{ID: missingID, Species: "x"}), animals.ErrNotFound)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newRepo(t).Ping(context.Background()))
	})
}
