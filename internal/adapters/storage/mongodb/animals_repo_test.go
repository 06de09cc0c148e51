package mongodb

import (
	"context"
	"os"
	"testing"

	"african-animals/internal/adapters/storage/storagetest"
	"african-animals/internal/domain/animals"
	"african-animals/internal/platform/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcmongodb "github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func TestDecode_PartialLegacyDocument(t *testing.T) {
	// documento creado sin validación: sin location/extinct, número como int32 y __v
	raw, err := bson.Marshal(bson.M{
		"_id":            bson.NewObjectID(),
		"species":        "Lion",
		"lifeExpectancy": int32(10),
		"__v":            0,
	})
	require.NoError(t, err)

	var d animalDoc
	require.NoError(t, bson.Unmarshal(raw, &d))

	a := fromDoc(d)
	assert.Equal(t, "Lion", a.Species)
	assert.Equal(t, float64(10), a.LifeExpectancy)
	assert.False(t, a.Extinct)
	assert.Empty(t, a.Location)
	assert.Len(t, a.ID, 24)
}

func TestInvalidID_NoRoundTrip(t *testing.T) {
	// Connect es lazy: nada de esto toca la red
	client, err := mongo.Connect(options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	repo := NewAnimalsRepo(client, "animals", "animalsofafricas")
	ctx := context.Background()

	_, err = repo.FindByID(ctx, "not-an-object-id")
	assert.ErrorIs(t, err, animals.ErrInvalidID)
	assert.ErrorIs(t, repo.DeleteByID(ctx, "123"), animals.ErrInvalidID)
	assert.ErrorIs(t, repo.Replace(ctx, animals.Animal{ID: ""}), animals.ErrInvalidID)
}

func TestAnimalsRepo_Contract(t *testing.T) {
	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("skipping integration test: TEST_INTEGRATION not set")
	}

	ctx := context.Background()
	container, err := tcmongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("terminate container: %v", err)
		}
	})

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	client, err := Connect(ctx, uri, logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	storagetest.RunRepositoryContract(t,
		func(t *testing.T) animals.Repository {
			repo := NewAnimalsRepo(client, "animals_test", "animalsofafricas")
			require.NoError(t, repo.DeleteAll(ctx))
			return repo
		},
		"not-an-object-id",
		bson.NewObjectID().Hex(),
	)
}
