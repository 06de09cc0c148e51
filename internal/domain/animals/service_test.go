package animals

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID   map[string]Animal
	order  []string
	nextID int

	// errores inyectables
	deleteAllErr error
	insertErr    error

	calls []string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Animal{}}
}

func (r *testRepo) DeleteAll(ctx context.Context) error {
	r.calls = append(r.calls, "DeleteAll")
	if r.deleteAllErr != nil {
		return r.deleteAllErr
	}
	r.byID = map[string]Animal{}
	r.order = nil
	return nil
}

func (r *testRepo) InsertMany(ctx context.Context, items []Animal) ([]Animal, error) {
	r.calls = append(r.calls, "InsertMany")
	out := make([]Animal, 0, len(items))
	for _, a := range items {
		created, err := r.insert(a)
		if err != nil {
			return nil, err
		}
		out = append(out, created)
	}
	return out, nil
}

func (r *testRepo) Insert(ctx context.Context, a Animal) (Animal, error) {
	r.calls = append(r.calls, "Insert")
	return r.insert(a)
}

func (r *testRepo) insert(a Animal) (Animal, error) {
	if r.insertErr != nil {
		return Animal{}, r.insertErr
	}
	r.nextID++
	a.ID = fmt.Sprintf("id-%d", r.nextID)
	r.byID[a.ID] = a
	r.order = append(r.order, a.ID)
	return a, nil
}

func (r *testRepo) FindAll(ctx context.Context) ([]Animal, error) {
	out := make([]Animal, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *testRepo) FindByID(ctx context.Context, id string) (Animal, error) {
	if id == "bad" {
		return Animal{}, ErrInvalidID
	}
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, ErrNotFound
	}
	return a, nil
}

func (r *testRepo) Replace(ctx context.Context, a Animal) error {
	r.calls = append(r.calls, "Replace")
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) DeleteByID(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *testRepo) Ping(ctx context.Context) error { return nil }

// -------------------------
// Tests
// -------------------------

func TestService_Seed_ReplacesCollection(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, Input{Species: "Dodo"})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		created, err := svc.Seed(ctx)
		require.NoError(t, err)
		require.Len(t, created, 5)
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, StarterSet()[0].Species, all[0].Species)
	for _, a := range all {
		assert.NotEqual(t, "Dodo", a.Species)
		assert.NotEmpty(t, a.ID)
	}
}

func TestService_Seed_StopsWhenDeleteFails(t *testing.T) {
	repo := newTestRepo()
	repo.deleteAllErr = errors.New("db down")
	svc := NewService(repo, nil)

	_, err := svc.Seed(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, repo.deleteAllErr)
	assert.Equal(t, []string{"DeleteAll"}, repo.calls)
}

func TestService_Create_RoundTrip(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	ctx := context.Background()

	in := Input{
		Species:        "  Okapi ",
		Location:       "Ituri",
		LifeExpectancy: 22,
		Image:          "https://example.org/okapi.jpg",
	}
	created, err := svc.Create(ctx, in)
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, Animal{
		ID:             created.ID,
		Species:        "Okapi",
		Location:       "Ituri",
		LifeExpectancy: 22,
		Image:          "https://example.org/okapi.jpg",
	}, got)
}

func TestService_Create_Validation(t *testing.T) {
	cases := map[string]Input{
		"empty species":       {Species: "   "},
		"negative years":      {Species: "Lion", LifeExpectancy: -1},
		"relative image":      {Species: "Lion", Image: "lion.jpg"},
		"non http image":      {Species: "Lion", Image: "ftp://example.org/lion.jpg"},
		"javascript as image": {Species: "Lion", Image: "javascript:alert(1)"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			repo := newTestRepo()
			svc := NewService(repo, nil)

			_, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Empty(t, repo.calls, "nothing must reach the repository")
		})
	}
}

func TestService_Update_ReplacesWholeRecord(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{Species: "Lion", Location: "Kenya", LifeExpectancy: 10, Image: "https://example.org/l.jpg"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, Input{Species: "Barbary Lion", Extinct: true})
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
	assert.Empty(t, got.Location)
	assert.Empty(t, got.Image)
	assert.True(t, got.Extinct)
}

func TestService_Update_Errors(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, nil)
	ctx := context.Background()

	_, err := svc.Update(ctx, "id-404", Input{Species: "Lion"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, " ", Input{Species: "Lion"})
	assert.ErrorIs(t, err, ErrInvalidID)

	_, err = svc.Update(ctx, "id-1", Input{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	svc := NewService(newTestRepo(), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, Input{Species: "Cheetah"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, ""), ErrInvalidID)
}

func TestService_Get_PropagatesInvalidID(t *testing.T) {
	svc := NewService(newTestRepo(), nil)

	_, err := svc.Get(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestParseExtinct(t *testing.T) {
	assert.True(t, parseExtinct("on"))
	assert.True(t, parseExtinct("ON"))
	assert.True(t, parseExtinct("true"))
	assert.True(t, parseExtinct("1"))
	assert.False(t, parseExtinct(""))
	assert.False(t, parseExtinct("off"))
}

func TestInputFromForm(t *testing.T) {
	in, err := inputFromForm(url.Values{
		"species":        {"Giraffe"},
		"location":       {"Savannas of Africa"},
		"lifeExpectancy": {" 25 "},
	})
	require.NoError(t, err)
	assert.Equal(t, Input{Species: "Giraffe", Location: "Savannas of Africa", LifeExpectancy: 25}, in)

	in, err = inputFromForm(url.Values{"species": {"Giraffe"}, "extinct": {"on"}})
	require.NoError(t, err)
	assert.True(t, in.Extinct)
	assert.Zero(t, in.LifeExpectancy)

	_, err = inputFromForm(url.Values{"species": {"Giraffe"}, "lifeExpectancy": {"old"}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStarterSet(t *testing.T) {
	set := StarterSet()
	require.Len(t, set, 5)

	species := []string{}
	years := []float64{}
	for _, a := range set {
		species = append(species, a.Species)
		years = append(years, a.LifeExpectancy)
		assert.False(t, a.Extinct)
		assert.Empty(t, a.ID)
	}
	assert.Equal(t, []string{"African Elephant", "Lion", "Giraffe", "Cheetah", "African Buffalo"}, species)
	assert.Equal(t, []float64{60, 10, 25, 12, 25}, years)

	// copia nueva: mutar no afecta la siguiente llamada
	set[0].Species = "Mutated"
	assert.Equal(t, "African Elephant", StarterSet()[0].Species)
}
