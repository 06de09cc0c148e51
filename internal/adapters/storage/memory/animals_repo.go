package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"african-animals/internal/domain/animals"

	"github.com/google/uuid"
)

type animalRepo struct {
	mu    sync.RWMutex
	byID  map[string]animals.Animal
	order []string // orden de inserción para FindAll
}

func NewAnimalRepo() animals.Repository {
	return &animalRepo{
		byID: make(map[string]animals.Animal),
	}
}

func (r *animalRepo) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byID = make(map[string]animals.Animal)
	r.order = nil
	return nil
}

func (r *animalRepo) InsertMany(ctx context.Context, items []animals.Animal) ([]animals.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]animals.Animal, 0, len(items))
	for _, a := range items {
		out = append(out, r.insertLocked(a))
	}
	return out, nil
}

func (r *animalRepo) Insert(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insertLocked(a), nil
}

func (r *animalRepo) insertLocked(a animals.Animal) animals.Animal {
	a.ID = uuid.NewString()
	r.byID[a.ID] = a
	r.order = append(r.order, a.ID)
	return a
}

func (r *animalRepo) FindAll(ctx context.Context) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]animals.Animal, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *animalRepo) FindByID(ctx context.Context, id string) (animals.Animal, error) {
	key, err := parseID(id)
	if err != nil {
		return animals.Animal{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[key]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	return a, nil
}

func (r *animalRepo) Replace(ctx context.Context, a animals.Animal) error {
	key, err := parseID(a.ID)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[key]; !exists {
		return animals.ErrNotFound
	}
	a.ID = key
	r.byID[key] = a
	return nil
}

func (r *animalRepo) DeleteByID(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[key]; !exists {
		return animals.ErrNotFound
	}
	delete(r.byID, key)
	for i, v := range r.order {
		if v == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *animalRepo) Ping(ctx context.Context) error {
	return ctx.Err()
}

// parseID normaliza el id (uuid canónico) o devuelve ErrInvalidID.
func parseID(id string) (string, error) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", errors.Join(animals.ErrInvalidID, err)
	}
	return u.String(), nil
}
