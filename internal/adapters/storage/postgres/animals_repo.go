package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"african-animals/internal/domain/animals"

	"github.com/google/uuid"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const selectAnimals = `
	SELECT id, species, extinct, location, life_expectancy, image
	FROM animals
`

const insertAnimal = `
	INSERT INTO animals (id, species, extinct, location, life_expectancy, image)
	VALUES ($1,$2,$3,$4,$5,$6)
`

func (r *AnimalsRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM animals`); err != nil {
		return fmt.Errorf("delete animals: %w", err)
	}
	return nil
}

func (r *AnimalsRepo) InsertMany(ctx context.Context, items []animals.Animal) ([]animals.Animal, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	out := make([]animals.Animal, 0, len(items))
	for _, a := range items {
		a.ID = uuid.NewString()
		if _, err := tx.ExecContext(ctx, insertAnimal,
			a.ID, a.Species, a.Extinct, a.Location, a.LifeExpectancy, a.Image,
		); err != nil {
			return nil, fmt.Errorf("insert animal: %w", err)
		}
		out = append(out, a)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return out, nil
}

func (r *AnimalsRepo) Insert(ctx context.Context, a animals.Animal) (animals.Animal, error) {
	a.ID = uuid.NewString()
	if _, err := r.db.ExecContext(ctx, insertAnimal,
		a.ID, a.Species, a.Extinct, a.Location, a.LifeExpectancy, a.Image,
	); err != nil {
		return animals.Animal{}, fmt.Errorf("insert animal: %w", err)
	}
	return a, nil
}

func (r *AnimalsRepo) FindAll(ctx context.Context) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, selectAnimals+` ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("select animals: %w", err)
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		var a animals.Animal
		if err := rows.Scan(&a.ID, &a.Species, &a.Extinct, &a.Location, &a.LifeExpectancy, &a.Image); err != nil {
			return nil, fmt.Errorf("scan animal: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *AnimalsRepo) FindByID(ctx context.Context, id string) (animals.Animal, error) {
	key, err := parseID(id)
	if err != nil {
		return animals.Animal{}, err
	}

	var a animals.Animal
	err = r.db.QueryRowContext(ctx, selectAnimals+` WHERE id = $1`, key).
		Scan(&a.ID, &a.Species, &a.Extinct, &a.Location, &a.LifeExpectancy, &a.Image)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, fmt.Errorf("select animal: %w", err)
	}
	return a, nil
}

func (r *AnimalsRepo) Replace(ctx context.Context, a animals.Animal) error {
	key, err := parseID(a.ID)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET
			species = $2,
			extinct = $3,
			location = $4,
			life_expectancy = $5,
			image = $6
		WHERE id = $1
	`, key, a.Species, a.Extinct, a.Location, a.LifeExpectancy, a.Image)
	if err != nil {
		return fmt.Errorf("update animal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) DeleteByID(ctx context.Context, id string) error {
	key, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, key)
	if err != nil {
		return fmt.Errorf("delete animal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// parseID evita mandar a Postgres algo que no castea a UUID.
func parseID(id string) (string, error) {
	u, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return "", errors.Join(animals.ErrInvalidID, err)
	}
	return u.String(), nil
}
