package animals

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"

	"african-animals/internal/platform/logger"
)

type Service struct {
	repo Repository
	log  logger.Logger
}

func NewService(repo Repository, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		repo: repo,
		log:  log.With(map[string]any{"component": "animals"}),
	}
}

// Input es lo que llega desde el formulario (create o edit), ya tipado.
type Input struct {
	Species        string
	Extinct        bool
	Location       string
	LifeExpectancy float64
	Image          string
}

func (in Input) normalize() Input {
	in.Species = strings.TrimSpace(in.Species)
	in.Location = strings.TrimSpace(in.Location)
	in.Image = strings.TrimSpace(in.Image)
	return in
}

func (in Input) validate() error {
	if in.Species == "" {
		return fmt.Errorf("%w: species is required", ErrInvalidInput)
	}
	if math.IsNaN(in.LifeExpectancy) || math.IsInf(in.LifeExpectancy, 0) || in.LifeExpectancy < 0 {
		return fmt.Errorf("%w: lifeExpectancy must be a non-negative number", ErrInvalidInput)
	}
	if in.Image != "" {
		u, err := url.ParseRequestURI(in.Image)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: image must be an absolute http(s) URL", ErrInvalidInput)
		}
	}
	return nil
}

func (in Input) toAnimal(id string) Animal {
	return Animal{
		ID:             id,
		Species:        in.Species,
		Extinct:        in.Extinct,
		Location:       in.Location,
		LifeExpectancy: in.LifeExpectancy,
		Image:          in.Image,
	}
}

// Seed borra todo y vuelve a insertar StarterSet. Son dos llamadas
// independientes: entre ambas la colección queda vacía.
func (s *Service) Seed(ctx context.Context) ([]Animal, error) {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("seed: delete all: %w", err)
	}
	created, err := s.repo.InsertMany(ctx, StarterSet())
	if err != nil {
		return nil, fmt.Errorf("seed: insert: %w", err)
	}
	s.log.Info("collection reseeded", map[string]any{"count": len(created)})
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrInvalidID
	}
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (Animal, error) {
	in = in.normalize()
	if err := in.validate(); err != nil {
		return Animal{}, err
	}
	created, err := s.repo.Insert(ctx, in.toAnimal(""))
	if err != nil {
		return Animal{}, err
	}
	s.log.Debug("animal created", map[string]any{"id": created.ID, "species": created.Species})
	return created, nil
}

// Update reemplaza el documento completo; no hay update parcial.
func (s *Service) Update(ctx context.Context, id string, in Input) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrInvalidID
	}
	in = in.normalize()
	if err := in.validate(); err != nil {
		return Animal{}, err
	}
	a := in.toAnimal(id)
	if err := s.repo.Replace(ctx, a); err != nil {
		return Animal{}, err
	}
	s.log.Debug("animal replaced", map[string]any{"id": id})
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidID
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.log.Debug("animal deleted", map[string]any{"id": id})
	return nil
}

// Ready verifica que el repositorio responda (readiness).
func (s *Service) Ready(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
