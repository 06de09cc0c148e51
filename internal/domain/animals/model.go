package animals

import "errors"

var (
	// ErrInvalidInput: el formulario o el input no pasa validación.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidID: el id no tiene el formato que espera el backend.
	ErrInvalidID = errors.New("invalid animal id")
	// ErrNotFound: id bien formado pero sin registro.
	ErrNotFound = errors.New("animal not found")
)

// Animal es el único registro del sistema: una especie africana.
type Animal struct {
	// ID lo asigna el repositorio al insertar; no cambia nunca.
	ID string

	Species        string
	Extinct        bool
	Location       string
	LifeExpectancy float64 // años

	// Image es una URL opcional; vacío = sin imagen.
	Image string
}
