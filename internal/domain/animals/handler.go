package animals

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"african-animals/internal/platform/logger"
	"african-animals/internal/views"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	if log == nil {
		log = logger.NewNop()
	}
	log = log.With(map[string]any{"component": "animals.http"})

	r.Route("/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc, log))
		ar.Post("/", createAnimalHandler(svc, log))

		// Rutas estáticas antes que /{animalID} (chi las prioriza igual)
		ar.Get("/seed", seedAnimalsHandler(svc, log))
		ar.Get("/new", newAnimalHandler(log))

		ar.Get("/{animalID}", showAnimalHandler(svc, log))
		ar.Get("/{animalID}/edit", editAnimalHandler(svc, log))
		ar.Put("/{animalID}", updateAnimalHandler(svc, log))
		ar.Delete("/{animalID}", deleteAnimalHandler(svc, log))
	})
}

type animalResponse struct {
	ID             string  `json:"id"`
	Species        string  `json:"species"`
	Extinct        bool    `json:"extinct"`
	Location       string  `json:"location"`
	LifeExpectancy float64 `json:"lifeExpectancy"`
	Image          string  `json:"image,omitempty"`
}

// seedAnimalsHandler godoc
// @Summary Reseed the collection
// @Description Deletes every animal and inserts the fixed starter set.
// @Tags animals
// @Produce json
// @Success 200 {array} animalResponse
// @Router /animals/seed [get]
func seedAnimalsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		created, err := svc.Seed(r.Context())
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		out := make([]animalResponse, 0, len(created))
		for _, a := range created {
			out = append(out, toAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listAnimalsHandler godoc
// @Summary List animals
// @Tags animals
// @Produce html
// @Success 200
// @Router /animals [get]
func listAnimalsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		out := make([]views.Animal, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalView(a))
		}
		render(w, r, log, http.StatusOK, views.Index(out))
	}
}

// newAnimalHandler godoc
// @Summary Creation form
// @Tags animals
// @Produce html
// @Success 200
// @Router /animals/new [get]
func newAnimalHandler(log logger.Logger) http.HandlerFunc {
	// Sin llamada a persistencia
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, log, http.StatusOK, views.New(views.Form{Action: "/animals"}))
	}
}

// showAnimalHandler godoc
// @Summary Animal detail
// @Tags animals
// @Produce html
// @Param animalID path string true "Animal ID"
// @Success 200
// @Failure 400 {string} string "invalid animal id"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [get]
func showAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Get(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		render(w, r, log, http.StatusOK, views.Show(toAnimalView(a)))
	}
}

// editAnimalHandler godoc
// @Summary Edit form
// @Tags animals
// @Produce html
// @Param animalID path string true "Animal ID"
// @Success 200
// @Failure 400 {string} string "invalid animal id"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID}/edit [get]
func editAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Get(r.Context(), chi.URLParam(r, "animalID"))
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		render(w, r, log, http.StatusOK, views.Edit(views.Form{
			Action: editAction(a.ID),
			Animal: toAnimalView(a),
		}))
	}
}

// createAnimalHandler godoc
// @Summary Create an animal
// @Tags animals
// @Accept x-www-form-urlencoded
// @Param species formData string true "Species"
// @Param extinct formData string false "on when extinct"
// @Param location formData string false "Location"
// @Param lifeExpectancy formData number false "Life expectancy in years"
// @Param image formData string false "Image URL"
// @Success 303
// @Failure 400 {string} string "invalid input"
// @Router /animals [post]
func createAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form body", http.StatusBadRequest)
			return
		}

		in, err := inputFromForm(r.PostForm)
		if err == nil {
			_, err = svc.Create(r.Context(), in)
		}
		if errors.Is(err, ErrInvalidInput) {
			render(w, r, log, http.StatusBadRequest, views.New(views.Form{
				Action: "/animals",
				Animal: formView("", r.PostForm),
				Error:  err.Error(),
			}))
			return
		}
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		http.Redirect(w, r, "/animals", http.StatusSeeOther)
	}
}

// updateAnimalHandler godoc
// @Summary Replace an animal
// @Description HTML forms send POST with _method=PUT.
// @Tags animals
// @Accept x-www-form-urlencoded
// @Param animalID path string true "Animal ID"
// @Param species formData string true "Species"
// @Param extinct formData string false "on when extinct"
// @Param location formData string false "Location"
// @Param lifeExpectancy formData number false "Life expectancy in years"
// @Param image formData string false "Image URL"
// @Success 303
// @Failure 400 {string} string "invalid input"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [put]
func updateAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "animalID")
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form body", http.StatusBadRequest)
			return
		}

		in, err := inputFromForm(r.PostForm)
		if err == nil {
			_, err = svc.Update(r.Context(), id, in)
		}
		if errors.Is(err, ErrInvalidInput) {
			render(w, r, log, http.StatusBadRequest, views.Edit(views.Form{
				Action: editAction(id),
				Animal: formView(id, r.PostForm),
				Error:  err.Error(),
			}))
			return
		}
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		http.Redirect(w, r, "/animals/"+url.PathEscape(id), http.StatusSeeOther)
	}
}

// deleteAnimalHandler godoc
// @Summary Delete an animal
// @Description HTML forms send POST with _method=DELETE.
// @Tags animals
// @Param animalID path string true "Animal ID"
// @Success 303
// @Failure 400 {string} string "invalid animal id"
// @Failure 404 {string} string "animal not found"
// @Router /animals/{animalID} [delete]
func deleteAnimalHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "animalID")); err != nil {
			writeError(w, r, log, err)
			return
		}
		http.Redirect(w, r, "/animals", http.StatusSeeOther)
	}
}

// inputFromForm traduce el body urlencoded. extinct llega como "on" o no llega.
func inputFromForm(form url.Values) (Input, error) {
	in := Input{
		Species:  form.Get("species"),
		Extinct:  parseExtinct(form.Get("extinct")),
		Location: form.Get("location"),
		Image:    form.Get("image"),
	}

	if raw := strings.TrimSpace(form.Get("lifeExpectancy")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Input{}, fmt.Errorf("%w: lifeExpectancy must be a number", ErrInvalidInput)
		}
		in.LifeExpectancy = v
	}
	return in, nil
}

func parseExtinct(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1":
		return true
	default:
		return false
	}
}

func editAction(id string) string {
	return "/animals/" + url.PathEscape(id) + "?_method=PUT"
}

// formView devuelve lo que el usuario envió, para re-render con error.
func formView(id string, form url.Values) views.Animal {
	return views.Animal{
		ID:             id,
		Species:        form.Get("species"),
		Extinct:        parseExtinct(form.Get("extinct")),
		Location:       form.Get("location"),
		LifeExpectancy: form.Get("lifeExpectancy"),
		Image:          form.Get("image"),
	}
}

func toAnimalView(a Animal) views.Animal {
	return views.Animal{
		ID:             a.ID,
		Species:        a.Species,
		Extinct:        a.Extinct,
		Location:       a.Location,
		LifeExpectancy: strconv.FormatFloat(a.LifeExpectancy, 'f', -1, 64),
		Image:          a.Image,
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:             a.ID,
		Species:        a.Species,
		Extinct:        a.Extinct,
		Location:       a.Location,
		LifeExpectancy: a.LifeExpectancy,
		Image:          a.Image,
	}
}

func render(w http.ResponseWriter, r *http.Request, log logger.Logger, status int, c templ.Component) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := c.Render(r.Context(), w); err != nil {
		// headers ya enviados: solo queda loguear
		log.Error("render failed", map[string]any{
			"err":        err,
			"path":       r.URL.Path,
			"request_id": chimw.GetReqID(r.Context()),
		})
	}
}

// writeError mapea los errores del dominio a status HTTP.
func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidID):
		http.Error(w, "invalid animal id", http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Error("request failed", map[string]any{
			"err":        err,
			"method":     r.Method,
			"path":       r.URL.Path,
			"request_id": chimw.GetReqID(r.Context()),
		})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
