package middleware

import (
	"net/http"
	"strings"
)

// MethodOverride permite que un form HTML (solo GET/POST) envíe PUT/PATCH/DELETE
// con _method en la query (?_method=DELETE) o como campo del form.
// Tiene que correr antes del routing de chi.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			next.ServeHTTP(w, r)
			return
		}

		m := r.URL.Query().Get("_method")
		if m == "" && isForm(r) {
			// ParseForm deja el body en r.PostForm; el handler lo puede volver a leer.
			if err := r.ParseForm(); err == nil {
				m = r.PostForm.Get("_method")
			}
		}

		switch strings.ToUpper(strings.TrimSpace(m)) {
		case http.MethodPut:
			r.Method = http.MethodPut
		case http.MethodPatch:
			r.Method = http.MethodPatch
		case http.MethodDelete:
			r.Method = http.MethodDelete
		}

		next.ServeHTTP(w, r)
	})
}

func isForm(r *http.Request) bool {
	ct := r.Header.Get("Content-Type")
	return strings.HasPrefix(ct, "application/x-www-form-urlencoded")
}
