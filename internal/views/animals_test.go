package views

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func TestIndex_ListsAndEscapes(t *testing.T) {
	out := render(t, Index([]Animal{
		{ID: "a1", Species: "Lion"},
		{ID: "a2", Species: "<script>alert(1)</script>"},
	}))

	assert.Contains(t, out, `<a href="/animals/a1">Lion</a>`)
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "<script>alert")
	assert.Contains(t, out, "<title>Animals of Africa</title>")
}

func TestIndex_Empty(t *testing.T) {
	out := render(t, Index(nil))
	assert.Contains(t, out, `href="/animals/seed"`)
}

func TestShow_ImageAndDeleteForm(t *testing.T) {
	out := render(t, Show(Animal{
		ID:             "abc",
		Species:        "Giraffe",
		Location:       "Savannas of Africa",
		LifeExpectancy: "25",
		Image:          "https://example.org/giraffe.jpg",
	}))

	assert.Contains(t, out, `<img class="animal" src="https://example.org/giraffe.jpg"`)
	assert.Contains(t, out, `action="/animals/abc?_method=DELETE"`)
	assert.Contains(t, out, `href="/animals/abc/edit"`)
	assert.Contains(t, out, "<dd>No</dd>")
}

func TestShow_UnsafeImageIsSanitized(t *testing.T) {
	out := render(t, Show(Animal{ID: "x", Species: "Lion", Image: "javascript:alert(1)"}))
	assert.NotContains(t, out, "javascript:alert")
}

func TestEditForm_PrefillsValues(t *testing.T) {
	out := render(t, Edit(Form{
		Action: "/animals/abc?_method=PUT",
		Animal: Animal{ID: "abc", Species: "Cheetah", Extinct: true, LifeExpectancy: "12"},
		Error:  "invalid input: species is required",
	}))

	assert.Contains(t, out, `action="/animals/abc?_method=PUT"`)
	assert.Contains(t, out, `name="species" value="Cheetah"`)
	assert.Contains(t, out, `name="lifeExpectancy" value="12"`)
	assert.Contains(t, out, `name="extinct" checked`)
	assert.Contains(t, out, `<p class="error">invalid input: species is required</p>`)
}

func TestNewForm_EmptyAndWrappedInLayout(t *testing.T) {
	out := render(t, New(Form{Action: "/animals"}))

	assert.Contains(t, out, "<title>New animal</title>")
	assert.Contains(t, out, `<form method="POST" action="/animals">`)
	assert.Contains(t, out, `<label>Species <input type="text" name="species" value=""></label>`)
	assert.Contains(t, out, `name="extinct"></label> <button type="submit">Create</button>`)
	assert.NotContains(t, out, `class="error"`)
	assert.True(t, strings.HasPrefix(out, "<!doctype html>"))
	assert.True(t, strings.HasSuffix(out, "</main></body></html>"))
}

func TestForm_UnsafeActionIsSanitized(t *testing.T) {
	out := render(t, New(Form{Action: "javascript:alert(1)"}))
	assert.NotContains(t, out, "javascript:alert")
	assert.Contains(t, out, `action="about:invalid#TemplFailedSanitizationURL"`)
}

func TestStaticHandler_ServesStylesheet(t *testing.T) {
	rec := httptest.NewRecorder()
	StaticHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/style.css", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "font-family")
}
