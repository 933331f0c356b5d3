package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doForm(s *Server, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	s.Engine().ServeHTTP(resp, req)
	return resp
}

func doGet(s *Server, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	s.Engine().ServeHTTP(resp, req)
	return resp
}

func TestIndexRendersProducts(t *testing.T) {
	s := newTestServer(t)

	doJSON(s, http.MethodPost, "/api/products", `{"name":"Mouse","price":99.90}`)

	resp := doGet(s, "/")
	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, "Mouse")
	assert.Contains(t, body, "99.90")
}

func TestAddProductForm(t *testing.T) {
	s := newTestServer(t)

	resp := doForm(s, "/add", url.Values{"name": {"Caderno"}, "price": {"12,50"}})
	require.Equal(t, http.StatusSeeOther, resp.Code)
	assert.Equal(t, "/", resp.Header().Get("Location"))

	page := doGet(s, "/")
	assert.Contains(t, page.Body.String(), "Caderno")
	assert.Contains(t, page.Body.String(), "12.50")
}

func TestAddProductFormSilentlyDropsBadInput(t *testing.T) {
	s := newTestServer(t)

	cases := []url.Values{
		{"name": {"Sem Preco"}},
		{"price": {"10.0"}},
		{"name": {"Preco Invalido"}, "price": {"abc"}},
		{},
	}
	for _, form := range cases {
		resp := doForm(s, "/add", form)
		assert.Equal(t, http.StatusSeeOther, resp.Code)
	}

	resp := doJSON(s, http.MethodGet, "/api/products", "")
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestEditFormRendersCurrentValues(t *testing.T) {
	s := newTestServer(t)

	created := decodeProduct(t, doJSON(s, http.MethodPost, "/api/products", `{"name":"Monitor","price":1200.0}`))

	resp := doGet(s, fmt.Sprintf("/edit/%d", created.ID))
	require.Equal(t, http.StatusOK, resp.Code)
	body := resp.Body.String()
	assert.Contains(t, body, "Monitor")
	assert.Contains(t, body, "1200.00")
}

func TestEditFormMissingProductRedirects(t *testing.T) {
	s := newTestServer(t)

	resp := doGet(s, "/edit/999")
	require.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/", resp.Header().Get("Location"))

	resp = doGet(s, "/edit/abc")
	require.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/", resp.Header().Get("Location"))
}

func TestEditProductFormReplacesValues(t *testing.T) {
	s := newTestServer(t)

	created := decodeProduct(t, doJSON(s, http.MethodPost, "/api/products", `{"name":"Produto Original","price":100.0}`))

	resp := doForm(s, fmt.Sprintf("/edit/%d", created.ID), url.Values{
		"name":  {"Produto Atualizado"},
		"price": {"150.50"},
	})
	require.Equal(t, http.StatusSeeOther, resp.Code)

	got := decodeProduct(t, doJSON(s, http.MethodGet, fmt.Sprintf("/api/products/%d", created.ID), ""))
	assert.Equal(t, "Produto Atualizado", got.Name)
	assert.Equal(t, 150.50, got.Price)

	// edit must not duplicate the row
	list := doJSON(s, http.MethodGet, "/api/products", "")
	assert.Equal(t, 1, strings.Count(list.Body.String(), `"id"`))
}

func TestDeleteProductFormIdempotent(t *testing.T) {
	s := newTestServer(t)

	created := decodeProduct(t, doJSON(s, http.MethodPost, "/api/products", `{"name":"Descartavel","price":5.0}`))

	path := fmt.Sprintf("/delete/%d", created.ID)
	resp := doForm(s, path, url.Values{})
	require.Equal(t, http.StatusSeeOther, resp.Code)

	list := doJSON(s, http.MethodGet, "/api/products", "")
	assert.JSONEq(t, `[]`, list.Body.String())

	// deleting the same id again still just redirects
	resp = doForm(s, path, url.Values{})
	assert.Equal(t, http.StatusSeeOther, resp.Code)
}
