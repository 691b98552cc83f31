package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/weft"
	httpAdapter "github.com/aretw0/weft/pkg/adapters/http"
	"github.com/aretw0/weft/pkg/adapters/memory"
	"github.com/aretw0/weft/pkg/domain"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	loader := memory.NewLoader(nil)
	loader.Add("greeting", []domain.Node{
		domain.Raw("Hello, "),
		domain.Tag("get", domain.Ident("name")),
		domain.Raw("!"),
	})

	handler := httpAdapter.NewHandler(weft.New(),
		httpAdapter.WithLoader(loader),
		httpAdapter.WithContextStore(memory.NewStore()),
	)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decodeOutput(t *testing.T, resp *http.Response) string {
	t.Helper()
	var out httpAdapter.RenderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Output
}

func TestHandler_Health(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestHandler_RenderNamedTemplate(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/render", httpAdapter.RenderRequest{
		Template: "greeting",
		Context:  map[string]any{"name": "World"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hello, World!", decodeOutput(t, resp))
}

func TestHandler_RenderInlineDocument(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/render", httpAdapter.RenderRequest{
		Document: map[string]any{
			"template": []any{
				map[string]any{"raw": "n="},
				map[string]any{"tag": map[string]any{
					"name":   "get",
					"params": []any{map[string]any{"ident": "n"}},
				}},
			},
		},
		Context: map[string]any{"n": 7},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "n=7", decodeOutput(t, resp))
}

func TestHandler_RenderErrors(t *testing.T) {
	srv := newTestServer(t)

	t.Run("Missing Template", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/render", httpAdapter.RenderRequest{
			Template: "ghost",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Neither Template Nor Document", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/render", httpAdapter.RenderRequest{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Both Template And Document", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/render", httpAdapter.RenderRequest{
			Template: "greeting",
			Document: map[string]any{"template": []any{}},
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Unknown Tag", func(t *testing.T) {
		resp := postJSON(t, srv.URL+"/render", httpAdapter.RenderRequest{
			Document: map[string]any{
				"template": []any{
					map[string]any{"tag": map[string]any{"name": "frobnicate"}},
				},
			},
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestHandler_StoredContexts(t *testing.T) {
	srv := newTestServer(t)

	// Seed the context once.
	req, err := http.NewRequest(http.MethodPut, srv.URL+"/contexts/u1",
		bytes.NewReader([]byte(`{"name":"Ada"}`)))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	// Render against it by ID.
	resp = postJSON(t, srv.URL+"/render", httpAdapter.RenderRequest{
		Template:  "greeting",
		ContextID: "u1",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hello, Ada!", decodeOutput(t, resp))

	// Inline values overlay the stored context.
	resp = postJSON(t, srv.URL+"/render", httpAdapter.RenderRequest{
		Template:  "greeting",
		ContextID: "u1",
		Context:   map[string]any{"name": "Eve"},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Hello, Eve!", decodeOutput(t, resp))

	// Delete, then the ID is gone.
	req, err = http.NewRequest(http.MethodDelete, srv.URL+"/contexts/u1", nil)
	require.NoError(t, err)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = postJSON(t, srv.URL+"/render", httpAdapter.RenderRequest{
		Template:  "greeting",
		ContextID: "u1",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_ListTemplates(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/templates")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out map[string][]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, []string{"greeting"}, out["templates"])
}
