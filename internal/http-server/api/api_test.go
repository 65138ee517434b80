package api

import (
	"CorpSite/impl/core"
	"CorpSite/internal/faq"
	"CorpSite/internal/forms"
	"CorpSite/internal/hero"
	libmetrics "CorpSite/internal/lib/metrics"
	"CorpSite/internal/service/inbox"
	"CorpSite/internal/wizard"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *inbox.Inbox) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	metrics := libmetrics.New()
	box := inbox.NewInbox(log)
	box.SetCounter(metrics)
	engine := wizard.NewEngine(wizard.NewMemoryStorage(time.Hour), box, log)
	engine.SetObserver(metrics)
	for _, f := range forms.Catalog() {
		require.NoError(t, engine.RegisterForm(f))
	}
	catalog, err := faq.Default()
	require.NoError(t, err)

	c := core.New(log)
	c.SetEngine(engine)
	c.SetInbox(box)
	c.SetFaq(faq.NewStore(catalog))
	c.SetHero(hero.NewScheduler(hero.Schedule{First: 8 * time.Second, Second: 8 * time.Second, Fade: time.Second}, nil))
	c.SetBootcampDeadline(time.Now().Add(72 * time.Hour))

	srv := httptest.NewServer(NewRouter(log, c, nil, metrics.Handler()))
	t.Cleanup(srv.Close)
	return srv, box
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func call(t *testing.T, srv *httptest.Server, method, path, body string) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, srv.URL+path, reader)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func TestAPI_Contact(t *testing.T) {
	srv, box := newTestServer(t)

	resp, env := call(t, srv, http.MethodPost, "/api/contact", `{"name":"Taro","message":"hi"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
	assert.Equal(t, "application/json", strings.Split(resp.Header.Get("Content-Type"), ";")[0])
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Equal(t, int64(1), box.Received())

	resp, env = call(t, srv, http.MethodPost, "/api/contact", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid request body", env.Message)
	assert.Equal(t, int64(1), box.Received())
}

func TestAPI_Errors(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, env := call(t, srv, http.MethodGet, "/api/v1/nothing", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Requested resource not found", env.Message)

	resp, env = call(t, srv, http.MethodGet, "/api/contact", "")
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, "Method not allowed", env.Message)
}

func TestAPI_Forms(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, env := call(t, srv, http.MethodGet, "/api/v1/forms", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []struct {
		ID    string `json:"id"`
		Steps int    `json:"steps"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 3)
	assert.Equal(t, "bootcamp", list[0].ID)

	resp, env = call(t, srv, http.MethodGet, "/api/v1/forms/join", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var form wizard.Form
	require.NoError(t, json.Unmarshal(env.Data, &form))
	assert.Equal(t, 3, form.StepCount())

	resp, _ = call(t, srv, http.MethodGet, "/api/v1/forms/unknown", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_WizardSession(t *testing.T) {
	srv, box := newTestServer(t)

	resp, env := call(t, srv, http.MethodPost, "/api/v1/forms/contact/sessions", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var view struct {
		ID string `json:"session_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &view))

	for _, body := range []string{
		`{"name":"name","value":"Hanako"}`,
		`{"name":"email","value":"hanako@example.com"}`,
		`{"name":"message","value":"Hello"}`,
	} {
		resp, _ = call(t, srv, http.MethodPut, "/api/v1/sessions/"+view.ID+"/fields", body)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, env = call(t, srv, http.MethodPost, "/api/v1/sessions/"+view.ID+"/submit", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, env.Success)
	assert.Equal(t, int64(1), box.Received())
}

func TestAPI_FaqAndWidgets(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, env := call(t, srv, http.MethodGet, "/api/v1/faq?per_page=3&page=2", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page faq.Page
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Items, 3)
	assert.Equal(t, 2, page.Pagination.CurrentPage)

	resp, env = call(t, srv, http.MethodGet, "/api/v1/faq?q=zzzz-no-match", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)

	resp, env = call(t, srv, http.MethodGet, "/api/v1/faq/categories", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var categories []string
	require.NoError(t, json.Unmarshal(env.Data, &categories))
	assert.NotEmpty(t, categories)

	resp, env = call(t, srv, http.MethodGet, "/api/v1/bootcamp/countdown", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"days":2`)

	resp, env = call(t, srv, http.MethodGet, "/api/v1/hero", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(env.Data), `"active":"first"`)
}

func TestAPI_Metrics(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := call(t, srv, http.MethodPost, "/api/v1/forms/join/sessions", "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `corpsite_wizard_sessions_started_total{form="join"} 1`)
}
