package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quorumlabs/maestro/internal/agent/ai"
	"github.com/quorumlabs/maestro/internal/agent/graph"
	"github.com/quorumlabs/maestro/internal/agent/tools"
	"github.com/quorumlabs/maestro/internal/config"
	"github.com/quorumlabs/maestro/internal/svc"
)

type staticProvider struct {
	reply string
}

func (p *staticProvider) ID() string { return "groq" }

func (p *staticProvider) Complete(ctx context.Context, req *ai.ChatRequest) (*ai.ChatResponse, error) {
	return &ai.ChatResponse{Content: p.reply}, nil
}

type staticResolver struct {
	provider ai.Provider
}

func (r *staticResolver) Resolve(capability string) (ai.Provider, string, error) {
	_, model := ai.ParseModelID(capability)
	return r.provider, model, nil
}

func newTestServer(t *testing.T, reply string) *httptest.Server {
	t.Helper()
	c := config.DefaultConfig()
	runner := graph.NewRunner(
		&staticResolver{provider: &staticProvider{reply: reply}},
		tools.NewRegistry(),
		c.Routing,
		c.MaxToolRounds,
		zerolog.Nop(),
	)
	svcCtx := &svc.ServiceContext{Config: c, Log: zerolog.Nop(), Graph: runner}
	srv := httptest.NewServer(NewRouter(svcCtx))
	t.Cleanup(srv.Close)
	return srv
}

func decodeJSON(resp *http.Response, v any) error {
	return json.NewDecoder(resp.Body).Decode(v)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, "ok")

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/json")
}

func TestAgentEndpoint_ReturnsReply(t *testing.T) {
	srv := newTestServer(t, "A poem about rain.")

	body := `{"system_prompt":"","messages":["Write me a short poem about rain"],"allow_search":false}`
	resp, err := http.Post(srv.URL+"/api/v1/agent", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Response string `json:"response"`
	}
	require.NoError(t, decodeJSON(resp, &out))
	assert.Equal(t, "A poem about rain.", out.Response)
}

func TestAgentEndpoint_RejectsEmptyMessages(t *testing.T) {
	srv := newTestServer(t, "unused")

	resp, err := http.Post(srv.URL+"/api/v1/agent", "application/json",
		strings.NewReader(`{"messages":[],"allow_search":false}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAgentEndpoint_RejectsMalformedBody(t *testing.T) {
	srv := newTestServer(t, "unused")

	resp, err := http.Post(srv.URL+"/api/v1/agent", "application/json",
		strings.NewReader(`{broken`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAgentEndpoint_ConfigurationDefectIs500(t *testing.T) {
	c := config.DefaultConfig()
	c.Routing = ai.Routing{} // no capability for any persona
	runner := graph.NewRunner(
		&staticResolver{provider: &staticProvider{reply: "x"}},
		tools.NewRegistry(),
		c.Routing,
		c.MaxToolRounds,
		zerolog.Nop(),
	)
	svcCtx := &svc.ServiceContext{Config: c, Log: zerolog.Nop(), Graph: runner}
	srv := httptest.NewServer(NewRouter(svcCtx))
	t.Cleanup(srv.Close)

	resp, err := http.Post(srv.URL+"/api/v1/agent", "application/json",
		strings.NewReader(`{"messages":["hello"],"allow_search":false}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
