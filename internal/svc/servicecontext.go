// Package svc wires configuration into the shared service dependencies.
package svc

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/quorumlabs/maestro/internal/agent/ai"
	"github.com/quorumlabs/maestro/internal/agent/graph"
	"github.com/quorumlabs/maestro/internal/agent/tools"
	"github.com/quorumlabs/maestro/internal/config"
)

// ServiceContext holds the dependencies shared by all handlers. It is built
// once at startup; everything in it is safe for concurrent use.
type ServiceContext struct {
	Config config.Config
	Log    zerolog.Logger
	Graph  *graph.Runner
}

// NewServiceContext builds the capability factory, tool registry, and
// orchestration graph from configuration. An invalid alias table fails here
// rather than on the first request.
func NewServiceContext(c config.Config, log zerolog.Logger) (*ServiceContext, error) {
	factory, err := ai.NewFactory(c.Groq.APIKey, c.Groq.BaseURL, c.ModelAliases, log)
	if err != nil {
		return nil, fmt.Errorf("building capability factory: %w", err)
	}

	registry := tools.NewRegistry()
	registry.Register(tools.NewSearchTool(c.Tavily.APIKey, c.Tavily.BaseURL, log))

	return &ServiceContext{
		Config: c,
		Log:    log,
		Graph:  graph.NewRunner(factory, registry, c.Routing, c.MaxToolRounds, log),
	}, nil
}
