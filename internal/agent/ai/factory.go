package ai

import (
	"fmt"

	"github.com/rs/zerolog"
)

// DefaultModelAliases maps deprecated model names to their replacements.
// Rewrites chain: an alias target may itself be aliased.
var DefaultModelAliases = map[string]string{
	"llama3-8b-8192":          "llama-3.1-8b-instant",
	"llama3-70b-8192":         "llama-3.1-70b-versatile",
	"llama-3.1-70b-versatile": "llama-3.3-70b-versatile",
}

// Factory resolves "provider/model" identifiers into live providers. The
// alias table is fixed at construction and never mutated afterwards.
type Factory struct {
	groqAPIKey  string
	groqBaseURL string
	aliases     map[string]string
	log         zerolog.Logger
}

// NewFactory validates the alias table and builds a resolver. A cyclic alias
// chain is a construction error, not a lookup-time surprise.
func NewFactory(groqAPIKey, groqBaseURL string, aliases map[string]string, log zerolog.Logger) (*Factory, error) {
	if aliases == nil {
		aliases = DefaultModelAliases
	}
	for name := range aliases {
		if err := checkAliasChain(aliases, name); err != nil {
			return nil, err
		}
	}
	return &Factory{
		groqAPIKey:  groqAPIKey,
		groqBaseURL: groqBaseURL,
		aliases:     aliases,
		log:         log.With().Str("component", "model_factory").Logger(),
	}, nil
}

func checkAliasChain(aliases map[string]string, start string) error {
	seen := map[string]bool{start: true}
	name := start
	for {
		next, ok := aliases[name]
		if !ok {
			return nil
		}
		if seen[next] {
			return fmt.Errorf("model alias cycle detected at %q", next)
		}
		seen[next] = true
		name = next
	}
}

// Resolve parses a capability identifier, follows deprecation aliases to a
// terminal model name, and returns the provider for the identifier's
// provider segment.
func (f *Factory) Resolve(capability string) (Provider, string, error) {
	providerID, modelName := ParseModelID(capability)
	if providerID == "" {
		return nil, "", fmt.Errorf("capability %q is missing a provider prefix", capability)
	}

	model := f.resolveAlias(modelName)

	switch providerID {
	case "groq":
		if f.groqAPIKey == "" {
			return nil, "", fmt.Errorf("groq api key is not configured")
		}
		return NewGroqProvider(f.groqAPIKey, f.groqBaseURL, model, f.log), model, nil
	default:
		return nil, "", fmt.Errorf("unknown provider %q in capability %q", providerID, capability)
	}
}

// resolveAlias follows the alias chain to its terminal model name. Chains
// are already validated acyclic at construction.
func (f *Factory) resolveAlias(name string) string {
	for {
		next, ok := f.aliases[name]
		if !ok {
			return name
		}
		f.log.Warn().
			Str("deprecated", name).
			Str("replacement", next).
			Msg("model is deprecated, substituting replacement")
		name = next
	}
}
