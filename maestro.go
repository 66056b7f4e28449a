package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	cli "github.com/quorumlabs/maestro/cmd/maestro"
	"github.com/quorumlabs/maestro/internal/config"
)

//go:embed etc/maestro.yaml
var embeddedConfig []byte

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	c, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cli.SetupRootCmd(&c).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig prefers MAESTRO_CONFIG when set, otherwise the embedded
// defaults.
func loadConfig() (config.Config, error) {
	if path := os.Getenv("MAESTRO_CONFIG"); path != "" {
		return config.Load(path)
	}
	return config.LoadFromBytes(embeddedConfig)
}
