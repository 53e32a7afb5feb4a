// Package config loads service configuration from the environment and an
// optional remotes file.
package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Env holds everything a service binary reads from the environment.
type Env struct {
	Addr    string
	GinMode string

	Provider string // openai | anthropic | cohere

	OpenAIKey     string
	OpenAIBaseURL string
	OpenAIModel   string

	AnthropicKey   string
	AnthropicModel string

	CohereKey   string
	CohereModel string

	SearxngURL string

	RemotesFile string
}

// LoadEnv reads .env when present, then the process environment.
// defaultPort is the service's port when APP_ADDR is unset.
func LoadEnv(defaultPort int) Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: loading .env: %v", err)
	}

	addr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if addr == "" {
		addr = fmt.Sprintf(":%d", defaultPort)
	}

	provider := strings.ToLower(strings.TrimSpace(os.Getenv("MODEL_PROVIDER")))
	if provider == "" {
		provider = "openai"
	}

	model := strings.TrimSpace(os.Getenv("OPENAI_MODEL"))
	if model == "" {
		model = "gpt-4o-mini"
	}

	return Env{
		Addr:           addr,
		GinMode:        strings.TrimSpace(os.Getenv("GIN_MODE")),
		Provider:       provider,
		OpenAIKey:      strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL:  strings.TrimSpace(os.Getenv("OPENAI_API_BASE_URL")),
		OpenAIModel:    model,
		AnthropicKey:   strings.TrimSpace(os.Getenv("ANTHROPIC_API_KEY")),
		AnthropicModel: strings.TrimSpace(os.Getenv("ANTHROPIC_MODEL")),
		CohereKey:      strings.TrimSpace(os.Getenv("COHERE_API_KEY")),
		CohereModel:    strings.TrimSpace(os.Getenv("COHERE_MODEL")),
		SearxngURL:     strings.TrimSpace(os.Getenv("SEARXNG_BASE_URL")),
		RemotesFile:    strings.TrimSpace(os.Getenv("REMOTE_AGENTS_FILE")),
	}
}

// Model returns the configured model name for the active provider.
func (e Env) Model() string {
	switch e.Provider {
	case "anthropic":
		if e.AnthropicModel != "" {
			return e.AnthropicModel
		}
		return "claude-3-5-sonnet-20241022"
	case "cohere":
		if e.CohereModel != "" {
			return e.CohereModel
		}
		return "command-r-plus"
	default:
		return e.OpenAIModel
	}
}
