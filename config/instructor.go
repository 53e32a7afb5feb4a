package config

import (
	"github.com/bububa/instructor-go/pkg/instructor"
	cohereClient "github.com/cohere-ai/cohere-go/v2/client"
	cohereOption "github.com/cohere-ai/cohere-go/v2/option"
	anthropic "github.com/liushuangls/go-anthropic/v2"
	openai "github.com/sashabaranov/go-openai"
)

// NewInstructor builds the structured-output client for the configured
// provider. Returns nil when no API key is set, which the services treat
// as a signal to serve deterministic stub data.
func (e Env) NewInstructor() instructor.Instructor {
	switch e.Provider {
	case "anthropic":
		if e.AnthropicKey == "" {
			return nil
		}
		clt := anthropic.NewClient(e.AnthropicKey)
		return instructor.FromAnthropic(clt, instructor.WithMode(instructor.ModeJSON), instructor.WithMaxRetries(3), instructor.WithValidation())
	case "cohere":
		if e.CohereKey == "" {
			return nil
		}
		clt := cohereClient.NewClient(cohereOption.WithToken(e.CohereKey))
		return instructor.FromCohere(clt, instructor.WithMode(instructor.ModeJSON), instructor.WithMaxRetries(3), instructor.WithValidation())
	default:
		if e.OpenAIKey == "" {
			return nil
		}
		cfg := openai.DefaultConfig(e.OpenAIKey)
		if e.OpenAIBaseURL != "" {
			cfg.BaseURL = e.OpenAIBaseURL
		}
		clt := openai.NewClientWithConfig(cfg)
		return instructor.FromOpenAI(clt, instructor.WithMode(instructor.ModeJSON), instructor.WithMaxRetries(3), instructor.WithValidation())
	}
}
